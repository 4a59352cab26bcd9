package bestrate_test

import (
	"github.com/katalvlaran/dex/core"
	"github.com/katalvlaran/dex/route"
)

const (
	A core.Vertex = "A"
	B core.Vertex = "B"
	C core.Vertex = "C"
	D core.Vertex = "D"
	F core.Vertex = "F"
	X core.Vertex = "X"
	Y core.Vertex = "Y"
)

// rateDelta absorbs float64 rounding of products such as 1.4*0.2.
const rateDelta = 1e-12

type rateEdge struct {
	src, dst core.Vertex
	rate     float64
}

// graphOf builds a rate graph from the given edges, in order.
func graphOf(edges ...rateEdge) *core.Graph {
	g := core.NewGraph()
	for _, e := range edges {
		g.AddRate(e.src, e.dst, e.rate)
	}

	return g
}

// triangle is A-B 1.4, A-C 0.1, B-C 0.2: the indirect route A→B→C (0.28)
// beats the direct edge A→C (0.1).
func triangle() *core.Graph {
	return graphOf(
		rateEdge{A, B, 1.4},
		rateEdge{A, C, 0.1},
		rateEdge{B, C, 0.2},
	)
}

// demo is the default rate set shipped with the dex CLI.
func demo() *core.Graph {
	return graphOf(
		rateEdge{A, B, 1.4},
		rateEdge{A, C, 0.1},
		rateEdge{B, C, 0.2},
		rateEdge{C, D, 0.2},
		rateEdge{D, F, 2.5},
	)
}

// vertexIDs returns the vertex sequence of p, or nil for a nil path.
func vertexIDs(p *route.Path) []core.Vertex {
	if p == nil {
		return nil
	}

	return p.Vertices()
}
