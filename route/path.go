package route

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/dex/core"
)

// ErrEmptyPath is the panic value of Terminal on a zero Path.
var ErrEmptyPath = errors.New("route: path is empty")

// maxRendered caps how many vertices String prints.
const maxRendered = 10

// Path is an ordered sequence of distinct vertices and the product of the
// rates of the hops between them. The zero Path is empty and has rate 0;
// build paths with New.
type Path struct {
	vertices []core.Vertex
	rate     float64
}

// New returns the single-vertex path [v] with rate 1.0.
func New(v core.Vertex) *Path {
	return &Path{vertices: []core.Vertex{v}, rate: 1.0}
}

// Len returns the number of vertices on the path.
func (p *Path) Len() int { return len(p.vertices) }

// Rate returns the compounded rate of the path.
func (p *Path) Rate() float64 { return p.rate }

// Contains reports whether v is already on the path.
func (p *Path) Contains(v core.Vertex) bool {
	return slices.Contains(p.vertices, v)
}

// Terminal returns the last vertex of the path. It panics on an empty path.
func (p *Path) Terminal() core.Vertex {
	if len(p.vertices) == 0 {
		panic(ErrEmptyPath)
	}

	return p.vertices[len(p.vertices)-1]
}

// Vertices returns a copy of the vertex sequence, source first.
func (p *Path) Vertices() []core.Vertex {
	return slices.Clone(p.vertices)
}

// Append extends the path by v, multiplying the running rate by rate.
// It returns false and leaves the path unchanged when v is already present.
func (p *Path) Append(v core.Vertex, rate float64) bool {
	if p.Contains(v) {
		return false
	}
	p.vertices = append(p.vertices, v)
	p.rate *= rate

	return true
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	return &Path{vertices: slices.Clone(p.vertices), rate: p.rate}
}

// Extend returns a copy of p extended by v, or (nil, false) without
// copying when v is already on p.
func (p *Path) Extend(v core.Vertex, rate float64) (*Path, bool) {
	if p.Contains(v) {
		return nil, false
	}
	next := &Path{vertices: make([]core.Vertex, len(p.vertices), len(p.vertices)+1), rate: p.rate}
	copy(next.vertices, p.vertices)
	next.Append(v, rate)

	return next, true
}

// Better reports whether p has a strictly greater rate than other.
// Every path is better than a nil one; equal rates are not better.
func (p *Path) Better(other *Path) bool {
	return other == nil || p.rate > other.rate
}

// Compare orders two paths by rate only; it is suitable for slices.SortFunc.
func Compare(a, b *Path) int {
	return cmp.Compare(a.rate, b.rate)
}

// String renders the path as "A -> B -> C: 0.28", printing at most ten
// vertices followed by "-> ..." when longer.
func (p *Path) String() string {
	var sb strings.Builder
	for i, v := range p.vertices {
		if i == maxRendered {
			sb.WriteString(" -> ...")
			break
		}
		if i != 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(string(v))
	}
	fmt.Fprintf(&sb, ": %g", p.rate)

	return sb.String()
}
