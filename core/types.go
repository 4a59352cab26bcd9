// Package core defines the Vertex, Neighbor, Edge and Graph types of the
// rate graph, sentinel errors, and the NewGraph constructor.
//
// The Graph guards its catalog with a single sync.RWMutex: mutations take
// the write lock, every query takes the read lock, so any number of
// concurrent readers (searches) may share one graph while no writer is active.
package core

import (
	"errors"
	"sync"

	"github.com/tidwall/btree"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex with an empty ID was supplied.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrSelfLoop indicates a rate from a vertex to itself was supplied.
	ErrSelfLoop = errors.New("core: self-loop rate not allowed")

	// ErrZeroRate indicates a zero rate was supplied; its inverse is undefined.
	ErrZeroRate = errors.New("core: rate must be non-zero")

	// ErrBadRate indicates a NaN or infinite rate, or one whose inverse is not finite.
	ErrBadRate = errors.New("core: rate must be finite with a finite inverse")
)

// Vertex identifies a node of the rate graph, e.g. a currency or asset code.
// Vertices are compared and ordered as strings.
type Vertex string

// String implements fmt.Stringer.
func (v Vertex) String() string { return string(v) }

// Neighbor is one outgoing entry of a vertex: the destination and the rate
// that converts one unit of the source into units of To.
type Neighbor struct {
	To   Vertex
	Rate float64
}

// Edge is a directed rate entry From→To. Every Edge stored in a Graph has
// its reciprocal To→From with Rate 1/Rate.
type Edge struct {
	From Vertex
	To   Vertex
	Rate float64
}

// Reverse returns the reciprocal edge To→From with rate 1/Rate.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Rate: 1 / e.Rate}
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithOnRate registers a callback invoked after every directed rate write,
// i.e. twice per AddRate call (forward entry first, then its reciprocal).
// The callback runs after the graph lock has been released.
func WithOnRate(fn func(e Edge)) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.onRate = fn
		}
	}
}

// adjacency is the ordered neighbor bucket of a single vertex.
type adjacency = btree.Map[Vertex, float64]

// Graph is the in-memory rate graph.
//
// vertices maps every known vertex to its ordered adjacency bucket; a vertex
// without edges owns an empty bucket. edgeCount counts directed entries and
// is therefore always even.
type Graph struct {
	mu sync.RWMutex // guards vertices and edgeCount

	vertices  btree.Map[Vertex, *adjacency]
	edgeCount int

	onRate func(e Edge)
}

// NewGraph creates an empty rate graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{onRate: func(Edge) {}}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
