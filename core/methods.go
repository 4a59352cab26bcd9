// Package core: rate graph mutation and point lookups.
//
// Adjacency is stored as an ordered map of ordered maps:
// vertices[src][dst] = rate. Insertion into either level is O(log n) and
// keeps enumeration order stable without a separate sort pass.

package core

import (
	"fmt"
	"math"
)

// ValidateRate reports whether AddRate(src, dst, rate) would be accepted.
// It returns nil or one of ErrEmptyVertexID, ErrSelfLoop, ErrZeroRate,
// ErrBadRate wrapped with the offending values.
// Complexity: O(1).
func ValidateRate(src, dst Vertex, rate float64) error {
	// 1) Both endpoints must be named
	if src == "" || dst == "" {
		return fmt.Errorf("%w: %q -> %q", ErrEmptyVertexID, src, dst)
	}
	// 2) No self-loops: a vertex is not its own neighbor
	if src == dst {
		return fmt.Errorf("%w: %q", ErrSelfLoop, src)
	}
	// 3) Zero has no inverse
	if rate == 0 {
		return fmt.Errorf("%w: %q -> %q", ErrZeroRate, src, dst)
	}
	// 4) Both directions must be representable
	if math.IsNaN(rate) || math.IsInf(rate, 0) || math.IsInf(1/rate, 0) {
		return fmt.Errorf("%w: %q -> %q = %g", ErrBadRate, src, dst, rate)
	}

	return nil
}

// AddVertex registers v without any edges. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if v is empty.
// Complexity: O(log V).
func (g *Graph) AddVertex(v Vertex) error {
	if v == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(v)

	return nil
}

// AddRate records rate(src→dst) = rate and rate(dst→src) = 1/rate,
// creating both vertices when missing. Existing entries in either direction
// are overwritten (last write wins); re-adding never fails.
//
// AddRate panics when ValidateRate(src, dst, rate) != nil: equal endpoints,
// a zero rate and the like are programming errors, not runtime conditions.
// Complexity: O(log V + log d).
func (g *Graph) AddRate(src, dst Vertex, rate float64) {
	if err := ValidateRate(src, dst, rate); err != nil {
		panic(err)
	}
	fwd := Edge{From: src, To: dst, Rate: rate}
	rev := fwd.Reverse()

	g.mu.Lock()
	g.setLocked(fwd)
	g.setLocked(rev)
	onRate := g.onRate
	g.mu.Unlock()

	// Hooks run outside the lock so they may query the graph.
	onRate(fwd)
	onRate(rev)
}

// HasVertex reports whether v is known to the graph.
// Complexity: O(log V).
func (g *Graph) HasVertex(v Vertex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices.Get(v)

	return ok
}

// Rate returns the direct rate src→dst, if such an edge exists.
// Complexity: O(log V + log d).
func (g *Graph) Rate(src, dst Vertex) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.vertices.Get(src)
	if !ok {
		return 0, false
	}

	return adj.Get(dst)
}

// ensureVertex returns the adjacency bucket of v, creating it if missing.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(v Vertex) *adjacency {
	if adj, ok := g.vertices.Get(v); ok {
		return adj
	}
	adj := new(adjacency)
	g.vertices.Set(v, adj)

	return adj
}

// setLocked stores one directed entry, keeping edgeCount in sync.
// Caller must hold g.mu for writing.
func (g *Graph) setLocked(e Edge) {
	g.ensureVertex(e.To)
	if _, replaced := g.ensureVertex(e.From).Set(e.To, e.Rate); !replaced {
		g.edgeCount++
	}
}
