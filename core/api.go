// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a point-in-time summary of a rate graph.
type GraphStats struct {
	VertexCount   int // known vertices, isolated ones included
	IsolatedCount int // vertices with no outgoing rates
	EdgeCount     int // directed rate entries (always even)
	MaxOutDegree  int // largest neighbor bucket
}

// Stats produces a deterministic snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Walk the vertex catalog once, classifying bucket sizes.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
//
// Notes:
//   - Use it to size work before an all-pairs run (V·(V-1) searches).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: g.vertices.Len(),
		EdgeCount:   g.edgeCount,
	}
	g.vertices.Scan(func(_ Vertex, adj *adjacency) bool {
		d := adj.Len()
		if d == 0 {
			stats.IsolatedCount++
		}
		if d > stats.MaxOutDegree {
			stats.MaxOutDegree = d
		}
		return true
	})

	return &stats
}
