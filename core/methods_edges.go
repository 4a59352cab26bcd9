// File: methods_edges.go
// Role: Edge catalog queries.
//
// Determinism:
//   - Edges() is sorted by (From, To) ascending; both directions of every
//     AddRate call are listed.

package core

// Edges returns every directed rate entry sorted by (From, To).
// Since each AddRate stores two entries, the result always has even length.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	g.vertices.Scan(func(from Vertex, adj *adjacency) bool {
		adj.Scan(func(to Vertex, rate float64) bool {
			out = append(out, Edge{From: from, To: to, Rate: rate})
			return true
		})
		return true
	})

	return out
}

// EdgeCount returns the number of directed rate entries (twice the number
// of distinct AddRate pairs).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
