// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Determinism:
//   - Neighbors() is sorted by Neighbor.To ascending.
//
// Concurrency:
//   - Read lock only; the returned slice is a private copy.

package core

// Neighbors returns the outgoing rates of v sorted by destination.
//
// Behavior highlights:
//   - Unknown and isolated vertices yield an empty (nil) slice, never an error.
//   - The slice is owned by the caller; mutating it does not affect the graph.
//
// Complexity: O(log V + d), where d is the out-degree of v.
func (g *Graph) Neighbors(v Vertex) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.vertices.Get(v)
	if !ok || adj.Len() == 0 {
		return nil
	}
	out := make([]Neighbor, 0, adj.Len())
	adj.Scan(func(to Vertex, rate float64) bool {
		out = append(out, Neighbor{To: to, Rate: rate})
		return true
	})

	return out
}
