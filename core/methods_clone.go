// File: methods_clone.go
// Role: Deep copy of a rate graph.
//
// Concurrency:
//   - Read lock on the source for the whole copy; the clone is a fresh,
//     unshared instance.

package core

// Clone returns a deep copy of the graph: all vertices (isolated ones
// included) and every rate entry. The OnRate hook is carried over.
//
// The copy is rebuilt node by node instead of using the B-tree's
// copy-on-write Copy, which mutates the source tree and would need the
// write lock.
//
// Complexity: O((V + E) log V).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithOnRate(g.onRate))
	g.vertices.Scan(func(v Vertex, adj *adjacency) bool {
		dst := new(adjacency)
		adj.Scan(func(to Vertex, rate float64) bool {
			dst.Set(to, rate)
			return true
		})
		clone.vertices.Set(v, dst)
		return true
	})
	clone.edgeCount = g.edgeCount

	return clone
}
