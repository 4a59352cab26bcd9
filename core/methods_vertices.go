// File: methods_vertices.go
// Role: Vertex enumeration.
//
// Determinism:
//   - Vertices() yields IDs in ascending order (B-tree order).
//
// Concurrency:
//   - Each iteration snapshots the catalog under the read lock and yields
//     without holding it, so loop bodies may call back into the graph.
package core

import "iter"

// Vertices returns a lazy sequence of all known vertices in ascending order.
//
// The sequence is restartable: every range over it takes a fresh snapshot
// of the vertex catalog, so vertices added between two loops show up in the
// second one. Vertices added while a loop is running are not observed by it.
//
// Complexity: O(V) per iteration, O(V) extra space for the snapshot.
func (g *Graph) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		g.mu.RLock()
		snapshot := g.vertices.Keys()
		g.mu.RUnlock()

		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// VertexCount returns the number of known vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Len()
}
