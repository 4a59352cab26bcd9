// Package core provides the thread-safe, in-memory rate graph used by dex.
//
// A rate graph G = (V,E) stores, for every vertex, the multiplicative
// conversion rate to each of its neighbors (think currency exchange rates).
// Edges are always added in pairs: recording rate(A→B) = r also records
// rate(B→A) = 1/r, so the graph is bidirectionally consistent even though
// callers only ever supply one direction.
//
//	    1.4
//	A ──────▶ B        AddRate("A", "B", 1.4)
//	  ◀──────          stores A→B = 1.4 and B→A = 0.714…
//	  0.714…
//
// Invariants:
//
//   - For every stored (u, v, r) the entry (v, u, 1/r) is stored as well.
//   - No self-loops (u ≠ v) and no zero, NaN or infinite rates.
//   - Re-adding an edge overwrites both directions (last write wins).
//   - Vertices are never removed; there is no deletion API.
//
// Determinism:
//
//	The vertex catalog and every adjacency bucket are ordered B-trees
//	(github.com/tidwall/btree), so Vertices(), Neighbors() and Edges()
//	enumerate in ascending Vertex order. Algorithms built on top of core
//	are therefore reproducible run to run.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph        // O(1)
//
//	// Mutation
//	AddVertex(v Vertex) error                    // O(log V)
//	AddRate(src, dst Vertex, rate float64)       // O(log V + log d), panics on bad input
//	ValidateRate(src, dst Vertex, rate float64)  // recoverable precondition check
//
//	// Query
//	HasVertex(v Vertex) bool                     // O(log V)
//	Rate(src, dst Vertex) (float64, bool)        // O(log V + log d)
//	Neighbors(v Vertex) []Neighbor               // O(d), sorted by To
//	Vertices() iter.Seq[Vertex]                  // lazy, restartable, ascending
//	Edges() []Edge                               // O(E), sorted by (From, To)
//	VertexCount() int / EdgeCount() int          // O(1)
//	Stats() *GraphStats                          // O(V)
//
//	// Cloning
//	Clone() *Graph                               // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyVertexID – zero-length vertex ID
//	ErrSelfLoop      – src == dst
//	ErrZeroRate      – rate == 0
//	ErrBadRate       – NaN or infinite rate, or a rate whose inverse overflows
//
// AddRate treats these as programming errors and panics with the sentinel
// wrapped; use ValidateRate first when the input comes from outside the
// program (files, environment, network).
package core
