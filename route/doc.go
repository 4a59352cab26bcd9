// Package route provides Path, the value object carried by every entry of
// the best-rate search queue: an ordered sequence of distinct vertices plus
// the compounded rate accumulated along it.
//
// What
//
//   - New(v) starts a path at v with rate 1.0.
//   - Append(v, r) extends the path by one hop and multiplies the running
//     rate by r, but only if v is not already on the path (simple paths only).
//   - Extend(v, r) is the copy-on-branch form: it returns a new path and
//     leaves the receiver untouched.
//   - Paths compare by rate alone (Compare, Better); the vertex sequence is
//     never part of the ordering.
//
// Ownership
//
//	A Path is owned by whoever holds the pointer. Searches clone a path once
//	per outgoing branch so that queue entries never share a backing array.
//
// Complexity
//
//   - Contains / Append: O(len) (linear scan; len ≤ |V| by construction).
//   - Clone / Extend:    O(len).
package route
