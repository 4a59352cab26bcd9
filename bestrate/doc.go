// Package bestrate provides the best compounded-rate search over a
// core.Graph, returning the maximum product of edge rates over all simple
// paths between two vertices and the path that realizes it.
//
// What
//
//   - Search(g, src, dst, opts...) → *Result{Best *route.Path, Stats}
//   - BestPath / BestRate are thin wrappers returning the path or the rate.
//   - AllPairs(g, opts...) evaluates every ordered pair of distinct vertices,
//     optionally with several workers.
//
// Algorithm
//
//  1. Seed a FIFO queue with the path [src] at rate 1.0; start with an empty
//     best-known map (vertex → best rate seen there so far).
//  2. Pop the front path and look its terminal vertex up in the map:
//     - absent: record the path's rate and continue with it;
//     - recorded ≥ path rate: the path is dominated, drop it;
//     - recorded < path rate: raise the record and continue with it.
//  3. If the terminal is the destination, the path is a candidate: it
//     replaces the current best only with a strictly greater rate (ties keep
//     the first one found). It is never expanded further, but the queue
//     keeps draining.
//  4. Otherwise, push path+neighbor (rate × edge rate) for every neighbor
//     not already on the path.
//
// Unlike a visited-set BFS, a vertex is re-expanded every time a strictly
// better rate reaches it; this is what makes the search correct on graphs
// where a longer route beats a shorter one. The no-revisit-within-path
// rule bounds every path by |V| vertices, so the search terminates on
// cyclic graphs.
//
// Determinism
//
//	core.Neighbors returns destinations in ascending order and the queue is
//	FIFO, so the discovery order, and hence tie-breaking, is reproducible.
//
// Edge cases
//
//   - src == dst yields no route: there is no implicit identity path.
//   - Unknown or isolated vertices yield no route, not an error.
//   - Rates compare with plain > / >=, no epsilon.
//
// Options
//
//   - WithContext(ctx):          cancellation, checked once per dequeue.
//   - WithLogger(l):             zerolog tracing (trace: dequeue/relax, debug: candidates).
//   - WithMaxExpansions(n):      diagnostic bound on enqueued paths.
//   - WithWorkers(n):            AllPairs concurrency.
//   - WithOnEnqueue / WithOnDequeue / WithOnPrune / WithOnCandidate: hooks.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  for invalid options (negative limit, zero workers).
//   - ErrExpansionLimit   when the diagnostic bound is crossed.
//   - ctx.Err() on cancellation; wrapped OnCandidate errors.
//
// Concurrency
//
//	Each call owns its queue and best-known map; the graph is only read, so
//	any number of searches may share it as long as no AddRate is in flight.
package bestrate
