// Package builder generates deterministic rate-graph fixtures for tests,
// benchmarks and demos of dex.
//
// A fixture is assembled by BuildGraph from one or more Constructors, each
// a closure that adds vertices and rates to a *core.Graph using a resolved,
// immutable configuration:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformRate(0.5, 2)},
//	    builder.Cycle(6),
//	)
//
// Components:
//
//   - Configuration primitives:
//     – BuilderOption:     mutates builderConfig before use; panics on nonsense input.
//     – builderConfig:     holds RNG, ID scheme, rate function, bipartite prefixes.
//   - Topologies (Constructor implementations):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid, RandomSparse.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   spreadsheet columns ("A","Z","AA",…).
//     – TickerIDFn:        three-letter codes ("AAA","AAB",…).
//     – SymbolNumberIDFn:  prefix + index ("v0","v1",…).
//   - Rate distributions (RateFn implementations):
//     – DefaultRateFn:     constant DefaultRate (1.0).
//     – ConstantRateFn:    fixed user-provided rate.
//     – UniformRateFn:     uniform ∼U[min,max), min > 0.
//     – LogNormalRateFn:   exp(N(0,σ)), centered on 1.
//
// Guarantees:
//
//   - Every pair is written with core.AddRate, so each fixture is
//     reciprocal-consistent like any other rate graph.
//   - Rates are checked with core.ValidateRate before they are written; a
//     RateFn producing 0, NaN or ±Inf yields an error wrapping the core
//     sentinel instead of a panic.
//   - Same options, seed and constructor order ⇒ identical graphs.
package builder
