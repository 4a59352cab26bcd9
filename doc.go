// Package dex finds the best compounded exchange rate between two assets
// quoted on an invertible rate graph.
//
// Quoting a rate A→B at r also quotes B→A at 1/r, so every pair added to
// the graph is walkable in both directions. A search explores simple paths
// (no asset visited twice) from source to destination breadth-first,
// discards partial paths already beaten at their current vertex, and
// returns the path whose product of rates is largest.
//
// Packages:
//
//	core/     — thread-safe rate graph: AddRate, Vertices, Neighbors, Rate
//	route/    — immutable Path value: vertices plus compounded rate
//	bestrate/ — single-pair Search/BestPath/BestRate and parallel AllPairs
//	builder/  — deterministic graph topologies for tests and benchmarks
//
// Supporting code lives under internal/ (YAML/env config, zerolog logger
// factory, Prometheus collectors) and cmd/dex, a CLI that loads a rate
// table, prints the best rate for every reachable pair and optionally
// serves /metrics.
//
// Quick start:
//
//	g := core.NewGraph()
//	g.AddRate("A", "B", 1.4)
//	g.AddRate("B", "C", 0.2)
//	g.AddRate("A", "C", 0.29)
//
//	rate, ok, err := bestrate.BestRate(g, "A", "C") // 0.29, true, nil
package dex
