// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// api.go - public entry point and constructor catalog of the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical rate graphs.
//   - Safety: constructors never panic; they return sentinel errors, or the core
//     rate sentinels when a RateFn yields an unusable rate.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dex/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against builder
//     sentinels (ErrTooFewVertices, ErrInvalidProbability, ...) or core
//     sentinels (core.ErrZeroRate, core.ErrBadRate, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph, e.g. to extend a hand-built
// fixture with a generated topology. Vertex IDs that already exist are
// reused, and rates already present are overwritten.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Every edge is recorded with core.AddRate, so each emitted pair also carries
// its reciprocal. Rates come from cfg.rateFn(cfg.rng).

// Cycle builds an n-vertex ring C_n (n ≥ 3): the smallest graphs with cycles.
//func Cycle(n int) Constructor

// Path builds a chain P_n (n ≥ 2): exactly one simple path between any pair.
//func Path(n int) Constructor

// Star builds a hub "Center" with n-1 leaves (n ≥ 2): every route passes the hub.
//func Star(n int) Constructor

// Wheel builds W_n = C_{n-1} + hub "Center" (n ≥ 4).
//func Wheel(n int) Constructor

// Complete builds K_n (n ≥ 1): every pair quoted directly.
//func Complete(n int) Constructor

// CompleteBipartite builds K_{n1,n2} with cfg.leftPrefix/cfg.rightPrefix IDs.
//func CompleteBipartite(n1, n2 int) Constructor

// Grid builds an R×C 4-neighborhood grid with IDs "r,c" (row-major).
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdős–Rényi-like graph over n vertices with edge
// probability p; requires cfg.rng when 0 < p < 1.
//func RandomSparse(n int, p float64) Constructor
