// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p. Rate graphs are symmetric by
//     construction, so ordered pairs would only overwrite each other.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i). One Bernoulli draw per
//     pair, then one rate draw per included pair, both from cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dex/core"
)

// RandomSparse returns a Constructor that samples a random rate graph over
// n vertices with independent pair probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if !(p >= MinProbability && p <= MaxProbability) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		// RNG is only required for true stochastic sampling.
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, MethodRandomSparse, n, cfg)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !include(cfg, p) {
					continue
				}
				if err = addRate(g, MethodRandomSparse, ids[i], ids[j], cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// include runs one Bernoulli trial; p ∈ {0,1} never touches the RNG.
func include(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	}

	return cfg.rng.Float64() < p
}
