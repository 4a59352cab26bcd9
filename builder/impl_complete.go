// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once as i→j
//     (the reciprocal j→i comes from AddRate).
//
// Complexity:
//   • Time: O(n² log n).
//   • Space: O(n) for the ID slice.
//
// Determinism:
//   • Pair order is lexicographic by (i,j), i<j, so a seeded RateFn
//     assigns the same rate to the same pair every run.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dex/core"
)

// Complete returns a Constructor that builds K_n: every pair quoted directly.
// The number of simple paths grows factorially with n, which makes K_n
// the worst case for the best-rate search; keep n small.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, MethodComplete, n, cfg)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addRate(g, MethodComplete, ids[i], ids[j], cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
