// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits rates in stable order i -> (i+1)%n for i=0..n-1, each with its reciprocal.
//
// Complexity:
//   • Time: O(n log n).
//   • Space: O(n) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dex/core"
)

// Cycle returns a Constructor that builds an n-vertex ring C_n.
// Going once around the ring multiplies the rates together, so with a
// random RateFn the ring carries an arbitrage (product > 1) in one
// direction whenever it does not in the other.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, MethodCycle, n, cfg)
		if err != nil {
			return err
		}

		// for i==n-1, connect back to 0 to close the ring
		for i := 0; i < n; i++ {
			if err = addRate(g, MethodCycle, ids[i], ids[(i+1)%n], cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
