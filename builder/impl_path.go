// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits rates (i-1) -> i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n log n).
//   - Space: O(n) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dex/core"
)

// Path returns a Constructor that builds a chain P_n. The best rate
// between the ends is the product of all n-1 rates, since no other
// simple path exists.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, MethodPath, n, cfg)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addRate(g, MethodPath, ids[i-1], ids[i], cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
