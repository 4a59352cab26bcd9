// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center", i.e., a ring of size (n-1) plus a hub vertex.
//   • Therefore, n ≥ 4 (the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Builds the outer ring using Cycle(n-1) with the same cfg.
//   • Emits spokes Center → rim[i] in index order, each with its reciprocal.
//
// Complexity:
//   • Time: O(n log n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/dex/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		// Cycle uses cfg.idFn(i) for i=0..n-2, matching the spokes below.
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}

		hub := core.Vertex(CenterVertexID)
		for i := 0; i < n-1; i++ {
			if err := addRate(g, MethodWheel, hub, cfg.vertex(i), cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
