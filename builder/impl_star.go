// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center".
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center → leaf[i], each with its reciprocal.
//
// Complexity:
//   - Time: O(n log n).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dex/core"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves. This is the shape of a market quoted
// against a single base asset.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		hub := core.Vertex(CenterVertexID)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %w", MethodStar, hub, err)
		}

		for i := 1; i < n; i++ {
			leaf := cfg.vertex(i)
			if err := addRate(g, MethodStar, hub, leaf, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
