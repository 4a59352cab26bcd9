// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Adds left partition IDs as "{leftPrefix}{i}", i=0..n1-1.
//   • Adds right partition IDs as "{rightPrefix}{j}", j=0..n2-1.
//   • Emits every cross-pair L_i → R_j, each with its reciprocal.
//
// Complexity:
//   • Time: O(n1·n2 log(n1+n2)).
//   • Space: O(n1 + n2) extra for ID slices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dex/core"
)

// CompleteBipartite returns a Constructor for K_{n1,n2}: two groups of
// assets where each asset is quoted only against the other group, e.g.
// fiat currencies on one side and tokens on the other.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		left := make([]core.Vertex, n1)
		for i := range left {
			left[i] = prefixedID(cfg.leftPrefix, i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%q): %w", MethodCompleteBipartite, left[i], err)
			}
		}
		right := make([]core.Vertex, n2)
		for j := range right {
			right[j] = prefixedID(cfg.rightPrefix, j)
			if err := g.AddVertex(right[j]); err != nil {
				return fmt.Errorf("%s: AddVertex(%q): %w", MethodCompleteBipartite, right[j], err)
			}
		}

		for _, u := range left {
			for _, v := range right {
				if err := addRate(g, MethodCompleteBipartite, u, v, cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
