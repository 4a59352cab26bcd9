// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex IDs use the fixed scheme "r,c" (row-major order); cfg.idFn is
//     not consulted so coordinates stay explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emits Right then Bottom if present, each with its reciprocal.
//
// Complexity:
//   • Time: O(R·C log(R·C)).
//   • Space: O(1) extra (IDs are composed on the fly).

package builder

import (
	"fmt"

	"github.com/katalvlaran/dex/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid. Every
// unit square is a 4-cycle, so the search must prune many equal-length
// detours; this makes grids a good stress fixture.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%q): %w", MethodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addRate(g, MethodGrid, u, gridVertexID(r, c+1), cfg); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addRate(g, MethodGrid, u, gridVertexID(r+1, c), cfg); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
