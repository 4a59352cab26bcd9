// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for dex/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.

package core_test

import (
	"slices"

	"github.com/katalvlaran/dex/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA core.Vertex = "A"
	VertexB core.Vertex = "B"
	VertexC core.Vertex = "C"
	VertexD core.Vertex = "D"
	VertexF core.Vertex = "F"
	VertexX core.Vertex = "X"
)

// rateDelta is the tolerance used when comparing reciprocals.
const rateDelta = 1e-12

// demoGraph builds the five-edge chain with a triangle used throughout the
// package tests:
//
//	A ─1.4─ B
//	│       │
//	0.1    0.2
//	│       │
//	└── C ──┘ ─0.2─ D ─2.5─ F
func demoGraph() *core.Graph {
	g := core.NewGraph()
	g.AddRate(VertexA, VertexB, 1.4)
	g.AddRate(VertexA, VertexC, 0.1)
	g.AddRate(VertexB, VertexC, 0.2)
	g.AddRate(VertexC, VertexD, 0.2)
	g.AddRate(VertexD, VertexF, 2.5)

	return g
}

// collect drains a vertex sequence into a slice.
func collect(g *core.Graph) []core.Vertex {
	return slices.Collect(g.Vertices())
}

// neighborIDs extracts destination IDs from a neighbor list.
func neighborIDs(ns []core.Neighbor) []core.Vertex {
	out := make([]core.Vertex, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.To)
	}

	return out
}
