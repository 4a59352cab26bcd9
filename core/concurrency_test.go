// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dex/core"
)

// TestConcurrentAddRate ensures concurrent AddRate calls keep the
// reciprocal invariant and lose no entries.
func TestConcurrentAddRate(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddRate("X", core.Vertex(fmt.Sprintf("V%d", id)), float64(id+1))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Neighbors("X"), num)
	require.Equal(t, 2*num, g.EdgeCount())
	for _, e := range g.Edges() {
		inv, ok := g.Rate(e.To, e.From)
		require.True(t, ok)
		require.InDelta(t, 1/e.Rate, inv, rateDelta)
	}
}

// TestConcurrentReadersAndWriter mixes readers (Neighbors, Vertices, Clone)
// with a writer to surface races under -race.
func TestConcurrentReadersAndWriter(t *testing.T) {
	g := demoGraph()
	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			g.AddRate(VertexA, core.Vertex(fmt.Sprintf("W%d", i)), 1.5)
		}
	}()
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_ = g.Neighbors(VertexA)
			for range g.Vertices() {
			}
			_ = g.Clone()
			_ = g.Stats()
		}()
	}
	wg.Wait()

	require.Len(t, g.Neighbors(VertexA), 102)
}
