package bestrate_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dex/bestrate"
	"github.com/katalvlaran/dex/core"
	"github.com/katalvlaran/dex/route"
)

// TestBestRate_InverseConsistency checks that a single stored rate r is
// reachable backwards at 1/r.
func TestBestRate_InverseConsistency(t *testing.T) {
	for _, r := range []float64{1.4, 0.1, 2.5, 1e-6, 3e5} {
		t.Run(fmt.Sprint(r), func(t *testing.T) {
			g := graphOf(rateEdge{A, B, r})

			fwd, ok, err := bestrate.BestRate(g, A, B)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, r, fwd)

			inv, ok, err := bestrate.BestRate(g, B, A)
			require.NoError(t, err)
			require.True(t, ok)
			assert.InDelta(t, 1/r, inv, rateDelta)
		})
	}
}

func TestBestRate_IndirectRouteBeatsDirectEdge(t *testing.T) {
	g := triangle()

	rate, ok, err := bestrate.BestRate(g, A, C)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.28, rate, rateDelta)

	p, err := bestrate.BestPath(g, A, C)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{A, B, C}, vertexIDs(p))
}

func TestBestRate_DirectEdgeWins(t *testing.T) {
	g := graphOf(
		rateEdge{A, B, 1.4},
		rateEdge{A, C, 0.29},
		rateEdge{B, C, 0.2},
	)

	p, err := bestrate.BestPath(g, A, C)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.InDelta(t, 0.29, p.Rate(), rateDelta)
	assert.Equal(t, []core.Vertex{A, C}, vertexIDs(p))
}

// TestSearch_MultiHopPropagation needs C to be re-expanded after its best
// rate rises from 0.1 (direct) to 0.28 (via B); only then does 0.056 reach D.
func TestSearch_MultiHopPropagation(t *testing.T) {
	g := graphOf(
		rateEdge{A, B, 1.4},
		rateEdge{A, C, 0.1},
		rateEdge{A, D, 0.055},
		rateEdge{B, C, 0.2},
		rateEdge{C, D, 0.2},
		rateEdge{D, F, 2.5},
	)

	res, err := bestrate.Search(g, A, D)
	require.NoError(t, err)
	require.True(t, res.Found())

	rate, _ := res.Rate()
	assert.InDelta(t, 0.056, rate, rateDelta)
	assert.Equal(t, []core.Vertex{A, B, C, D}, vertexIDs(res.Best))

	assert.Equal(t, 8, res.Stats.Enqueued)
	assert.Equal(t, 8, res.Stats.Dequeued)
	assert.Equal(t, 2, res.Stats.Pruned)
	assert.Equal(t, 2, res.Stats.Relaxed)
	assert.Equal(t, 2, res.Stats.Candidates)
}

func TestBestRate_DemoGraph(t *testing.T) {
	g := demo()
	cases := []struct {
		src, dst core.Vertex
		want     float64
		path     []core.Vertex
	}{
		{D, F, 2.5, []core.Vertex{D, F}},
		{A, F, 0.14, []core.Vertex{A, B, C, D, F}},
		{C, B, 14, []core.Vertex{C, A, B}},
		{F, B, 28, []core.Vertex{F, D, C, A, B}},
		{B, A, 2, []core.Vertex{B, C, A}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s->%s", tc.src, tc.dst), func(t *testing.T) {
			p, err := bestrate.BestPath(g, tc.src, tc.dst)
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.InDelta(t, tc.want, p.Rate(), rateDelta)
			assert.Equal(t, tc.path, vertexIDs(p))
		})
	}
}

func TestBestRate_Absent(t *testing.T) {
	g := graphOf(rateEdge{A, B, 2}, rateEdge{X, Y, 3})
	require.NoError(t, g.AddVertex("Z"))

	cases := []struct {
		name     string
		src, dst core.Vertex
	}{
		{"disconnected", A, X},
		{"disconnected reverse", Y, B},
		{"self pair", A, A},
		{"isolated destination", A, "Z"},
		{"isolated source", "Z", A},
		{"unknown destination", A, "nowhere"},
		{"unknown source", "nowhere", A},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rate, ok, err := bestrate.BestRate(g, tc.src, tc.dst)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Zero(t, rate)

			p, err := bestrate.BestPath(g, tc.src, tc.dst)
			require.NoError(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestBestRate_ReinsertionOverwrites(t *testing.T) {
	g := graphOf(rateEdge{A, B, 2})
	g.AddRate(A, B, 3)

	fwd, ok, err := bestrate.BestRate(g, A, B)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3.0, fwd)

	inv, ok, err := bestrate.BestRate(g, B, A)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1.0/3, inv, rateDelta)
}

func TestSearch_TerminatesOnCycles(t *testing.T) {
	// A→B→C compounds to 6, the direct A→C (inverse of C→A) is 2.
	g := graphOf(
		rateEdge{A, B, 2},
		rateEdge{B, C, 3},
		rateEdge{C, A, 0.5},
	)

	res, err := bestrate.Search(g, A, C)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.InDelta(t, 6.0, res.Best.Rate(), rateDelta)
	assert.Equal(t, []core.Vertex{A, B, C}, vertexIDs(res.Best))
}

func TestSearch_TerminatesOnDenseGraph(t *testing.T) {
	// K7 with rates above and below 1 in both directions: every pair is a cycle.
	g := core.NewGraph()
	const n = 7
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddRate(core.Vertex(fmt.Sprint(i)), core.Vertex(fmt.Sprint(j)), float64(i+2)/float64(j+1))
		}
	}

	res, err := bestrate.Search(g, "0", "6")
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, res.Stats.Enqueued, res.Stats.Dequeued, "queue must drain completely")

	// The returned path is simple and its rate is the product of its hops.
	vs := res.Best.Vertices()
	seen := make(map[core.Vertex]bool, len(vs))
	product := 1.0
	for i, v := range vs {
		require.False(t, seen[v], "vertex %s repeated", v)
		seen[v] = true
		if i > 0 {
			r, ok := g.Rate(vs[i-1], v)
			require.True(t, ok)
			product *= r
		}
	}
	assert.InDelta(t, product, res.Best.Rate(), rateDelta)
}

func TestSearch_TieKeepsFirstPath(t *testing.T) {
	g := graphOf(
		rateEdge{A, B, 2},
		rateEdge{B, D, 1},
		rateEdge{A, C, 2},
		rateEdge{C, D, 1},
	)

	res, err := bestrate.Search(g, A, D)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{A, B, D}, vertexIDs(res.Best))
	assert.Equal(t, 1, res.Stats.Candidates)
	assert.Equal(t, 1, res.Stats.Pruned, "the equal-rate path through C is dominated")
}

func TestSearch_HooksMatchStats(t *testing.T) {
	var enq, deq, pruned int
	var accepted []bool
	var prunedBest []float64

	res, err := bestrate.Search(demo(), A, D,
		bestrate.WithOnEnqueue(func(*route.Path) { enq++ }),
		bestrate.WithOnDequeue(func(*route.Path) { deq++ }),
		bestrate.WithOnPrune(func(p *route.Path, best float64) {
			pruned++
			prunedBest = append(prunedBest, best)
			assert.GreaterOrEqual(t, best, p.Rate())
		}),
		bestrate.WithOnCandidate(func(p *route.Path, ok bool) error {
			assert.Equal(t, D, p.Terminal())
			accepted = append(accepted, ok)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Stats.Enqueued, enq)
	assert.Equal(t, res.Stats.Dequeued, deq)
	assert.Equal(t, res.Stats.Pruned, pruned)
	assert.Len(t, prunedBest, pruned)
	assert.Len(t, accepted, res.Stats.Candidates)
	// A→C→D (0.02) is found first, then replaced by A→B→C→D (0.056).
	assert.Equal(t, []bool{true, true}, accepted)
}

func TestSearch_OnCandidateErrorAborts(t *testing.T) {
	stop := errors.New("stop")

	res, err := bestrate.Search(triangle(), A, C,
		bestrate.WithOnCandidate(func(*route.Path, bool) error { return stop }))
	require.ErrorIs(t, err, stop)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "OnCandidate")
}

func TestSearch_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bestrate.Search(demo(), A, F, bestrate.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, _, err = bestrate.BestRate(demo(), A, F, bestrate.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSearch_ExpansionLimit(t *testing.T) {
	_, err := bestrate.Search(demo(), A, F, bestrate.WithMaxExpansions(3))
	require.ErrorIs(t, err, bestrate.ErrExpansionLimit)

	// A generous bound does not change the answer.
	rate, ok, err := bestrate.BestRate(demo(), A, F, bestrate.WithMaxExpansions(100))
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.14, rate, rateDelta)
}

func TestSearch_InvalidInput(t *testing.T) {
	_, err := bestrate.Search(nil, A, B)
	require.ErrorIs(t, err, bestrate.ErrGraphNil)
	_, _, err = bestrate.BestRate(nil, A, B)
	require.ErrorIs(t, err, bestrate.ErrGraphNil)
	_, err = bestrate.BestPath(nil, A, B)
	require.ErrorIs(t, err, bestrate.ErrGraphNil)

	_, err = bestrate.Search(demo(), A, B, bestrate.WithMaxExpansions(-1))
	require.ErrorIs(t, err, bestrate.ErrOptionViolation)
	_, err = bestrate.Search(demo(), A, B, bestrate.WithWorkers(0))
	require.ErrorIs(t, err, bestrate.ErrOptionViolation)
}

func TestSearch_SelfPairIsEmptyResult(t *testing.T) {
	res, err := bestrate.Search(demo(), A, A)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Found())
	assert.Zero(t, res.Stats.Enqueued)

	_, ok := res.Rate()
	assert.False(t, ok)
}

func TestSearch_LoggerTracesSearch(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	_, err := bestrate.Search(triangle(), A, C, bestrate.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"dequeue"`)
	assert.Contains(t, out, `"message":"new rate is better than current rate"`)
	assert.Contains(t, out, `"message":"use the new path"`)
	assert.Contains(t, out, `"src":"A"`)
	assert.Contains(t, out, `"dst":"C"`)

	// Debug level drops the per-dequeue trace events.
	buf.Reset()
	_, err = bestrate.Search(triangle(), A, C, bestrate.WithLogger(logger.Level(zerolog.DebugLevel)))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), `"message":"dequeue"`)
	assert.Contains(t, buf.String(), `"message":"use the new path"`)
}

// TestSearch_ConcurrentReaders runs searches while unrelated rates are
// being written; each search sees a consistent graph and the same answer.
func TestSearch_ConcurrentReaders(t *testing.T) {
	g := demo()
	const readers, rounds = 8, 50

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			g.AddRate(core.Vertex(fmt.Sprintf("P%d", i)), core.Vertex(fmt.Sprintf("Q%d", i)), float64(i+1))
		}
	}()

	errs := make(chan error, readers)
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				rate, ok, err := bestrate.BestRate(g, A, D)
				if err != nil {
					errs <- err
					return
				}
				if !ok || rate < 0.0559 || rate > 0.0561 {
					errs <- fmt.Errorf("round %d: got %v, %v", i, rate, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
