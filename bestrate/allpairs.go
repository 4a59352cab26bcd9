package bestrate

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dex/core"
)

// pair is one ordered (src, dst) query of an all-pairs run.
type pair struct {
	src, dst core.Vertex
}

// AllPairs runs Search for every ordered pair of distinct vertices of g and
// returns the reachable ones, ordered by (Src, Dst) in vertex order.
//
// Up to Options.Workers searches run at once (WithWorkers); they share the
// read-only graph but nothing else. Hooks may therefore be called
// concurrently when Workers > 1. The first failing search cancels the rest
// and its error is returned.
//
// Complexity: V·(V-1) searches.
func AllPairs(g *core.Graph, opts ...Option) ([]PairResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// Both loops restart the same lazy sequence.
	var pairs []pair
	for src := range g.Vertices() {
		for dst := range g.Vertices() {
			if src != dst {
				pairs = append(pairs, pair{src: src, dst: dst})
			}
		}
	}

	results := make([]*Result, len(pairs))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, pr := range pairs {
		eg.Go(func() error {
			po := o
			po.Ctx = ctx
			res, err := search(g, pr.src, pr.dst, po)
			if err != nil {
				return fmt.Errorf("bestrate: %s -> %s: %w", pr.src, pr.dst, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]PairResult, 0, len(pairs))
	for i, res := range results {
		if !res.Found() {
			continue
		}
		out = append(out, PairResult{
			Src:   pairs[i].src,
			Dst:   pairs[i].dst,
			Path:  res.Best,
			Stats: res.Stats,
		})
	}

	return out, nil
}
