// Package bestrate finds the best compounded rate between two vertices of
// a core.Graph, together with the simple path that realizes it.
//
// The search is a FIFO exploration of simple paths pruned by relaxation:
// a path is expanded only if it reaches its terminal vertex with a rate
// strictly better than any path seen there before.
package bestrate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dex/core"
	"github.com/katalvlaran/dex/route"
)

// walker encapsulates mutable search state. It is created per call and
// never shared, so concurrent searches over one graph are independent.
type walker struct {
	graph *core.Graph
	dst   core.Vertex
	opts  Options
	ctx   context.Context
	log   zerolog.Logger
	queue []*route.Path
	best  map[core.Vertex]float64 // best rate known per terminal vertex
	limit int                     // vertex count when the search started
	res   *Result
}

// Search runs the best-rate search from src to dst on g.
//
// The returned Result has a nil Best when dst is unreachable, when either
// vertex is unknown, or when src == dst (a vertex is not its own route).
// Errors are limited to ErrGraphNil, ErrOptionViolation, ErrExpansionLimit,
// context cancellation and errors returned by the OnCandidate hook.
func Search(g *core.Graph, src, dst core.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return search(g, src, dst, o)
}

// BestPath returns the path with the best compounded rate from src to dst,
// or nil when there is none.
func BestPath(g *core.Graph, src, dst core.Vertex, opts ...Option) (*route.Path, error) {
	res, err := Search(g, src, dst, opts...)
	if err != nil {
		return nil, err
	}

	return res.Best, nil
}

// BestRate returns the best compounded rate from src to dst; ok is false
// when there is no route.
func BestRate(g *core.Graph, src, dst core.Vertex, opts ...Option) (rate float64, ok bool, err error) {
	res, err := Search(g, src, dst, opts...)
	if err != nil {
		return 0, false, err
	}
	rate, ok = res.Rate()

	return rate, ok, nil
}

// search runs one search with already resolved options.
func search(g *core.Graph, src, dst core.Vertex, o Options) (*Result, error) {
	start := time.Now()
	res := &Result{}
	// A vertex is not its own route; unknown endpoints have none.
	if src == dst || !g.HasVertex(src) || !g.HasVertex(dst) {
		return res, nil
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		dst:   dst,
		opts:  o,
		ctx:   o.Ctx,
		log:   o.Logger.With().Str("src", string(src)).Str("dst", string(dst)).Logger(),
		queue: make([]*route.Path, 0, n),
		best:  make(map[core.Vertex]float64, n),
		limit: n,
		res:   res,
	}

	// Seed queue with the single-vertex path at rate 1.0
	w.enqueue(route.New(src))
	err := w.loop()
	res.Stats.Elapsed = time.Since(start)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// loop drains the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		p := w.dequeue()
		if !w.relax(p) {
			continue
		}
		// The destination is path-terminal: evaluate, never expand.
		if p.Terminal() == w.dst {
			if err := w.consider(p); err != nil {
				return err
			}
			continue
		}
		if err := w.expand(p); err != nil {
			return err
		}
	}

	return nil
}

// enqueue appends p to the queue and calls OnEnqueue.
// A simple path never holds more vertices than the graph; one that does
// means the no-revisit rule was broken, and enqueue panics.
func (w *walker) enqueue(p *route.Path) {
	if n := p.Len(); n > w.limit && n > w.graph.VertexCount() {
		panic(fmt.Sprintf("bestrate: path %v longer than vertex count", p))
	}
	w.res.Stats.Enqueued++
	w.opts.OnEnqueue(p)
	w.queue = append(w.queue, p)
}

// dequeue pops the first path, invokes OnDequeue, and returns it.
func (w *walker) dequeue() *route.Path {
	p := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	w.res.Stats.Dequeued++
	w.log.Trace().Stringer("path", p).Msg("dequeue")
	w.opts.OnDequeue(p)

	return p
}

// relax applies the best-known check to the terminal vertex of p and
// reports whether p should be processed further:
//   - first arrival: record the rate, keep going;
//   - recorded rate >= p's rate: p is dominated, drop it;
//   - recorded rate < p's rate: raise the record, keep going.
func (w *walker) relax(p *route.Path) bool {
	v, rate := p.Terminal(), p.Rate()
	current, seen := w.best[v]
	switch {
	case !seen:
		w.best[v] = rate
	case current >= rate:
		w.res.Stats.Pruned++
		w.opts.OnPrune(p, current)
		return false
	default:
		w.log.Trace().Float64("current_rate", current).Stringer("path", p).
			Msg("new rate is better than current rate")
		w.res.Stats.Relaxed++
		w.best[v] = rate
	}

	return true
}

// consider keeps p as the best candidate if its rate is strictly greater
// than the current one; on ties the earlier candidate stays.
func (w *walker) consider(p *route.Path) error {
	w.res.Stats.Candidates++
	accepted := p.Better(w.res.Best)
	if accepted {
		if w.res.Best != nil {
			w.log.Debug().Stringer("path", p).Stringer("current_path", w.res.Best).Msg("use the new path")
		}
		w.res.Best = p
	} else {
		w.log.Debug().Stringer("path", p).Stringer("current_path", w.res.Best).Msg("use the current path")
	}
	if err := w.opts.OnCandidate(p, accepted); err != nil {
		return fmt.Errorf("bestrate: OnCandidate error at %q: %w", p.Terminal(), err)
	}

	return nil
}

// expand enqueues p extended by every neighbor of its terminal vertex that
// is not already on p. Returns ErrExpansionLimit once the bound is crossed.
func (w *walker) expand(p *route.Path) error {
	for _, nbr := range w.graph.Neighbors(p.Terminal()) {
		next, ok := p.Extend(nbr.To, nbr.Rate)
		if !ok {
			continue // no revisits within a path
		}
		w.enqueue(next)
		if w.opts.MaxExpansions > 0 && w.res.Stats.Enqueued > w.opts.MaxExpansions {
			return fmt.Errorf("%w: %d paths enqueued (limit %d)",
				ErrExpansionLimit, w.res.Stats.Enqueued, w.opts.MaxExpansions)
		}
	}

	return nil
}
