// Package bestrate provides tunable options, result types and error
// definitions for the best compounded-rate search over a core.Graph.
package bestrate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dex/core"
	"github.com/katalvlaran/dex/route"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bestrate: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bestrate: invalid option supplied")

	// ErrExpansionLimit is returned when a search enqueues more paths than
	// the diagnostic bound set with WithMaxExpansions.
	ErrExpansionLimit = errors.New("bestrate: expansion limit exceeded")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// Logger receives trace events (dequeue, relaxation) and debug events
	// (candidate selection). Defaults to a disabled logger.
	Logger zerolog.Logger

	// MaxExpansions, if > 0, aborts a search with ErrExpansionLimit once
	// more than this many paths have been enqueued. It is a development
	// guard against pathological graphs, not a tuning knob.
	MaxExpansions int

	// Workers bounds the number of concurrent searches run by AllPairs.
	Workers int

	// OnEnqueue is called for every path pushed onto the queue.
	OnEnqueue func(p *route.Path)

	// OnDequeue is called for every path popped from the queue, before
	// the relaxation check.
	OnDequeue func(p *route.Path)

	// OnPrune is called when a dequeued path is dominated by the best
	// rate already recorded for its terminal vertex.
	OnPrune func(p *route.Path, best float64)

	// OnCandidate is called for every path that reaches the destination;
	// accepted reports whether it replaced the current best. Returning an
	// error aborts the search.
	OnCandidate func(p *route.Path, accepted bool) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - disabled logger
//   - no expansion limit
//   - a single worker
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        zerolog.Nop(),
		MaxExpansions: 0,
		Workers:       1,
		OnEnqueue:     func(*route.Path) {},
		OnDequeue:     func(*route.Path) {},
		OnPrune:       func(*route.Path, float64) {},
		OnCandidate:   func(*route.Path, bool) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search tracing to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxExpansions aborts a search after n enqueued paths.
//
//	n > 0: limit to n paths
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithWorkers sets how many searches AllPairs runs concurrently (n ≥ 1).
// Single searches ignore it.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p *route.Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p *route.Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnPrune registers a callback to run when a dominated path is dropped.
func WithOnPrune(fn func(p *route.Path, best float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// WithOnCandidate registers a callback to run for every destination-reaching
// path; returning an error from it stops the search.
func WithOnCandidate(fn func(p *route.Path, accepted bool) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// resolve applies opts over DefaultOptions and returns the first recorded
// option error, if any.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Stats counts the work done by one search.
type Stats struct {
	Enqueued   int           // paths pushed, the seed included
	Dequeued   int           // paths popped
	Pruned     int           // dequeued paths dominated at their terminal vertex
	Relaxed    int           // best-known rate improvements on already seen vertices
	Candidates int           // paths that reached the destination
	Elapsed    time.Duration // wall time of the search
}

// Result holds the outcome of one search. Best is nil when no simple path
// connects source and destination.
type Result struct {
	Best  *route.Path
	Stats Stats
}

// Found reports whether a route was found.
func (r *Result) Found() bool { return r.Best != nil }

// Rate returns the best compounded rate, if a route was found.
func (r *Result) Rate() (float64, bool) {
	if r.Best == nil {
		return 0, false
	}

	return r.Best.Rate(), true
}

// PairResult is one reachable (Src, Dst) entry of an all-pairs run.
type PairResult struct {
	Src   core.Vertex
	Dst   core.Vertex
	Path  *route.Path
	Stats Stats
}
