package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/katalvlaran/dex/bestrate"
	"github.com/katalvlaran/dex/core"
	"github.com/katalvlaran/dex/internal/config"
	"github.com/katalvlaran/dex/internal/infra/log"
	"github.com/katalvlaran/dex/internal/metrics"
	"github.com/katalvlaran/dex/route"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("load config")
	}
	logger := log.NewLogger(cfg)
	registry := metrics.Init(logger)

	g, err := config.BuildGraph(cfg, core.WithOnRate(func(e core.Edge) {
		logger.Trace().Stringer("from", e.From).Stringer("to", e.To).Float64("rate", e.Rate).Msg("rate added")
	}))
	if err != nil {
		logger.Fatal().Err(err).Msg("build rate graph")
	}
	metrics.ObserveGraph(g)
	logger.Info().Int("vertices", g.VertexCount()).Int("rates", len(cfg.Rates)).Msg("rate graph ready")

	pairs, err := bestrate.AllPairs(g,
		bestrate.WithContext(ctx),
		bestrate.WithLogger(logger),
		bestrate.WithWorkers(cfg.Search.Workers),
		bestrate.WithMaxExpansions(cfg.Search.MaxExpansions),
	)
	if errors.Is(err, context.Canceled) {
		logger.Info().Msg("search interrupted")
		return
	}
	if err != nil {
		metrics.ObserveError()
		logger.Fatal().Err(err).Msg("all-pairs search")
	}
	metrics.ObserveAllPairs(pairs, g.VertexCount())

	for _, pr := range pairs {
		fmt.Printf("%s -> %s: %8.4f (%s)\n", pr.Src, pr.Dst, pr.Path.Rate(), joinPath(pr.Path))
	}

	if cfg.Metrics.Addr == "" {
		return
	}
	serveMetrics(ctx, cfg, logger, metrics.Handler(registry))
}

// serveMetrics exposes /metrics until ctx is cancelled by a signal.
func serveMetrics(ctx context.Context, cfg config.Config, logger log.Logger, h http.Handler) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	server := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 2 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server error")
		}
	}()
	logger.Info().Str("addr", cfg.Metrics.Addr).Msg("serving metrics")

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	timeout := time.Duration(cfg.Metrics.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("shutdown complete")
}

// joinPath renders the vertices of p as "A -> B -> C".
func joinPath(p *route.Path) string {
	vs := p.Vertices()
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = string(v)
	}
	return strings.Join(parts, " -> ")
}
