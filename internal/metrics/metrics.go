// Package metrics exposes Prometheus collectors for dex searches and the
// rate graph they run on.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/dex/bestrate"
	"github.com/katalvlaran/dex/core"
)

// Search outcomes used as the "outcome" label of SearchesTotal.
const (
	OutcomeFound  = "found"
	OutcomeAbsent = "absent"
	OutcomeError  = "error"
)

var (
	SearchesTotal        = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "dex_searches_total", Help: "Best-rate searches by outcome"}, []string{"outcome"})
	SearchLatencySeconds = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "dex_search_latency_seconds", Help: "Wall time of one best-rate search", Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12)})
	PathsEnqueuedTotal   = prometheus.NewCounter(prometheus.CounterOpts{Name: "dex_paths_enqueued_total", Help: "Partial paths pushed onto search queues"})
	PathsPrunedTotal     = prometheus.NewCounter(prometheus.CounterOpts{Name: "dex_paths_pruned_total", Help: "Dequeued paths dominated by a known better rate"})
	RelaxationsTotal     = prometheus.NewCounter(prometheus.CounterOpts{Name: "dex_relaxations_total", Help: "Best-known rate improvements on already reached vertices"})
	CandidatesTotal      = prometheus.NewCounter(prometheus.CounterOpts{Name: "dex_candidates_total", Help: "Paths that reached their destination"})
	BestRate             = prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: "dex_best_rate", Help: "Best compounded rate per ordered pair"}, []string{"src", "dst"})
	GraphVertices        = prometheus.NewGauge(prometheus.GaugeOpts{Name: "dex_graph_vertices", Help: "Vertices in the rate graph"})
	GraphRateEntries     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "dex_graph_rate_entries", Help: "Directed rate entries in the rate graph (two per quoted pair)"})
)

// Init registers the dex collectors plus the Go and process collectors
// on a fresh registry.
func Init(logger zerolog.Logger) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	toRegister := []prometheus.Collector{
		SearchesTotal, SearchLatencySeconds,
		PathsEnqueuedTotal, PathsPrunedTotal, RelaxationsTotal, CandidatesTotal,
		BestRate, GraphVertices, GraphRateEntries,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range toRegister {
		if err := reg.Register(c); err != nil {
			logger.Warn().Err(err).Msg("metric registration failed")
		}
	}
	logger.Info().Msg("Prometheus metrics initialized")
	return reg
}

// Handler serves the metrics gathered by reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// ObserveSearch records the counters of one finished search.
func ObserveSearch(st bestrate.Stats, found bool) {
	outcome := OutcomeAbsent
	if found {
		outcome = OutcomeFound
	}
	SearchesTotal.WithLabelValues(outcome).Inc()
	SearchLatencySeconds.Observe(st.Elapsed.Seconds())
	PathsEnqueuedTotal.Add(float64(st.Enqueued))
	PathsPrunedTotal.Add(float64(st.Pruned))
	RelaxationsTotal.Add(float64(st.Relaxed))
	CandidatesTotal.Add(float64(st.Candidates))
}

// ObserveError counts a search that returned an error.
func ObserveError() {
	SearchesTotal.WithLabelValues(OutcomeError).Inc()
}

// ObserveAllPairs records an all-pairs run over a graph of n vertices.
// AllPairs only reports reachable pairs; the remaining n·(n-1) − len(pairs)
// searches are counted as absent.
func ObserveAllPairs(pairs []bestrate.PairResult, n int) {
	for _, pr := range pairs {
		ObserveSearch(pr.Stats, true)
		BestRate.WithLabelValues(string(pr.Src), string(pr.Dst)).Set(pr.Path.Rate())
	}
	if absent := n*(n-1) - len(pairs); absent > 0 {
		SearchesTotal.WithLabelValues(OutcomeAbsent).Add(float64(absent))
	}
}

// ObserveGraph publishes the size of g.
func ObserveGraph(g *core.Graph) {
	st := g.Stats()
	GraphVertices.Set(float64(st.VertexCount))
	GraphRateEntries.Set(float64(st.EdgeCount))
}
