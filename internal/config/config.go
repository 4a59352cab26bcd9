// Package config loads dex settings: built-in defaults, then an optional
// YAML file named by DEX_CONFIG, then DEX_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dex/core"
)

// ErrInvalidConfig is wrapped by every validation failure of Load and BuildGraph.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the effective dex configuration.
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Metrics struct {
		// Addr enables the /metrics endpoint when non-empty, e.g. ":9090".
		Addr                   string `yaml:"addr"`
		ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
	} `yaml:"metrics"`
	Search struct {
		Workers       int `yaml:"workers"`
		MaxExpansions int `yaml:"max_expansions"`
	} `yaml:"search"`
	Rates []Rate `yaml:"rates"`
}

// Rate is one quoted pair; its inverse is implied.
type Rate struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Rate float64 `yaml:"rate"`
}

func defaultConfig() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Metrics.Addr = ""
	c.Metrics.ShutdownTimeoutSeconds = 5
	c.Search.Workers = 1
	c.Search.MaxExpansions = 0
	c.Rates = []Rate{
		{From: "A", To: "B", Rate: 1.4},
		{From: "A", To: "C", Rate: 0.1},
		{From: "B", To: "C", Rate: 0.2},
		{From: "C", To: "D", Rate: 0.2},
		{From: "D", To: "F", Rate: 2.5},
	}
	return c
}

// Load returns the effective configuration. A YAML file replaces only the
// keys it sets; a rates list in the file or in DEX_RATES replaces the
// default rate set entirely.
func Load() (Config, error) {
	c := defaultConfig()
	if path := os.Getenv("DEX_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if v := os.Getenv("DEX_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DEX_LOG_PRETTY"); v == "1" || v == "true" {
		c.Logging.Pretty = true
	}
	if v := os.Getenv("DEX_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv("DEX_SEARCH_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: DEX_SEARCH_WORKERS=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Search.Workers = n
	}
	if v := os.Getenv("DEX_SEARCH_MAX_EXPANSIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: DEX_SEARCH_MAX_EXPANSIONS=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Search.MaxExpansions = n
	}
	if v := os.Getenv("DEX_RATES"); v != "" {
		rates, err := ParseRates(v)
		if err != nil {
			return Config{}, err
		}
		c.Rates = rates
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the scalar settings. Rates are checked by BuildGraph,
// which knows the graph's own rules.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("%w: search.workers must be at least 1, got %d", ErrInvalidConfig, c.Search.Workers)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions cannot be negative, got %d", ErrInvalidConfig, c.Search.MaxExpansions)
	}
	if c.Metrics.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("%w: metrics.shutdown_timeout_seconds cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// ParseRates parses a comma-separated list of FROM:TO:RATE triples,
// e.g. "USD:EUR:0.92,EUR:GBP:0.86". Blank items are skipped.
func ParseRates(s string) ([]Rate, error) {
	var out []Rate
	for i, item := range splitCSV(s) {
		parts := strings.Split(item, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: rate #%d %q: want FROM:TO:RATE", ErrInvalidConfig, i, item)
		}
		r, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: rate #%d %q: %v", ErrInvalidConfig, i, item, err)
		}
		out = append(out, Rate{
			From: strings.TrimSpace(parts[0]),
			To:   strings.TrimSpace(parts[1]),
			Rate: r,
		})
	}
	return out, nil
}

// BuildGraph creates a rate graph from c.Rates, in order, so a later entry
// for the same pair overrides an earlier one. Each entry is checked with
// core.ValidateRate first; the first bad entry is reported by index.
func BuildGraph(c Config, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for i, r := range c.Rates {
		src, dst := core.Vertex(r.From), core.Vertex(r.To)
		if err := core.ValidateRate(src, dst, r.Rate); err != nil {
			return nil, fmt.Errorf("%w: rates[%d]: %w", ErrInvalidConfig, i, err)
		}
		g.AddRate(src, dst, r.Rate)
	}
	return g, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
