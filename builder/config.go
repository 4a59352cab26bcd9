// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • rateFn      = DefaultRateFn      (every quote is 1.0)
//   • left/right  = "L" / "R"

package builder

import (
	"math/rand"

	"github.com/katalvlaran/dex/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Rate generator for each emitted pair.
	rateFn RateFn

	// Bipartite ID prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		rng:         nil,
		rateFn:      DefaultRateFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Empty prefixes fall back to the defaults.
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// vertex returns the vertex for index i under the configured ID scheme.
func (c builderConfig) vertex(i int) core.Vertex {
	return core.Vertex(c.idFn(i))
}

// nextRate draws the rate for the next emitted pair.
func (c builderConfig) nextRate() float64 {
	return c.rateFn(c.rng)
}
