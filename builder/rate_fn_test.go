// Package builder_test contains unit tests for the RateFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dex/builder"
)

// TestRateFnConstructors verifies that RateFn constructors panic on
// parameters that could only produce unusable rates.
func TestRateFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.RateFn
	}{
		{"ConstantRateFn_zero", func() builder.RateFn { return builder.ConstantRateFn(0) }},
		{"ConstantRateFn_NaN", func() builder.RateFn { return builder.ConstantRateFn(math.NaN()) }},
		{"ConstantRateFn_Inf", func() builder.RateFn { return builder.ConstantRateFn(math.Inf(-1)) }},
		{"UniformRateFn_minZero", func() builder.RateFn { return builder.UniformRateFn(0, 5) }},
		{"UniformRateFn_minNegative", func() builder.RateFn { return builder.UniformRateFn(-1, 5) }},
		{"UniformRateFn_maxLessThanMin", func() builder.RateFn { return builder.UniformRateFn(5, 4) }},
		{"UniformRateFn_maxInf", func() builder.RateFn { return builder.UniformRateFn(1, math.Inf(1)) }},
		{"LogNormalRateFn_sigmaNegative", func() builder.RateFn { return builder.LogNormalRateFn(-0.1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestRateFnBehavior covers the runtime behavior of each RateFn.
func TestRateFnBehavior(t *testing.T) {
	t.Parallel()

	const seed = 42
	rng := rand.New(rand.NewSource(seed))

	assert.Equal(t, builder.DefaultRate, builder.DefaultRateFn(nil))
	assert.Equal(t, builder.DefaultRate, builder.DefaultRateFn(rng))

	// Negative rates are legal quotes.
	neg := builder.ConstantRateFn(-2)
	assert.Equal(t, -2.0, neg(nil))
	assert.Equal(t, -2.0, neg(rng))

	uni := builder.UniformRateFn(3, 3)
	assert.Equal(t, builder.DefaultRate, uni(nil), "nil RNG falls back to DefaultRate")
	assert.Equal(t, 3.0, uni(rng), "degenerate interval is constant")

	uni = builder.UniformRateFn(0.5, 2)
	for i := 0; i < 50; i++ {
		r := uni(rng)
		assert.GreaterOrEqual(t, r, 0.5)
		assert.Less(t, r, 2.0)
	}

	logn := builder.LogNormalRateFn(0.3)
	assert.Equal(t, builder.DefaultRate, logn(nil))
	for i := 0; i < 50; i++ {
		assert.Greater(t, logn(rng), 0.0)
	}
	assert.Equal(t, 1.0, builder.LogNormalRateFn(0)(rng), "σ=0 always yields exp(0)")
}
