// Package builder provides internal helper functions and types
// for configuring rate distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultRate is the rate assigned to every pair when no custom RateFn is provided.
const DefaultRate float64 = 1

// RateFn produces a conversion rate given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type RateFn func(rng *rand.Rand) float64

// DefaultRateFn always returns DefaultRate.
// Complexity: O(1). Never panics.
func DefaultRateFn(_ *rand.Rand) float64 {
	return DefaultRate
}

// ConstantRateFn returns a RateFn that always yields r.
// Panics if r is zero, NaN or infinite.
func ConstantRateFn(r float64) RateFn {
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic(fmt.Sprintf("ConstantRateFn: rate must be finite and non-zero, got %g", r))
	}

	return func(_ *rand.Rand) float64 {
		return r
	}
}

// UniformRateFn returns a RateFn sampling uniformly in [min, max).
// Panics unless 0 < min ≤ max < +Inf.
// If rng is nil, yields DefaultRate to keep a deterministic fallback.
func UniformRateFn(min, max float64) RateFn {
	if !(min > 0) || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformRateFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultRate
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// LogNormalRateFn returns a RateFn yielding exp(N(0, sigma)): rates spread
// symmetrically around 1 on a log scale, the way quotes of similar assets
// look. Panics if sigma < 0. If rng is nil, yields DefaultRate.
func LogNormalRateFn(sigma float64) RateFn {
	if sigma < 0 || math.IsNaN(sigma) {
		panic(fmt.Sprintf("LogNormalRateFn: sigma must be ≥ 0, got %g", sigma))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultRate
		}

		return math.Exp(rng.NormFloat64() * sigma)
	}
}
