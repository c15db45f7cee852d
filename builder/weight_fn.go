// SPDX-License-Identifier: MIT
// Package builder provides edge-weight distributions for graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces a non-negative edge weight given an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi] inclusive.
// Panics unless 0 ≤ lo ≤ hi. Without an RNG it yields lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// NormalWeightFn returns a WeightFn sampling N(mean, stddev), rounded and
// clipped to [0, MaxInt64]. Panics if stddev < 0. Without an RNG it yields
// DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		sample := math.Round(rng.NormFloat64()*stddev + mean)
		switch {
		case sample < 0:
			return 0
		case sample >= math.MaxInt64:
			return math.MaxInt64
		default:
			return int64(sample)
		}
	}
}

// ExponentialWeightFn returns a WeightFn sampling Exp(rate), rounded.
// Panics if rate ≤ 0. Without an RNG it yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return int64(math.Round(rng.ExpFloat64() / rate))
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[lo,hi].
func WithUniformWeight(lo, hi int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithNormalWeight sets weights ∼ N(mean,stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets weights ∼ Exp(rate).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
