// SPDX-License-Identifier: MIT
// Package builder provides validation helpers enforcing parameter contracts
// in Constructor factories.
package builder

import "github.com/cockroachdb/errors"

// validateMin ensures got ≥ min, returning a wrapped ErrTooFewNodes otherwise.
func validateMin(method string, got, min int) error {
	if got < min {
		return errors.Wrapf(ErrTooFewNodes, "%s: parameter must be ≥ %d, got %d", method, min, got)
	}

	return nil
}

// validateMax ensures got ≤ max, returning a wrapped ErrTooLarge otherwise.
func validateMax(method string, got, max int) error {
	if got > max {
		return errors.Wrapf(ErrTooLarge, "%s: parameter must be ≤ %d, got %d", method, max, got)
	}

	return nil
}

// validateProduct ensures a·b ≤ max for a, b ≥ 1 without computing the
// product, so huge factors cannot overflow.
func validateProduct(method string, a, b, max int) error {
	if a > max/b {
		return errors.Wrapf(ErrTooLarge, "%s: %d×%d exceeds %d", method, a, b, max)
	}

	return nil
}

// validatePairs ensures the n·(n-1)/2 unordered pairs of n ≥ 1 nodes fit in
// MaxFixtureEdges.
func validatePairs(method string, n int) error {
	if n > 1 && n-1 > 2*MaxFixtureEdges/n {
		return errors.Wrapf(ErrTooLarge, "%s: %d nodes give more than %d pairs", method, n, MaxFixtureEdges)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [%.1f,%.1f]",
			method, p, MinProbability, MaxProbability)
	}

	return nil
}
