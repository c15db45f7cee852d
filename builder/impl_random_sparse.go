// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model:
//   - Erdős–Rényi-like: each unordered pair {i,j}, i<j, is included
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); n·(n-1)/2 ≤ MaxFixtureEdges (else ErrTooLarge).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Nodes on a ring, labelled by cfg.labelFn.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order: i asc, then j asc; fixed seed ⇒ identical graph.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pathboard/core"
)

// RandomSparse returns a Constructor that samples a random graph over n nodes
// with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomNodes); err != nil {
			return err
		}
		if err := validatePairs(MethodRandomSparse, n); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return errors.Wrapf(ErrNeedRandSource, "%s", MethodRandomSparse)
		}

		ids := addNodes(g, cfg, n, ringLayout(cfg, n, ringRadius(cfg, n)))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < MaxProbability && (cfg.rng == nil || cfg.rng.Float64() >= p) {
					continue
				}
				if err := connect(g, cfg, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
