// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_complete.go - implementation of Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   • Complete: n ≥ 1; nodes on a ring; edges (i, j), i < j, lexicographic.
//   • CompleteBipartite: n1, n2 ≥ 1; left column labelled leftPrefix+i, right
//     column rightPrefix+j; edges (Li, Rj) in row-major order.
//
// Both fail with ErrTooLarge when the edge count exceeds MaxFixtureEdges or
// the node count exceeds MaxFixtureNodes.
//
// Complexity: O(n²) and O(n1·n2) edges respectively.

package builder

import "github.com/katalvlaran/pathboard/core"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := validatePairs(MethodComplete, n); err != nil {
			return err
		}
		ids := addNodes(g, cfg, n, ringLayout(cfg, n, ringRadius(cfg, n)))

		return addCompleteEdges(g, cfg, MethodComplete, ids)
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, n2, MinPartition); err != nil {
			return err
		}
		if err := validateProduct(MethodCompleteBipartite, n1, n2, MaxFixtureEdges); err != nil {
			return err
		}
		if err := validateMax(MethodCompleteBipartite, n1+n2, MaxFixtureNodes); err != nil {
			return err
		}

		column := func(prefix string, x int) builderConfig {
			c := cfg
			c.labelFn = PrefixLabelFn(prefix)
			c.origin = core.Position{X: cfg.origin.X + x, Y: cfg.origin.Y}
			return c
		}
		left := column(cfg.leftPrefix, 0)
		right := column(cfg.rightPrefix, 3*cfg.spacing)
		vertical := func(c builderConfig) layoutFn {
			return func(i int) core.Position {
				return core.Position{X: c.origin.X, Y: c.origin.Y + i*c.spacing}
			}
		}
		ls := addNodes(g, left, n1, vertical(left))
		rs := addNodes(g, right, n2, vertical(right))
		for _, l := range ls {
			for _, r := range rs {
				if err := connect(g, cfg, MethodCompleteBipartite, l, r); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
