// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   • 3 ≤ n ≤ MaxFixtureNodes (else ErrTooFewNodes / ErrTooLarge).
//   • Nodes on a ring; edges i-(i+1)%n in ascending i.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/pathboard/core"

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if err := validateMax(MethodCycle, n, MaxFixtureNodes); err != nil {
			return err
		}
		ids := addNodes(g, cfg, n, ringLayout(cfg, n, ringRadius(cfg, n)))
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
