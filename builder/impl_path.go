// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   • 2 ≤ n ≤ MaxFixtureNodes (else ErrTooFewNodes / ErrTooLarge).
//   • Nodes left to right; edges i-(i+1) for i = 0..n-2.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/pathboard/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := validateMax(MethodPath, n, MaxFixtureNodes); err != nil {
			return err
		}
		ids := addNodes(g, cfg, n, lineLayout(cfg))
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, MethodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
