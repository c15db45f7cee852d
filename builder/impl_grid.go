// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   • rows·cols ≤ MaxFixtureNodes (else ErrTooLarge).
//   • Nodes in row-major order, labelled "r,c", placed on a lattice.
//   • For each cell (r,c): edge to the right neighbour, then to the bottom one.
//
// Complexity: O(rows·cols).

package builder

import (
	"strconv"

	"github.com/katalvlaran/pathboard/core"
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}
		if err := validateProduct(MethodGrid, rows, cols, MaxFixtureNodes); err != nil {
			return err
		}

		lc := cfg
		lc.labelFn = func(i int) string { return strconv.Itoa(i/cols) + "," + strconv.Itoa(i%cols) }
		ids := addNodes(g, lc, rows*cols, gridLayout(cfg, cols))

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := connect(g, cfg, MethodGrid, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, MethodGrid, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
