// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_classic.go - the nine-node textbook graph.
//
// Contract:
//   • Nine nodes labelled cfg.labelFn(0..8), fixed layout relative to the origin.
//   • Fourteen edges with fixed weights; cfg.weightFn is not consulted.
//   • From local node 0 the shortest distances are
//     0, 4, 12, 19, 21, 11, 9, 8, 14.

package builder

import "github.com/katalvlaran/pathboard/core"

// classicEdges lists (u, v, weight) in emission order.
var classicEdges = [...][3]int{
	{0, 1, 4}, {0, 7, 8}, {1, 7, 11}, {1, 2, 8}, {7, 8, 7}, {7, 6, 1}, {2, 8, 2},
	{8, 6, 6}, {2, 3, 7}, {2, 5, 4}, {6, 5, 2}, {3, 5, 14}, {3, 4, 9}, {5, 4, 10},
}

// classicLayout is the board position of each node in spacing units.
var classicLayout = [...]core.Position{
	{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 1},
	{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 1},
}

// Classic returns a Constructor that builds the nine-node textbook graph.
// Complexity: O(1).
func Classic() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids := addNodes(g, cfg, len(classicLayout), func(i int) core.Position {
			return core.Position{
				X: cfg.origin.X + classicLayout[i].X*cfg.spacing,
				Y: cfg.origin.Y + classicLayout[i].Y*cfg.spacing,
			}
		})
		for _, e := range classicEdges {
			if err := connectWeighted(g, MethodClassic, ids[e[0]], ids[e[1]], int64(e[2])); err != nil {
				return err
			}
		}

		return nil
	}
}
