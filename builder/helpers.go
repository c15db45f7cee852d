// SPDX-License-Identifier: MIT
// Package builder provides internal helpers shared by Constructor
// implementations: node emission, edge emission and board layouts.
package builder

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pathboard/core"
)

// layoutFn maps a local index to a board position.
type layoutFn func(idx int) core.Position

// addNodes inserts n nodes labelled cfg.labelFn(0..n-1) at layout(i) and
// returns their identities in local index order.
// Complexity: O(n).
func addNodes(g *core.Graph, cfg builderConfig, n int, layout layoutFn) []core.NodeID {
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		node := g.AddNode(cfg.labelFn(i), layout(i))
		node.Color = cfg.colorFn(cfg.rng)
		ids[i] = node.ID()
	}

	return ids
}

// connect adds an edge a-b weighted by cfg.weightFn.
func connect(g *core.Graph, cfg builderConfig, method string, a, b core.NodeID) error {
	return connectWeighted(g, method, a, b, cfg.weightFn(cfg.rng))
}

// connectWeighted adds an edge a-b with an explicit weight.
func connectWeighted(g *core.Graph, method string, a, b core.NodeID, w int64) error {
	if _, err := g.AddEdge(a, b, w); err != nil {
		return errors.Mark(errors.Wrapf(err, "%s: AddEdge(%d, %d, w=%d)", method, a, b, w), ErrConstructFailed)
	}

	return nil
}

// addCompleteEdges connects every unordered pair of ids, (i, j) with i < j in
// index order.
// Complexity: O(m²) for m = len(ids).
func addCompleteEdges(g *core.Graph, cfg builderConfig, method string, ids []core.NodeID) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := connect(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// lineLayout places nodes left to right from the origin.
func lineLayout(cfg builderConfig) layoutFn {
	return func(i int) core.Position {
		return core.Position{X: cfg.origin.X + i*cfg.spacing, Y: cfg.origin.Y}
	}
}

// ringRadius returns a radius giving roughly cfg.spacing between n ring nodes.
func ringRadius(cfg builderConfig, n int) int {
	r := int(math.Round(float64(cfg.spacing*n) / (2 * math.Pi)))
	if r < cfg.spacing {
		r = cfg.spacing
	}

	return r
}

// ringLayout places n nodes clockwise on a circle whose bounding box starts at
// the origin, starting at 12 o'clock.
func ringLayout(cfg builderConfig, n, radius int) layoutFn {
	cx, cy := cfg.origin.X+radius, cfg.origin.Y+radius

	return func(i int) core.Position {
		theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		return core.Position{
			X: cx + int(math.Round(float64(radius)*math.Cos(theta))),
			Y: cy + int(math.Round(float64(radius)*math.Sin(theta))),
		}
	}
}

// gridLayout places index r*cols+c at row r, column c.
func gridLayout(cfg builderConfig, cols int) layoutFn {
	return func(i int) core.Position {
		return core.Position{X: cfg.origin.X + (i%cols)*cfg.spacing, Y: cfg.origin.Y + (i/cols)*cfg.spacing}
	}
}
