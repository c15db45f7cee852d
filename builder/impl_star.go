// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// impl_star.go - implementation of Star(n) and Wheel(n).
//
// Contract:
//   • Star: n ≥ 2; one CenterLabel hub plus n-1 leaves labelled cfg.labelFn(0..n-2);
//     spokes emitted in leaf order.
//   • Wheel: n ≥ 4; ring C_{n-1} first, then spokes from the hub.
//   • Both: n ≤ MaxFixtureNodes (else ErrTooLarge).
//   • The hub is inserted before the leaves.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/pathboard/core"

// addHub inserts the center node of a ring of the given radius.
func addHub(g *core.Graph, cfg builderConfig, radius int) core.NodeID {
	hub := g.AddNode(CenterLabel, core.Position{X: cfg.origin.X + radius, Y: cfg.origin.Y + radius})
	hub.Color = cfg.colorFn(cfg.rng)

	return hub.ID()
}

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := validateMax(MethodStar, n, MaxFixtureNodes); err != nil {
			return err
		}
		leaves := n - 1
		radius := ringRadius(cfg, leaves)
		hub := addHub(g, cfg, radius)
		ids := addNodes(g, cfg, leaves, ringLayout(cfg, leaves, radius))
		for _, leaf := range ids {
			if err := connect(g, cfg, MethodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := validateMax(MethodWheel, n, MaxFixtureNodes); err != nil {
			return err
		}
		rim := n - 1
		radius := ringRadius(cfg, rim)
		hub := addHub(g, cfg, radius)
		ids := addNodes(g, cfg, rim, ringLayout(cfg, rim, radius))
		for i := 0; i < rim; i++ {
			if err := connect(g, cfg, MethodWheel, ids[i], ids[(i+1)%rim]); err != nil {
				return err
			}
		}
		for _, id := range ids {
			if err := connect(g, cfg, MethodWheel, hub, id); err != nil {
				return err
			}
		}

		return nil
	}
}
