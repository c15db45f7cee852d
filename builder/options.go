// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathboard/core"
)

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithLabelScheme sets the label generator: local index -> label.
// A nil fn is ignored.
func WithLabelScheme(fn LabelFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.labelFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithColor paints every generated node with col.
func WithColor(col core.Color) BuilderOption {
	return func(c *builderConfig) {
		c.colorFn = func(*rand.Rand) core.Color { return col }
	}
}

// WithRandomColors draws each node color from the configured RNG.
// Without an RNG nodes keep core.DefaultColor.
func WithRandomColors() BuilderOption {
	return func(c *builderConfig) {
		c.colorFn = func(r *rand.Rand) core.Color {
			if r == nil {
				return core.DefaultColor
			}

			return core.Color{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256))}
		}
	}
}

// WithOrigin anchors the layout at (x, y).
func WithOrigin(x, y int) BuilderOption {
	return func(c *builderConfig) {
		c.origin = core.Position{X: x, Y: y}
	}
}

// WithSpacing sets the distance between neighbouring nodes. Panics if px <= 0.
func WithSpacing(px int) BuilderOption {
	if px <= 0 {
		panic("builder: WithSpacing(px<=0)")
	}

	return func(c *builderConfig) {
		c.spacing = px
	}
}

// WithPartitionPrefix sets bipartite side label prefixes.
// Empty values mean "use defaults".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
