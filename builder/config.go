// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • labelFn  = DefaultLabelFn      ("0","1","2",...)
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • colorFn  = core.DefaultColor for every node
//   • origin   = (DefaultOriginX, DefaultOriginY), spacing = DefaultSpacing
//   • left/right = "L" / "R"

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathboard/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Label strategy: local index -> node label.
	labelFn LabelFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Color generator for nodes.
	colorFn func(*rand.Rand) core.Color

	// Layout: top-left anchor and distance between neighbouring nodes.
	origin  core.Position
	spacing int

	// Bipartite label prefixes.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:     DefaultLabelFn,
		weightFn:    DefaultWeightFn,
		colorFn:     func(*rand.Rand) core.Color { return core.DefaultColor },
		origin:      core.Position{X: DefaultOriginX, Y: DefaultOriginY},
		spacing:     DefaultSpacing,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
