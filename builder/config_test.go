// SPDX-License-Identifier: MIT
// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/core"
)

// TestLabelSchemeOptions verifies that label options apply in order and that
// a nil scheme is ignored.
func TestLabelSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().labelFn(7))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnLabels()).labelFn(27))
	assert.Equal(t, "v3", newBuilderConfig(WithPrefixLabels("v")).labelFn(3))
	assert.Equal(t, "3", newBuilderConfig(WithExcelColumnLabels(), WithDefaultLabels()).labelFn(3))
	assert.Equal(t, "5", newBuilderConfig(WithLabelScheme(nil)).labelFn(5))
}

// TestRNGOptions verifies RNG defaults, explicit RNG and seed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	exp := rand.New(rand.NewSource(123))
	assert.Same(t, exp, newBuilderConfig(WithRand(exp)).rng)
	assert.Panics(t, func() { WithRand(nil) })

	c1, c2 := newBuilderConfig(WithSeed(42)), newBuilderConfig(WithSeed(42))
	require.NotNil(t, c1.rng)
	assert.Equal(t, c1.rng.Int63(), c2.rng.Int63())
	assert.Equal(t, c1.rng.Int63(), c2.rng.Int63())
}

// TestWeightFnOptions verifies override order and panics.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, DefaultEdgeWeight, newBuilderConfig().weightFn(nil))
	assert.Equal(t, int64(9), newBuilderConfig(WithConstantWeight(9)).weightFn(rng))

	w := newBuilderConfig(WithConstantWeight(1), WithUniformWeight(2, 4)).weightFn(rng)
	assert.GreaterOrEqual(t, w, int64(2))
	assert.LessOrEqual(t, w, int64(4))

	assert.Panics(t, func() { WithWeightFn(nil) })
}

// TestLayoutAndColorOptions covers origin, spacing, colors and bipartite prefixes.
func TestLayoutAndColorOptions(t *testing.T) {
	t.Parallel()

	def := newBuilderConfig()
	assert.Equal(t, core.Position{X: DefaultOriginX, Y: DefaultOriginY}, def.origin)
	assert.Equal(t, DefaultSpacing, def.spacing)
	assert.Equal(t, core.DefaultColor, def.colorFn(nil))

	c := newBuilderConfig(WithOrigin(10, 20), WithSpacing(5), WithColor(core.Color{G: 255}))
	assert.Equal(t, core.Position{X: 10, Y: 20}, c.origin)
	assert.Equal(t, 5, c.spacing)
	assert.Equal(t, core.Color{G: 255}, c.colorFn(nil))
	assert.Panics(t, func() { WithSpacing(0) })

	rnd := newBuilderConfig(WithRandomColors())
	assert.Equal(t, core.DefaultColor, rnd.colorFn(nil), "no rng keeps the default color")

	p := newBuilderConfig(WithPartitionPrefix("", "B"))
	assert.Equal(t, defaultLeftPrefix, p.leftPrefix)
	assert.Equal(t, "B", p.rightPrefix)
}

// TestLayouts pins the geometry helpers.
func TestLayouts(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithOrigin(0, 0), WithSpacing(10))
	assert.Equal(t, core.Position{X: 30, Y: 0}, lineLayout(cfg)(3))
	assert.Equal(t, core.Position{X: 10, Y: 20}, gridLayout(cfg, 3)(7))

	ring := ringLayout(cfg, 4, 10)
	assert.Equal(t, core.Position{X: 10, Y: 0}, ring(0), "first node at 12 o'clock")
	assert.Equal(t, core.Position{X: 20, Y: 10}, ring(1))
	assert.Equal(t, 10, ringRadius(cfg, 3), "radius never below spacing")
}
