// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/config"
	"github.com/katalvlaran/pathboard/dijkstra"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, dijkstra.LinearScan, cfg.Strategy())
	assert.Equal(t, config.DefaultEdgeWeight, cfg.Editor.DefaultWeight)
	assert.Equal(t, config.DefaultNodeLabel, cfg.Editor.DefaultLabel)
	assert.Equal(t, config.DefaultNodeRadius, cfg.Editor.NodeRadius)
	assert.Equal(t, config.DefaultNodeX, cfg.Editor.DefaultX)
	assert.Equal(t, config.DefaultNodeY, cfg.Editor.DefaultY)

	assert.Equal(t, cfg, config.Default())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathboard.yaml")
	content := "engine:\n  strategy: heap\neditor:\n  default_weight: 7\n  default_label: X\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Heap, cfg.Strategy())
	assert.Equal(t, int64(7), cfg.Editor.DefaultWeight)
	assert.Equal(t, "X", cfg.Editor.DefaultLabel)
	assert.Equal(t, config.DefaultNodeRadius, cfg.Editor.NodeRadius, "unset keys keep defaults")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))
	t.Setenv("PATHBOARD_LOG_LEVEL", "debug")
	t.Setenv("PATHBOARD_EDITOR_NODE_RADIUS", "35")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 35, cfg.Editor.NodeRadius)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"unknown strategy", func(c *config.Config) { c.Engine.Strategy = "astar" }},
		{"unknown level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"negative weight", func(c *config.Config) { c.Editor.DefaultWeight = -1 }},
		{"zero radius", func(c *config.Config) { c.Editor.NodeRadius = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalidConfig))
		})
	}

	cfg := config.Default()
	cfg.Editor.DefaultWeight = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithViper_BoundValues(t *testing.T) {
	v := config.New()
	v.Set("engine.strategy", "HEAP")
	v.Set("log.json", true)

	cfg, err := config.LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Heap, cfg.Strategy())
	assert.True(t, cfg.Log.JSON)

	v.Set("editor.default_weight", -3)
	_, err = config.LoadWithViper(v)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}
