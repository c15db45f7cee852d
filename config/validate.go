// SPDX-License-Identifier: MIT
package config

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathboard/dijkstra"
)

// ErrInvalidConfig marks every validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Mark(errors.Newf("log.level: unknown level %q", c.Log.Level), ErrInvalidConfig)
	}
	if _, err := dijkstra.ParseStrategy(c.Engine.Strategy); err != nil {
		return errors.Mark(errors.Wrap(err, "engine.strategy"), ErrInvalidConfig)
	}
	// Zero is a legal weight.
	if c.Editor.DefaultWeight < 0 {
		return errors.Mark(errors.Newf("editor.default_weight must be >= 0, got %d", c.Editor.DefaultWeight), ErrInvalidConfig)
	}
	if c.Editor.NodeRadius <= 0 {
		return errors.Mark(errors.Newf("editor.node_radius must be > 0, got %d", c.Editor.NodeRadius), ErrInvalidConfig)
	}

	return nil
}

// Strategy returns the parsed engine strategy. Validate guarantees success.
func (c *Config) Strategy() dijkstra.Strategy {
	s, err := dijkstra.ParseStrategy(c.Engine.Strategy)
	if err != nil {
		return dijkstra.LinearScan
	}

	return s
}
