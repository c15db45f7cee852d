// SPDX-License-Identifier: MIT

// Package config loads pathboard settings with viper.
//
// Sources, lowest precedence first:
//
//   - built-in defaults (SetDefaults),
//   - an optional config file (any format viper understands, by extension),
//   - environment variables prefixed PATHBOARD_, with "." replaced by "_"
//     (PATHBOARD_ENGINE_STRATEGY=heap).
//
// Load returns a validated *Config; callers never touch viper directly.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "PATHBOARD"

// Config is the resolved configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Engine EngineConfig `mapstructure:"engine"`
	Editor EditorConfig `mapstructure:"editor"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// EngineConfig selects the shortest-path strategy ("linear" or "heap").
type EngineConfig struct {
	Strategy string `mapstructure:"strategy"`
}

// EditorConfig holds defaults applied by editor commands.
type EditorConfig struct {
	DefaultWeight int64  `mapstructure:"default_weight"`
	DefaultLabel  string `mapstructure:"default_label"`
	NodeRadius    int    `mapstructure:"node_radius"`
	DefaultX      int    `mapstructure:"default_x"`
	DefaultY      int    `mapstructure:"default_y"`
}

// New returns a viper instance with defaults and environment binding but no
// file source.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// Load resolves the configuration. An empty path skips the file source.
func Load(path string) (*Config, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}

	return LoadWithViper(v)
}

// ReadFile merges the config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config file %s", path)
	}

	return nil
}

// LoadWithViper unmarshals and validates the configuration held by v.
// It lets callers bind command-line flags into v before loading.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := LoadWithViper(func() *viper.Viper {
		v := viper.New()
		SetDefaults(v)
		return v
	}())
	if err != nil {
		panic(errors.Wrap(err, "built-in defaults are invalid"))
	}

	return cfg
}
