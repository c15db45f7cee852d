// SPDX-License-Identifier: MIT
package config

import "github.com/spf13/viper"

// Default values.
const (
	DefaultLogLevel   = "info"
	DefaultStrategy   = "linear"
	DefaultEdgeWeight = int64(1)
	DefaultNodeLabel  = "?"
	DefaultNodeRadius = 20
	DefaultNodeX      = 100
	DefaultNodeY      = 100
)

// SetDefaults registers a default for every key, which also makes every key
// visible to AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", false)

	v.SetDefault("engine.strategy", DefaultStrategy)

	v.SetDefault("editor.default_weight", DefaultEdgeWeight)
	v.SetDefault("editor.default_label", DefaultNodeLabel)
	v.SetDefault("editor.node_radius", DefaultNodeRadius)
	v.SetDefault("editor.default_x", DefaultNodeX)
	v.SetDefault("editor.default_y", DefaultNodeY)
}
