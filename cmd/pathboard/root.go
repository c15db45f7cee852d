// SPDX-License-Identifier: MIT
package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/config"
	"github.com/katalvlaran/pathboard/logger"
	"github.com/katalvlaran/pathboard/metrics"
	"github.com/katalvlaran/pathboard/session"
)

// appState holds what PersistentPreRunE resolved for the subcommands.
type appState struct {
	cfg *config.Config
	log *zap.Logger
}

var rt appState

var rootCmd = &cobra.Command{
	Use:   "pathboard",
	Short: "Interactive shortest-path board",
	Long: `pathboard keeps an editable weighted undirected graph and answers
shortest-path queries over it with Dijkstra's algorithm.

Configuration comes from built-in defaults, an optional --config file and
PATHBOARD_* environment variables (PATHBOARD_ENGINE_STRATEGY=heap).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		logger.Sync(rt.log)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json)")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.Bool("json", false, "emit JSON logs")
	pf.String("strategy", config.DefaultStrategy, "engine strategy: linear or heap")

	rootCmd.AddCommand(shellCmd, demoCmd, versionCmd)
}

// setup loads the configuration, letting explicitly set flags win over every
// other source, and builds the logger.
func setup(cmd *cobra.Command) error {
	v := config.New()
	path, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(v, path); err != nil {
		return err
	}
	for key, flag := range map[string]string{
		"log.level":       "log-level",
		"log.json":        "json",
		"engine.strategy": "strategy",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "bind --%s", flag)
			}
		}
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	rt = appState{cfg: cfg, log: log}
	log.Debug("configuration loaded",
		zap.String(logger.FieldStrategy, cfg.Engine.Strategy),
		zap.String("config_file", v.ConfigFileUsed()))

	return nil
}

// newSession builds a session wired to the resolved configuration.
func newSession(cmd *cobra.Command, opts ...session.Option) *session.Session {
	base := []session.Option{
		session.WithConfig(rt.cfg),
		session.WithLogger(rt.log),
		session.WithRecorder(metrics.NewRecorder()),
	}

	return session.New(cmd.OutOrStdout(), append(base, opts...)...)
}
