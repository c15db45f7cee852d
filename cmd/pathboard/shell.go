// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/session"
)

const prompt = "pathboard> "

var shellCmd = &cobra.Command{
	Use:   "shell [script...]",
	Short: "Read editor commands from scripts, then stdin",
	Long: `Run each script file in order, then read commands from stdin until EOF.
Type "help" for the command list. Errors are reported and the shell keeps going.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		noStdin, _ := cmd.Flags().GetBool("no-stdin")
		var opts []session.Option
		if !noStdin && isTerminal(os.Stdin) {
			opts = append(opts, session.WithPrompt(prompt))
		}
		s := newSession(cmd, opts...)

		for _, path := range args {
			if err := runScript(ctx, s, path); err != nil {
				return err
			}
		}
		if noStdin {
			return nil
		}
		if err := s.Run(ctx, cmd.InOrStdin()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		return nil
	},
}

func init() {
	shellCmd.Flags().Bool("no-stdin", false, "exit after running the scripts")
}

func runScript(ctx context.Context, s *session.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open script %s", path)
	}
	defer f.Close()
	rt.log.Debug("running script", zap.String("file", path))

	return s.Run(ctx, f)
}

// isTerminal reports whether f is an interactive character device.
func isTerminal(f *os.File) bool {
	st, err := f.Stat()

	return err == nil && st.Mode()&os.ModeCharDevice != 0
}
