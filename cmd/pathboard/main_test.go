// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	pterm.DisableStyling()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func TestShell_ScriptThenStdin(t *testing.T) {
	script := filepath.Join(t.TempDir(), "board.pb")
	require.NoError(t, os.WriteFile(script, []byte("add A\nadd B\nconnect 0 1 3\n"), 0o600))

	out, err := execute(t, "path 0 1\nnope\n", "shell", script, "--strategy", "heap")
	require.NoError(t, err)
	assert.Contains(t, out, "edge 0 added: 0(A) -- 1(B), weight 3")
	assert.Contains(t, out, "shortest path 0(A) -> 1(B): distance 3, 1 hops")
	assert.Contains(t, out, "error: ")
	assert.Equal(t, "heap", rt.cfg.Engine.Strategy)
}

func TestShell_NoStdin(t *testing.T) {
	script := filepath.Join(t.TempDir(), "board.pb")
	require.NoError(t, os.WriteFile(script, []byte("gen path 3\n"), 0o600))

	out, err := execute(t, "add ignored\n", "shell", "--no-stdin", script)
	require.NoError(t, err)
	assert.Contains(t, out, "gen path: 3 nodes, 2 edges added")
	assert.NotContains(t, out, "ignored")

	_, err = execute(t, "", "shell", "--no-stdin", filepath.Join(t.TempDir(), "missing.pb"))
	assert.Error(t, err)
}

func TestConfigFlags(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "pathboard.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("editor:\n  default_weight: 6\n"), 0o600))

	out, err := execute(t, "add\nadd\nconnect 0 1\n", "shell", "--config", cfgFile, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "weight 6")
	assert.Equal(t, "error", rt.cfg.Log.Level)

	_, err = execute(t, "", "shell", "--log-level", "shouty")
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "> gen classic")
	assert.Contains(t, out, "distance 21, 4 hops")
	assert.Contains(t, out, "spanning tree: 8 edges")
	assert.NotContains(t, out, "error:")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pathboard dev")
}
