// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// demoScript walks through the classic nine-node graph.
var demoScript = []string{
	"gen classic",
	"nodes",
	"path 0 4",
	"edges",
	"dist 0",
	"rm-edge 5",
	"path 0 4",
	"reach 0 8",
	"mst",
	"stats",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through shortest paths on the classic nine-node graph",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := newSession(cmd)
		out := cmd.OutOrStdout()
		for _, line := range demoScript {
			fmt.Fprintln(out, pterm.Bold.Sprint("> "+line))
			if err := s.Exec(line); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
			fmt.Fprintln(out)
		}

		return nil
	},
}
