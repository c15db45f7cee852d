// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show pathboard version information",
	Run: func(cmd *cobra.Command, _ []string) {
		goVersion := "unknown"
		if info, ok := debug.ReadBuildInfo(); ok {
			goVersion = info.GoVersion
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pathboard %s (%s)\n", version, goVersion)
	},
}
