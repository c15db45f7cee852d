// SPDX-License-Identifier: MIT

// Command pathboard is an interactive shortest-path board: build a weighted
// graph with editor commands and query Dijkstra routes over it.
//
//	pathboard shell            # read commands from stdin
//	pathboard shell setup.pb   # run a script, then read stdin
//	pathboard demo             # classic nine-node walkthrough
//	pathboard version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
