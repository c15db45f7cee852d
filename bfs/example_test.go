// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathboard/bfs"
	"github.com/katalvlaran/pathboard/core"
)

// ExampleBFS prints hop counts on a small star.
func ExampleBFS() {
	g := core.NewGraph()
	hub := g.AddNode("hub", core.Position{}).ID()
	for _, l := range []string{"a", "b"} {
		leaf := g.AddNode(l, core.Position{}).ID()
		_, _ = g.AddEdge(hub, leaf, 10)
	}
	far := g.AddNode("far", core.Position{}).ID()
	_, _ = g.AddEdge(1, far, 3)

	res, _ := bfs.BFS(g, hub)
	for _, id := range res.Order {
		n, _ := g.Node(id)
		fmt.Printf("%s:%d ", n.Label, res.Depth[id])
	}
	fmt.Println()
	// Output: hub:0 a:1 b:1 far:2
}
