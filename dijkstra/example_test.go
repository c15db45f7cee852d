// SPDX-License-Identifier: MIT
// Package dijkstra_test provides runnable examples for the shortest-path engine.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
)

// ExampleShortestPath computes and highlights a route on a small triangle.
func ExampleShortestPath() {
	g := core.NewGraph()
	a := g.AddNode("A", core.Position{X: 0, Y: 0}).ID()
	b := g.AddNode("B", core.Position{X: 100, Y: 0}).ID()
	c := g.AddNode("C", core.Position{X: 50, Y: 80}).ID()
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(b, c, 2)
	_, _ = g.AddEdge(a, c, 5)

	rt, err := dijkstra.ShortestPath(g, a, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range rt.Nodes() {
		n, _ := g.Node(id)
		fmt.Print(n.Label, " ")
	}
	fmt.Println("distance:", rt.Distance, "highlighted:", len(g.HighlightedEdges()))
	// Output: A B C distance: 3 highlighted: 2
}

// ExampleTable prints the distance table of the last run.
func ExampleTable() {
	g := core.NewGraph()
	a := g.AddNode("A", core.Position{}).ID()
	b := g.AddNode("B", core.Position{}).ID()
	g.AddNode("C", core.Position{})
	_, _ = g.AddEdge(a, b, 7)

	if _, err := dijkstra.Run(g, a, dijkstra.WithStrategy(dijkstra.Heap)); err != nil {
		fmt.Println("error:", err)
		return
	}
	rows, _ := dijkstra.Table(g)
	for _, r := range rows {
		if !r.Reachable {
			fmt.Printf("%s: unreachable\n", r.Node.Label)
			continue
		}
		fmt.Printf("%s: %d\n", r.Node.Label, r.Distance)
	}
	// Output:
	// A: 0
	// B: 7
	// C: unreachable
}
