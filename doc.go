// SPDX-License-Identifier: MIT

// Package pathboard is an editable weighted undirected graph with a
// Dijkstra shortest-path engine behind it.
//
// The module is organized as flat subpackages:
//
//	core/         graph store, mutation interface, weight lookup, query state and highlights
//	dijkstra/     shortest-path engine, path reconstruction, route and table helpers
//	bfs/          hop-count reachability and connected components
//	prim_kruskal/ minimum spanning trees
//	builder/      deterministic fixtures (classic, path, cycle, star, grid, random, ...)
//	config/       viper-backed configuration
//	logger/       zap construction and shared field names
//	metrics/      prometheus instruments for mutations and path queries
//	session/      line-command editor over one graph
//	cmd/pathboard the CLI
//
// Quick example:
//
//	g := core.NewGraph()
//	a := g.AddNode("A", core.Position{}).ID()
//	b := g.AddNode("B", core.Position{X: 40}).ID()
//	_, _ = g.AddEdge(a, b, 7)
//	rt, err := dijkstra.ShortestPath(g, a, b)
//
// rt.Distance is 7 and the single edge is highlighted.
package pathboard
