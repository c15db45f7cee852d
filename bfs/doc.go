// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links and visit order. Edge weights are ignored.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Result carries Order, Depth and Parent; PathTo rebuilds a hop path.
//   - Hooks: OnEnqueue (before a node is queued) and OnVisit (may abort).
//   - WithFilterEdge prunes individual adjacency entries; WithMaxWeight is a
//     ready-made filter on edge weight.
//   - Reachable and Components answer the connectivity questions asked by
//     the editor's "reach" and "stats" commands.
//
// Determinism
//
//	Neighbors are taken from the graph's adjacency cache, which lists
//	(neighbor, edge) pairs in edge insertion order, so the visit sequence is
//	reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrOptionViolation    for an invalid Option (negative MaxDepth).
//   - ErrNotReached         from PathTo for nodes outside the search tree.
//   - Wrapped OnVisit errors and context errors.
package bfs
