// SPDX-License-Identifier: MIT

// Package core provides the editable graph store behind pathboard: an
// undirected, non-negatively weighted multigraph whose nodes and edges are
// inserted, edited and removed interactively, plus the query-scoped distance
// and predecessor maps the shortest-path engine writes into it.
//
// G = (V, E) is held as flat maps keyed by integer identity:
//
//   - nodes[NodeID] and edges[EdgeID], with ordered identity slices that fix
//     the iteration order (insertion order).
//   - adjacency[NodeID] = [](neighbor, edge) pairs, a cache maintained only by
//     AddEdge and RemoveEdge so it always mirrors the edge set.
//   - distances[NodeID] / preds[NodeID], reset by ResetQuery and written by Relax.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(label string, pos Position) *Node     // O(1)
//	RemoveNode(id NodeID)                         // O(V+E), cascades incident edges, no-op if absent
//	SetLabel / MoveNode / SetColor                // display edits
//	NodeAt(pos Position, radius int) (*Node, bool) // hit test, topmost wins
//
//	// Edge lifecycle
//	AddEdge(a, b NodeID, w int64) (*Edge, error)  // ErrInvalidEdge on self-loop, unknown node, w<0
//	RemoveEdge(id EdgeID)                         // no-op if absent
//	SetWeight(id EdgeID, w int64) error
//
//	// Lookup
//	Neighbors(id) ([]Adjacent, error)             // adjacency cache, edge order
//	EdgeBetween(a, b) (*Edge, bool)               // last matching edge in edge order
//	WeightBetween(a, b) (int64, bool)             // ok=false means "not adjacent", never zero
//
//	// Query state
//	ResetQuery(source) / Relax(u, v, d) / Distance(id) / Predecessor(id)
//
//	// Rendering state
//	HighlightPath(edges) / ClearHighlights() / HighlightedEdges()
//
// Errors:
//
//	ErrInvalidEdge   – rejected edge creation
//	ErrInvalidWeight – negative weight
//	ErrNodeNotFound  – unknown node identity
//	ErrEdgeNotFound  – unknown edge identity
//
// Graph has no internal locking. The editor issues every mutation and query
// from one event-handling context.
package core
