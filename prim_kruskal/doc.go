// SPDX-License-Identifier: MIT

// Package prim_kruskal computes Minimum Spanning Trees over the pathboard
// graph store, with Prim's and Kruskal's algorithms.
//
// What & Why
//
//   - Given a connected, weighted undirected graph G = (V, E), an MST is a
//     subset T ⊆ E of |V|-1 edges that spans V with minimum total weight.
//   - On the board it answers "what is the cheapest way to keep every node
//     connected", and the editor highlights it the same way it highlights a
//     shortest path.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]*core.Edge, int64, error)
//     Stable sort of all edges by weight plus union-find.
//     Time O(E log E + α(V)·E), space O(V + E).
//     Ties keep edge insertion order.
//
//   - Prim(g, root) ([]*core.Edge, int64, error)
//     Grows one tree from root with a min-heap of candidate edges.
//     Time O(E log E), space O(V + E).
//     Ties break on the lower edge identity.
//
//   - Compute(g, opts...) dispatches on MSTOptions.Method (default Kruskal).
//
// Both return the tree edges as pointers into g, so callers can pass them to
// core.Graph.HighlightPath. Totals saturate at core.Infinity.
//
// Error Conditions
//
//   - ErrInvalidGraph: g is nil.
//   - ErrDisconnected: |V| == 0, or |V| > 1 and the graph is not connected.
//   - core.ErrNodeNotFound (Prim only): root is not in g.
//   - ErrUnknownMethod (Compute only).
//
// Parallel edges are allowed; only the lightest of a pair can enter the tree.
// Different tie-breaking means Prim and Kruskal may return different trees,
// but always the same total weight.
package prim_kruskal
