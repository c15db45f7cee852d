// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative integer weights, and turns the result into paths.
//
// Overview:
//
//   - Run resets the graph's query state and settles every reachable node,
//     writing final distances and predecessors into the graph.
//   - ReconstructPath walks the stored predecessor chain from a destination back
//     to the source and returns the hop edges, destination end first.
//   - ShortestPath and MinDistance compose the two for the common cases;
//     ShortestPath also highlights the resulting edges on the graph.
//   - Table renders the state of the last run as one Row per node.
//
// Selection order:
//
// The unsettled node with the smallest finite distance is settled next. Among
// equal minima the node inserted LAST wins. Both strategies honour this rule,
// so paths are identical whichever one is configured:
//
//   - LinearScan (default): O(V) scan per round, O(V² + E) total.
//   - Heap: lazy decrease-key min-heap keyed by (distance, -position),
//     O((V + E) log V) total.
//
// Relaxation:
//
// For settled u and each neighbor v the candidate is dist(u) + weight(u, v),
// where weight(u, v) follows the last-match rule of core.Graph.WeightBetween.
// With parallel edges this means the most recently added edge defines the
// hop cost, even if an older parallel edge is cheaper. A strictly smaller
// candidate replaces dist(v) and sets pred(v) = u.
//
// Staleness:
//
// The query state is not maintained across edits. After RemoveNode the
// removed node's entries are gone; other entries are not repaired.
// ReconstructPath reports ErrNoPathFound whenever the stored chain no longer
// matches the graph. Run again after editing.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrSourceNotFound: unknown source node (also matches core.ErrNodeNotFound).
//   - ErrNoPathFound:    no usable predecessor chain.
//   - ErrNoQuery:        Table before any run.
//   - ErrBadStrategy:    unknown strategy name or value.
//
// Thread safety:
//
//   - A run mutates the graph's query state. Callers sharing a graph across
//     goroutines must synchronize externally.
package dijkstra
