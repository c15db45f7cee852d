// SPDX-License-Identifier: MIT
//
// File: query.go
// Role: Query-scoped distance and predecessor maps owned by the Graph.
// Policy:
//   - Written only by a shortest-path run (ResetQuery + Relax).
//   - Never maintained incrementally across mutations: RemoveNode drops the
//     removed node's entries, nothing else is repaired.

package core

import (
	"maps"

	"github.com/cockroachdb/errors"
)

// ResetQuery starts a new query from source: every current node gets distance
// Infinity, source gets 0, and the predecessor map is cleared.
//
// Errors:
//   - ErrNodeNotFound if source is not in the graph (state is left untouched).
//
// Complexity: O(V).
func (g *Graph) ResetQuery(source NodeID) error {
	if !g.HasNode(source) {
		return errors.Wrapf(ErrNodeNotFound, "query source %d", source)
	}

	g.distances = make(map[NodeID]int64, len(g.nodeOrder))
	g.preds = make(map[NodeID]NodeID, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		g.distances[id] = Infinity
	}
	g.distances[source] = 0
	g.querySource = source
	g.queried = true

	return nil
}

// QuerySource returns the source of the last query. ok is false when no query
// has run on this graph yet.
func (g *Graph) QuerySource() (source NodeID, ok bool) {
	return g.querySource, g.queried
}

// Distance returns the current tentative (or, after a run, final) distance of
// id. Nodes without an entry report Infinity.
func (g *Graph) Distance(id NodeID) int64 {
	d, ok := g.distances[id]
	if !ok {
		return Infinity
	}

	return d
}

// Predecessor returns the node preceding id on the recorded shortest path.
// ok is false for the source, for unreached nodes and before any query.
func (g *Graph) Predecessor(id NodeID) (pred NodeID, ok bool) {
	pred, ok = g.preds[id]

	return pred, ok
}

// Relax records candidate as the distance of v with predecessor u when it is
// strictly smaller than the current distance of v. It reports whether v changed.
func (g *Graph) Relax(u, v NodeID, candidate int64) bool {
	if candidate >= g.Distance(v) {
		return false
	}
	g.distances[v] = candidate
	g.preds[v] = u

	return true
}

// Distances returns a copy of the distance map.
func (g *Graph) Distances() map[NodeID]int64 { return maps.Clone(g.distances) }

// Predecessors returns a copy of the predecessor map.
func (g *Graph) Predecessors() map[NodeID]NodeID { return maps.Clone(g.preds) }
