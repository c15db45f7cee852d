// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood and weight lookup: Neighbors, EdgeBetween, WeightBetween.
// Determinism:
//   - Neighbors() returns the adjacency cache in edge insertion order; a
//     neighbor joined by k parallel edges appears k times.
//   - EdgeBetween/WeightBetween scan edges in insertion order and keep the
//     LAST match, so the most recently inserted parallel edge decides.

package core

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Neighbors returns the adjacency cache of id: one (neighbor, edge) pair per
// incident edge.
//
// Errors:
//   - ErrNodeNotFound if id is not in the graph.
//
// Complexity: O(deg(id)) for the defensive copy.
func (g *Graph) Neighbors(id NodeID) ([]Adjacent, error) {
	if !g.HasNode(id) {
		return nil, errors.Wrapf(ErrNodeNotFound, "neighbors of %d", id)
	}

	return slices.Clone(g.adjacency[id]), nil
}

// EdgeBetween returns the edge joining the unordered pair {a, b}.
//
// The whole edge collection is scanned in insertion order without breaking
// early; when parallel edges exist the last scanned one is returned.
// ok is false when no edge connects the pair.
//
// Complexity: O(E).
func (g *Graph) EdgeBetween(a, b NodeID) (e *Edge, ok bool) {
	for _, id := range g.edgeOrder {
		if cand := g.edges[id]; cand.Connects(a, b) {
			e, ok = cand, true
		}
	}

	return e, ok
}

// WeightBetween returns the weight of EdgeBetween(a, b). ok is false when the
// nodes are not adjacent; callers must not read the weight as zero then.
func (g *Graph) WeightBetween(a, b NodeID) (weight int64, ok bool) {
	e, ok := g.EdgeBetween(a, b)
	if !ok {
		return 0, false
	}

	return e.weight, true
}
