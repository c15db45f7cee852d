// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/Edge/Edges/EdgeCount,
//       weight edits and incident-edge listing.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Edge identities are monotonic and never reused.
// Invariant:
//   - A node's adjacency cache equals the image of all edges mentioning it.
//     AddEdge and RemoveEdge are the only writers of both sides.

package core

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// AddEdge connects a and b with an undirected edge of the given weight.
//
// Parallel edges between the same pair are allowed; each gets its own identity.
//
// Errors (all wrap ErrInvalidEdge, no partial mutation):
//   - a == b (self-loop).
//   - a or b is not in the graph (also wraps ErrNodeNotFound).
//   - weight < 0 (also wraps ErrInvalidWeight).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b NodeID, weight int64) (*Edge, error) {
	if a == b {
		return nil, errors.Wrapf(ErrInvalidEdge, "self-loop on node %d", a)
	}
	for _, id := range [2]NodeID{a, b} {
		if !g.HasNode(id) {
			return nil, errors.Mark(errors.Wrapf(ErrInvalidEdge, "endpoint %d", id), ErrNodeNotFound)
		}
	}
	if weight < 0 {
		return nil, errors.Mark(errors.Wrapf(ErrInvalidEdge, "weight %d", weight), ErrInvalidWeight)
	}

	e := &Edge{id: g.nextEdge, nodes: [2]NodeID{a, b}, weight: weight}
	g.nextEdge++

	g.edges[e.id] = e
	g.edgeOrder = append(g.edgeOrder, e.id)
	g.adjacency[a] = append(g.adjacency[a], Adjacent{Neighbor: b, Edge: e.id})
	g.adjacency[b] = append(g.adjacency[b], Adjacent{Neighbor: a, Edge: e.id})

	return e, nil
}

// RemoveEdge deletes an edge from the edge collection and from both
// endpoints' adjacency caches. Removing an unknown edge is a no-op.
// Complexity: O(E + deg(a) + deg(b)).
func (g *Graph) RemoveEdge(id EdgeID) {
	e, ok := g.edges[id]
	if !ok {
		return
	}

	delete(g.edges, id)
	g.edgeOrder = slices.DeleteFunc(g.edgeOrder, func(x EdgeID) bool { return x == id })
	for _, n := range e.nodes {
		g.adjacency[n] = slices.DeleteFunc(g.adjacency[n], func(adj Adjacent) bool { return adj.Edge == id })
	}
}

// Edge returns the edge with the given identity.
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, errors.Wrapf(ErrEdgeNotFound, "edge %d", id)
	}

	return e, nil
}

// HasEdge reports whether id is in the graph.
func (g *Graph) HasEdge(id EdgeID) bool {
	_, ok := g.edges[id]

	return ok
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edgeOrder) }

// IncidentEdges returns every edge mentioning id, in edge insertion order.
// An unknown node yields an empty slice.
func (g *Graph) IncidentEdges(id NodeID) []*Edge {
	var out []*Edge
	for _, eid := range g.edgeOrder {
		if e := g.edges[eid]; e.Touches(id) {
			out = append(out, e)
		}
	}

	return out
}

// SetWeight replaces an edge's weight.
func (g *Graph) SetWeight(id EdgeID, weight int64) error {
	e, err := g.Edge(id)
	if err != nil {
		return err
	}
	if weight < 0 {
		return errors.Wrapf(ErrInvalidWeight, "edge %d weight %d", id, weight)
	}
	e.weight = weight

	return nil
}
