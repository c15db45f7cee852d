// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: One-call helpers composing Run, ReconstructPath and highlighting.

package dijkstra

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pathboard/core"
)

// Route is a shortest path between two nodes.
// Edges are ordered from Dest toward Source, as ReconstructPath returns them.
type Route struct {
	Source   core.NodeID
	Dest     core.NodeID
	Distance int64
	Edges    []*core.Edge
}

// Hops returns the number of edges on the route.
func (rt *Route) Hops() int { return len(rt.Edges) }

// Nodes returns the node sequence from Source to Dest.
func (rt *Route) Nodes() []core.NodeID {
	nodes := make([]core.NodeID, 0, len(rt.Edges)+1)
	cur := rt.Dest
	nodes = append(nodes, cur)
	for _, e := range rt.Edges {
		cur = e.Other(cur)
		nodes = append(nodes, cur)
	}
	slices.Reverse(nodes)

	return nodes
}

// ShortestPath runs the engine from source, reconstructs the path to dest and
// highlights exactly its edges. On any error the highlight state is untouched.
//
// Errors: those of Run and ReconstructPath.
func ShortestPath(g *core.Graph, source, dest core.NodeID, opts ...Option) (*Route, error) {
	if _, err := Run(g, source, opts...); err != nil {
		return nil, err
	}
	edges, err := ReconstructPath(g, source, dest)
	if err != nil {
		return nil, err
	}
	g.HighlightPath(edges)

	return &Route{
		Source:   source,
		Dest:     dest,
		Distance: g.Distance(dest),
		Edges:    edges,
	}, nil
}

// MinDistance runs the engine from a and returns the distance to b.
//
// Errors:
//   - those of Run.
//   - core.ErrNodeNotFound if b is not in g.
//   - ErrNoPathFound if b is unreachable from a.
func MinDistance(g *core.Graph, a, b core.NodeID, opts ...Option) (int64, error) {
	if _, err := Run(g, a, opts...); err != nil {
		return 0, err
	}
	if !g.HasNode(b) {
		return 0, errors.Wrapf(core.ErrNodeNotFound, "node %d", b)
	}
	d := g.Distance(b)
	if d == core.Infinity {
		return 0, errors.Wrapf(ErrNoPathFound, "node %d not reachable from node %d", b, a)
	}

	return d, nil
}

// Row is one line of a distance table.
type Row struct {
	Node        *core.Node
	Distance    int64
	Reachable   bool
	Predecessor core.NodeID
	HasPred     bool
}

// Table returns one Row per node of g, in insertion order, from the state of
// the last run.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNoQuery  if no run has happened on g.
func Table(g *core.Graph) ([]Row, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, ok := g.QuerySource(); !ok {
		return nil, ErrNoQuery
	}

	nodes := g.Nodes()
	rows := make([]Row, 0, len(nodes))
	for _, n := range nodes {
		d := g.Distance(n.ID())
		p, ok := g.Predecessor(n.ID())
		rows = append(rows, Row{
			Node:        n,
			Distance:    d,
			Reachable:   d != core.Infinity,
			Predecessor: p,
			HasPred:     ok,
		})
	}

	return rows, nil
}
