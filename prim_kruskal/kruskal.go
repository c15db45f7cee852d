// SPDX-License-Identifier: MIT
// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It works on the undirected, non-negatively weighted *core.Graph and produces the edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/pathboard/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of g.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : g is nil.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and g is not connected.
//
// Steps:
//  1. Validate g; |V| == 1 yields the trivial empty tree.
//  2. Stable-sort g.Edges() by ascending weight, so equal weights keep edge insertion order.
//  3. Initialize parent[] and rank[] for every node.
//  4. For each edge (u,v): if find(u) != find(v), union and keep the edge.
//  5. Stop at |V|-1 edges; fewer after the loop means ErrDisconnected.
//
// Parallel edges need no special handling: the lightest one of a pair sorts first.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) ([]*core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}

	nodes := g.NodeIDs()
	switch len(nodes) {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		return []*core.Edge{}, 0, nil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight() < edges[j].Weight()
	})

	parent := make(map[core.NodeID]core.NodeID, len(nodes))
	rank := make(map[core.NodeID]int, len(nodes))
	for _, id := range nodes {
		parent[id] = id
	}

	// Iterative find with path halving.
	find := func(u core.NodeID) core.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of two roots by rank.
	union := func(ru, rv core.NodeID) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	var (
		mst   = make([]*core.Edge, 0, len(nodes)-1)
		total int64
	)
	for _, e := range edges {
		u, v := e.Nodes()
		ru, rv := find(u), find(v)
		if ru == rv {
			continue
		}
		union(ru, rv)
		mst = append(mst, e)
		total = addWeight(total, e.Weight())
		if len(mst) == len(nodes)-1 {
			break
		}
	}

	if len(mst) < len(nodes)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
