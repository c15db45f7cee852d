// SPDX-License-Identifier: MIT
// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a root node of a *core.Graph using a min-heap of candidate edges.
package prim_kruskal

import (
	"container/heap"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pathboard/core"
)

// Prim computes the Minimum Spanning Tree (MST) of g by growing outwards from root.
//
// Error Conditions:
//   - ErrInvalidGraph      : g is nil.
//   - ErrDisconnected      : |V| == 0, or some node is unreachable from root.
//   - core.ErrNodeNotFound : root is not in g.
//
// Steps:
//  1. Validate g and root; |V| == 1 yields the trivial empty tree.
//  2. Mark root visited and push its incident edges into the heap.
//  3. While the heap is non-empty and the tree has < |V|-1 edges:
//     a. Pop the lightest candidate (ties: lower edge identity first).
//     b. Skip it when its far endpoint is already visited.
//     c. Otherwise keep it, mark the endpoint, push that node's edges.
//  4. Fewer than |V|-1 edges ⇒ ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root core.NodeID) ([]*core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !g.HasNode(root) {
		return nil, 0, errors.Wrapf(core.ErrNodeNotFound, "prim root %d", root)
	}
	if n == 1 {
		return []*core.Edge{}, 0, nil
	}

	visited := make(map[core.NodeID]bool, n)
	mst := make([]*core.Edge, 0, n-1)
	var total int64
	pq := &edgePQ{}

	// grow marks id visited and queues its edges toward unvisited nodes.
	grow := func(id core.NodeID) error {
		visited[id] = true
		adj, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, a := range adj {
			if visited[a.Neighbor] {
				continue
			}
			e, err := g.Edge(a.Edge)
			if err != nil {
				return err
			}
			heap.Push(pq, candidate{edge: e, to: a.Neighbor})
		}

		return nil
	}

	if err := grow(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		mst = append(mst, c.edge)
		total = addWeight(total, c.edge.Weight())
		if err := grow(c.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// candidate is an edge leading out of the tree toward node to.
type candidate struct {
	edge *core.Edge
	to   core.NodeID
}

// edgePQ implements heap.Interface for a min-heap of candidates, ordered by
// weight, then edge identity.
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if wi, wj := pq[i].edge.Weight(), pq[j].edge.Weight(); wi != wj {
		return wi < wj
	}

	return pq[i].edge.ID() < pq[j].edge.ID()
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes the last candidate. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
