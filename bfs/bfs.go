// SPDX-License-Identifier: MIT

// File: bfs.go
// Role: Breadth-first walker over the adjacency cache of a core.Graph.

package bfs

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pathboard/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, ignoring weights.
// The graph is only read; its query state is left untouched.
//
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or a wrapped OnVisit error.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, errors.Wrapf(ErrStartNodeNotFound, "node %d", start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	w.enqueue(start, 0)
	w.visited[start] = true

	return w.res, w.loop()
}

// Reachable returns the nodes reachable from start in visit order.
func Reachable(g *core.Graph, start core.NodeID) ([]core.NodeID, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Components partitions the nodes of g into connected components. Components
// are ordered by their first node in insertion order; members are in BFS order.
func Components(g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[core.NodeID]bool, g.NodeCount())
	var out [][]core.NodeID
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		order, err := Reachable(g, id)
		if err != nil {
			return nil, err
		}
		for _, m := range order {
			seen[m] = true
		}
		out = append(out, order)
	}

	return out, nil
}

func (w *walker) enqueue(id core.NodeID, d int) {
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit error at node %d", item.id)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor, in adjacency (edge insertion) order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	adj, err := w.graph.Neighbors(item.id)
	if err != nil {
		return errors.Wrapf(err, "bfs: neighbors of %d", item.id)
	}
	for _, a := range adj {
		if w.visited[a.Neighbor] || !w.opts.FilterEdge(item.id, a) {
			continue
		}
		w.visited[a.Neighbor] = true
		w.res.Parent[a.Neighbor] = item.id
		w.enqueue(a.Neighbor, next)
	}

	return nil
}
