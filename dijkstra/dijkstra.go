// SPDX-License-Identifier: MIT

// File: dijkstra.go
// Role: Shortest-path engine over core.Graph.
//
// The engine writes its results into the graph's query-scoped distance and
// predecessor maps (core.Graph.ResetQuery / core.Graph.Relax) and also returns
// a Result snapshot of them.
//
// Complexity:
//
//   - LinearScan: O(V² + E) time, O(V + E) space.
//   - Heap:       O((V + E) log V) time, O(V + E) space under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Each run builds a per-pair weight table in one O(E) pass over the edge
//     list, later edges overwriting earlier ones. This reproduces the
//     last-match rule of core.Graph.WeightBetween in O(1) per relaxation.
//   - Candidate distances saturate at core.Infinity instead of overflowing.
//   - Both strategies settle nodes in exactly the same order.

package dijkstra

import (
	"container/heap"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/core"
)

// Run computes shortest distances from source to every node of g.
//
// Steps:
//  1. Reset g's query state: every node Infinity, source 0, no predecessors.
//  2. Repeatedly settle the unsettled node with the smallest finite distance
//     (ties: the last such node in insertion order), then relax its neighbors
//     with candidate = dist(u) + weight(u, v).
//  3. Stop when no unsettled node has a finite distance.
//
// Errors:
//   - ErrNilGraph       if g is nil.
//   - ErrSourceNotFound if source is not in g (query state is left untouched).
//
// Complexity: O(V² + E) for LinearScan, O((V + E) log V) for Heap.
func Run(g *core.Graph, source core.NodeID, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.ResetQuery(source); err != nil {
		return nil, errors.Mark(errors.Wrapf(ErrSourceNotFound, "source %d", source), core.ErrNodeNotFound)
	}

	// 3) Prepare runner state
	start := time.Now()
	r := newRunner(g, source, cfg)

	// 4) Main loop
	var err error
	switch cfg.Strategy {
	case Heap:
		err = r.processHeap()
	default:
		err = r.processLinear()
	}
	if err != nil {
		return nil, err
	}

	cfg.Logger.Debug("dijkstra run finished",
		zap.Int("source", int(source)),
		zap.Stringer("strategy", cfg.Strategy),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("settled", len(r.order)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Result{
		Source: source,
		Dist:   g.Distances(),
		Prev:   g.Predecessors(),
		Order:  r.order,
	}, nil
}

// nodePair is an unordered node pair, smaller id first.
type nodePair struct{ a, b core.NodeID }

func pairOf(a, b core.NodeID) nodePair {
	if a > b {
		a, b = b, a
	}

	return nodePair{a, b}
}

// runner holds the mutable state for a single execution.
type runner struct {
	g        *core.Graph
	source   core.NodeID
	options  Options
	position map[core.NodeID]int  // insertion position of every node
	weights  map[nodePair]int64   // last-match weight per adjacent pair
	settled  map[core.NodeID]bool // finalized nodes
	order    []core.NodeID        // settle order
	pq       nodePQ               // Heap strategy only
}

func newRunner(g *core.Graph, source core.NodeID, cfg Options) *runner {
	ids := g.NodeIDs()
	r := &runner{
		g:        g,
		source:   source,
		options:  cfg,
		position: make(map[core.NodeID]int, len(ids)),
		weights:  make(map[nodePair]int64, g.EdgeCount()),
		settled:  make(map[core.NodeID]bool, len(ids)),
		order:    make([]core.NodeID, 0, len(ids)),
	}
	for i, id := range ids {
		r.position[id] = i
	}
	// Later edges overwrite earlier ones for the same pair.
	for _, e := range g.Edges() {
		a, b := e.Nodes()
		r.weights[pairOf(a, b)] = e.Weight()
	}

	return r
}

// processLinear settles nodes by scanning the unsettled set each round.
func (r *runner) processLinear() error {
	unsettled := r.g.NodeIDs()
	for len(unsettled) > 0 {
		at := selectMin(r.g, unsettled)
		if at < 0 {
			break // remaining nodes are unreachable
		}
		u := unsettled[at]
		unsettled = slices.Delete(unsettled, at, at+1)

		r.settle(u)
		if _, err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// selectMin returns the index in unsettled of the node with the smallest
// finite distance, or -1 when every remaining distance is Infinity.
// "<=" keeps the last of equal minima in slice order.
func selectMin(g *core.Graph, unsettled []core.NodeID) int {
	best, at := core.Infinity, -1
	for i, id := range unsettled {
		if d := g.Distance(id); d <= best {
			best, at = d, i
		}
	}
	if best == core.Infinity {
		return -1
	}

	return at
}

// processHeap settles nodes in (distance asc, position desc) order using a
// lazy decrease-key min-heap.
func (r *runner) processHeap() error {
	r.pq = make(nodePQ, 0, len(r.position))
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0, pos: r.position[r.source]})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		// Skip already finalized nodes and entries superseded by a shorter push.
		if r.settled[item.id] || item.dist != r.g.Distance(item.id) {
			continue
		}

		r.settle(item.id)
		improved, err := r.relax(item.id)
		if err != nil {
			return err
		}
		for _, v := range improved {
			heap.Push(&r.pq, &nodeItem{id: v, dist: r.g.Distance(v), pos: r.position[v]})
		}
	}

	return nil
}

func (r *runner) settle(u core.NodeID) {
	r.settled[u] = true
	r.order = append(r.order, u)
	if r.options.OnSettle != nil {
		r.options.OnSettle(u, r.g.Distance(u))
	}
}

// relax offers dist(u) + weight(u, v) to every neighbor v of u and returns the
// neighbors whose distance strictly improved.
func (r *runner) relax(u core.NodeID) ([]core.NodeID, error) {
	adj, err := r.g.Neighbors(u)
	if err != nil {
		return nil, errors.Wrapf(err, "dijkstra: neighbors of %d", u)
	}

	du := r.g.Distance(u)
	var improved []core.NodeID
	for _, a := range adj {
		w, ok := r.weights[pairOf(u, a.Neighbor)]
		if !ok {
			continue
		}
		if r.g.Relax(u, a.Neighbor, saturatingAdd(du, w)) {
			improved = append(improved, a.Neighbor)
		}
	}

	return improved, nil
}

// saturatingAdd returns a+b for non-negative a and b, clamped to core.Infinity.
func saturatingAdd(a, b int64) int64 {
	if a >= core.Infinity-b {
		return core.Infinity
	}

	return a + b
}

// nodeItem is a heap entry: a node, the distance it was pushed with, and its
// insertion position for tie-breaking.
type nodeItem struct {
	id   core.NodeID
	dist int64
	pos  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, then by
// insertion position descending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less reports whether item i must be popped before item j.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].pos > pq[j].pos
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
