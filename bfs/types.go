// SPDX-License-Identifier: MIT

// File: types.go
// Role: Options, hooks, sentinel errors and the Result of a hop-count search.

package bfs

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pathboard/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start node is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for nodes outside the search tree.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, with its depth from the start.
	OnEnqueue func(id core.NodeID, depth int)

	// OnVisit is called when visiting a node. A non-nil error aborts the search.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterEdge can skip an edge by returning false.
	FilterEdge func(curr core.NodeID, e core.Adjacent) bool

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks,
// no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnEnqueue:  func(core.NodeID, int) {},
		OnVisit:    func(core.NodeID, int) error { return nil },
		FilterEdge: func(core.NodeID, core.Adjacent) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips adjacency entries when fn returns false.
func WithFilterEdge(fn func(curr core.NodeID, e core.Adjacent) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithMaxWeight follows only edges whose weight is at most w.
// The graph is consulted per edge, so the filter sees the current weights.
func WithMaxWeight(g *core.Graph, w int64) Option {
	return WithFilterEdge(func(_ core.NodeID, a core.Adjacent) bool {
		e, err := g.Edge(a.Edge)

		return err == nil && e.Weight() <= w
	})
}

// Result holds the outcome of a traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: node → hop count from the start.
//   - Parent: node → predecessor in the BFS tree (absent for the start).
type Result struct {
	Start  core.NodeID
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// Reached reports whether id was reached.
func (r *Result) Reached(id core.NodeID) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo reconstructs the node sequence from the start to dest.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reached(dest) {
		return nil, errors.Wrapf(ErrNotReached, "node %d", dest)
	}
	path := []core.NodeID{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
