// SPDX-License-Identifier: MIT

// File: types.go
// Role: Options, strategies, sentinel errors and the Result snapshot.
//
// Options:
//
//	– Strategy:  LinearScan (default, O(V²) minimum scan) or Heap (lazy
//	             decrease-key min-heap). Both settle nodes in the same order.
//	– Logger:    *zap.Logger receiving one debug entry per run.
//	– OnSettle:  hook invoked as each node's distance becomes final.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrSourceNotFound if the source node is not in the graph.
//	– ErrNoPathFound    if no predecessor chain links the destination to the source.
//	– ErrNoQuery        if query state is read before any run.
//	– ErrBadStrategy    if a strategy name or value is unknown.

package dijkstra

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/core"
)

// Sentinel errors returned by the engine and path reconstruction.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source node does not exist in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNoPathFound indicates that the destination cannot be reached from the
	// source through the predecessor map of the last run: it is disconnected,
	// the last run started elsewhere (or never happened), or the graph changed
	// underneath the stored chain.
	ErrNoPathFound = errors.New("dijkstra: no path found")

	// ErrNoQuery indicates that query-scoped state was read before any run.
	ErrNoQuery = errors.New("dijkstra: no shortest-path run on this graph")

	// ErrBadStrategy indicates an unknown Strategy.
	ErrBadStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects how the next node to settle is found.
type Strategy int

const (
	// LinearScan scans every unsettled node for the minimum distance.
	// Among equal minima the last one in insertion order wins.
	LinearScan Strategy = iota

	// Heap keeps a min-heap ordered by (distance asc, insertion position desc),
	// which reproduces the LinearScan tie-break exactly.
	Heap
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case LinearScan:
		return "linear"
	case Heap:
		return "heap"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "linear" or "heap" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "":
		return LinearScan, nil
	case "heap":
		return Heap, nil
	default:
		return LinearScan, errors.Wrapf(ErrBadStrategy, "%q", name)
	}
}

// Options configures a single engine run.
type Options struct {
	Strategy Strategy                           // how the next node is selected
	Logger   *zap.Logger                        // never nil after DefaultOptions
	OnSettle func(node core.NodeID, dist int64) // optional settle hook
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithStrategy selects the minimum-selection strategy.
// Panics on an unknown value to signal invalid configuration early.
func WithStrategy(s Strategy) Option {
	if s != LinearScan && s != Heap {
		panic(ErrBadStrategy.Error())
	}

	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger routes run diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers fn to be called once per settled node, in settle order.
func WithObserver(fn func(node core.NodeID, dist int64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// DefaultOptions returns the defaults: LinearScan, a no-op logger, no hook.
func DefaultOptions() Options {
	return Options{
		Strategy: LinearScan,
		Logger:   zap.NewNop(),
	}
}

// Result is a snapshot of one run's output.
//
// Dist holds every node present at run time (Infinity when unreached).
// Prev holds an entry only for nodes reached from Source, other than Source.
// Order lists settled nodes in the order their distances became final.
type Result struct {
	Source core.NodeID
	Dist   map[core.NodeID]int64
	Prev   map[core.NodeID]core.NodeID
	Order  []core.NodeID
}

// Reachable reports whether id was reached from the source.
func (r *Result) Reachable(id core.NodeID) bool {
	d, ok := r.Dist[id]

	return ok && d != core.Infinity
}
