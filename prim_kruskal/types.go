// SPDX-License-Identifier: MIT
// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pathboard/core"
)

// ErrInvalidGraph indicates a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: nil graph")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed. It applies when |V| == 0, or |V| > 1
// and some node is unreachable.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting node to use. Use DefaultOptions() for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root core.NodeID
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting node for Prim's algorithm; Kruskal ignores it.
func WithRoot(root core.NodeID) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute applies opts over DefaultOptions and runs the selected algorithm.
//
// Returns the tree edges, their total weight, or ErrUnknownMethod for an
// unsupported method name. Prim and Kruskal can still be called directly.
func Compute(graph *core.Graph, opts ...Option) ([]*core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	default:
		return nil, 0, errors.Wrapf(ErrUnknownMethod, "%q", o.Method)
	}
}

// addWeight sums non-negative weights, saturating at core.Infinity.
func addWeight(total, w int64) int64 {
	if total > core.Infinity-w {
		return core.Infinity
	}

	return total + w
}
