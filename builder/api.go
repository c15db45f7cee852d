// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator per target: BuildGraph (fresh graph) and Apply (existing
//     graph). Both resolve cfg once and run constructors in order.
//   - All public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig; no global state.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pathboard/core"
)

// Constructor appends a deterministic fixture to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before the first mutation and return sentinel errors.
//     Failures raised by the graph afterwards (e.g. a negative weight from a
//     custom weight function) are rolled back by Apply.
//   - Address only the nodes they add themselves (local indices → NodeIDs).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph" context and returned
// immediately together with a nil graph.
//
// Errors: wrapped constructor errors; branch with errors.Is against
// builder sentinels (ErrTooFewNodes, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, errors.Wrap(err, "BuildGraph")
	}

	return g, nil
}

// Apply runs constructors against an existing graph, appending their nodes and
// edges after the ones already present.
//
// Apply is all-or-nothing: on any error, every node added by this call is
// removed again (with its edges), so g holds exactly what it held before.
// Identities consumed by the removed nodes are not reused.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return errors.Wrap(ErrConstructFailed, "Apply: nil graph")
	}
	for i, fn := range cons {
		if fn == nil {
			return errors.Wrapf(ErrConstructFailed, "nil constructor at index %d", i)
		}
	}
	cfg := newBuilderConfig(bopts...)
	before := g.NodeCount()
	for _, fn := range cons {
		if err := fn(g, cfg); err != nil {
			rollback(g, before)
			return err
		}
	}

	return nil
}

// rollback removes the nodes appended after the first keep nodes. Constructors
// only connect nodes they added, so the cascade leaves older edges intact.
func rollback(g *core.Graph, keep int) {
	for _, id := range g.NodeIDs()[keep:] {
		g.RemoveNode(id)
	}
}
