// SPDX-License-Identifier: MIT
package logger

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/core"
)

// Standard field names for structured logging across pathboard.
// Use these constants instead of raw strings.
const (
	// Graph entities
	FieldNode   = "node"
	FieldEdge   = "edge"
	FieldSource = "source"
	FieldDest   = "dest"
	FieldWeight = "weight"
	FieldLabel  = "label"

	// Engine
	FieldStrategy = "strategy"
	FieldDistance = "distance"
	FieldHops     = "hops"
	FieldSettled  = "settled"

	// Editor
	FieldCommand = "command"
	FieldKind    = "kind"

	// Counts and timing
	FieldNodes   = "nodes"
	FieldEdges   = "edges"
	FieldElapsed = "elapsed"

	FieldError = "error"
)

// Node returns a zap field for a node identity.
func Node(id core.NodeID) zap.Field { return zap.Int(FieldNode, int(id)) }

// Edge returns a zap field for an edge identity.
func Edge(id core.EdgeID) zap.Field { return zap.Int(FieldEdge, int(id)) }

// Command returns a zap field for an editor command name.
func Command(name string) zap.Field { return zap.String(FieldCommand, name) }
