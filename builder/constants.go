// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// constants.go - constructor tags, minima and layout defaults.

package builder

// Constructor name tags used to prefix error context.
const (
	MethodClassic           = "Classic"
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodGrid              = "Grid"
)

// Minimum node counts.
const (
	// MinCycleNodes is the smallest ring without loops or parallel edges.
	MinCycleNodes = 3
	// MinPathNodes is the smallest path with one edge.
	MinPathNodes = 2
	// MinStarNodes is one center plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a 3-ring plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes allows K_1 (a single node, no edges).
	MinCompleteNodes = 1
	// MinPartition is the smallest bipartite side.
	MinPartition = 1
	// MinGridDim is the smallest grid dimension; 1×1 is valid.
	MinGridDim = 1
	// MinRandomNodes is the smallest random graph.
	MinRandomNodes = 1
)

// Size ceilings for one constructor call.
const (
	// MaxFixtureNodes bounds the nodes a constructor may add.
	MaxFixtureNodes = 1 << 16
	// MaxFixtureEdges bounds the edges, or candidate pairs, a constructor may emit.
	MaxFixtureEdges = 1 << 20
)

// Weight and probability bounds.
const (
	// DefaultEdgeWeight is used when no weight function is configured.
	DefaultEdgeWeight int64 = 1
	MinProbability          = 0.0
	MaxProbability          = 1.0
)

// Layout defaults, in board pixels.
const (
	DefaultSpacing = 80
	DefaultOriginX = 50
	DefaultOriginY = 50
)

// CenterLabel is the label of the hub node in Star and Wheel.
const CenterLabel = "Center"
