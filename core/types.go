// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph declarations, sentinel errors and the NewGraph constructor.
// Policy:
//   - Identities are per-graph monotonic counters; never reused.
//   - Nodes and edges live in flat maps keyed by identity plus an ordered identity
//     slice; insertion order is the iteration and tie-break order.
//   - The adjacency cache holds identities only, so removal is index filtering.

package core

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge indicates a rejected edge creation: self-loop, unknown
	// endpoint or negative weight. The graph is left unchanged.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrInvalidWeight indicates a negative edge weight. It wraps ErrInvalidEdge
	// when returned from AddEdge.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

	// ErrNodeNotFound indicates an operation referenced a node that is not in the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that is not in the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Infinity is the distance of a node that has not been reached by the current query.
const Infinity int64 = math.MaxInt64

// DefaultLabel is the label given to nodes created without one.
const DefaultLabel = "?"

// NodeID identifies a node within its Graph.
type NodeID int

// EdgeID identifies an edge within its Graph.
type EdgeID int

// Position is a node's location on the editor canvas.
type Position struct {
	X, Y int
}

// Color is an RGB fill color for a node.
type Color struct {
	R, G, B uint8
}

// DefaultColor is the fill color of newly created nodes.
var DefaultColor = Color{R: 255, G: 0, B: 0}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Node is a vertex of the editable graph.
//
// The identity is fixed at creation. Label, Pos and Color are display
// attributes; mutate them through SetLabel, MoveNode and SetColor.
type Node struct {
	id    NodeID
	Label string
	Pos   Position
	Color Color
}

// ID returns the node's identity.
func (n *Node) ID() NodeID { return n.id }

// String renders the node as "Node(label)".
func (n *Node) String() string { return fmt.Sprintf("Node(%s)", n.Label) }

// Edge is an undirected, weighted connection between two distinct nodes.
type Edge struct {
	id          EdgeID
	nodes       [2]NodeID
	weight      int64
	highlighted bool
}

// ID returns the edge's identity.
func (e *Edge) ID() EdgeID { return e.id }

// Nodes returns the two endpoints in creation order.
func (e *Edge) Nodes() (NodeID, NodeID) { return e.nodes[0], e.nodes[1] }

// Weight returns the edge weight.
func (e *Edge) Weight() int64 { return e.weight }

// IsHighlighted reports whether the edge belongs to the last highlighted path.
func (e *Edge) IsHighlighted() bool { return e.highlighted }

// Touches reports whether id is one of the edge's endpoints.
func (e *Edge) Touches(id NodeID) bool { return e.nodes[0] == id || e.nodes[1] == id }

// Connects reports whether the edge joins the unordered pair {a, b}.
func (e *Edge) Connects(a, b NodeID) bool {
	return (e.nodes[0] == a && e.nodes[1] == b) || (e.nodes[0] == b && e.nodes[1] == a)
}

// Other returns the endpoint opposite to id. The result is meaningless when
// id is not an endpoint.
func (e *Edge) Other(id NodeID) NodeID {
	if e.nodes[0] == id {
		return e.nodes[1]
	}

	return e.nodes[0]
}

// String renders the edge as "a -> b = w".
func (e *Edge) String() string {
	return fmt.Sprintf("%d -> %d = %d", e.nodes[0], e.nodes[1], e.weight)
}

// Adjacent is one entry of a node's adjacency cache.
type Adjacent struct {
	Neighbor NodeID
	Edge     EdgeID
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithFirstNodeID starts node identity allocation at id instead of 0.
// Negative values are ignored.
func WithFirstNodeID(id NodeID) GraphOption {
	return func(g *Graph) {
		if id >= 0 {
			g.nextNode = id
		}
	}
}

// Graph owns the node set, the edge set, every node's adjacency cache and the
// query-scoped distance/predecessor maps written by the shortest-path engine.
//
// Graph has no internal locking: mutations and queries must be serialized by
// the caller.
type Graph struct {
	// Storage
	nodes     map[NodeID]*Node
	nodeOrder []NodeID
	edges     map[EdgeID]*Edge
	edgeOrder []EdgeID

	// adjacency[n] = (neighbor, edge) pairs in edge insertion order.
	adjacency map[NodeID][]Adjacent

	nextNode NodeID
	nextEdge EdgeID

	// Query-scoped state, reset by ResetQuery.
	queried     bool
	querySource NodeID
	distances   map[NodeID]int64
	preds       map[NodeID]NodeID
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[NodeID]*Node),
		edges:     make(map[EdgeID]*Edge),
		adjacency: make(map[NodeID][]Adjacent),
		distances: make(map[NodeID]int64),
		preds:     make(map[NodeID]NodeID),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
