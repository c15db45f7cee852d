// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and queries: AddNode/RemoveNode/HasNode/Node/Nodes/NodeCount,
//       display edits (SetLabel/MoveNode/SetColor) and the NodeAt hit test.
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - Identities are allocated from a monotonic counter and never reused.

package core

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// AddNode creates a node with a fresh identity and appends it to the ordered
// node collection. An empty label is replaced by DefaultLabel.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label string, pos Position) *Node {
	if label == "" {
		label = DefaultLabel
	}
	n := &Node{id: g.nextNode, Label: label, Pos: pos, Color: DefaultColor}
	g.nextNode++

	g.nodes[n.id] = n
	g.nodeOrder = append(g.nodeOrder, n.id)

	return n
}

// RemoveNode removes every edge incident to id, from the edge collection and
// from the other endpoint's adjacency cache, then removes the node itself and
// its query-scoped distance and predecessor entries.
//
// Removing an unknown node is a no-op.
//
// Steps:
//  1. Collect incident edges by scanning the edge collection in order.
//  2. Remove each through RemoveEdge (single writer of adjacency caches).
//  3. Drop the node from the map, the order slice and the query maps.
//
// Complexity: O(E + V).
func (g *Graph) RemoveNode(id NodeID) {
	if _, ok := g.nodes[id]; !ok {
		return
	}

	for _, e := range g.IncidentEdges(id) {
		g.RemoveEdge(e.id)
	}

	delete(g.nodes, id)
	delete(g.adjacency, id)
	g.nodeOrder = slices.DeleteFunc(g.nodeOrder, func(n NodeID) bool { return n == id })

	// A removed node can no longer be a path endpoint.
	delete(g.distances, id)
	delete(g.preds, id)
}

// HasNode reports whether id is in the graph.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given identity.
func (g *Graph) Node(id NodeID) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "node %d", id)
	}

	return n, nil
}

// Nodes returns all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}

	return out
}

// NodeIDs returns all node identities in insertion order.
func (g *Graph) NodeIDs() []NodeID {
	return slices.Clone(g.nodeOrder)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodeOrder) }

// SetLabel replaces a node's display label.
func (g *Graph) SetLabel(id NodeID, label string) error {
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	n.Label = label

	return nil
}

// MoveNode replaces a node's canvas position.
func (g *Graph) MoveNode(id NodeID, pos Position) error {
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	n.Pos = pos

	return nil
}

// SetColor replaces a node's fill color.
func (g *Graph) SetColor(id NodeID, c Color) error {
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	n.Color = c

	return nil
}

// NodeAt returns the node whose circle of the given radius contains pos.
// When circles overlap, the most recently inserted node wins, matching the
// drawing order where later nodes are painted on top.
func (g *Graph) NodeAt(pos Position, radius int) (*Node, bool) {
	r2 := radius * radius
	for i := len(g.nodeOrder) - 1; i >= 0; i-- {
		n := g.nodes[g.nodeOrder[i]]
		dx, dy := n.Pos.X-pos.X, n.Pos.Y-pos.Y
		if dx*dx+dy*dy <= r2 {
			return n, true
		}
	}

	return nil, false
}
