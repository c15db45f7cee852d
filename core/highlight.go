// SPDX-License-Identifier: MIT
//
// File: highlight.go
// Role: Transient per-edge highlight flags read by the renderer after a path query.

package core

// HighlightPath clears every highlight flag and then sets it on each of the
// given edges. Edges that no longer belong to the graph are skipped.
func (g *Graph) HighlightPath(path []*Edge) {
	g.ClearHighlights()
	for _, e := range path {
		if cur, ok := g.edges[e.id]; ok && cur == e {
			cur.highlighted = true
		}
	}
}

// ClearHighlights resets the highlight flag of every edge.
func (g *Graph) ClearHighlights() {
	for _, e := range g.edges {
		e.highlighted = false
	}
}

// HighlightedEdges returns the highlighted edges in edge insertion order.
func (g *Graph) HighlightedEdges() []*Edge {
	var out []*Edge
	for _, id := range g.edgeOrder {
		if e := g.edges[id]; e.highlighted {
			out = append(out, e)
		}
	}

	return out
}
