// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries over the store.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NodeCount        int
	EdgeCount        int
	HighlightedCount int
	ParallelPairs    int  // unordered node pairs joined by more than one edge
	HasQuery         bool // a shortest-path query has run on this graph
	QuerySource      NodeID
	ReachedCount     int // nodes with a finite distance in the current query
}

// pairKey is the canonical (min, max) form of an unordered node pair.
type pairKey struct{ lo, hi NodeID }

func keyOf(e *Edge) pairKey {
	a, b := e.nodes[0], e.nodes[1]
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Stats produces a summary of counts and query state.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		NodeCount:   len(g.nodeOrder),
		EdgeCount:   len(g.edgeOrder),
		HasQuery:    g.queried,
		QuerySource: g.querySource,
	}

	pairs := make(map[pairKey]int, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		e := g.edges[id]
		if e.highlighted {
			stats.HighlightedCount++
		}
		pairs[keyOf(e)]++
	}
	for _, n := range pairs {
		if n > 1 {
			stats.ParallelPairs++
		}
	}

	if g.queried {
		for _, id := range g.nodeOrder {
			if g.Distance(id) != Infinity {
				stats.ReachedCount++
			}
		}
	}

	return &stats
}
