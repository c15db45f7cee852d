// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Path reconstruction from the graph's stored predecessor map.
// Policy:
//   - Reads the predecessor map of the last run as-is; nothing is recomputed.
//   - Any inconsistency between the map and the current graph is NoPathFound.

package dijkstra

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pathboard/core"
)

// ReconstructPath walks the predecessor chain of the last run from dest back
// to source and returns, for each hop, the edge between predecessor and
// current node (last-match rule). Edges are ordered from dest toward source.
//
// source == dest yields an empty, non-nil slice.
//
// Errors:
//   - ErrNilGraph    if g is nil.
//   - ErrNoPathFound if the last run did not start at source, dest has no
//     predecessor (unreachable or unknown), a hop edge has since been removed,
//     or the chain is longer than the node count.
//
// Complexity: O(L·E) for a chain of length L.
func ReconstructPath(g *core.Graph, source, dest core.NodeID) ([]*core.Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == dest {
		return []*core.Edge{}, nil
	}
	if qs, ok := g.QuerySource(); !ok || qs != source {
		return nil, errors.Wrapf(ErrNoPathFound, "no run from node %d", source)
	}

	limit := g.NodeCount()
	path := make([]*core.Edge, 0)
	for cur := dest; cur != source; {
		pred, ok := g.Predecessor(cur)
		if !ok {
			return nil, errors.Wrapf(ErrNoPathFound, "node %d not reachable from node %d", dest, source)
		}
		e, ok := g.EdgeBetween(pred, cur)
		if !ok {
			return nil, errors.Wrapf(ErrNoPathFound, "stale predecessor %d of node %d", pred, cur)
		}
		path = append(path, e)
		if len(path) > limit {
			return nil, errors.Wrapf(ErrNoPathFound, "predecessor cycle reaching node %d", dest)
		}
		cur = pred
	}

	return path, nil
}
