// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
)

func TestReconstructPath_SameNodeIsEmpty(t *testing.T) {
	g := classicGraph(t)
	path, err := dijkstra.ReconstructPath(g, 3, 3)
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)

	_, err = dijkstra.ReconstructPath(nil, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestReconstructPath_RequiresRunFromSource(t *testing.T) {
	g := classicGraph(t)
	_, err := dijkstra.ReconstructPath(g, 0, 4)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPathFound), "no run yet")

	_, err = dijkstra.Run(g, 1)
	require.NoError(t, err)
	_, err = dijkstra.ReconstructPath(g, 0, 4)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPathFound), "last run started elsewhere")

	path, err := dijkstra.ReconstructPath(g, 1, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestReconstructPath_StaleAfterEdits(t *testing.T) {
	g := classicGraph(t)
	_, err := dijkstra.Run(g, 0)
	require.NoError(t, err)

	// 0 -> 1 -> 2: removing edge (1,2) breaks the stored chain.
	e, ok := g.EdgeBetween(1, 2)
	require.True(t, ok)
	g.RemoveEdge(e.ID())
	_, err = dijkstra.ReconstructPath(g, 0, 2)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPathFound))

	// Removing an intermediate node: 0 -> 7 -> 6 is the path to 6.
	g.RemoveNode(7)
	_, err = dijkstra.ReconstructPath(g, 0, 6)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPathFound))

	// Removing the destination itself.
	g.RemoveNode(8)
	_, err = dijkstra.ReconstructPath(g, 0, 8)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPathFound))

	// A fresh run uses the edited topology.
	path, err := dijkstra.ReconstructPath(g, 0, 1)
	require.NoError(t, err, "untouched chain still valid")
	assert.Len(t, path, 1)
	_, err = dijkstra.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), g.Distance(1))
	assert.Equal(t, core.Infinity, g.Distance(6), "only 0-1 remains at the source")
}

func TestShortestPath_HighlightsRoute(t *testing.T) {
	g := classicGraph(t)
	rt, err := dijkstra.ShortestPath(g, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(21), rt.Distance)
	assert.Equal(t, []core.NodeID{0, 7, 6, 5, 4}, rt.Nodes())
	assert.Equal(t, 4, rt.Hops())

	hl := g.HighlightedEdges()
	assert.ElementsMatch(t, rt.Edges, hl)

	// A failing query leaves highlighting untouched.
	iso := g.AddNode("iso", core.Position{}).ID()
	_, err = dijkstra.ShortestPath(g, 0, iso)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPathFound))
	assert.ElementsMatch(t, hl, g.HighlightedEdges())

	// Same node: empty route, highlights cleared.
	rt, err = dijkstra.ShortestPath(g, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rt.Distance)
	assert.Equal(t, []core.NodeID{2}, rt.Nodes())
	assert.Empty(t, g.HighlightedEdges())
}

func TestTable(t *testing.T) {
	g := classicGraph(t)
	_, err := dijkstra.Table(g)
	assert.ErrorIs(t, err, dijkstra.ErrNoQuery)
	_, err = dijkstra.Table(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	iso := g.AddNode("iso", core.Position{}).ID()
	_, err = dijkstra.Run(g, 0)
	require.NoError(t, err)

	rows, err := dijkstra.Table(g)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	assert.Equal(t, core.NodeID(0), rows[0].Node.ID())
	assert.Equal(t, int64(0), rows[0].Distance)
	assert.False(t, rows[0].HasPred)

	assert.Equal(t, int64(12), rows[2].Distance)
	assert.True(t, rows[2].HasPred)
	assert.Equal(t, core.NodeID(1), rows[2].Predecessor)

	last := rows[len(rows)-1]
	assert.Equal(t, iso, last.Node.ID())
	assert.False(t, last.Reachable)
	assert.Equal(t, core.Infinity, last.Distance)
}
