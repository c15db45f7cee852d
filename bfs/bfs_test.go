// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/bfs"
	"github.com/katalvlaran/pathboard/core"
)

// chain builds n nodes connected 0-1-2-...-(n-1) with the given weight.
func chain(t testing.TB, n int, w int64) (*core.Graph, []core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	ids := make([]core.NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode("", core.Position{X: i}).ID()
		if i > 0 {
			_, err := g.AddEdge(ids[i-1], ids[i], w)
			require.NoError(t, err)
		}
	}

	return g, ids
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 3)
	assert.True(t, errors.Is(err, bfs.ErrStartNodeNotFound))

	id := g.AddNode("A", core.Position{}).ID()
	_, err = bfs.BFS(g, id, bfs.WithMaxDepth(-1))
	assert.True(t, errors.Is(err, bfs.ErrOptionViolation))

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestBFS_CycleAndDepths covers a 4-cycle A-B-C-D-A.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := core.NewGraph()
	var ids []core.NodeID
	for _, l := range []string{"A", "B", "C", "D"} {
		ids = append(ids, g.AddNode(l, core.Position{}).ID())
	}
	for i := range ids {
		_, err := g.AddEdge(ids[i], ids[(i+1)%4], 9)
		require.NoError(t, err)
	}

	res, err := bfs.BFS(g, ids[0])
	require.NoError(t, err)
	// A's adjacency lists A-B before D-A.
	assert.Equal(t, []core.NodeID{ids[0], ids[1], ids[3], ids[2]}, res.Order)
	assert.Equal(t, map[core.NodeID]int{ids[0]: 0, ids[1]: 1, ids[3]: 1, ids[2]: 2}, res.Depth)
	assert.Equal(t, ids[1], res.Parent[ids[2]])
	assert.NotContains(t, res.Parent, ids[0])

	path, err := res.PathTo(ids[2])
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids[0], ids[1], ids[2]}, path)

	path, err = res.PathTo(ids[0])
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{ids[0]}, path)
}

// TestBFS_Disconnected ensures only the start component is explored.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	x := g.AddNode("X", core.Position{}).ID()
	y := g.AddNode("Y", core.Position{}).ID()
	p := g.AddNode("P", core.Position{}).ID()
	q := g.AddNode("Q", core.Position{}).ID()
	lone := g.AddNode("L", core.Position{}).ID()
	_, _ = g.AddEdge(x, y, 1)
	_, _ = g.AddEdge(p, q, 1)

	got, err := bfs.Reachable(g, x)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{x, y}, got)

	res, err := bfs.BFS(g, p)
	require.NoError(t, err)
	assert.False(t, res.Reached(x))
	_, err = res.PathTo(x)
	assert.True(t, errors.Is(err, bfs.ErrNotReached))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]core.NodeID{{x, y}, {p, q}, {lone}}, comps)
}

// TestBFS_MaxDepth verifies positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	g, ids := chain(t, 3, 1)

	res, err := bfs.BFS(g, ids[0], bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, ids[:2], res.Order)

	res, err = bfs.BFS(g, ids[0], bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, ids, res.Order)

	res, err = bfs.BFS(g, ids[0], bfs.WithMaxDepth(10))
	require.NoError(t, err)
	assert.Equal(t, ids, res.Order)
}

// TestBFS_Filters prunes edges explicitly and by weight.
func TestBFS_Filters(t *testing.T) {
	g, ids := chain(t, 3, 1)
	_, err := g.AddEdge(ids[0], ids[2], 50)
	require.NoError(t, err)

	res, err := bfs.BFS(g, ids[0], bfs.WithFilterEdge(func(curr core.NodeID, a core.Adjacent) bool {
		return !(curr == ids[1] && a.Neighbor == ids[2])
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Depth[ids[2]], "direct edge still reaches C")

	res, err = bfs.BFS(g, ids[0], bfs.WithMaxWeight(g, 10))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Depth[ids[2]], "heavy edge is skipped")
}

// TestBFS_ParallelDedup ensures parallel edges do not enqueue twice.
func TestBFS_ParallelDedup(t *testing.T) {
	g, ids := chain(t, 2, 1)
	_, _ = g.AddEdge(ids[0], ids[1], 2)

	var enq []core.NodeID
	res, err := bfs.BFS(g, ids[0], bfs.WithOnEnqueue(func(id core.NodeID, _ int) { enq = append(enq, id) }))
	require.NoError(t, err)
	assert.Equal(t, ids, res.Order)
	assert.Equal(t, ids, enq)
}

// TestBFS_OnVisitAborts propagates hook errors.
func TestBFS_OnVisitAborts(t *testing.T) {
	g, ids := chain(t, 5, 1)
	stop := errors.New("stop")
	res, err := bfs.BFS(g, ids[0], bfs.WithOnVisit(func(id core.NodeID, d int) error {
		if d == 2 {
			return stop
		}
		return nil
	}))
	assert.True(t, errors.Is(err, stop))
	assert.Len(t, res.Order, 3)
}

// TestBFS_Cancellation verifies that a cancelled context halts the search.
func TestBFS_Cancellation(t *testing.T) {
	g, ids := chain(t, 100, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, ids[0], bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_LeavesQueryStateAlone checks that hop searches do not touch
// shortest-path state.
func TestBFS_LeavesQueryStateAlone(t *testing.T) {
	g, ids := chain(t, 3, 4)
	require.NoError(t, g.ResetQuery(ids[2]))

	_, err := bfs.BFS(g, ids[0])
	require.NoError(t, err)
	src, ok := g.QuerySource()
	require.True(t, ok)
	assert.Equal(t, ids[2], src)
}
