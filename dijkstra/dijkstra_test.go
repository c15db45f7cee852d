// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the shortest-path engine:
// input validation, the reference nine-node graph, tie-breaking, parallel
// edges, strategy equivalence and overflow behaviour.
package dijkstra_test

import (
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
)

// classicGraph builds the well-known nine-node textbook graph with nodes 0..8.
func classicGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		g.AddNode(string(rune('0'+i)), core.Position{X: i * 40, Y: 100})
	}
	for _, e := range [][3]int64{
		{0, 1, 4}, {0, 7, 8}, {1, 7, 11}, {1, 2, 8}, {7, 8, 7}, {7, 6, 1}, {2, 8, 2},
		{8, 6, 6}, {2, 3, 7}, {2, 5, 4}, {6, 5, 2}, {3, 5, 14}, {3, 4, 9}, {5, 4, 10},
	} {
		_, err := g.AddEdge(core.NodeID(e[0]), core.NodeID(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

// randomGraph builds n nodes and m random edges with weights in [0, maxW].
// Parallel edges are allowed when parallel is true.
func randomGraph(t testing.TB, rng *rand.Rand, n, m int, maxW int64, parallel bool) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode("", core.Position{})
	}
	seen := make(map[[2]int]bool)
	for added := 0; added < m; {
		a, b := rng.IntN(n), rng.IntN(n)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if !parallel && seen[[2]int{a, b}] {
			continue
		}
		seen[[2]int{a, b}] = true
		_, err := g.AddEdge(core.NodeID(a), core.NodeID(b), rng.Int64N(maxW+1))
		require.NoError(t, err)
		added++
	}

	return g
}

func TestRun_Validation(t *testing.T) {
	_, err := dijkstra.Run(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := core.NewGraph()
	g.AddNode("A", core.Position{})
	_, err = dijkstra.Run(g, 7)
	assert.True(t, errors.Is(err, dijkstra.ErrSourceNotFound))
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
	_, ok := g.QuerySource()
	assert.False(t, ok, "failed run must not start a query")

	assert.Panics(t, func() { dijkstra.WithStrategy(dijkstra.Strategy(9)) })
}

func TestParseStrategy(t *testing.T) {
	s, err := dijkstra.ParseStrategy("HEAP")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Heap, s)

	s, err = dijkstra.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.LinearScan, s)
	assert.Equal(t, "linear", s.String())

	_, err = dijkstra.ParseStrategy("bellman")
	assert.True(t, errors.Is(err, dijkstra.ErrBadStrategy))
}

func TestRun_ClassicGraph(t *testing.T) {
	for _, s := range []dijkstra.Strategy{dijkstra.LinearScan, dijkstra.Heap} {
		t.Run(s.String(), func(t *testing.T) {
			g := classicGraph(t)
			res, err := dijkstra.Run(g, 0, dijkstra.WithStrategy(s))
			require.NoError(t, err)

			want := map[core.NodeID]int64{0: 0, 1: 4, 2: 12, 3: 19, 4: 21, 5: 11, 6: 9, 7: 8, 8: 14}
			assert.Equal(t, want, res.Dist)
			assert.Equal(t, want, g.Distances())
			assert.Len(t, res.Order, 9)
			assert.Equal(t, core.NodeID(0), res.Order[0])

			for id := range want {
				assert.True(t, res.Reachable(id))
			}
			_, hasPred := res.Prev[0]
			assert.False(t, hasPred, "source has no predecessor")

			w, ok := g.WeightBetween(0, 7)
			require.True(t, ok)
			assert.Equal(t, int64(8), w)
			_, ok = g.WeightBetween(0, 5)
			assert.False(t, ok)

			path, err := dijkstra.ReconstructPath(g, 0, 2)
			require.NoError(t, err)
			require.Len(t, path, 2)
			assert.True(t, path[0].Connects(1, 2))
			assert.True(t, path[1].Connects(0, 1))
		})
	}
}

func TestRun_PredecessorsAreTightEdges(t *testing.T) {
	g := classicGraph(t)
	res, err := dijkstra.Run(g, 3)
	require.NoError(t, err)

	for v, p := range res.Prev {
		w, ok := g.WeightBetween(p, v)
		require.True(t, ok)
		assert.Equal(t, res.Dist[p]+w, res.Dist[v], "pred edge of %d must be tight", v)
	}
	// No edge can still be relaxed.
	for _, e := range g.Edges() {
		a, b := e.Nodes()
		assert.LessOrEqual(t, res.Dist[b], res.Dist[a]+e.Weight())
		assert.LessOrEqual(t, res.Dist[a], res.Dist[b]+e.Weight())
	}
}

func TestRun_Idempotent(t *testing.T) {
	g := classicGraph(t)
	first, err := dijkstra.Run(g, 4)
	require.NoError(t, err)
	second, err := dijkstra.Run(g, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRun_TieBreakLastInsertedWins(t *testing.T) {
	// S-A and S-B tie at 1; both reach T at 2.
	g := core.NewGraph()
	s := g.AddNode("S", core.Position{}).ID()
	a := g.AddNode("A", core.Position{}).ID()
	b := g.AddNode("B", core.Position{}).ID()
	tt := g.AddNode("T", core.Position{}).ID()
	for _, e := range [][2]core.NodeID{{s, a}, {s, b}, {a, tt}, {b, tt}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	for _, st := range []dijkstra.Strategy{dijkstra.LinearScan, dijkstra.Heap} {
		res, err := dijkstra.Run(g, s, dijkstra.WithStrategy(st))
		require.NoError(t, err)
		assert.Equal(t, []core.NodeID{s, b, a, tt}, res.Order, st.String())
		assert.Equal(t, b, res.Prev[tt], st.String())
	}
}

func TestRun_ParallelEdgesUseLastAdded(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode("A", core.Position{}).ID()
	b := g.AddNode("B", core.Position{}).ID()
	_, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)
	last, err := g.AddEdge(a, b, 5)
	require.NoError(t, err)

	d, err := dijkstra.MinDistance(g, a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d, "later parallel edge defines the hop cost")

	path, err := dijkstra.ReconstructPath(g, a, b)
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, last.ID(), path[0].ID())

	// Removing the last edge exposes the older one.
	g.RemoveEdge(last.ID())
	d, err = dijkstra.MinDistance(g, b, a)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d)
}

func TestRun_UnreachableAndIsolated(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode("A", core.Position{}).ID()
	b := g.AddNode("B", core.Position{}).ID()
	c := g.AddNode("C", core.Position{}).ID()
	_, err := g.AddEdge(a, b, 0)
	require.NoError(t, err)

	res, err := dijkstra.Run(g, a)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Dist[b], "zero-weight edges are traversable")
	assert.Equal(t, core.Infinity, res.Dist[c])
	assert.False(t, res.Reachable(c))
	assert.NotContains(t, res.Prev, c)
	assert.Equal(t, []core.NodeID{a, b}, res.Order)

	_, err = dijkstra.ReconstructPath(g, a, c)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPathFound))

	_, err = dijkstra.MinDistance(g, a, c)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPathFound))

	_, err = dijkstra.MinDistance(g, a, 99)
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
}

func TestRun_SaturatesInsteadOfOverflowing(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode("A", core.Position{}).ID()
	b := g.AddNode("B", core.Position{}).ID()
	c := g.AddNode("C", core.Position{}).ID()
	_, err := g.AddEdge(a, b, core.Infinity-1)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 5)
	require.NoError(t, err)

	res, err := dijkstra.Run(g, a)
	require.NoError(t, err)
	assert.Equal(t, core.Infinity-1, res.Dist[b])
	assert.Equal(t, core.Infinity, res.Dist[c])
	assert.NotContains(t, res.Prev, c)
}

func TestRun_StrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 25; round++ {
		// Small weights and parallel edges make ties frequent.
		g := randomGraph(t, rng, 30, 70, 3, true)
		src := core.NodeID(rng.IntN(30))

		lin, err := dijkstra.Run(g, src, dijkstra.WithStrategy(dijkstra.LinearScan))
		require.NoError(t, err)
		hp, err := dijkstra.Run(g, src, dijkstra.WithStrategy(dijkstra.Heap))
		require.NoError(t, err)

		assert.Equal(t, lin.Order, hp.Order, "round %d", round)
		assert.Equal(t, lin.Dist, hp.Dist, "round %d", round)
		assert.Equal(t, lin.Prev, hp.Prev, "round %d", round)
	}
}

func TestRun_ObserverSeesSettleOrder(t *testing.T) {
	g := classicGraph(t)
	var seen []core.NodeID
	var last int64
	res, err := dijkstra.Run(g, 0, dijkstra.WithObserver(func(id core.NodeID, d int64) {
		assert.GreaterOrEqual(t, d, last, "settle distances never decrease")
		last = d
		seen = append(seen, id)
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Order, seen)
}

func TestRun_LogsOneDebugEntry(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	g := classicGraph(t)
	_, err := dijkstra.Run(g, 0, dijkstra.WithLogger(zap.New(obs)), dijkstra.WithLogger(nil))
	require.NoError(t, err)

	entries := logs.FilterMessage("dijkstra run finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(9), fields["settled"])
	assert.Equal(t, "linear", fields["strategy"])
}
