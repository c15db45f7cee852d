// SPDX-License-Identifier: MIT
package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/bfs"
	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/logger"
	"github.com/katalvlaran/pathboard/metrics"
	"github.com/katalvlaran/pathboard/prim_kruskal"
)

// command describes one editor command. maxArgs < 0 means unbounded.
type command struct {
	name    string
	usage   string
	summary string
	minArgs int
	maxArgs int
	run     func(s *Session, args []string) error
}

var (
	registry []command
	byName   map[string]int
)

func init() {
	registry = []command{
		{"add", "add [label] [x y]", "add a node", 0, 3, (*Session).cmdAdd},
		{"connect", "connect A B [w]", "connect two nodes", 2, 3, (*Session).cmdConnect},
		{"weight", "weight E w", "set an edge weight", 2, 2, (*Session).cmdWeight},
		{"label", "label N text", "rename a node", 2, -1, (*Session).cmdLabel},
		{"move", "move N x y", "move a node", 3, 3, (*Session).cmdMove},
		{"color", "color N #rrggbb", "recolor a node", 2, 2, (*Session).cmdColor},
		{"at", "at x y", "find the node under a point", 2, 2, (*Session).cmdAt},
		{"rm", "rm N", "remove a node and its edges", 1, 1, (*Session).cmdRemoveNode},
		{"rm-edge", "rm-edge E", "remove an edge", 1, 1, (*Session).cmdRemoveEdge},
		{"path", "path A B", "find and highlight the shortest path", 2, 2, (*Session).cmdPath},
		{"dist", "dist S", "distance table from a node", 1, 1, (*Session).cmdDist},
		{"reach", "reach S [maxw]", "hop counts from a node", 1, 2, (*Session).cmdReach},
		{"components", "components", "list connected components", 0, 0, (*Session).cmdComponents},
		{"mst", "mst [root]", "highlight a minimum spanning tree", 0, 1, (*Session).cmdMST},
		{"reset", "reset", "clear the highlighted path", 0, 0, (*Session).cmdReset},
		{"nodes", "nodes", "list nodes", 0, 0, (*Session).cmdNodes},
		{"edges", "edges", "list edges", 0, 0, (*Session).cmdEdges},
		{"gen", "gen KIND [args]", "append a fixture: " + strings.Join(fixtureKinds(), ", "), 1, 4, (*Session).cmdGen},
		{"stats", "stats", "graph and session counters", 0, 0, (*Session).cmdStats},
		{"help", "help", "this list", 0, 0, (*Session).cmdHelp},
	}
	byName = make(map[string]int, len(registry))
	for i, c := range registry {
		byName[c.name] = i
	}
}

func lookup(name string) (command, bool) {
	i, ok := byName[name]
	if !ok {
		return command{}, false
	}

	return registry[i], true
}

func (s *Session) engineOptions() []dijkstra.Option {
	return []dijkstra.Option{dijkstra.WithStrategy(s.strategy), dijkstra.WithLogger(s.log)}
}

func (s *Session) cmdAdd(args []string) error {
	label := s.editor.DefaultLabel
	pos := core.Position{X: s.editor.DefaultX, Y: s.editor.DefaultY}
	var err error
	switch len(args) {
	case 1:
		label = args[0]
	case 2:
		pos, err = parsePosition(args[0], args[1])
	case 3:
		label = args[0]
		pos, err = parsePosition(args[1], args[2])
	}
	if err != nil {
		return err
	}

	n := s.graph.AddNode(label, pos)
	s.rec.Mutation(metrics.KindAddNode)
	s.log.Debug("node added", logger.Node(n.ID()), zap.String(logger.FieldLabel, n.Label))
	s.printf("node %d added: %s at (%d, %d)", n.ID(), n.Label, n.Pos.X, n.Pos.Y)

	return nil
}

func (s *Session) cmdConnect(args []string) error {
	a, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	b, err := parseNodeID(args[1])
	if err != nil {
		return err
	}
	w := s.editor.DefaultWeight
	if len(args) == 3 {
		if w, err = parseWeight(args[2]); err != nil {
			return err
		}
	}

	e, err := s.graph.AddEdge(a, b, w)
	if err != nil {
		return err
	}
	s.rec.Mutation(metrics.KindAddEdge)
	s.log.Debug("edge added", logger.Edge(e.ID()), zap.Int64(logger.FieldWeight, w))
	s.printf("edge %d added: %s -- %s, weight %d", e.ID(), s.nodeName(a), s.nodeName(b), w)

	return nil
}

func (s *Session) cmdWeight(args []string) error {
	id, err := parseEdgeID(args[0])
	if err != nil {
		return err
	}
	w, err := parseWeight(args[1])
	if err != nil {
		return err
	}
	if err := s.graph.SetWeight(id, w); err != nil {
		return err
	}
	s.rec.Mutation(metrics.KindSetWeight)
	s.printf("edge %d weight %d", id, w)

	return nil
}

func (s *Session) cmdLabel(args []string) error {
	id, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	label := strings.Join(args[1:], " ")
	if err := s.graph.SetLabel(id, label); err != nil {
		return err
	}
	s.rec.Mutation(metrics.KindEditNode)
	s.printf("node %d label %s", id, label)

	return nil
}

func (s *Session) cmdMove(args []string) error {
	id, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	pos, err := parsePosition(args[1], args[2])
	if err != nil {
		return err
	}
	if err := s.graph.MoveNode(id, pos); err != nil {
		return err
	}
	s.rec.Mutation(metrics.KindEditNode)
	s.printf("node %d moved to (%d, %d)", id, pos.X, pos.Y)

	return nil
}

func (s *Session) cmdColor(args []string) error {
	id, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	c, err := parseColor(args[1])
	if err != nil {
		return err
	}
	if err := s.graph.SetColor(id, c); err != nil {
		return err
	}
	s.rec.Mutation(metrics.KindEditNode)
	s.printf("node %d color %s", id, c.Hex())

	return nil
}

func (s *Session) cmdAt(args []string) error {
	pos, err := parsePosition(args[0], args[1])
	if err != nil {
		return err
	}
	n, ok := s.graph.NodeAt(pos, s.editor.NodeRadius)
	if !ok {
		s.printf("no node at (%d, %d)", pos.X, pos.Y)
		return nil
	}
	s.printf("node %s at (%d, %d)", s.nodeName(n.ID()), n.Pos.X, n.Pos.Y)

	return nil
}

// cmdRemoveNode is silent for unknown identities.
func (s *Session) cmdRemoveNode(args []string) error {
	id, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	if !s.graph.HasNode(id) {
		return nil
	}
	edges := len(s.graph.IncidentEdges(id))
	s.graph.RemoveNode(id)
	s.rec.Mutation(metrics.KindRemoveNode)
	s.log.Debug("node removed", logger.Node(id), zap.Int(logger.FieldEdges, edges))
	s.printf("node %d removed with %d edges", id, edges)

	return nil
}

// cmdRemoveEdge is silent for unknown identities.
func (s *Session) cmdRemoveEdge(args []string) error {
	id, err := parseEdgeID(args[0])
	if err != nil {
		return err
	}
	if !s.graph.HasEdge(id) {
		return nil
	}
	s.graph.RemoveEdge(id)
	s.rec.Mutation(metrics.KindRemoveEdge)
	s.printf("edge %d removed", id)

	return nil
}

func (s *Session) cmdPath(args []string) error {
	a, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	b, err := parseNodeID(args[1])
	if err != nil {
		return err
	}
	if a == b {
		s.rec.PathQuery(metrics.OutcomeError)
		return errors.Wrapf(ErrSameNode, "node %d", a)
	}
	if !s.graph.HasNode(b) {
		s.rec.PathQuery(metrics.OutcomeError)
		return errors.Wrapf(core.ErrNodeNotFound, "node %d", b)
	}

	start := time.Now()
	rt, err := dijkstra.ShortestPath(s.graph, a, b, s.engineOptions()...)
	elapsed := time.Since(start)
	switch {
	case errors.Is(err, dijkstra.ErrNoPathFound):
		s.rec.ObserveRun(s.strategy.String(), elapsed)
		s.rec.PathQuery(metrics.OutcomeNoPath)
		return errors.Wrapf(err, "%s to %s", s.nodeName(a), s.nodeName(b))
	case err != nil:
		s.rec.PathQuery(metrics.OutcomeError)
		return err
	}
	s.rec.ObserveRun(s.strategy.String(), elapsed)
	s.rec.PathQuery(metrics.OutcomeFound)
	s.log.Info("path found",
		zap.Int(logger.FieldSource, int(a)),
		zap.Int(logger.FieldDest, int(b)),
		zap.Int64(logger.FieldDistance, rt.Distance),
		zap.Int(logger.FieldHops, rt.Hops()),
		zap.Duration(logger.FieldElapsed, elapsed),
	)
	s.printf("shortest path %s -> %s: distance %d, %d hops", s.nodeName(a), s.nodeName(b), rt.Distance, rt.Hops())
	s.printf("route: %s", s.chain(rt.Nodes()))

	return nil
}

func (s *Session) cmdDist(args []string) error {
	src, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	start := time.Now()
	if _, err := dijkstra.Run(s.graph, src, s.engineOptions()...); err != nil {
		return err
	}
	s.rec.ObserveRun(s.strategy.String(), time.Since(start))

	rows, err := dijkstra.Table(s.graph)
	if err != nil {
		return err
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		via := "-"
		if r.HasPred {
			via = s.nodeName(r.Predecessor)
		}
		out = append(out, []string{strconv.Itoa(int(r.Node.ID())), r.Node.Label, formatDistance(r.Distance), via})
	}
	s.printf("distances from %s", s.nodeName(src))

	return s.table([]string{"Node", "Label", "Distance", "Via"}, out)
}

func (s *Session) cmdReach(args []string) error {
	src, err := parseNodeID(args[0])
	if err != nil {
		return err
	}
	var opts []bfs.Option
	if len(args) == 2 {
		w, err := parseWeight(args[1])
		if err != nil {
			return err
		}
		opts = append(opts, bfs.WithMaxWeight(s.graph, w))
	}
	res, err := bfs.BFS(s.graph, src, opts...)
	if err != nil {
		return err
	}

	out := make([][]string, 0, len(res.Order))
	for _, id := range res.Order {
		parent := "-"
		if p, ok := res.Parent[id]; ok {
			parent = s.nodeName(p)
		}
		out = append(out, []string{s.nodeName(id), strconv.Itoa(res.Depth[id]), parent})
	}
	s.printf("%d of %d nodes reachable from %s", len(res.Order), s.graph.NodeCount(), s.nodeName(src))

	return s.table([]string{"Node", "Hops", "Parent"}, out)
}

func (s *Session) cmdComponents(_ []string) error {
	comps, err := bfs.Components(s.graph)
	if err != nil {
		return err
	}
	s.printf("%d components", len(comps))
	for i, c := range comps {
		s.printf("  %d: %s", i+1, s.chain(c))
	}

	return nil
}

// cmdMST uses Kruskal, or Prim grown from root when one is given.
func (s *Session) cmdMST(args []string) error {
	opts := []prim_kruskal.Option{prim_kruskal.WithMethod(prim_kruskal.MethodKruskal)}
	if len(args) == 1 {
		root, err := parseNodeID(args[0])
		if err != nil {
			return err
		}
		opts = []prim_kruskal.Option{prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(root)}
	}
	edges, total, err := prim_kruskal.Compute(s.graph, opts...)
	if err != nil {
		return errors.Wrap(err, "mst")
	}
	s.graph.HighlightPath(edges)
	s.log.Info("spanning tree found",
		zap.Int(logger.FieldEdges, len(edges)),
		zap.Int64(logger.FieldWeight, total),
	)
	s.printf("spanning tree: %d edges, total weight %d", len(edges), total)

	return nil
}

func (s *Session) cmdReset(_ []string) error {
	s.graph.ClearHighlights()
	s.printf("highlights cleared")

	return nil
}

func (s *Session) cmdNodes(_ []string) error {
	nodes := s.graph.Nodes()
	out := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, []string{
			strconv.Itoa(int(n.ID())), n.Label,
			strconv.Itoa(n.Pos.X), strconv.Itoa(n.Pos.Y), n.Color.Hex(),
		})
	}

	return s.table([]string{"ID", "Label", "X", "Y", "Color"}, out)
}

func (s *Session) cmdEdges(_ []string) error {
	edges := s.graph.Edges()
	out := make([][]string, 0, len(edges))
	for _, e := range edges {
		a, b := e.Nodes()
		mark := ""
		if e.IsHighlighted() {
			mark = "*"
		}
		out = append(out, []string{
			strconv.Itoa(int(e.ID())), s.nodeName(a), s.nodeName(b),
			strconv.FormatInt(e.Weight(), 10), mark,
		})
	}

	return s.table([]string{"ID", "A", "B", "Weight", "Path"}, out)
}

func (s *Session) cmdStats(_ []string) error {
	st := s.graph.Stats()
	query := "-"
	if st.HasQuery {
		query = s.nodeName(st.QuerySource)
	}
	if err := s.table([]string{"Nodes", "Edges", "Highlighted", "Parallel pairs", "Query source", "Reached"}, [][]string{{
		strconv.Itoa(st.NodeCount), strconv.Itoa(st.EdgeCount), strconv.Itoa(st.HighlightedCount),
		strconv.Itoa(st.ParallelPairs), query, strconv.Itoa(st.ReachedCount),
	}}); err != nil {
		return err
	}

	samples, err := s.rec.Snapshot()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	if len(samples) == 0 {
		return nil
	}
	out := make([][]string, 0, len(samples))
	for _, smp := range samples {
		out = append(out, []string{smp.Name, smp.Labels, strconv.FormatFloat(smp.Value, 'g', -1, 64)})
	}

	return s.table([]string{"Metric", "Labels", "Value"}, out)
}

func (s *Session) cmdHelp(_ []string) error {
	out := make([][]string, 0, len(registry))
	for _, c := range registry {
		out = append(out, []string{c.usage, c.summary})
	}

	return s.table([]string{"Command", "Description"}, out)
}
