// SPDX-License-Identifier: MIT
package session

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/logger"
	"github.com/katalvlaran/pathboard/metrics"
)

// Weight range of `gen random` edges.
const (
	randomMinWeight = 1
	randomMaxWeight = 9
	randomSeed      = 1
)

// fixture turns the arguments after KIND into a constructor plus any extra
// builder options.
type fixture struct {
	usage string
	args  int
	build func(args []string) (builder.Constructor, []builder.BuilderOption, error)
}

func sized(fn func(n int) builder.Constructor) func([]string) (builder.Constructor, []builder.BuilderOption, error) {
	return func(args []string) (builder.Constructor, []builder.BuilderOption, error) {
		n, err := parseInt("n", args[0])
		if err != nil {
			return nil, nil, err
		}

		return fn(n), nil, nil
	}
}

func sized2(fn func(a, b int) builder.Constructor) func([]string) (builder.Constructor, []builder.BuilderOption, error) {
	return func(args []string) (builder.Constructor, []builder.BuilderOption, error) {
		a, err := parseInt("first size", args[0])
		if err != nil {
			return nil, nil, err
		}
		b, err := parseInt("second size", args[1])
		if err != nil {
			return nil, nil, err
		}

		return fn(a, b), nil, nil
	}
}

var fixtures = map[string]fixture{
	"classic": {"gen classic", 0, func([]string) (builder.Constructor, []builder.BuilderOption, error) {
		return builder.Classic(), nil, nil
	}},
	"path":      {"gen path n", 1, sized(builder.Path)},
	"cycle":     {"gen cycle n", 1, sized(builder.Cycle)},
	"star":      {"gen star n", 1, sized(builder.Star)},
	"wheel":     {"gen wheel n", 1, sized(builder.Wheel)},
	"complete":  {"gen complete n", 1, sized(builder.Complete)},
	"bipartite": {"gen bipartite a b", 2, sized2(builder.CompleteBipartite)},
	"grid":      {"gen grid rows cols", 2, sized2(builder.Grid)},
	"random":    {"gen random n p [seed]", 2, buildRandom},
}

// buildRandom accepts an optional third argument, the seed.
func buildRandom(args []string) (builder.Constructor, []builder.BuilderOption, error) {
	n, err := parseInt("n", args[0])
	if err != nil {
		return nil, nil, err
	}
	p, err := parseProbability(args[1])
	if err != nil {
		return nil, nil, err
	}
	seed := randomSeed
	if len(args) == 3 {
		if seed, err = parseInt("seed", args[2]); err != nil {
			return nil, nil, err
		}
	}

	return builder.RandomSparse(n, p), []builder.BuilderOption{
		builder.WithSeed(int64(seed)),
		builder.WithUniformWeight(randomMinWeight, randomMaxWeight),
		builder.WithRandomColors(),
	}, nil
}

func fixtureKinds() []string {
	kinds := make([]string, 0, len(fixtures))
	for k := range fixtures {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	return kinds
}

// cmdGen appends a builder fixture anchored at the editor's default position.
func (s *Session) cmdGen(args []string) error {
	kind := strings.ToLower(args[0])
	fx, ok := fixtures[kind]
	if !ok {
		return errors.Wrapf(ErrUnknownKind, "%q (one of %v)", kind, fixtureKinds())
	}
	params := args[1:]
	extra := 0
	if kind == "random" {
		extra = 1
	}
	if len(params) < fx.args || len(params) > fx.args+extra {
		return errors.Wrapf(ErrUsage, "usage: %s", fx.usage)
	}

	if s.editor.DefaultWeight < 0 {
		return errors.Wrapf(ErrBadArgument, "default weight %d", s.editor.DefaultWeight)
	}
	ctor, opts, err := fx.build(params)
	if err != nil {
		return err
	}
	bopts := append([]builder.BuilderOption{
		builder.WithOrigin(s.editor.DefaultX, s.editor.DefaultY),
		builder.WithConstantWeight(s.editor.DefaultWeight),
	}, opts...)

	nodes, edges := s.graph.NodeCount(), s.graph.EdgeCount()
	if err := builder.Apply(s.graph, bopts, ctor); err != nil {
		return errors.Wrapf(err, "gen %s", kind)
	}
	addedNodes, addedEdges := s.graph.NodeCount()-nodes, s.graph.EdgeCount()-edges
	s.rec.Mutation(metrics.KindGenerate)
	s.log.Debug("fixture generated", zap.String(logger.FieldKind, kind),
		zap.Int(logger.FieldNodes, addedNodes), zap.Int(logger.FieldEdges, addedEdges))
	s.printf("gen %s: %d nodes, %d edges added", kind, addedNodes, addedEdges)

	return nil
}
