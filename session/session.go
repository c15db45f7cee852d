// SPDX-License-Identifier: MIT
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/config"
	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/logger"
	"github.com/katalvlaran/pathboard/metrics"
)

// Session interprets editor commands against one graph.
type Session struct {
	graph    *core.Graph
	editor   config.EditorConfig
	strategy dijkstra.Strategy
	log      *zap.Logger
	rec      *metrics.Recorder
	out      io.Writer
	prompt   string
}

// Option configures a Session.
type Option func(*Session)

// WithConfig applies the editor defaults and engine strategy of cfg.
// A nil cfg is ignored.
func WithConfig(cfg *config.Config) Option {
	return func(s *Session) {
		if cfg != nil {
			s.editor = cfg.Editor
			s.strategy = cfg.Strategy()
		}
	}
}

// WithGraph makes the session edit g instead of a fresh graph.
// A nil g is ignored.
func WithGraph(g *core.Graph) Option {
	return func(s *Session) {
		if g != nil {
			s.graph = g
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(s *Session) { s.rec = r }
}

// WithPrompt makes Run print prompt before reading each line.
func WithPrompt(prompt string) Option {
	return func(s *Session) { s.prompt = prompt }
}

// New creates a session writing command output to out.
func New(out io.Writer, opts ...Option) *Session {
	if out == nil {
		out = io.Discard
	}
	s := &Session{
		graph:    core.NewGraph(),
		editor:   config.Default().Editor,
		strategy: dijkstra.LinearScan,
		log:      zap.NewNop(),
		rec:      metrics.NewRecorder(),
		out:      out,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.syncSize()

	return s
}

// Graph returns the edited graph.
func (s *Session) Graph() *core.Graph { return s.graph }

// Recorder returns the metrics recorder.
func (s *Session) Recorder() *metrics.Recorder { return s.rec }

// Exec runs one command line. Blank lines and lines starting with '#' are
// ignored. The graph is unchanged when an error is returned.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := shellquote.Split(line)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "tokenize"), ErrBadArgument)
	}
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	cmd, ok := lookup(name)
	if !ok {
		return errors.Wrapf(ErrUnknownCommand, "%q (try help)", args[0])
	}
	params := args[1:]
	if len(params) < cmd.minArgs || (cmd.maxArgs >= 0 && len(params) > cmd.maxArgs) {
		return errors.Wrapf(ErrUsage, "usage: %s", cmd.usage)
	}

	s.log.Debug("exec", logger.Command(name), zap.Strings("args", params))
	if err := cmd.run(s, params); err != nil {
		s.log.Debug("command failed", logger.Command(name), zap.Error(err))
		return err
	}
	s.syncSize()

	return nil
}

// Run executes every line read from r until EOF or ctx is done. Command
// errors are reported on the output as "error: ..." and do not stop the loop.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !sc.Scan() {
			break
		}
		if err := s.Exec(sc.Text()); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}

	return sc.Err()
}

// syncSize publishes the board size gauges.
func (s *Session) syncSize() {
	s.rec.SetGraphSize(s.graph.NodeCount(), s.graph.EdgeCount())
}

// printf writes one formatted line to the output.
func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}
