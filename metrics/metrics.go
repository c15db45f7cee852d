// SPDX-License-Identifier: MIT

// Package metrics holds the prometheus instruments of a pathboard session.
//
// Every Recorder owns its own registry, so several sessions (or tests) never
// collide on metric names. A nil *Recorder is valid and records nothing.
package metrics

import (
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Namespace prefixes every metric name.
const Namespace = "pathboard"

// Mutation kinds.
const (
	KindAddNode    = "add_node"
	KindRemoveNode = "remove_node"
	KindAddEdge    = "add_edge"
	KindRemoveEdge = "remove_edge"
	KindSetWeight  = "set_weight"
	KindEditNode   = "edit_node"
	KindGenerate   = "generate"
)

// Path query outcomes.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

// Recorder groups the instruments.
type Recorder struct {
	reg *prometheus.Registry

	mutations   *prometheus.CounterVec
	pathQueries *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	nodes       prometheus.Gauge
	edges       prometheus.Gauge
}

// NewRecorder registers all instruments on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "mutations_total",
			Help:      "Total number of applied graph mutations, labelled by kind.",
		}, []string{"kind"}),
		pathQueries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "path_queries_total",
			Help:      "Total number of shortest-path queries, labelled by outcome.",
		}, []string{"outcome"}),
		runDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "engine_run_duration_seconds",
			Help:      "Shortest-path engine run latency, labelled by strategy.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"strategy"}),
		nodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_nodes",
			Help:      "Current number of nodes on the board.",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_edges",
			Help:      "Current number of edges on the board.",
		}),
	}
}

// Registry exposes the underlying registry, e.g. for promhttp or testutil.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.reg
}

// Mutation counts one applied mutation of the given kind.
func (r *Recorder) Mutation(kind string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(kind).Inc()
}

// PathQuery counts one path query with the given outcome.
func (r *Recorder) PathQuery(outcome string) {
	if r == nil {
		return
	}
	r.pathQueries.WithLabelValues(outcome).Inc()
}

// ObserveRun records the duration of one engine run.
func (r *Recorder) ObserveRun(strategy string, d time.Duration) {
	if r == nil {
		return
	}
	r.runDuration.WithLabelValues(strategy).Observe(d.Seconds())
}

// SetGraphSize updates the board size gauges.
func (r *Recorder) SetGraphSize(nodes, edges int) {
	if r == nil {
		return
	}
	r.nodes.Set(float64(nodes))
	r.edges.Set(float64(edges))
}

// Sample is one flattened series value.
type Sample struct {
	Name   string // metric name, with _count/_sum suffix for histograms
	Labels string // "k=v,k=v", sorted by key; empty when unlabelled
	Value  float64
}

// Snapshot gathers the registry into flat samples ordered by name, then labels.
func (r *Recorder) Snapshot() ([]Sample, error) {
	if r == nil {
		return nil, nil
	}
	families, err := r.reg.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := labelString(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: m.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: m.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				out = append(out,
					Sample{Name: mf.GetName() + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: mf.GetName() + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})

	return out, nil
}

func labelString(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	sort.Strings(parts)

	return strings.Join(parts, ",")
}
