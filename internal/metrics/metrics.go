// Package metrics exports interpreter activity as Prometheus counters.
package metrics

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/phanxgames/turtle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is a turtle.Observer that counts executed and skipped commands
// per actor. It owns its registry so several recorders can coexist in tests.
type Recorder struct {
	registry *prometheus.Registry
	executed *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	depth    prometheus.Histogram
}

// NewRecorder creates a recorder with a private registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		executed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turtle_commands_executed_total",
				Help: "Commands visited by the interpreter, including skipped ones.",
			},
			[]string{"actor"},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turtle_commands_skipped_total",
				Help: "Commands the actor could not execute.",
			},
			[]string{"actor", "command"},
		),
		depth: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "turtle_command_depth",
				Help:    "Tree depth of executed leaves.",
				Buckets: prometheus.LinearBuckets(1, 1, 8),
			},
		),
	}
	r.registry.MustRegister(r.executed, r.skipped, r.depth)
	return r
}

// OnStep implements turtle.Observer.
func (r *Recorder) OnStep(ev turtle.StepEvent) {
	name := ""
	if ev.Actor != nil {
		name = ev.Actor.Name
	}
	r.executed.WithLabelValues(name).Inc()
	if ev.Skipped {
		r.skipped.WithLabelValues(name, commandKind(ev.Command)).Inc()
	}
	if ev.Node != nil {
		r.depth.Observe(float64(ev.Node.Depth()))
	}
}

// commandKind returns a bounded label for cmd: the verb of its listing
// ("jump", "swim") or its Go type name, never its arguments.
func commandKind(cmd turtle.Command) string {
	if l, ok := cmd.(turtle.Lister); ok {
		if verb, _, found := strings.Cut(l.Listing(), "("); found && verb != "" {
			return verb
		}
	}
	name := fmt.Sprintf("%T", cmd)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimPrefix(name, "*")
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
