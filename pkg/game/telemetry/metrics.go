// Package telemetry exposes prometheus collectors for solver runs.
package telemetry

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"keymaze/pkg/game/solver"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
	OutcomeStateLimit = "state_limit"
	OutcomeError      = "error"
)

// Metrics holds the collectors for one registry.
type Metrics struct {
	runs      *prometheus.CounterVec
	expanded  *prometheus.CounterVec
	pruned    *prometheus.CounterVec
	visited   *prometheus.HistogramVec
	duration  *prometheus.HistogramVec
	bestSteps *prometheus.GaugeVec
}

// NewMetrics creates the solver collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keymaze_solve_runs_total",
			Help: "Total solver runs by outcome",
		}, []string{"frontier", "branching", "outcome"}),
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keymaze_solve_expanded_total",
			Help: "Total configurations expanded",
		}, []string{"frontier", "branching"}),
		pruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keymaze_solve_pruned_total",
			Help: "Total child configurations dropped as already visited",
		}, []string{"frontier", "branching"}),
		visited: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "keymaze_solve_visited_configurations",
			Help:    "Distinct configurations held in the visited set per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}, []string{"frontier", "branching"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "keymaze_solve_duration_seconds",
			Help:    "Solver run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}, []string{"frontier", "branching"}),
		bestSteps: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "keymaze_solve_steps",
			Help: "Minimum total steps of the last solved run per puzzle",
		}, []string{"puzzle"}),
	}

	for _, c := range []prometheus.Collector{m.runs, m.expanded, m.pruned, m.visited, m.duration, m.bestSteps} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one solver run of the named puzzle.
func (m *Metrics) Observe(puzzle string, res solver.Result, err error) {
	frontier, branching := res.Frontier.String(), res.Branching.String()

	m.runs.WithLabelValues(frontier, branching, outcome(err)).Inc()
	m.expanded.WithLabelValues(frontier, branching).Add(float64(res.Stats.Expanded))
	m.pruned.WithLabelValues(frontier, branching).Add(float64(res.Stats.Pruned))
	m.visited.WithLabelValues(frontier, branching).Observe(float64(res.Stats.Visited))
	m.duration.WithLabelValues(frontier, branching).Observe(res.Stats.Elapsed.Seconds())
	if err == nil {
		m.bestSteps.WithLabelValues(puzzle).Set(float64(res.Steps))
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSolved
	case errors.Is(err, solver.ErrNoSolution):
		return OutcomeNoSolution
	case errors.Is(err, solver.ErrStateLimit):
		return OutcomeStateLimit
	default:
		return OutcomeError
	}
}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
