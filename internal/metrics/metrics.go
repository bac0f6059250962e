// Package metrics exports game progress as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pizzacut/internal/game"
)

const namespace = "pizzacut"

// Metrics observes games and records their progress. One value may observe
// several games in sequence; gauges always describe the latest snapshot.
type Metrics struct {
	steps    prometheus.Counter
	actions  *prometheus.CounterVec
	invalid  prometheus.Counter
	rewards  prometheus.Histogram
	score    prometheus.Gauge
	slices   prometheus.Gauge
	finished prometheus.Counter

	lastDone string
}

// New registers the metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		steps: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Recognised actions applied to a board.",
		}),
		actions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Recognised actions by name.",
		}, []string{"action"}),
		invalid: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_actions_total",
			Help:      "Rejected action tokens.",
		}),
		rewards: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_reward",
			Help:      "Reward returned per step.",
			Buckets:   []float64{-0.1, 0, 1, 2, 4, 8, 16, 32},
		}),
		score: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Score of the latest snapshot.",
		}),
		slices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "valid_slices",
			Help:      "Valid slices on the board of the latest snapshot.",
		}),
		finished: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Games that reached their end.",
		}),
	}
}

// ObserveEnv implements game.Observer.
func (m *Metrics) ObserveEnv(env game.Env) {
	info := env.Information
	m.score.Set(float64(info.Score))
	m.slices.Set(float64(len(info.Slices)))
	if info.Step > 0 {
		m.steps.Inc()
		m.actions.WithLabelValues(info.Action).Inc()
		m.rewards.Observe(env.Reward)
	}
	if env.Done && info.GameID != m.lastDone {
		m.lastDone = info.GameID
		m.finished.Inc()
	}
}

// ObserveInvalid implements game.Observer.
func (m *Metrics) ObserveInvalid(string) { m.invalid.Inc() }

var _ game.Observer = (*Metrics)(nil)
