package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzacut/internal/game"
	"pizzacut/internal/pizza"
)

func TestMetricsObserveGame(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	g, err := game.New(game.DefaultConfig(), pizza.Config{Lines: []string{"TM"}, L: 1, H: 2}, game.WithObserver(m))
	require.NoError(t, err)
	for _, a := range []string{"toggle", "bogus", "right"} {
		g.Step(a)
	}
	require.True(t, g.Done())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.steps))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("toggle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invalid))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.score))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slices))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.finished))

	// a repeated final snapshot is not a second finished game
	m.ObserveEnv(g.Env())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.finished))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}
