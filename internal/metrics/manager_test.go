package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersCollectors(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.CounterRequests.WithLabelValues("GET", "200").Inc()
	m.CounterWorkoutsCreated.Inc()
	m.CounterWorkoutsGenerated.WithLabelValues("beginner").Add(2)
	m.HistRequestDuration.WithLabelValues("/exercises").Observe(0.02)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterWorkoutsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterWorkoutsGenerated.WithLabelValues("beginner")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["fitness_test_server_request"])
	assert.True(t, names["fitness_test_server_request_duration_seconds"])
}

func TestNewTestManager_Isolated(t *testing.T) {
	a := NewTestManager()
	b := NewTestManager()
	a.CounterUsersCreated.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CounterUsersCreated))
}
