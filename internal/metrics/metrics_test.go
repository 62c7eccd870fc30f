package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForTesting_Independent(t *testing.T) {
	a := NewForTesting()
	b := NewForTesting()

	a.Evaluations.WithLabelValues("good").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Evaluations.WithLabelValues("good")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Evaluations.WithLabelValues("good")))
}

func TestCollectorsRegister(t *testing.T) {
	m := NewForTesting()
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(m.Evaluations))
	require.NoError(t, reg.Register(m.EvaluationErrors))
	require.NoError(t, reg.Register(m.IndexValue))
	require.NoError(t, reg.Register(m.BatchSize))
	require.NoError(t, reg.Register(m.EventsPublished))

	m.EvaluationErrors.WithLabelValues("invalid_weights").Inc()
	m.IndexValue.Observe(75.14)

	expected := `
# HELP wqi_evaluation_errors_total Rejected evaluations by reason.
# TYPE wqi_evaluation_errors_total counter
wqi_evaluation_errors_total{reason="invalid_weights"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "wqi_evaluation_errors_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.IndexValue))
}
