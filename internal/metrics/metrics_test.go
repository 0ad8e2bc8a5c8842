package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.IncrementClassified("Person Crime")
	m.IncrementClassified("Person Crime")
	m.IncrementEvaluation("Person Crime", "ineligible")
	m.IncrementChargeError("statute")
	m.ObserveCacheLookup(true)
	m.ObserveCacheLookup(false)
	m.ObserveCacheLookup(false)
	m.ObserveEvaluateLatency(50 * time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChargesClassified.WithLabelValues("Person Crime")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("Person Crime", "ineligible")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChargeErrors.WithLabelValues("statute")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.EvaluateLatency))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.IncrementChargeError("date")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.ChargeErrors.WithLabelValues("date")))
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementClassified("Violation")
		m.IncrementEvaluation("Violation", "eligible")
		m.IncrementChargeError("other")
		m.ObserveCacheLookup(true)
		m.ObserveEvaluateLatency(time.Millisecond)
	})
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "unused.prom")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := New()
	m.IncrementEvaluation("Traffic Offense", "eligible")

	path := filepath.Join(t.TempDir(), "expunge.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `expunge_evaluations_total{status="eligible",type="Traffic Offense"} 1`), out)
}
