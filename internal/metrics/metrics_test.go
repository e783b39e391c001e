package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.RecordMutation("add_date", "ok")
	m.RecordMutation("add_date", "ok")
	m.RecordMutation("add_date", "rejected")
	m.RecordStatsCache("hit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventMutationsTotal.WithLabelValues("add_date", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventMutationsTotal.WithLabelValues("add_date", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatsCacheTotal.WithLabelValues("hit")))

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordMutation("update", "ok")
		m.RecordStatsCache("miss")
	})
}
