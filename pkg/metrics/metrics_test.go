package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/qwiky-admin-proxy/pkg/metrics"
)

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveHTTP("GET", "/api/status", 200, 10*time.Millisecond)
	m.ObserveHTTP("GET", "/api/status", 200, 20*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/status", "200")))
}

func TestMetrics_ObserveUpstream(t *testing.T) {
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveUpstream("cancel_booking", "timeout", time.Second)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("cancel_booking", "timeout")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("cancel_booking", "200")))
}
