package metric

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Defaults(t *testing.T) {
	server := NewServer(0, "", NewRegistry())

	assert.Equal(t, "http://localhost:9090/metrics", server.Address())
}

func TestServer_StopWithoutStart(t *testing.T) {
	server := NewServer(9091, "/metrics", NewRegistry())

	require.NoError(t, server.Stop())
}

func TestServer_ServesRegisteredMetrics(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "handler_test_total",
		Help: "A test counter",
	})
	require.NoError(t, registry.RegisterCounter("test-pool", "handler_test_total", counter))
	counter.Inc()

	handler := promhttp.HandlerFor(registry.PrometheusRegistry(), promhttp.HandlerOpts{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "handler_test_total 1")
}
