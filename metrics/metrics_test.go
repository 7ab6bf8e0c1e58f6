package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.AuditEntriesTotal.WithLabelValues("CREATE").Inc()
	m.AuditEntriesTotal.WithLabelValues("CREATE").Inc()
	m.BackupRunsTotal.WithLabelValues("success").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuditEntriesTotal.WithLabelValues("CREATE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackupRunsTotal.WithLabelValues("success")))

	// Registering twice on the same registry panics
	assert.Panics(t, func() { New(registry) })
}

func TestHandler(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)
	m.HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `accountapp_http_requests_total{method="GET",route="/health",status="200"} 1`))
}
