package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CountsResolutions(t *testing.T) {
	r := NewRegistry()

	r.IncResolution(OutcomeCacheHit)
	r.IncResolution(OutcomeCacheHit)
	r.IncResolution(OutcomeProviderError)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.resolutions.WithLabelValues(OutcomeCacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.resolutions.WithLabelValues(OutcomeProviderError)))
}

func TestRegistry_HandlerExposesHTTPMetrics(t *testing.T) {
	r := NewRegistry()
	r.ObserveRequest(http.MethodGet, "/clubs/:id", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",route="/clubs/:id",status="200"} 1`))
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}
