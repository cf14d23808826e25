package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RecordTargetBatch(t *testing.T) {
	manager := NewManager(WithRegistry(prometheus.NewRegistry()))

	manager.RecordTargetBatch("sales", 3)
	manager.RecordTargetBatch("sales", 2)

	assert.Equal(t, float64(2), testutil.ToFloat64(manager.targetBatches.WithLabelValues("sales")))
	assert.Equal(t, float64(5), testutil.ToFloat64(manager.targetRecords.WithLabelValues("sales")))
}

func TestManager_RecordSummary(t *testing.T) {
	manager := NewManager(WithRegistry(prometheus.NewRegistry()))

	manager.RecordSummary("orders", true, 10*time.Millisecond)
	manager.RecordSummary("orders", false, 5*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(manager.summaries.WithLabelValues("orders", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(manager.summaries.WithLabelValues("orders", "false")))
}

func TestManager_Disabled(t *testing.T) {
	manager := NewManager(WithRegistry(prometheus.NewRegistry()), WithMetricsEnabled(false))

	manager.RecordNoEligibleRecipients("sales")
	manager.RecordDiscoveryFallback()

	assert.Equal(t, float64(0), testutil.ToFloat64(manager.noEligibleRecipients.WithLabelValues("sales")))
	assert.Equal(t, float64(0), testutil.ToFloat64(manager.discoveryFallbacks))
}

func TestManager_NilIsNoop(t *testing.T) {
	var manager *Manager

	assert.NotPanics(t, func() {
		manager.RecordTargetBatch("sales", 1)
		manager.RecordBatchFailure("sales")
		manager.RecordHTTPRequest(http.MethodGet, "/healthcheck", http.StatusOK, time.Millisecond)
	})
}

func TestManager_Handler(t *testing.T) {
	manager := NewManager(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))
	manager.RecordDiscoveryFallback()

	rec := httptest.NewRecorder()
	manager.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_periods_discovery_fallbacks_total 1")
}
