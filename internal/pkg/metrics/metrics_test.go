//go:build unit

package metrics_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.Register()
		metrics.Register()
	})
}

func TestObserveHTTP(t *testing.T) {
	metrics.Register()
	metrics.ObserveHTTP("server", http.MethodGet, "/bookings/:id", http.StatusOK, 15*time.Millisecond)
	metrics.ObserveHTTP("server", http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	metrics.IncBookingDecision("APPROVED")

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["shareit_http_requests_total"])
	assert.True(t, names["shareit_http_request_duration_seconds"])
	assert.True(t, names["shareit_booking_decisions_total"])
}
