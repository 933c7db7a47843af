package testutil

import (
	"context"
	"net/http"

	"github.com/preston-bernstein/pickup-teams-service/internal/metrics"
)

// MetricsSetupFunc matches metrics.Setup so tests can swap telemetry wiring.
type MetricsSetupFunc func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error)

// StubMetricsSetup returns a setup func that yields a fresh recorder and handler, or only err when non-nil.
func StubMetricsSetup(handler http.Handler, err error) MetricsSetupFunc {
	return func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		if err != nil {
			return nil, nil, nil, err
		}
		return metrics.NewRecorder(), handler, func(context.Context) error { return nil }, nil
	}
}
