package config

import "time"

const (
	envPort          = "PORT"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envSessionTTL    = "SESSION_TTL"
	envSweepInterval = "SESSION_SWEEP_INTERVAL"
	envMaxTeams      = "MAX_TEAMS"
	envMaxRoster     = "MAX_ROSTER_BYTES"

	defaultPort        = "4000"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultServiceName = "pickup-teams-service"
	// Sessions mirror a single evening of pickup games.
	defaultSessionTTL    = 6 * time.Hour
	defaultSweepInterval = 5 * time.Minute
	defaultMaxTeams      = 16
	defaultMaxRoster     = 64 << 10
)
