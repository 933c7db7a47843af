package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.LogLevel != defaultLogLevel || cfg.LogFormat != defaultLogFormat {
		t.Fatalf("expected default log settings, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("expected metrics enabled on %s, got %+v", defaultMetricsPort, cfg.Metrics)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected service name %s, got %s", defaultServiceName, cfg.Metrics.ServiceName)
	}
	if !cfg.Metrics.OtlpInsecure || cfg.Metrics.OtlpEndpoint != "" {
		t.Fatalf("unexpected otlp defaults %+v", cfg.Metrics)
	}
	if cfg.Sessions.TTL != defaultSessionTTL {
		t.Fatalf("expected default session ttl %s, got %s", defaultSessionTTL, cfg.Sessions.TTL)
	}
	if cfg.Sessions.SweepInterval != defaultSweepInterval {
		t.Fatalf("expected default sweep interval %s, got %s", defaultSweepInterval, cfg.Sessions.SweepInterval)
	}
	if cfg.Lineups.MaxTeams != defaultMaxTeams || cfg.Lineups.MaxRosterBytes != defaultMaxRoster {
		t.Fatalf("unexpected lineup defaults %+v", cfg.Lineups)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envMetricsPort, "9191")
	t.Setenv(envOtelEndpoint, "collector:4318")
	t.Setenv(envOtelService, "teams")
	t.Setenv(envOtelInsecure, "false")
	t.Setenv(envSessionTTL, "45m")
	t.Setenv(envSweepInterval, "30s")
	t.Setenv(envMaxTeams, "4")
	t.Setenv(envMaxRoster, "1024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("expected log overrides, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.Port != "9191" || cfg.Metrics.OtlpEndpoint != "collector:4318" {
		t.Fatalf("expected metrics overrides, got %+v", cfg.Metrics)
	}
	if cfg.Metrics.ServiceName != "teams" || cfg.Metrics.OtlpInsecure {
		t.Fatalf("expected otel overrides, got %+v", cfg.Metrics)
	}
	if cfg.Sessions.TTL != 45*time.Minute || cfg.Sessions.SweepInterval != 30*time.Second {
		t.Fatalf("expected session overrides, got %+v", cfg.Sessions)
	}
	if cfg.Lineups.MaxTeams != 4 || cfg.Lineups.MaxRosterBytes != 1024 {
		t.Fatalf("expected lineup overrides, got %+v", cfg.Lineups)
	}
}

func TestLoadInvalidDurationErrors(t *testing.T) {
	t.Setenv(envSessionTTL, "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed duration")
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv(envSessionTTL, "0s")
	t.Setenv(envSweepInterval, "-1m")
	t.Setenv(envMaxTeams, "0")
	t.Setenv(envMaxRoster, "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Sessions.TTL != defaultSessionTTL || cfg.Sessions.SweepInterval != defaultSweepInterval {
		t.Fatalf("expected default session settings on non-positive values, got %+v", cfg.Sessions)
	}
	if cfg.Lineups.MaxTeams != defaultMaxTeams || cfg.Lineups.MaxRosterBytes != defaultMaxRoster {
		t.Fatalf("expected default lineup limits on non-positive values, got %+v", cfg.Lineups)
	}
}
