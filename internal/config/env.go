package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// parseEnv fills target from environment variables using its `env` struct tags.
func parseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func positiveDurationOr(val, fallback time.Duration) time.Duration {
	if val <= 0 {
		return fallback
	}
	return val
}

func positiveIntOr(val, fallback int) int {
	if val <= 0 {
		return fallback
	}
	return val
}
