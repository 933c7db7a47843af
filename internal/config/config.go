package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string `env:"PORT" envDefault:"4000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Metrics   MetricsConfig
	Sessions  SessionConfig
	Lineups   LineupConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Malformed values are reported; non-positive durations and limits fall back to defaults.
func Load() (Config, error) {
	var cfg Config
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Sessions = cfg.Sessions.withDefaults()
	cfg.Lineups = cfg.Lineups.withDefaults()
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	return cfg, nil
}
