package config

// SessionConfig controls how long idle sessions live and how often they are swept.
type SessionConfig struct {
	TTL           Duration `env:"SESSION_TTL" envDefault:"6h"`
	SweepInterval Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
}

func (c SessionConfig) withDefaults() SessionConfig {
	c.TTL = positiveDurationOr(c.TTL, defaultSessionTTL)
	c.SweepInterval = positiveDurationOr(c.SweepInterval, defaultSweepInterval)
	return c
}

// LineupConfig bounds generation requests.
type LineupConfig struct {
	MaxTeams       int   `env:"MAX_TEAMS" envDefault:"16"`
	MaxRosterBytes int64 `env:"MAX_ROSTER_BYTES" envDefault:"65536"`
}

func (c LineupConfig) withDefaults() LineupConfig {
	c.MaxTeams = positiveIntOr(c.MaxTeams, defaultMaxTeams)
	if c.MaxRosterBytes <= 0 {
		c.MaxRosterBytes = defaultMaxRoster
	}
	return c
}
