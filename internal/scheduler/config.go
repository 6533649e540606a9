package scheduler

import "time"

// Config controls the background job loops.
type Config struct {
	// SyncInterval is how often remote report periods are re-synced.
	SyncInterval time.Duration
	// PollInterval is how often submitted requests are polled for a
	// regulator decision.
	PollInterval time.Duration
	// BatchSize caps how many submitted requests one poll run touches.
	BatchSize int
}

func DefaultConfig() Config {
	return Config{
		SyncInterval: 24 * time.Hour,
		PollInterval: time.Hour,
		BatchSize:    50,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.SyncInterval <= 0 {
		c.SyncInterval = defaults.SyncInterval
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaults.PollInterval
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaults.BatchSize
	}
	return c
}
