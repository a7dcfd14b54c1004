package config

import "time"

const (
	// DefaultTickIntervalMS is the wall-time length of one tick in
	// milliseconds when the deployment does not configure one.
	DefaultTickIntervalMS = 5000
)

// Database pool sizing
const (
	DefaultMaxConnections  = 10
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute
)
