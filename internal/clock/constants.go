package clock

import "time"

const (
	// DefaultTickInterval is the wall-time length of one tick when the
	// deployment does not configure one.
	DefaultTickInterval = 5 * time.Second
)
