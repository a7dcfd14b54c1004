package clock

import (
	"sync/atomic"
	"time"

	"github.com/osse101/ForecastLedger_Go/internal/domain"
)

// Clock supplies the current tick. Ticks are strictly increasing and are
// the only notion of time the tournament engine knows about.
type Clock interface {
	Now() domain.Tick
}

// Wall derives ticks from wall time: the number of whole intervals elapsed
// since genesis. The mapping is monotonically non-decreasing as long as the
// host clock is.
type Wall struct {
	genesis  time.Time
	interval time.Duration
}

// NewWall creates a wall clock ticking once per interval from genesis.
func NewWall(genesis time.Time, interval time.Duration) *Wall {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Wall{genesis: genesis, interval: interval}
}

// Now returns the number of whole intervals elapsed since genesis.
func (w *Wall) Now() domain.Tick {
	elapsed := time.Since(w.genesis)
	if elapsed < 0 {
		return 0
	}
	return domain.Tick(elapsed / w.interval)
}

// Manual is a hand-driven clock for tests and replay drivers.
type Manual struct {
	now atomic.Uint64
}

// NewManual creates a manual clock starting at start.
func NewManual(start domain.Tick) *Manual {
	m := &Manual{}
	m.now.Store(uint64(start))
	return m
}

// Now returns the current tick.
func (m *Manual) Now() domain.Tick {
	return domain.Tick(m.now.Load())
}

// Set moves the clock to now. Moving backwards is not supported; callers
// own monotonicity.
func (m *Manual) Set(now domain.Tick) {
	m.now.Store(uint64(now))
}

// Advance moves the clock forward by delta ticks.
func (m *Manual) Advance(delta domain.Tick) {
	m.now.Add(uint64(delta))
}
