package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ForecastLedger_Go/internal/domain"
)

func TestWallNow(t *testing.T) {
	t.Run("counts whole intervals since genesis", func(t *testing.T) {
		w := NewWall(time.Now().Add(-25*time.Second), 10*time.Second)
		assert.Equal(t, domain.Tick(2), w.Now())
	})

	t.Run("clamps to zero before genesis", func(t *testing.T) {
		w := NewWall(time.Now().Add(time.Hour), time.Second)
		assert.Equal(t, domain.Tick(0), w.Now())
	})

	t.Run("defaults a non-positive interval", func(t *testing.T) {
		w := NewWall(time.Now().Add(-2*DefaultTickInterval-time.Second), 0)
		assert.Equal(t, domain.Tick(2), w.Now())
	})
}

func TestManual(t *testing.T) {
	m := NewManual(5)
	assert.Equal(t, domain.Tick(5), m.Now())

	m.Advance(3)
	assert.Equal(t, domain.Tick(8), m.Now())

	m.Set(100)
	assert.Equal(t, domain.Tick(100), m.Now())
}
