package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// Cooldown gates a periodic action. Elapsed grows by the step passed to
// Advance: one per frame in frames mode, seconds in seconds mode.
type Cooldown struct {
	Threshold float64

	elapsed float64
	carry   bool // Keep leftover time on reset
}

// NewCooldown creates a cooldown for the given timer mode.
func NewCooldown(threshold float64, mode string) Cooldown {
	return Cooldown{Threshold: threshold, carry: mode == config.TimerSeconds}
}

// Advance adds step to the elapsed counter.
func (c *Cooldown) Advance(step float64) {
	c.elapsed += step
}

// Ready reports whether the threshold has been reached.
func (c *Cooldown) Ready() bool {
	return c.elapsed >= c.Threshold-1e-9
}

// Reset starts the next period. In seconds mode the part of the elapsed time
// past the threshold carries over.
func (c *Cooldown) Reset() {
	if c.carry && c.Threshold > 0 {
		c.elapsed = math.Max(math.Mod(c.elapsed, c.Threshold), 0)
		if c.elapsed >= c.Threshold-1e-9 {
			c.elapsed = 0
		}
		return
	}
	c.elapsed = 0
}

// Clear zeroes the counter.
func (c *Cooldown) Clear() {
	c.elapsed = 0
}

// Tick advances by step and reports whether the action fires, resetting the
// counter when it does.
func (c *Cooldown) Tick(step float64) bool {
	c.Advance(step)
	if !c.Ready() {
		return false
	}
	c.Reset()
	return true
}

// Elapsed returns the counter value.
func (c *Cooldown) Elapsed() float64 {
	return c.elapsed
}
