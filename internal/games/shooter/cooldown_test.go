package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func TestCooldownFrames(t *testing.T) {
	c := NewCooldown(5, config.TimerFrames)

	var fired []int
	for i := 1; i <= 12; i++ {
		if c.Tick(1) {
			fired = append(fired, i)
			if c.Elapsed() != 0 {
				t.Errorf("Elapsed() after firing = %v, expected 0", c.Elapsed())
			}
		}
	}

	if len(fired) != 2 || fired[0] != 5 || fired[1] != 10 {
		t.Errorf("fired on ticks %v, expected [5 10]", fired)
	}
}

func TestCooldownSecondsCarriesRemainder(t *testing.T) {
	c := NewCooldown(0.25, config.TimerSeconds)

	fires := 0
	for i := 0; i < 10; i++ {
		if c.Tick(0.1) {
			fires++
		}
	}
	if fires != 4 {
		t.Errorf("fires = %d, expected 4", fires)
	}
}

func TestCooldownLongGapFiresOnce(t *testing.T) {
	c := NewCooldown(0.25, config.TimerSeconds)
	c.Advance(10)
	if !c.Ready() {
		t.Fatal("Ready() = false, expected true")
	}
	c.Reset()
	if c.Ready() {
		t.Error("Ready() after Reset = true, expected one firing per gap")
	}
}
