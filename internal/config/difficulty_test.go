package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d, 0) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Speed(10, 1000, 0); got != 15 {
		t.Errorf("Speed() = %v, expected 15 at fixed level 0.5", got)
	}
}

func TestDifficultyCooldown(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{CooldownReduction: 0.5},
	})

	if got := d.Cooldown(2.0, 0, 0); got != 2.0 {
		t.Errorf("Cooldown() at level 0 = %v, expected 2.0", got)
	}
	if got := d.Cooldown(2.0, 0, 100); got != 1.0 {
		t.Errorf("Cooldown() at level 1 = %v, expected 1.0", got)
	}
}
