package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func TestShipSteer(t *testing.T) {
	cfg := config.ShipConfig{Acceleration: 0.5, MaxSpeed: 1, Damping: 0.5, Margin: 5}

	tests := []struct {
		name      string
		left      bool
		right     bool
		ticks     int
		expectedX float64
	}{
		{"idle", false, false, 10, 0},
		{"right", false, true, 2, 1.5},
		{"left", true, false, 2, -1.5},
		{"both cancel", true, true, 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewShip(cfg, 20)
			for i := 0; i < tc.ticks; i++ {
				s.Steer(tc.left, tc.right)
			}
			if s.X != tc.expectedX {
				t.Errorf("X = %v, expected %v", s.X, tc.expectedX)
			}
		})
	}
}

func TestShipLimit(t *testing.T) {
	s := NewShip(config.ShipConfig{Acceleration: 1, MaxSpeed: 3, Damping: 0.9, Margin: 5}, 20)
	if s.Limit() != 25 {
		t.Fatalf("Limit() = %v, expected 25", s.Limit())
	}
	for i := 0; i < 100; i++ {
		s.Steer(true, false)
	}
	if s.X != -25 || s.Velocity != 0 {
		t.Errorf("X = %v Velocity = %v, expected -25 and stopped", s.X, s.Velocity)
	}

	s.Reset()
	if s.X != 0 || s.Velocity != 0 {
		t.Errorf("after Reset X = %v Velocity = %v, expected 0 and 0", s.X, s.Velocity)
	}
}
