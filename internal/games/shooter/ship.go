package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Ship is the player. It only moves along X.
type Ship struct {
	Handle   Handle
	X        float64
	Velocity float64

	cfg   config.ShipConfig
	limit float64
}

// NewShip creates a ship that may travel margin units past boundaryMax on
// either side.
func NewShip(cfg config.ShipConfig, boundaryMax float64) Ship {
	return Ship{cfg: cfg, limit: boundaryMax + cfg.Margin}
}

// Limit returns the largest |X| the ship can reach.
func (s *Ship) Limit() float64 {
	return s.limit
}

// Steer applies one frame of input and returns how far the ship moved.
func (s *Ship) Steer(left, right bool) float64 {
	switch {
	case left && !right:
		s.Velocity -= s.cfg.Acceleration
	case right && !left:
		s.Velocity += s.cfg.Acceleration
	default:
		s.Velocity *= s.cfg.Damping
	}
	s.Velocity = core.ClampF(s.Velocity, -s.cfg.MaxSpeed, s.cfg.MaxSpeed)

	prev := s.X
	s.X = core.ClampF(s.X+s.Velocity, -s.limit, s.limit)
	if s.X == s.limit || s.X == -s.limit {
		s.Velocity = 0
	}
	if s.Handle.Node != nil {
		s.Handle.SetPosition(s.Position())
	}
	return s.X - prev
}

// Position returns the ship's world position.
func (s *Ship) Position() core.Vec3 {
	return core.V3(s.X, s.cfg.Size, s.cfg.Depth)
}

// Reset centers the ship and stops it.
func (s *Ship) Reset() {
	s.X = 0
	s.Velocity = 0
	if s.Handle.Node != nil {
		s.Handle.SetPosition(s.Position())
	}
}
