package engine

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Camera is a pinhole camera that projects world points onto terminal cells.
// Terminal cells are roughly twice as tall as they are wide, so the vertical
// axis is squashed by half.
type Camera struct {
	Position    core.Vec3
	Direction   core.Vec3
	Up          core.Vec3
	FieldOfView float64 // Horizontal, radians
	Zoom        float64
	Near        float64
}

// NewCamera creates a camera at position looking along direction.
func NewCamera(position, direction core.Vec3) *Camera {
	return &Camera{
		Position:    position,
		Direction:   direction.Normalize(),
		Up:          core.V3(0, 1, 0),
		FieldOfView: math.Pi / 3,
		Zoom:        1,
		Near:        0.1,
	}
}

// MoveCamera translates the camera.
func (c *Camera) MoveCamera(delta core.Vec3) {
	c.Position = c.Position.Add(delta)
}

// SetCameraDirection points the camera along dir. A zero vector is ignored.
func (c *Camera) SetCameraDirection(dir core.Vec3) {
	if dir.Len() == 0 {
		return
	}
	c.Direction = dir.Normalize()
}

// basis returns the camera's right, up and forward axes.
func (c *Camera) basis() (right, up, forward core.Vec3) {
	forward = c.Direction.Normalize()
	right = c.Up.Cross(forward).Normalize()
	up = forward.Cross(right)
	return right, up, forward
}

// focal returns the projection scale for a screen width in cells.
func (c *Camera) focal(width int) float64 {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return float64(width) / 2 / math.Tan(c.FieldOfView/2) * zoom
}

// Project maps a world point to a screen cell. visible is false when the
// point is behind the near plane or falls outside the screen.
func (c *Camera) Project(p core.Vec3, width, height int) (x, y int, visible bool) {
	sx, sy, _, ok := c.project(p, width, height)
	if !ok {
		return 0, 0, false
	}
	x, y = int(math.Round(sx)), int(math.Round(sy))
	return x, y, x >= 0 && x < width && y >= 0 && y < height
}

// Depth returns the distance of p along the view direction.
func (c *Camera) Depth(p core.Vec3) float64 {
	_, _, forward := c.basis()
	return p.Sub(c.Position).Dot(forward)
}

// CellsPerUnit returns how many columns one world unit spans at depth.
func (c *Camera) CellsPerUnit(depth float64, width int) float64 {
	if depth <= c.Near {
		return 0
	}
	return c.focal(width) / depth
}

func (c *Camera) project(p core.Vec3, width, height int) (sx, sy, depth float64, ok bool) {
	right, up, forward := c.basis()
	rel := p.Sub(c.Position)
	depth = rel.Dot(forward)
	if depth <= c.Near {
		return 0, 0, depth, false
	}
	f := c.focal(width)
	sx = float64(width)/2 + rel.Dot(right)/depth*f
	sy = float64(height)/2 - rel.Dot(up)/depth*f/2
	return sx, sy, depth, true
}
