package engine

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Floor draws a dotted ground grid on the plane y = Height.
type Floor struct {
	Height  float64
	Spacing float64
	Extent  float64 // How far ahead of the camera the grid reaches
	Glyph   rune
	Color   core.Color
}

// NewFloor creates a floor grid at y = 0.
func NewFloor() *Floor {
	return &Floor{Spacing: 4, Extent: 120, Glyph: '.', Color: core.ColorGray}
}

// Render draws the grid into empty cells of dst.
func (f *Floor) Render(dst *core.Screen, cam *Camera) {
	if f.Spacing <= 0 {
		return
	}
	w, h := dst.Width(), dst.Height()
	x0 := math.Floor((cam.Position.X-f.Extent/2)/f.Spacing) * f.Spacing
	z0 := math.Floor(cam.Position.Z/f.Spacing) * f.Spacing

	for z := z0; z <= cam.Position.Z+f.Extent; z += f.Spacing {
		for x := x0; x <= x0+f.Extent; x += f.Spacing {
			sx, sy, ok := cam.Project(core.V3(x, f.Height, z), w, h)
			if !ok || dst.Get(sx, sy) != ' ' {
				continue
			}
			dst.SetColor(sx, sy, f.Glyph, f.Color)
		}
	}
}
