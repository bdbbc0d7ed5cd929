package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// styleFor returns the lipgloss style for a cell color, caching the result.
func styleFor(cache map[core.Color]lipgloss.Style, c core.Color) lipgloss.Style {
	if s, ok := cache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	cache[c] = s
	return s
}

// RenderScreen converts a screen buffer to a styled string. Adjacent cells
// with the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(styles, color).Render(run.String()))
		}
	}
	return sb.String()
}
