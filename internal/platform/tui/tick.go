// Package tui runs shooter builds in a terminal with Bubble Tea, locally or
// over SSH. It maps keys to actions, drives the fixed-rate tick loop and
// records finished rounds.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// TickMsg triggers one simulation tick.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	interval := core.RuntimeConfig{TickRate: tickRate}.TickDuration()
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
