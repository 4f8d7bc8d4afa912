package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent on every redraw tick. It carries no work of its own; it
// wakes the loop so the screen is redrawn without input.
type TickMsg time.Time

// tick schedules the next TickMsg.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
