package site

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameCmd schedules the next animation frame of loop gen.
func frameCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

func statusCmd(text string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, err: err}
	}
}
