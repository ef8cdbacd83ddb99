package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusMsg carries a status line for the root model.
// (Defined here to avoid circular import with ui package)
type StatusMsg struct {
	Message string
}

// ErrorMsg carries an error for the root model
type ErrorMsg struct {
	Err error
}

func status(message string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: message}
	}
}

func failure(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// formatDate renders a timestamp for the detail pane
func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
