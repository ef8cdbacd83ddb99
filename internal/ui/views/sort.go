package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tabdo/internal/board"
	"github.com/dori/tabdo/internal/sorting"
	"github.com/dori/tabdo/internal/ui/theme"
)

// SortView edits the four-level sort configuration
type SortView struct {
	board  *board.Board
	width  int
	height int
	cursor int
}

// NewSortView creates a new sort view
func NewSortView(b *board.Board) SortView {
	return SortView{board: b}
}

// Init initializes the sort view
func (v SortView) Init() tea.Cmd {
	return nil
}

// IsInputMode always returns false, the sort view has no text input
func (v SortView) IsInputMode() bool {
	return false
}

// SetSize updates the view dimensions
func (v SortView) SetSize(width, height int) SortView {
	v.width = width
	v.height = height
	return v
}

// Update handles messages for the sort view
func (v SortView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	current := v.board.SortConfiguration().Priorities[v.cursor]
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < sorting.ConfigurationSize-1 {
			v.cursor++
		}
	case "right", "l", "enter":
		return v, v.setKey(current.Next())
	case "left", "h":
		return v, v.setKey(current.Prev())
	case "backspace", "x":
		return v, v.setKey(sorting.KeyNone)
	case "r":
		v.board.SetSortConfiguration(sorting.Default())
		return v, status("Sort order reset")
	case "s":
		v.board.Sort()
		return v, status("Sorted")
	}
	return v, nil
}

func (v SortView) setKey(key sorting.SortKey) tea.Cmd {
	v.board.SetSortKey(v.cursor, key)
	return status(fmt.Sprintf("Level %d: %s", v.cursor+1, key.DisplayName()))
}

// View renders the sort view
func (v SortView) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder
	b.WriteString(styles.Title.Render("Sort order"))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.Subtle).Width(10)
	for i, key := range v.board.SortConfiguration().Priorities {
		cursor := "  "
		keyStyle := lipgloss.NewStyle().Foreground(t.Foreground)
		if i == v.cursor {
			cursor = "> "
			keyStyle = keyStyle.Bold(true).Foreground(t.Primary)
		}
		if key == sorting.KeyNone {
			keyStyle = keyStyle.Foreground(t.Subtle)
		}

		b.WriteString(cursor)
		b.WriteString(labelStyle.Render(fmt.Sprintf("Level %d", i+1)))
		b.WriteString(keyStyle.Render("◀ " + key.DisplayName() + " ▶"))
		b.WriteString(styles.Label.Render("  " + key.Label()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hintStyle := lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
	b.WriteString(hintStyle.Render("A key already used at another level swaps places with the old value."))
	return b.String()
}
