package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tabdo/internal/model"
	"github.com/dori/tabdo/internal/ui/theme"
	"github.com/google/uuid"
)

// TabFormSubmitMsg is sent when the tab form is confirmed. A nil ID means a new tab.
type TabFormSubmitMsg struct {
	ID         uuid.UUID
	Name       string
	ThemeIndex int
}

// TabFormCancelMsg is sent when the tab form is dismissed
type TabFormCancelMsg struct{}

// TabForm edits the name and accent of a tab
type TabForm struct {
	input      textinput.Model
	id         uuid.UUID
	themeIndex int
	active     bool
}

// NewTabForm creates an inactive tab form
func NewTabForm() TabForm {
	ti := textinput.New()
	ti.Placeholder = "Tab name..."
	ti.CharLimit = 64
	return TabForm{input: ti}
}

// Open activates the form for a new tab with the suggested accent
func (f TabForm) Open(themeIndex int) (TabForm, tea.Cmd) {
	f.id = uuid.Nil
	f.themeIndex = themeIndex
	f.active = true
	f.input.SetValue("")
	return f, f.input.Focus()
}

// OpenEdit activates the form for an existing tab
func (f TabForm) OpenEdit(tab model.Tab) (TabForm, tea.Cmd) {
	f.id = tab.ID
	f.themeIndex = model.NormalizeThemeIndex(tab.ThemeIndex, theme.AccentCount)
	f.active = true
	f.input.SetValue(tab.Name)
	f.input.CursorEnd()
	return f, f.input.Focus()
}

// Active reports whether the form is open
func (f TabForm) Active() bool {
	return f.active
}

// Editing reports whether the form edits an existing tab
func (f TabForm) Editing() bool {
	return f.id != uuid.Nil
}

// Update handles keys while the form is open
func (f TabForm) Update(msg tea.Msg) (TabForm, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.themeIndex = model.NormalizeThemeIndex(f.themeIndex+1, theme.AccentCount)
			return f, nil
		case "shift+tab", "up":
			f.themeIndex = model.NormalizeThemeIndex(f.themeIndex-1, theme.AccentCount)
			return f, nil
		case "enter":
			name := strings.TrimSpace(f.input.Value())
			if name == "" {
				return f, nil
			}
			f.active = false
			f.input.Blur()
			submit := TabFormSubmitMsg{ID: f.id, Name: name, ThemeIndex: f.themeIndex}
			return f, func() tea.Msg { return submit }
		case "esc":
			f.active = false
			f.input.Blur()
			return f, func() tea.Msg { return TabFormCancelMsg{} }
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the form
func (f TabForm) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := "New tab"
	if f.Editing() {
		title = "Edit tab"
	}

	var swatches []string
	for i := range theme.AccentCount {
		style := lipgloss.NewStyle().Foreground(t.Accent(i))
		mark := "○"
		if i == f.themeIndex {
			mark = "●"
			style = style.Bold(true)
		}
		swatches = append(swatches, style.Render(mark+" "+theme.AccentName(i)))
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(f.input.View()))
	b.WriteString("\n")
	b.WriteString(strings.Join(swatches, "  "))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render("tab/shift+tab: colour • enter: save • esc: cancel"))
	return b.String()
}
