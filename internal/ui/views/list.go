package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tabdo/internal/board"
	"github.com/dori/tabdo/internal/model"
	"github.com/dori/tabdo/internal/ui/theme"
	"github.com/google/uuid"
)

// ListMode represents the current input mode of the list view
type ListMode int

const (
	ListModeNormal ListMode = iota
	ListModeAdd
	ListModeAddDetail
	ListModeEdit
	ListModeEditDetail
	ListModeConfirmDelete
	ListModeConfirmClear
)

// ListView displays the tasks of the active tab
type ListView struct {
	board  *board.Board
	width  int
	height int

	cursor       int
	scrollOffset int
	hideDone     bool
	showDetail   bool

	mode      ListMode
	input     textinput.Model
	title     string // Title entered before the detail step
	priority  model.Priority
	editingID uuid.UUID
	deleteID  uuid.UUID
}

// NewListView creates a new list view
func NewListView(b *board.Board) ListView {
	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.CharLimit = 256

	return ListView{
		board:    b,
		input:    ti,
		priority: model.PriorityMedium,
	}
}

// Init initializes the list view
func (v ListView) Init() tea.Cmd {
	return nil
}

// IsInputMode returns true when the view is capturing text input or a confirmation
func (v ListView) IsInputMode() bool {
	return v.mode != ListModeNormal
}

// SetSize updates the view dimensions
func (v ListView) SetSize(width, height int) ListView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// Reset moves the cursor back to the top, used when the active tab changes
func (v ListView) Reset() ListView {
	v.cursor = 0
	v.scrollOffset = 0
	v.mode = ListModeNormal
	v.input.Blur()
	return v
}

// tasks returns the tasks currently shown and their positions in the tab
func (v ListView) tasks() ([]model.Task, []int) {
	all := v.board.ActiveTab().Tasks
	shown := make([]model.Task, 0, len(all))
	positions := make([]int, 0, len(all))
	for i, t := range all {
		if v.hideDone && t.IsCompleted {
			continue
		}
		shown = append(shown, t)
		positions = append(positions, i)
	}
	return shown, positions
}

func (v ListView) current() (model.Task, bool) {
	tasks, _ := v.tasks()
	if v.cursor < 0 || v.cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[v.cursor], true
}

// visibleTaskCount returns how many tasks can fit in the viewport
func (v ListView) visibleTaskCount() int {
	available := v.height - 4
	if v.showDetail {
		available -= 5
	}
	if available < 1 {
		available = 1
	}
	return available
}

// clampCursor keeps the cursor on a task and in view
func (v *ListView) clampCursor() {
	tasks, _ := v.tasks()
	if v.cursor >= len(tasks) {
		v.cursor = len(tasks) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}

	visible := v.visibleTaskCount()
	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+visible {
		v.scrollOffset = v.cursor - visible + 1
	}
	maxOffset := max(0, len(tasks)-visible)
	v.scrollOffset = min(max(v.scrollOffset, 0), maxOffset)
}

// focus moves the cursor to a task if it is shown
func (v *ListView) focus(id uuid.UUID) {
	tasks, _ := v.tasks()
	for i, t := range tasks {
		if t.ID == id {
			v.cursor = i
			break
		}
	}
	v.clampCursor()
}

// Update handles messages for the list view
func (v ListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch v.mode {
		case ListModeAdd, ListModeAddDetail:
			return v.handleAddMode(msg)
		case ListModeEdit, ListModeEditDetail:
			return v.handleEditMode(msg)
		case ListModeConfirmDelete:
			return v.handleDeleteConfirm(msg)
		case ListModeConfirmClear:
			return v.handleClearConfirm(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}

	if v.IsInputMode() {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleNormalMode handles keypresses in normal mode
func (v ListView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks, positions := v.tasks()

	switch msg.String() {
	case "up", "k":
		v.cursor--
	case "down", "j":
		v.cursor++
	case "g":
		v.cursor = 0
	case "G":
		v.cursor = len(tasks) - 1

	case "a":
		v.mode = ListModeAdd
		v.priority = model.PriorityMedium
		v.input.Placeholder = "New task..."
		v.input.SetValue("")
		return v, v.input.Focus()

	case "e", "enter":
		task, ok := v.current()
		if !ok {
			return v, nil
		}
		v.mode = ListModeEdit
		v.editingID = task.ID
		v.input.Placeholder = "Title"
		v.input.SetValue(task.Title)
		v.input.CursorEnd()
		return v, v.input.Focus()

	case " ", "x":
		if task, ok := v.current(); ok {
			v.board.ToggleTask(task.ID)
			v.clampCursor()
		}

	case "p":
		if task, ok := v.current(); ok {
			v.board.CyclePriority(task.ID)
			updated, _ := v.board.FindTask(task.ID)
			return v, status(fmt.Sprintf("Priority: %s", updated.Priority.DisplayName()))
		}

	case "d":
		if task, ok := v.current(); ok {
			v.mode = ListModeConfirmDelete
			v.deleteID = task.ID
		}

	case "D":
		if v.board.ActiveTab().CompletedCount() > 0 {
			v.mode = ListModeConfirmClear
		}

	case "K", "shift+up":
		if v.cursor > 0 && v.cursor < len(tasks) {
			v.board.MoveTask(positions[v.cursor], positions[v.cursor-1])
			v.cursor--
		}
	case "J", "shift+down":
		if v.cursor >= 0 && v.cursor < len(tasks)-1 {
			v.board.MoveTask(positions[v.cursor], positions[v.cursor+1])
			v.cursor++
		}

	case "s":
		task, ok := v.current()
		v.board.Sort()
		if ok {
			v.focus(task.ID)
		}
		return v, status("Sorted")

	case "h":
		v.hideDone = !v.hideDone
		if v.hideDone {
			v.clampCursor()
			return v, status("Hiding completed tasks")
		}
		v.clampCursor()
		return v, status("Showing completed tasks")

	case "i":
		v.showDetail = !v.showDetail
	}

	v.clampCursor()
	return v, nil
}

// handleAddMode handles the title and detail steps of adding a task
func (v ListView) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		v.priority = v.priority.Next()
		return v, nil
	case "enter":
		if v.mode == ListModeAdd {
			title := strings.TrimSpace(v.input.Value())
			if title == "" {
				return v, nil
			}
			v.title = title
			v.mode = ListModeAddDetail
			v.input.Placeholder = "Detail (optional)"
			v.input.SetValue("")
			return v, nil
		}

		v.mode = ListModeNormal
		v.input.Blur()
		task, err := v.board.AddTask(v.title, strings.TrimSpace(v.input.Value()), v.priority)
		if err != nil {
			return v, failure(err)
		}
		v.focus(task.ID)
		return v, status(fmt.Sprintf("Added \"%s\"", task.Title))
	case "esc":
		v.mode = ListModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleEditMode handles the title and detail steps of editing a task
func (v ListView) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if v.mode == ListModeEdit {
			title := strings.TrimSpace(v.input.Value())
			if title == "" {
				return v, nil
			}
			task, ok := v.board.FindTask(v.editingID)
			if !ok {
				v.mode = ListModeNormal
				v.input.Blur()
				return v, nil
			}
			v.title = title
			v.mode = ListModeEditDetail
			v.input.Placeholder = "Detail (optional)"
			v.input.SetValue(task.Detail)
			v.input.CursorEnd()
			return v, nil
		}

		v.mode = ListModeNormal
		v.input.Blur()
		if err := v.board.EditTask(v.editingID, v.title, strings.TrimSpace(v.input.Value())); err != nil {
			return v, failure(err)
		}
		return v, status("Task updated")
	case "esc":
		v.mode = ListModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleDeleteConfirm handles keypresses in delete confirmation
func (v ListView) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = ListModeNormal
		if !v.board.DeleteTask(v.deleteID) {
			return v, failure(errors.New("task no longer exists"))
		}
		v.clampCursor()
		return v, status("Task deleted")
	case "n", "N", "esc":
		v.mode = ListModeNormal
	}
	return v, nil
}

// handleClearConfirm handles keypresses when deleting completed tasks
func (v ListView) handleClearConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = ListModeNormal
		n := v.board.DeleteCompleted()
		v.clampCursor()
		return v, status(fmt.Sprintf("Deleted %d completed task(s)", n))
	case "n", "N", "esc":
		v.mode = ListModeNormal
	}
	return v, nil
}

// View renders the list view
func (v ListView) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder

	switch v.mode {
	case ListModeAdd, ListModeAddDetail, ListModeEdit, ListModeEditDetail:
		if v.mode == ListModeAdd || v.mode == ListModeAddDetail {
			prio := lipgloss.NewStyle().Foreground(t.PriorityColor(v.priority)).Bold(true)
			b.WriteString(prio.Render("[" + v.priority.DisplayName() + "]"))
			b.WriteString(styles.Label.Render(" tab: priority"))
			b.WriteString("\n")
		}
		if v.mode == ListModeAddDetail || v.mode == ListModeEditDetail {
			b.WriteString(styles.Label.Render(v.title))
			b.WriteString("\n")
		}
		b.WriteString(styles.InputFocused.Render(v.input.View()))
		b.WriteString("\n\n")

	case ListModeConfirmDelete, ListModeConfirmClear:
		confirmStyle := lipgloss.NewStyle().
			Foreground(t.Warning).
			Bold(true)
		prompt := "Delete this task? (y/n)"
		if v.mode == ListModeConfirmClear {
			prompt = fmt.Sprintf("Delete %d completed task(s)? (y/n)", v.board.ActiveTab().CompletedCount())
		}
		b.WriteString(confirmStyle.Render(prompt))
		b.WriteString("\n\n")
	}

	tasks, _ := v.tasks()
	if len(tasks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			Padding(2, 0)
		if v.hideDone && len(v.board.ActiveTab().Tasks) > 0 {
			b.WriteString(emptyStyle.Render("All tasks done. Press 'h' to show them."))
		} else {
			b.WriteString(emptyStyle.Render("No tasks. Press 'a' to add one."))
		}
		return b.String()
	}

	visible := v.visibleTaskCount()
	endIdx := min(v.scrollOffset+visible, len(tasks))

	if v.scrollOffset > 0 {
		scrollStyle := lipgloss.NewStyle().Foreground(t.Subtle)
		b.WriteString(scrollStyle.Render(fmt.Sprintf("  ↑ %d more above", v.scrollOffset)))
		b.WriteString("\n")
	}

	for i := v.scrollOffset; i < endIdx; i++ {
		b.WriteString(v.renderTask(tasks[i], i == v.cursor))
		b.WriteString("\n")
	}

	if remaining := len(tasks) - endIdx; remaining > 0 {
		scrollStyle := lipgloss.NewStyle().Foreground(t.Subtle)
		b.WriteString(scrollStyle.Render(fmt.Sprintf("  ↓ %d more below", remaining)))
		b.WriteString("\n")
	}

	if v.showDetail {
		if task, ok := v.current(); ok {
			b.WriteString("\n")
			b.WriteString(v.renderDetail(task))
		}
	}

	return b.String()
}

// renderTask renders a single task line
func (v ListView) renderTask(task model.Task, isCursor bool) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	checkbox := "[ ]"
	if task.IsCompleted {
		checkbox = "[x]"
	}

	priority := lipgloss.NewStyle().
		Foreground(t.PriorityColor(task.Priority)).
		Render(task.Priority.DisplayName())

	titleStyle := styles.TaskNormal
	if task.IsCompleted {
		titleStyle = styles.TaskDone
	}
	if isCursor {
		titleStyle = titleStyle.Background(t.Highlight)
	}

	title := task.Title
	if task.Detail != "" {
		title += " …"
	}
	if maxWidth := v.width - 10; maxWidth > 0 && lipgloss.Width(title) > maxWidth {
		title = truncate(title, maxWidth)
	}

	cursor := "  "
	if isCursor {
		cursor = "> "
	}
	return cursor + checkbox + " " + priority + titleStyle.Render(title)
}

// renderDetail renders the detail pane for the task under the cursor
func (v ListView) renderDetail(task model.Task) string {
	styles := theme.Current.Styles

	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(task.Title))
	b.WriteString("\n")
	if task.Detail != "" {
		b.WriteString(task.Detail)
		b.WriteString("\n")
	}
	b.WriteString(styles.Label.Render("created:   " + formatDate(task.CreatedAt)))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render("completed: " + formatDate(task.CompletedAt)))
	return b.String()
}

// truncate shortens s to width cells, adding an ellipsis
func truncate(s string, width int) string {
	if width <= 1 {
		return "…"
	}
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > width-1 {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "…"
}
