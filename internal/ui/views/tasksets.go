package views

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tabdo/internal/board"
	"github.com/dori/tabdo/internal/model"
	"github.com/dori/tabdo/internal/notify"
	"github.com/dori/tabdo/internal/taskset"
	"github.com/dori/tabdo/internal/ui/theme"
)

// TaskSetMode represents the current input mode of the task set view
type TaskSetMode int

const (
	TaskSetModeNormal TaskSetMode = iota
	TaskSetModeSave
	TaskSetModeConfirmDelete
)

// TaskSetSavedMsg is delivered a short delay after a task set was saved
type TaskSetSavedMsg struct {
	Name  string
	Count int
}

// TaskSetView lists saved task sets and applies them to the active tab
type TaskSetView struct {
	board    *board.Board
	manager  *taskset.Manager
	notifier *notify.Notifier
	delay    time.Duration

	width  int
	height int

	sets   []model.TaskSet
	cursor int
	mode   TaskSetMode
	input  textinput.Model
}

// NewTaskSetView creates a new task set view
func NewTaskSetView(b *board.Board, manager *taskset.Manager, notifier *notify.Notifier, delay time.Duration) TaskSetView {
	ti := textinput.New()
	ti.Placeholder = "Task set name..."
	ti.CharLimit = 128

	return TaskSetView{
		board:    b,
		manager:  manager,
		notifier: notifier,
		delay:    delay,
		input:    ti,
	}
}

// Init initializes the task set view
func (v TaskSetView) Init() tea.Cmd {
	return nil
}

// Reload reads the stored sets again
func (v TaskSetView) Reload() TaskSetView {
	v.sets = v.manager.LoadAll()
	if v.cursor >= len(v.sets) {
		v.cursor = max(0, len(v.sets)-1)
	}
	return v
}

// IsInputMode returns true while naming a set or confirming a delete
func (v TaskSetView) IsInputMode() bool {
	return v.mode != TaskSetModeNormal
}

// SetSize updates the view dimensions
func (v TaskSetView) SetSize(width, height int) TaskSetView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// CanSave reports whether the active tab has tasks to save
func (v TaskSetView) CanSave() bool {
	return len(v.board.ActiveTab().Tasks) > 0
}

// Announce sends the notification for a saved set
func (v TaskSetView) Announce(msg TaskSetSavedMsg) tea.Cmd {
	notifier := v.notifier
	if !notifier.IsEnabled() {
		return nil
	}
	return func() tea.Msg {
		// notify-send may be missing; the save itself already succeeded
		_ = notifier.SendTaskSetSaved(msg.Name, msg.Count)
		return nil
	}
}

// Update handles messages for the task set view
func (v TaskSetView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch v.mode {
		case TaskSetModeSave:
			return v.handleSaveMode(msg)
		case TaskSetModeConfirmDelete:
			return v.handleDeleteConfirm(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}

	if v.mode == TaskSetModeSave {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v TaskSetView) selected() (model.TaskSet, bool) {
	if v.cursor < 0 || v.cursor >= len(v.sets) {
		return model.TaskSet{}, false
	}
	return v.sets[v.cursor], true
}

// handleNormalMode handles keypresses in normal mode
func (v TaskSetView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.sets)-1 {
			v.cursor++
		}

	case "enter", "a":
		set, ok := v.selected()
		if !ok {
			return v, nil
		}
		added := v.board.ApplyTaskSet(set)
		return v, status(fmt.Sprintf("Added %d task(s) from \"%s\" to %s", len(added), set.Name, v.board.ActiveTab().Name))

	case "d":
		if _, ok := v.selected(); ok {
			v.mode = TaskSetModeConfirmDelete
		}

	case "n":
		if !v.CanSave() {
			return v, failure(taskset.ErrNoTasks)
		}
		v.mode = TaskSetModeSave
		v.input.SetValue("")
		return v, v.input.Focus()
	}
	return v, nil
}

// handleSaveMode handles keypresses while naming a new set
func (v TaskSetView) handleSaveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(v.input.Value())
		if name == "" {
			return v, nil
		}
		v.mode = TaskSetModeNormal
		v.input.Blur()
		return v.save(name)
	case "esc":
		v.mode = TaskSetModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v TaskSetView) save(name string) (tea.Model, tea.Cmd) {
	set, err := v.manager.Snapshot(name, v.board.ActiveTab().Tasks)
	if err != nil {
		return v, failure(err)
	}
	if err := v.manager.Save(set); err != nil {
		return v, failure(err)
	}
	v = v.Reload()
	for i, s := range v.sets {
		if s.ID == set.ID {
			v.cursor = i
		}
	}

	saved := TaskSetSavedMsg{Name: set.Name, Count: len(set.Tasks)}
	return v, tea.Batch(
		status(fmt.Sprintf("Saved task set \"%s\"", set.Name)),
		tea.Tick(v.delay, func(time.Time) tea.Msg { return saved }),
	)
}

// handleDeleteConfirm handles keypresses in delete confirmation
func (v TaskSetView) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = TaskSetModeNormal
		set, ok := v.selected()
		if !ok {
			return v, failure(errors.New("task set no longer exists"))
		}
		if err := v.manager.Delete(set.ID); err != nil {
			return v, failure(err)
		}
		v = v.Reload()
		return v, status(fmt.Sprintf("Deleted task set \"%s\"", set.Name))
	case "n", "N", "esc":
		v.mode = TaskSetModeNormal
	}
	return v, nil
}

// View renders the task set view
func (v TaskSetView) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder
	b.WriteString(styles.Title.Render("Task sets"))
	b.WriteString("\n")

	switch v.mode {
	case TaskSetModeSave:
		b.WriteString(styles.Label.Render(fmt.Sprintf("Save %d task(s) from %s as:", len(v.board.ActiveTab().Tasks), v.board.ActiveTab().Name)))
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(v.input.View()))
		b.WriteString("\n\n")
	case TaskSetModeConfirmDelete:
		if set, ok := v.selected(); ok {
			confirmStyle := lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
			b.WriteString(confirmStyle.Render(fmt.Sprintf("Delete task set \"%s\"? (y/n)", set.Name)))
			b.WriteString("\n\n")
		}
	}

	if len(v.sets) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			Padding(1, 0)
		b.WriteString(emptyStyle.Render("No task sets. Press 'n' to save the current tab as one."))
		return b.String()
	}

	countStyle := lipgloss.NewStyle().Foreground(t.Secondary)
	for i, set := range v.sets {
		cursor := "  "
		nameStyle := lipgloss.NewStyle().Foreground(t.Foreground)
		if i == v.cursor {
			cursor = "> "
			nameStyle = nameStyle.Bold(true).Background(t.Highlight)
		}
		b.WriteString(cursor)
		b.WriteString(nameStyle.Render(set.Name))
		b.WriteString(countStyle.Render(fmt.Sprintf(" (%d)", len(set.Tasks))))
		b.WriteString(styles.Label.Render("  " + set.CreatedAt.Local().Format("2006-01-02")))
		b.WriteString("\n")
	}

	if set, ok := v.selected(); ok {
		b.WriteString("\n")
		for _, task := range set.Tasks {
			prio := lipgloss.NewStyle().Foreground(t.PriorityColor(task.Priority)).Render(task.Priority.DisplayName())
			b.WriteString("    " + prio + " " + task.Title + "\n")
		}
	}
	return b.String()
}
