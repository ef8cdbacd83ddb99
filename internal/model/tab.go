package model

import (
	"github.com/google/uuid"
)

// DefaultTabName is the name of the tab created when nothing is stored yet
const DefaultTabName = "メイン"

// Tab represents a named list of tasks with its own accent theme
type Tab struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Tasks      []Task    `json:"tasks"`
	ThemeIndex int       `json:"themeIndex"`
}

// NewTab creates an empty tab
func NewTab(name string, themeIndex int) Tab {
	return Tab{
		ID:         uuid.New(),
		Name:       name,
		Tasks:      []Task{},
		ThemeIndex: themeIndex,
	}
}

// DefaultTabs returns the collection used on first launch
func DefaultTabs() []Tab {
	return []Tab{NewTab(DefaultTabName, 0)}
}

// Clone returns a copy of the tab that does not share its task slice
func (t Tab) Clone() Tab {
	c := t
	c.Tasks = make([]Task, len(t.Tasks))
	copy(c.Tasks, t.Tasks)
	return c
}

// CompletedCount returns how many tasks in the tab are done
func (t Tab) CompletedCount() int {
	n := 0
	for _, task := range t.Tasks {
		if task.IsCompleted {
			n++
		}
	}
	return n
}

// NormalizeThemeIndex wraps index into [0, count), so -1 maps to count-1.
// Indexes stored by older versions with more options stay valid.
func NormalizeThemeIndex(index, count int) int {
	if count <= 0 {
		return 0
	}
	return ((index % count) + count) % count
}
