package model

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a todo item inside a tab
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Detail      string     `json:"detail"`
	Priority    Priority   `json:"priority"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// NewTask creates a task stamped with a fresh ID and creation time
func NewTask(title, detail string, priority Priority, now time.Time) Task {
	if !priority.IsValid() {
		priority = PriorityMedium
	}
	created := now
	return Task{
		ID:        uuid.New(),
		Title:     title,
		Detail:    detail,
		Priority:  priority,
		CreatedAt: &created,
	}
}

// SetCompleted updates the completion flag. The completion time is set when
// the task becomes done and cleared when it is reopened.
func (t *Task) SetCompleted(done bool, now time.Time) {
	if t.IsCompleted == done {
		return
	}
	t.IsCompleted = done
	if done {
		completed := now
		t.CompletedAt = &completed
	} else {
		t.CompletedAt = nil
	}
}

// Toggle flips the completion flag
func (t *Task) Toggle(now time.Time) {
	t.SetCompleted(!t.IsCompleted, now)
}

// CyclePriority advances the priority one step
func (t *Task) CyclePriority() {
	t.Priority = t.Priority.Next()
}
