package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskTemplate is a reusable blueprint of a task (no completion state or timestamps)
type TaskTemplate struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Detail   string    `json:"detail"`
	Priority Priority  `json:"priority"`
}

// TaskSet is a named, saved group of task templates
type TaskSet struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Tasks     []TaskTemplate `json:"tasks"`
	CreatedAt time.Time      `json:"createdAt"`
}

// TemplateFromTask captures the reusable parts of a task
func TemplateFromTask(t Task) TaskTemplate {
	return TaskTemplate{
		ID:       uuid.New(),
		Title:    t.Title,
		Detail:   t.Detail,
		Priority: t.Priority,
	}
}
