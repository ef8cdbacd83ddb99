package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSetCompletedTimestamps(t *testing.T) {
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	task := NewTask("Buy milk", "", PriorityMedium, now)

	task.SetCompleted(true, now.Add(time.Hour))
	if !task.IsCompleted || task.CompletedAt == nil || !task.CompletedAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected completion stamped, got %+v", task)
	}

	// Setting the same state again keeps the original completion time
	task.SetCompleted(true, now.Add(2*time.Hour))
	if !task.CompletedAt.Equal(now.Add(time.Hour)) {
		t.Errorf("completion time moved to %v", task.CompletedAt)
	}

	task.Toggle(now)
	if task.IsCompleted || task.CompletedAt != nil {
		t.Fatalf("expected completion cleared, got %+v", task)
	}
}

func TestNewTaskDefaultsInvalidPriority(t *testing.T) {
	task := NewTask("x", "", Priority("bogus"), time.Now())
	if task.Priority != PriorityMedium {
		t.Errorf("priority = %s, want medium", task.Priority)
	}
	if task.CreatedAt == nil {
		t.Errorf("expected creation time")
	}
}

func TestTaskJSONOmitsAbsentDates(t *testing.T) {
	task := Task{Title: "template", Priority: PriorityLow}
	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if strings.Contains(s, "createdAt") || strings.Contains(s, "completedAt") {
		t.Errorf("expected absent timestamps to be omitted: %s", s)
	}
	if !strings.Contains(s, `"isCompleted":false`) {
		t.Errorf("expected isCompleted field: %s", s)
	}
}
