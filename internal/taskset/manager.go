// Package taskset saves groups of tasks as reusable templates and turns them
// back into fresh tasks.
package taskset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/dori/tabdo/internal/model"
	"github.com/dori/tabdo/internal/storage"
	"github.com/google/uuid"
)

var (
	// ErrEmptyName is returned when a set name is blank
	ErrEmptyName = errors.New("task set name is empty")
	// ErrNoTasks is returned when snapshotting a tab without tasks
	ErrNoTasks = errors.New("task set has no tasks")
)

// Manager loads and stores task sets
type Manager struct {
	store  storage.Store
	logger *log.Logger
	now    func() time.Time
}

// NewManager creates a manager over store
func NewManager(store storage.Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock replaces the time source used by Snapshot
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// LoadAll returns every saved set, oldest first. Missing or unreadable data
// yields an empty list.
func (m *Manager) LoadAll() []model.TaskSet {
	data, err := m.store.Load(storage.TaskSetsKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.logger.Printf("failed to read task sets: %v", err)
		}
		return []model.TaskSet{}
	}

	var sets []model.TaskSet
	if err := json.Unmarshal(data, &sets); err != nil {
		m.logger.Printf("failed to decode task sets: %v", err)
		return []model.TaskSet{}
	}
	if sets == nil {
		return []model.TaskSet{}
	}

	slices.SortStableFunc(sets, func(a, b model.TaskSet) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return sets
}

// Save appends set to the stored collection. Names are not required to be unique.
func (m *Manager) Save(set model.TaskSet) error {
	sets := m.LoadAll()
	sets = append(sets, set)
	return m.persist(sets)
}

// Delete removes the set with the given id. Unknown ids are ignored.
func (m *Manager) Delete(id uuid.UUID) error {
	sets := m.LoadAll()
	i := slices.IndexFunc(sets, func(s model.TaskSet) bool { return s.ID == id })
	if i < 0 {
		return nil
	}
	return m.persist(slices.Delete(sets, i, i+1))
}

// Find returns the set with the given id
func (m *Manager) Find(id uuid.UUID) (model.TaskSet, bool) {
	for _, s := range m.LoadAll() {
		if s.ID == id {
			return s, true
		}
	}
	return model.TaskSet{}, false
}

// FindByName returns the oldest set whose name matches, ignoring case and
// surrounding whitespace
func (m *Manager) FindByName(name string) (model.TaskSet, bool) {
	name = strings.TrimSpace(name)
	for _, s := range m.LoadAll() {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return model.TaskSet{}, false
}

// Snapshot builds a new set from the given tasks
func (m *Manager) Snapshot(name string, tasks []model.Task) (model.TaskSet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.TaskSet{}, ErrEmptyName
	}
	if len(tasks) == 0 {
		return model.TaskSet{}, ErrNoTasks
	}

	templates := make([]model.TaskTemplate, len(tasks))
	for i, t := range tasks {
		templates[i] = model.TemplateFromTask(t)
	}
	return model.TaskSet{
		ID:        uuid.New(),
		Name:      name,
		Tasks:     templates,
		CreatedAt: m.now(),
	}, nil
}

// Instantiate turns the templates of set into new tasks
func (m *Manager) Instantiate(set model.TaskSet) []model.Task {
	return Instantiate(set)
}

// Instantiate turns every template into a new, incomplete task with a fresh
// id. The tasks carry no creation date, so they sort after dated tasks when
// ordering by creation date.
func Instantiate(set model.TaskSet) []model.Task {
	tasks := make([]model.Task, len(set.Tasks))
	for i, tmpl := range set.Tasks {
		priority := tmpl.Priority
		if !priority.IsValid() {
			priority = model.PriorityMedium
		}
		tasks[i] = model.Task{
			ID:       uuid.New(),
			Title:    tmpl.Title,
			Detail:   tmpl.Detail,
			Priority: priority,
		}
	}
	return tasks
}

func (m *Manager) persist(sets []model.TaskSet) error {
	data, err := json.Marshal(sets)
	if err != nil {
		return fmt.Errorf("failed to encode task sets: %w", err)
	}
	if err := m.store.Save(storage.TaskSetsKey, data); err != nil {
		m.logger.Printf("failed to write task sets: %v", err)
		return fmt.Errorf("failed to write task sets: %w", err)
	}
	return nil
}
