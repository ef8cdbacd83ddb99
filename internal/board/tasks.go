package board

import (
	"slices"
	"strings"

	"github.com/dori/tabdo/internal/model"
	"github.com/dori/tabdo/internal/sorting"
	"github.com/dori/tabdo/internal/taskset"
	"github.com/google/uuid"
)

// AddTask appends a new task to the active tab and re-sorts it
func (b *Board) AddTask(title, detail string, priority model.Priority) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}

	task := model.NewTask(title, detail, priority, b.now())
	i := b.activeIndex()
	b.tabs[i].Tasks = append(b.tabs[i].Tasks, task)
	b.sortTab(i)
	b.notify(TabsChanged)
	return task, nil
}

// EditTask changes the title and detail of a task in any tab. Completion
// state and timestamps are kept. Unknown ids are ignored.
func (b *Board) EditTask(id uuid.UUID, title, detail string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	ti, ki := b.locate(id)
	if ti < 0 {
		return nil
	}

	task := &b.tabs[ti].Tasks[ki]
	task.Title = title
	task.Detail = detail
	b.notify(TabsChanged)
	return nil
}

// ToggleTask flips the completion state of a task
func (b *Board) ToggleTask(id uuid.UUID) bool {
	ti, ki := b.locate(id)
	if ti < 0 {
		return false
	}
	b.tabs[ti].Tasks[ki].Toggle(b.now())
	b.notify(TabsChanged)
	return true
}

// CyclePriority advances the priority of a task (medium -> high -> low -> medium)
func (b *Board) CyclePriority(id uuid.UUID) bool {
	ti, ki := b.locate(id)
	if ti < 0 {
		return false
	}
	b.tabs[ti].Tasks[ki].CyclePriority()
	b.notify(TabsChanged)
	return true
}

// SetPriority sets the priority of a task
func (b *Board) SetPriority(id uuid.UUID, p model.Priority) bool {
	if !p.IsValid() {
		return false
	}
	ti, ki := b.locate(id)
	if ti < 0 {
		return false
	}
	b.tabs[ti].Tasks[ki].Priority = p
	b.notify(TabsChanged)
	return true
}

// DeleteTask removes a task from whichever tab holds it
func (b *Board) DeleteTask(id uuid.UUID) bool {
	ti, ki := b.locate(id)
	if ti < 0 {
		return false
	}
	b.tabs[ti].Tasks = slices.Delete(b.tabs[ti].Tasks, ki, ki+1)
	b.notify(TabsChanged)
	return true
}

// FindTask returns a task from any tab
func (b *Board) FindTask(id uuid.UUID) (model.Task, bool) {
	ti, ki := b.locate(id)
	if ti < 0 {
		return model.Task{}, false
	}
	return b.tabs[ti].Tasks[ki], true
}

// MoveTask moves the task at position from to position to within the active
// tab. Manual order is kept until the next sort.
func (b *Board) MoveTask(from, to int) bool {
	i := b.activeIndex()
	tasks := b.tabs[i].Tasks
	if from < 0 || from >= len(tasks) || to < 0 || to >= len(tasks) {
		return false
	}
	if from == to {
		return true
	}

	task := tasks[from]
	tasks = slices.Delete(tasks, from, from+1)
	b.tabs[i].Tasks = slices.Insert(tasks, to, task)
	b.notify(TabsChanged)
	return true
}

// DeleteCompleted removes every completed task from the active tab and
// returns how many were removed
func (b *Board) DeleteCompleted() int {
	i := b.activeIndex()
	before := len(b.tabs[i].Tasks)
	b.tabs[i].Tasks = slices.DeleteFunc(b.tabs[i].Tasks, func(t model.Task) bool {
		return t.IsCompleted
	})
	removed := before - len(b.tabs[i].Tasks)
	if removed > 0 {
		b.notify(TabsChanged)
	}
	return removed
}

// ApplyTaskSet appends fresh tasks built from set to the active tab and
// re-sorts it
func (b *Board) ApplyTaskSet(set model.TaskSet) []model.Task {
	tasks := taskset.Instantiate(set)
	i := b.activeIndex()
	b.tabs[i].Tasks = append(b.tabs[i].Tasks, tasks...)
	b.sortTab(i)
	b.notify(TabsChanged)
	return tasks
}

// Sort re-sorts the active tab with the current configuration
func (b *Board) Sort() {
	b.sortTab(b.activeIndex())
	b.notify(TabsChanged)
}

// SortConfiguration returns the current configuration
func (b *Board) SortConfiguration() sorting.Configuration {
	return b.sortConfig.Clone()
}

// SetSortKey changes one level of the configuration, swapping duplicates
func (b *Board) SetSortKey(index int, key sorting.SortKey) {
	b.SetSortConfiguration(b.sortConfig.SetKeyAt(index, key))
}

// SetSortConfiguration replaces the configuration. Invalid configurations are ignored.
func (b *Board) SetSortConfiguration(cfg sorting.Configuration) {
	if cfg.Validate() != nil || cfg.Equal(b.sortConfig) {
		return
	}
	b.sortConfig = cfg.Clone()
	b.notify(SortChanged)
}

func (b *Board) sortTab(i int) {
	b.tabs[i].Tasks = b.sorter.Sort(b.tabs[i].Tasks, b.sortConfig)
}

// locate finds a task by id across all tabs
func (b *Board) locate(id uuid.UUID) (tabIndex, taskIndex int) {
	for ti, tab := range b.tabs {
		for ki, task := range tab.Tasks {
			if task.ID == id {
				return ti, ki
			}
		}
	}
	return -1, -1
}
