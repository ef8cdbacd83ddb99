package board

import (
	"errors"
	"testing"
	"time"

	"github.com/dori/tabdo/internal/model"
	"github.com/dori/tabdo/internal/sorting"
	"github.com/google/uuid"
)

// recorder collects change notifications
type recorder struct {
	changes []Change
}

func (r *recorder) listen(c Change) { r.changes = append(r.changes, c) }

func (r *recorder) count(kind ChangeKind) int {
	n := 0
	for _, c := range r.changes {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func setupBoard(t *testing.T, tabs ...model.Tab) (*Board, *recorder) {
	t.Helper()
	clock := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	b := New(tabs, sorting.Default(), WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
	rec := &recorder{}
	b.Subscribe(rec.listen)
	return b, rec
}

func TestNewUsesDefaultTab(t *testing.T) {
	b, _ := setupBoard(t)
	tabs := b.Tabs()
	if len(tabs) != 1 || tabs[0].Name != model.DefaultTabName {
		t.Fatalf("unexpected tabs: %+v", tabs)
	}
	if b.ActiveID() != tabs[0].ID {
		t.Errorf("active tab should be the first tab")
	}
}

func TestNewFallsBackToDefaultSort(t *testing.T) {
	b := New(nil, sorting.Configuration{})
	if !b.SortConfiguration().Equal(sorting.Default()) {
		t.Errorf("got %v", b.SortConfiguration().Priorities)
	}
}

func TestCreateTab(t *testing.T) {
	b, rec := setupBoard(t)

	if _, err := b.CreateTab("   ", 0); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if len(b.Tabs()) != 1 || len(rec.changes) != 0 {
		t.Fatalf("rejected create must not change anything")
	}

	if got := b.NextThemeIndex(); got != 1 {
		t.Errorf("NextThemeIndex = %d, want 1", got)
	}
	tab, err := b.CreateTab("  Work ", 7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tab.Name != "Work" || tab.ThemeIndex != 2 {
		t.Errorf("got %+v", tab)
	}
	if b.ActiveID() != tab.ID {
		t.Errorf("new tab should become active")
	}
	if rec.count(TabsChanged) != 1 {
		t.Errorf("expected one change, got %d", len(rec.changes))
	}
}

func TestUpdateTab(t *testing.T) {
	b, rec := setupBoard(t)
	id := b.ActiveID()

	if err := b.UpdateTab(id, "", 0); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if err := b.UpdateTab(uuid.New(), "Ghost", 0); err != nil {
		t.Fatalf("unknown id should be a no-op, got %v", err)
	}
	if len(rec.changes) != 0 {
		t.Fatalf("no-op updates must not notify")
	}

	if err := b.UpdateTab(id, "Home", -1); err != nil {
		t.Fatalf("update: %v", err)
	}
	tab := b.ActiveTab()
	if tab.Name != "Home" || tab.ThemeIndex != 4 {
		t.Errorf("got %+v", tab)
	}
}

func TestDeleteTabInvariants(t *testing.T) {
	b, rec := setupBoard(t)
	only := b.ActiveID()

	if b.DeleteTab(only) {
		t.Fatalf("deleting the last tab must be refused")
	}
	if len(b.Tabs()) != 1 || len(rec.changes) != 0 {
		t.Fatalf("collection changed after refused delete")
	}

	second, _ := b.CreateTab("Second", 1)
	third, _ := b.CreateTab("Third", 2)
	b.SelectTab(second.ID)

	if !b.DeleteTab(second.ID) {
		t.Fatalf("delete failed")
	}
	if b.ActiveID() != only {
		t.Errorf("active should move to the first remaining tab")
	}

	// Deleting an inactive tab keeps the active pointer
	b.SelectTab(third.ID)
	if !b.DeleteTab(only) {
		t.Fatalf("delete failed")
	}
	if b.ActiveID() != third.ID {
		t.Errorf("active tab changed when deleting another tab")
	}
	if b.DeleteTab(uuid.New()) {
		t.Errorf("unknown id should not delete")
	}
}

func TestSelectNextPrevWraps(t *testing.T) {
	b, _ := setupBoard(t)
	first := b.ActiveID()
	second, _ := b.CreateTab("Second", 1)

	b.SelectNext()
	if b.ActiveID() != first {
		t.Errorf("next from last tab should wrap to first")
	}
	b.SelectPrev()
	if b.ActiveID() != second.ID {
		t.Errorf("prev from first tab should wrap to last")
	}
	if b.SelectTab(uuid.New()) {
		t.Errorf("selecting unknown tab should fail")
	}
}

func TestAddTaskSortsActiveTab(t *testing.T) {
	b, rec := setupBoard(t)

	if _, err := b.AddTask(" \t", "", model.PriorityHigh); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}

	low, _ := b.AddTask("low", "", model.PriorityLow)
	high, _ := b.AddTask("high", "detail", model.PriorityHigh)
	b.ToggleTask(high.ID)
	medium, _ := b.AddTask("medium", "", model.PriorityMedium)

	// default: completion, priority, createdDate
	tasks := b.ActiveTab().Tasks
	want := []uuid.UUID{medium.ID, low.ID, high.ID}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Fatalf("position %d: got %s", i, tasks[i].Title)
		}
	}
	if rec.count(TabsChanged) != 4 {
		t.Errorf("expected 4 changes, got %d", rec.count(TabsChanged))
	}
}

func TestToggleStampsCompletion(t *testing.T) {
	b, _ := setupBoard(t)
	task, _ := b.AddTask("a", "", model.PriorityMedium)

	b.ToggleTask(task.ID)
	got, _ := b.FindTask(task.ID)
	if !got.IsCompleted || got.CompletedAt == nil {
		t.Fatalf("expected completed with timestamp: %+v", got)
	}

	b.ToggleTask(task.ID)
	got, _ = b.FindTask(task.ID)
	if got.IsCompleted || got.CompletedAt != nil {
		t.Fatalf("expected reopened without timestamp: %+v", got)
	}
	if b.ToggleTask(uuid.New()) {
		t.Errorf("toggling unknown task should report false")
	}
}

func TestEditTask(t *testing.T) {
	b, _ := setupBoard(t)
	task, _ := b.AddTask("a", "", model.PriorityMedium)
	b.ToggleTask(task.ID)

	if err := b.EditTask(task.ID, "  ", "x"); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if err := b.EditTask(task.ID, " renamed ", "more"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, _ := b.FindTask(task.ID)
	if got.Title != "renamed" || got.Detail != "more" || !got.IsCompleted || got.CreatedAt == nil {
		t.Errorf("unexpected task after edit: %+v", got)
	}
	if err := b.EditTask(uuid.New(), "x", ""); err != nil {
		t.Errorf("unknown id should be a no-op, got %v", err)
	}
}

func TestCyclePriority(t *testing.T) {
	b, _ := setupBoard(t)
	task, _ := b.AddTask("a", "", model.PriorityMedium)

	b.CyclePriority(task.ID)
	got, _ := b.FindTask(task.ID)
	if got.Priority != model.PriorityHigh {
		t.Errorf("priority = %s, want high", got.Priority)
	}
	b.SetPriority(task.ID, model.PriorityLow)
	got, _ = b.FindTask(task.ID)
	if got.Priority != model.PriorityLow {
		t.Errorf("priority = %s, want low", got.Priority)
	}
}

func TestDeleteTaskScansAllTabs(t *testing.T) {
	b, _ := setupBoard(t)
	first, _ := b.AddTask("in first tab", "", model.PriorityMedium)
	b.CreateTab("Second", 1)
	b.AddTask("in second tab", "", model.PriorityMedium)

	if !b.DeleteTask(first.ID) {
		t.Fatalf("expected delete of task in inactive tab to succeed")
	}
	if len(b.Tabs()[0].Tasks) != 0 || len(b.ActiveTab().Tasks) != 1 {
		t.Errorf("wrong task removed")
	}
	if b.DeleteTask(first.ID) {
		t.Errorf("second delete should report false")
	}
}

func TestMoveTaskDoesNotSort(t *testing.T) {
	b, _ := setupBoard(t)
	a, _ := b.AddTask("a", "", model.PriorityHigh)
	c, _ := b.AddTask("c", "", model.PriorityLow)

	if !b.MoveTask(1, 0) {
		t.Fatalf("move failed")
	}
	tasks := b.ActiveTab().Tasks
	if tasks[0].ID != c.ID || tasks[1].ID != a.ID {
		t.Fatalf("manual order not kept: %s, %s", tasks[0].Title, tasks[1].Title)
	}
	if b.MoveTask(0, 5) || b.MoveTask(-1, 0) {
		t.Errorf("out of range moves should fail")
	}

	b.Sort()
	tasks = b.ActiveTab().Tasks
	if tasks[0].ID != a.ID {
		t.Errorf("explicit sort should restore priority order")
	}
}

func TestDeleteCompleted(t *testing.T) {
	b, rec := setupBoard(t)
	a, _ := b.AddTask("a", "", model.PriorityMedium)
	c, _ := b.AddTask("c", "", model.PriorityMedium)
	b.AddTask("keep", "", model.PriorityMedium)
	b.ToggleTask(a.ID)
	b.ToggleTask(c.ID)

	before := len(rec.changes)
	if n := b.DeleteCompleted(); n != 2 {
		t.Fatalf("removed %d, want 2", n)
	}
	if tasks := b.ActiveTab().Tasks; len(tasks) != 1 || tasks[0].Title != "keep" {
		t.Errorf("unexpected remaining tasks: %+v", tasks)
	}
	if n := b.DeleteCompleted(); n != 0 {
		t.Errorf("second call removed %d", n)
	}
	if len(rec.changes) != before+1 {
		t.Errorf("expected exactly one change notification")
	}
}

func TestApplyTaskSetAppendsAndSorts(t *testing.T) {
	b, _ := setupBoard(t)
	dated, _ := b.AddTask("dated", "", model.PriorityLow)

	set := model.TaskSet{
		ID:   uuid.New(),
		Name: "Morning",
		Tasks: []model.TaskTemplate{
			{ID: uuid.New(), Title: "stretch", Priority: model.PriorityLow},
			{ID: uuid.New(), Title: "coffee", Priority: model.PriorityHigh},
		},
	}
	added := b.ApplyTaskSet(set)
	if len(added) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(added))
	}

	tasks := b.ActiveTab().Tasks
	titles := []string{tasks[0].Title, tasks[1].Title, tasks[2].Title}
	// priority first, then created date where undated tasks sort last
	want := []string{"coffee", "dated", "stretch"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("got %v, want %v", titles, want)
		}
	}
	if tasks[1].ID != dated.ID {
		t.Errorf("existing task lost its identity")
	}
}

func TestSetSortKeyNotifiesOnChange(t *testing.T) {
	b, rec := setupBoard(t)

	b.SetSortKey(0, sorting.KeyCompletion) // unchanged
	if rec.count(SortChanged) != 0 {
		t.Fatalf("unchanged configuration should not notify")
	}

	b.SetSortKey(0, sorting.KeyName)
	if rec.count(SortChanged) != 1 {
		t.Fatalf("expected SortChanged")
	}
	last := rec.changes[len(rec.changes)-1]
	want := []sorting.SortKey{sorting.KeyName, sorting.KeyPriority, sorting.KeyCreatedDate, sorting.KeyNone}
	if !last.Sort.Equal(sorting.Configuration{Priorities: want}) {
		t.Errorf("got %v", last.Sort.Priorities)
	}

	b.SetSortConfiguration(sorting.Configuration{Priorities: []sorting.SortKey{sorting.KeyName}})
	if rec.count(SortChanged) != 1 {
		t.Errorf("invalid configuration should be ignored")
	}
}

func TestListenersReceiveSnapshots(t *testing.T) {
	b, rec := setupBoard(t)
	b.AddTask("a", "", model.PriorityMedium)

	snapshot := rec.changes[0].Tabs
	snapshot[0].Tasks[0].Title = "mutated"
	if b.ActiveTab().Tasks[0].Title != "a" {
		t.Fatalf("listener snapshot aliases board state")
	}
}

func TestThemeIndexNormalizesOnRead(t *testing.T) {
	tab := model.NewTab("Old", 12)
	b := New([]model.Tab{tab}, sorting.Default(), WithThemeCount(5))
	if got := b.ThemeIndex(b.ActiveTab()); got != 2 {
		t.Errorf("ThemeIndex = %d, want 2", got)
	}
	if b.ActiveTab().ThemeIndex != 12 {
		t.Errorf("stored index should be kept as loaded")
	}
}
