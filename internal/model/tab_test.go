package model

import "testing"

func TestNormalizeThemeIndex(t *testing.T) {
	tests := []struct {
		index, count, want int
	}{
		{7, 5, 2},
		{-1, 5, 4},
		{-6, 5, 4},
		{3, 5, 3},
		{0, 5, 0},
		{4, 0, 0},
	}
	for _, tt := range tests {
		if got := NormalizeThemeIndex(tt.index, tt.count); got != tt.want {
			t.Errorf("NormalizeThemeIndex(%d, %d) = %d, want %d", tt.index, tt.count, got, tt.want)
		}
	}
}

func TestCloneDoesNotShareTasks(t *testing.T) {
	tab := NewTab("Work", 1)
	tab.Tasks = append(tab.Tasks, Task{Title: "a"})

	c := tab.Clone()
	c.Tasks[0].Title = "changed"
	if tab.Tasks[0].Title != "a" {
		t.Fatalf("clone shares backing array")
	}
}

func TestDefaultTabs(t *testing.T) {
	tabs := DefaultTabs()
	if len(tabs) != 1 || tabs[0].Name != DefaultTabName || tabs[0].ThemeIndex != 0 {
		t.Fatalf("unexpected default tabs: %+v", tabs)
	}
}
