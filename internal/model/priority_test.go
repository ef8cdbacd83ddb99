package model

import (
	"encoding/json"
	"testing"
)

func TestPriorityNextCycles(t *testing.T) {
	p := PriorityMedium
	want := []Priority{PriorityHigh, PriorityLow, PriorityMedium, PriorityHigh}
	for i, w := range want {
		p = p.Next()
		if p != w {
			t.Fatalf("step %d: got %s, want %s", i, p, w)
		}
	}
}

func TestPrioritySortOrder(t *testing.T) {
	if !(PriorityHigh.SortOrder() < PriorityMedium.SortOrder() &&
		PriorityMedium.SortOrder() < PriorityLow.SortOrder()) {
		t.Fatalf("expected high < medium < low")
	}
}

func TestPriorityJSONRejectsUnknown(t *testing.T) {
	var p Priority
	if err := json.Unmarshal([]byte(`"urgent"`), &p); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
	if err := json.Unmarshal([]byte(`"low"`), &p); err != nil || p != PriorityLow {
		t.Fatalf("got %q, %v", p, err)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{"high", PriorityHigh, true},
		{"H", PriorityHigh, true},
		{"med", PriorityMedium, true},
		{"低", PriorityLow, true},
		{"urgent", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePriority(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePriority(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
