package model

import (
	"fmt"
	"strings"
)

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities returns all priorities in sort order
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid reports whether p is one of the known priorities
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// SortOrder returns the rank used when sorting by priority (high first)
func (p Priority) SortOrder() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// Next returns the priority that follows p when cycling: medium -> high -> low -> medium
func (p Priority) Next() Priority {
	switch p {
	case PriorityMedium:
		return PriorityHigh
	case PriorityHigh:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// DisplayName returns the short label shown next to a task
func (p Priority) DisplayName() string {
	switch p {
	case PriorityHigh:
		return "高"
	case PriorityLow:
		return "低"
	default:
		return "中"
	}
}

// UnmarshalText rejects unknown priority strings
func (p *Priority) UnmarshalText(text []byte) error {
	v := Priority(text)
	if !v.IsValid() {
		return fmt.Errorf("unknown priority %q", string(text))
	}
	*p = v
	return nil
}

// ParsePriority parses a user supplied priority word (high, h, 高, ...)
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "hi", "h", "高":
		return PriorityHigh, true
	case "medium", "med", "m", "中":
		return PriorityMedium, true
	case "low", "lo", "l", "低":
		return PriorityLow, true
	}
	return "", false
}
