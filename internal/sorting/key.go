// Package sorting orders the tasks of a tab by a user-configured list of keys.
package sorting

import (
	"fmt"
	"strings"
)

// SortKey identifies one comparison applied when sorting tasks. The values are
// the strings persisted in the stored configuration.
type SortKey string

const (
	KeyCompletion  SortKey = "未完了優先"
	KeyPriority    SortKey = "重要度順"
	KeyCreatedDate SortKey = "作成日時"
	KeyName        SortKey = "名前順"
	KeyNone        SortKey = "なし"
)

// Keys returns every sort key in picker order
func Keys() []SortKey {
	return []SortKey{KeyCompletion, KeyPriority, KeyCreatedDate, KeyName, KeyNone}
}

// IsValid reports whether k is a known key
func (k SortKey) IsValid() bool {
	for _, known := range Keys() {
		if k == known {
			return true
		}
	}
	return false
}

// DisplayName returns the label used by the settings picker
func (k SortKey) DisplayName() string {
	switch k {
	case KeyCompletion:
		return "未完了を上"
	case KeyPriority:
		return "重要度順"
	case KeyCreatedDate:
		return "古い順"
	case KeyName:
		return "名前順"
	default:
		return "なし"
	}
}

// Label returns a short English label
func (k SortKey) Label() string {
	switch k {
	case KeyCompletion:
		return "Incomplete first"
	case KeyPriority:
		return "Priority"
	case KeyCreatedDate:
		return "Oldest first"
	case KeyName:
		return "Name"
	default:
		return "None"
	}
}

// Next returns the key after k in picker order, wrapping around
func (k SortKey) Next() SortKey {
	return k.step(1)
}

// Prev returns the key before k in picker order, wrapping around
func (k SortKey) Prev() SortKey {
	return k.step(-1)
}

func (k SortKey) step(delta int) SortKey {
	keys := Keys()
	for i, known := range keys {
		if known == k {
			return keys[(i+delta+len(keys))%len(keys)]
		}
	}
	return KeyNone
}

// UnmarshalText rejects unknown keys so a corrupt configuration fails to decode
func (k *SortKey) UnmarshalText(text []byte) error {
	v := SortKey(text)
	if !v.IsValid() {
		return fmt.Errorf("unknown sort key %q", string(text))
	}
	*k = v
	return nil
}

// ParseSortKey accepts either the stored value or an English identifier
func ParseSortKey(s string) (SortKey, bool) {
	if k := SortKey(s); k.IsValid() {
		return k, true
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "completion", "done":
		return KeyCompletion, true
	case "priority", "pri":
		return KeyPriority, true
	case "created", "createddate", "date":
		return KeyCreatedDate, true
	case "name", "title":
		return KeyName, true
	case "none", "-":
		return KeyNone, true
	}
	return "", false
}
