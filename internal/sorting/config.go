package sorting

import (
	"fmt"
	"slices"
)

// ConfigurationSize is the number of sort levels a configuration holds
const ConfigurationSize = 4

// Configuration is the ordered list of sort keys. The first key is the
// primary comparison, later keys break ties.
type Configuration struct {
	Priorities []SortKey `json:"priorities"`
}

// Default returns the configuration used when nothing valid is stored
func Default() Configuration {
	return Configuration{
		Priorities: []SortKey{KeyCompletion, KeyPriority, KeyCreatedDate, KeyNone},
	}
}

// Validate checks the number of levels and every key. An active key may
// appear at most once; KeyNone may repeat.
func (c Configuration) Validate() error {
	if len(c.Priorities) != ConfigurationSize {
		return fmt.Errorf("expected %d sort keys, got %d", ConfigurationSize, len(c.Priorities))
	}
	for i, k := range c.Priorities {
		if !k.IsValid() {
			return fmt.Errorf("invalid sort key %q at position %d", k, i)
		}
		if k != KeyNone && slices.Index(c.Priorities, k) != i {
			return fmt.Errorf("sort key %q repeated at position %d", k, i)
		}
	}
	return nil
}

// Clone returns a copy that does not share the key slice
func (c Configuration) Clone() Configuration {
	return Configuration{Priorities: slices.Clone(c.Priorities)}
}

// Equal reports whether both configurations hold the same keys in the same order
func (c Configuration) Equal(other Configuration) bool {
	return slices.Equal(c.Priorities, other.Priorities)
}

// SetKeyAt returns a copy with key placed at index. When key is not KeyNone and
// already used at another position, that position takes over the value that
// was at index, so active keys never repeat. Out of range indexes are ignored.
func (c Configuration) SetKeyAt(index int, key SortKey) Configuration {
	next := c.Clone()
	if index < 0 || index >= len(next.Priorities) || !key.IsValid() {
		return next
	}
	if next.Priorities[index] == key {
		return next
	}
	if key != KeyNone {
		if j := slices.Index(next.Priorities, key); j >= 0 {
			next.Priorities[j] = next.Priorities[index]
		}
	}
	next.Priorities[index] = key
	return next
}
