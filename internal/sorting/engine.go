package sorting

import (
	"cmp"
	"slices"
	"time"

	"github.com/dori/tabdo/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter orders tasks according to a Configuration. Names are compared with a
// collator for the configured language.
type Sorter struct {
	lang language.Tag
}

// NewSorter creates a sorter that compares names using the rules of lang
func NewSorter(lang language.Tag) *Sorter {
	return &Sorter{lang: lang}
}

var defaultSorter = NewSorter(language.Japanese)

// Sort orders tasks with the default Japanese collation
func Sort(tasks []model.Task, cfg Configuration) []model.Task {
	return defaultSorter.Sort(tasks, cfg)
}

// Language returns the collation language
func (s *Sorter) Language() language.Tag {
	return s.lang
}

// Sort returns a new slice holding tasks ordered by cfg. Tasks that compare
// equal on every key keep their original relative order. The input is not
// modified.
func (s *Sorter) Sort(tasks []model.Task, cfg Configuration) []model.Task {
	type entry struct {
		task model.Task
		pos  int
	}

	entries := make([]entry, len(tasks))
	for i, t := range tasks {
		entries[i] = entry{task: t, pos: i}
	}

	c := s.comparer()
	slices.SortFunc(entries, func(a, b entry) int {
		for _, key := range cfg.Priorities {
			if r := c.compare(a.task, b.task, key); r != 0 {
				return r
			}
		}
		return cmp.Compare(a.pos, b.pos)
	})

	out := make([]model.Task, len(entries))
	for i, e := range entries {
		out[i] = e.task
	}
	return out
}

// Compare compares two tasks on a single key and returns -1, 0 or 1
func (s *Sorter) Compare(a, b model.Task, key SortKey) int {
	return s.comparer().compare(a, b, key)
}

// comparer holds a collator for the duration of one sort; collators are not
// safe for concurrent use.
type comparer struct {
	names *collate.Collator
}

func (s *Sorter) comparer() comparer {
	return comparer{
		names: collate.New(s.lang, collate.Numeric),
	}
}

func (c comparer) compare(a, b model.Task, key SortKey) int {
	switch key {
	case KeyCompletion:
		return compareBool(a.IsCompleted, b.IsCompleted)
	case KeyPriority:
		return cmp.Compare(a.Priority.SortOrder(), b.Priority.SortOrder())
	case KeyCreatedDate:
		return compareDates(a.CreatedAt, b.CreatedAt)
	case KeyName:
		if a.Title == b.Title {
			return 0
		}
		if r := c.names.CompareString(a.Title, b.Title); r != 0 {
			return r
		}
		// distinct titles never tie
		return cmp.Compare(a.Title, b.Title)
	default:
		return 0
	}
}

// compareBool orders false before true
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// compareDates orders earlier first. A missing date sorts after any present one.
func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
