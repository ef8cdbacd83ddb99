// Package board holds the tab collection of a session: the tabs, the active
// tab, and the sort configuration applied to it.
package board

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/dori/tabdo/internal/model"
	"github.com/dori/tabdo/internal/sorting"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

var (
	// ErrEmptyName is returned when a tab name is blank
	ErrEmptyName = errors.New("tab name is empty")
	// ErrEmptyTitle is returned when a task title is blank
	ErrEmptyTitle = errors.New("task title is empty")
)

// DefaultThemeCount is the number of tab accent colours
const DefaultThemeCount = 5

// ChangeKind tells listeners what changed
type ChangeKind int

const (
	TabsChanged ChangeKind = iota
	SortChanged
)

// Change is sent to listeners after every mutation
type Change struct {
	Kind ChangeKind
	Tabs []model.Tab
	Sort sorting.Configuration
}

// Listener receives change notifications
type Listener func(Change)

// Board is the in-memory tab collection. It is not safe for concurrent use;
// callers apply one action at a time.
type Board struct {
	tabs       []model.Tab
	activeID   uuid.UUID
	sortConfig sorting.Configuration
	sorter     *sorting.Sorter
	themeCount int
	now        func() time.Time
	listeners  []Listener
}

// Option configures a Board
type Option func(*Board)

// WithThemeCount sets the number of available theme options
func WithThemeCount(n int) Option {
	return func(b *Board) { b.themeCount = n }
}

// WithClock replaces the time source
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// WithSorter replaces the sorter
func WithSorter(s *sorting.Sorter) Option {
	return func(b *Board) { b.sorter = s }
}

// New creates a board from loaded tabs. With no tabs the default tab is used.
// The first tab becomes active.
func New(tabs []model.Tab, cfg sorting.Configuration, opts ...Option) *Board {
	b := &Board{
		sortConfig: cfg.Clone(),
		themeCount: DefaultThemeCount,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.sorter == nil {
		b.sorter = sorting.NewSorter(language.Japanese)
	}
	if err := b.sortConfig.Validate(); err != nil {
		b.sortConfig = sorting.Default()
	}

	if len(tabs) == 0 {
		tabs = model.DefaultTabs()
	}
	b.tabs = make([]model.Tab, len(tabs))
	for i, t := range tabs {
		b.tabs[i] = t.Clone()
	}
	b.activeID = b.tabs[0].ID
	return b
}

// Subscribe registers a listener for changes
func (b *Board) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

func (b *Board) notify(kind ChangeKind) {
	if len(b.listeners) == 0 {
		return
	}
	c := Change{Kind: kind, Tabs: b.Tabs(), Sort: b.sortConfig.Clone()}
	for _, l := range b.listeners {
		l(c)
	}
}

// Tabs returns a copy of the collection
func (b *Board) Tabs() []model.Tab {
	out := make([]model.Tab, len(b.tabs))
	for i, t := range b.tabs {
		out[i] = t.Clone()
	}
	return out
}

// ActiveID returns the id of the active tab
func (b *Board) ActiveID() uuid.UUID {
	return b.activeID
}

// ActiveTab returns a copy of the active tab
func (b *Board) ActiveTab() model.Tab {
	return b.tabs[b.activeIndex()].Clone()
}

// ActiveIndex returns the position of the active tab
func (b *Board) ActiveIndex() int {
	return b.activeIndex()
}

func (b *Board) activeIndex() int {
	if i := b.tabIndex(b.activeID); i >= 0 {
		return i
	}
	// Active pointer always references an existing tab; repair if it does not
	b.activeID = b.tabs[0].ID
	return 0
}

func (b *Board) tabIndex(id uuid.UUID) int {
	return slices.IndexFunc(b.tabs, func(t model.Tab) bool { return t.ID == id })
}

// ThemeCount returns the number of theme options tabs are normalized against
func (b *Board) ThemeCount() int {
	return b.themeCount
}

// ThemeIndex returns the normalized theme index of a tab
func (b *Board) ThemeIndex(tab model.Tab) int {
	return model.NormalizeThemeIndex(tab.ThemeIndex, b.themeCount)
}

// NextThemeIndex returns the theme suggested for a new tab
func (b *Board) NextThemeIndex() int {
	return model.NormalizeThemeIndex(len(b.tabs), b.themeCount)
}

// CreateTab appends a tab and makes it active
func (b *Board) CreateTab(name string, themeIndex int) (model.Tab, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Tab{}, ErrEmptyName
	}

	tab := model.NewTab(name, model.NormalizeThemeIndex(themeIndex, b.themeCount))
	b.tabs = append(b.tabs, tab)
	b.activeID = tab.ID
	b.notify(TabsChanged)
	return tab.Clone(), nil
}

// UpdateTab renames and re-themes a tab. Unknown ids are ignored.
func (b *Board) UpdateTab(id uuid.UUID, name string, themeIndex int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	i := b.tabIndex(id)
	if i < 0 {
		return nil
	}

	b.tabs[i].Name = name
	b.tabs[i].ThemeIndex = model.NormalizeThemeIndex(themeIndex, b.themeCount)
	b.notify(TabsChanged)
	return nil
}

// CanDeleteTab reports whether a tab may be deleted (at least one must remain)
func (b *Board) CanDeleteTab() bool {
	return len(b.tabs) > 1
}

// DeleteTab removes a tab. The last remaining tab cannot be deleted. When the
// active tab is removed the first remaining tab becomes active.
func (b *Board) DeleteTab(id uuid.UUID) bool {
	if !b.CanDeleteTab() {
		return false
	}
	i := b.tabIndex(id)
	if i < 0 {
		return false
	}

	b.tabs = slices.Delete(b.tabs, i, i+1)
	if b.activeID == id {
		b.activeID = b.tabs[0].ID
	}
	b.notify(TabsChanged)
	return true
}

// SelectTab makes a tab active
func (b *Board) SelectTab(id uuid.UUID) bool {
	if b.tabIndex(id) < 0 {
		return false
	}
	b.activeID = id
	return true
}

// SelectNext activates the tab after the active one, wrapping around
func (b *Board) SelectNext() {
	b.selectOffset(1)
}

// SelectPrev activates the tab before the active one, wrapping around
func (b *Board) SelectPrev() {
	b.selectOffset(-1)
}

func (b *Board) selectOffset(delta int) {
	n := len(b.tabs)
	i := (b.activeIndex() + delta + n) % n
	b.activeID = b.tabs[i].ID
}

// FindTab returns the first tab whose name matches, ignoring case
func (b *Board) FindTab(name string) (model.Tab, bool) {
	name = strings.TrimSpace(name)
	for _, t := range b.tabs {
		if strings.EqualFold(t.Name, name) {
			return t.Clone(), true
		}
	}
	return model.Tab{}, false
}
