package ui

// View represents the current active view
type View int

const (
	ViewList View = iota
	ViewSort
	ViewSets
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewList:
		return "Tasks"
	case ViewSort:
		return "Sort"
	case ViewSets:
		return "Task sets"
	default:
		return "Unknown"
	}
}

// ThemeChangedMsg indicates the theme was changed
type ThemeChangedMsg struct {
	ThemeName string
}
