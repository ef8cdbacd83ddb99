package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tabdo/internal/app"
	"github.com/dori/tabdo/internal/board"
	"github.com/dori/tabdo/internal/ui/theme"
	"github.com/dori/tabdo/internal/ui/views"
	"github.com/google/uuid"
)

// RootModel is the main application model that manages tabs and views
type RootModel struct {
	board  *board.Board
	keys   KeyMap
	help   help.Model
	width  int
	height int

	currentView View
	listView    views.ListView
	sortView    views.SortView
	setsView    views.TaskSetView
	tabForm     views.TabForm
	helpVisible bool

	confirmDeleteTab uuid.UUID

	// Status message
	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = true

	if t, ok := theme.ByName(application.Config.Theme); ok {
		theme.SetTheme(t)
	}

	return RootModel{
		board:       application.Board,
		keys:        DefaultKeyMap(),
		help:        h,
		currentView: ViewList,
		listView:    views.NewListView(application.Board),
		sortView:    views.NewSortView(application.Board),
		setsView: views.NewTaskSetView(application.Board, application.TaskSets,
			application.Notifier, application.Config.PromoDelay).Reload(),
		tabForm: views.NewTabForm(),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return m.listView.Init()
}

// isInputMode reports whether keys should go to a text input or prompt
func (m RootModel) isInputMode() bool {
	if m.tabForm.Active() || m.confirmDeleteTab != uuid.Nil {
		return true
	}
	switch m.currentView {
	case ViewList:
		return m.listView.IsInputMode()
	case ViewSort:
		return m.sortView.IsInputMode()
	case ViewSets:
		return m.setsView.IsInputMode()
	}
	return false
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header (2 lines) and footer (2 lines)
		contentHeight := m.height - 4
		m.listView = m.listView.SetSize(m.width, contentHeight)
		m.sortView = m.sortView.SetSize(m.width, contentHeight)
		m.setsView = m.setsView.SetSize(m.width, contentHeight)
		return m, nil

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		if m.tabForm.Active() {
			var cmd tea.Cmd
			m.tabForm, cmd = m.tabForm.Update(msg)
			return m, cmd
		}
		if m.confirmDeleteTab != uuid.Nil {
			return m.handleDeleteTabConfirm(msg)
		}

		isInputMode := m.isInputMode()

		// Global keybindings
		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not in input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.ThemeCycle):
			return m, m.cycleTheme()
		}

		if isInputMode {
			break
		}

		// These only work when NOT in input mode
		switch {
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.board.SelectNext()
			m.listView = m.listView.Reset()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.board.SelectPrev()
			m.listView = m.listView.Reset()
			return m, nil
		case key.Matches(msg, m.keys.NewTab):
			var cmd tea.Cmd
			m.tabForm, cmd = m.tabForm.Open(m.board.NextThemeIndex())
			return m, cmd
		case key.Matches(msg, m.keys.EditTab):
			var cmd tea.Cmd
			m.tabForm, cmd = m.tabForm.OpenEdit(m.board.ActiveTab())
			return m, cmd
		case key.Matches(msg, m.keys.DeleteTab):
			if !m.board.CanDeleteTab() {
				m.errorMsg = "The last tab cannot be deleted"
				return m, nil
			}
			m.confirmDeleteTab = m.board.ActiveID()
			return m, nil

		// View switching
		case key.Matches(msg, m.keys.ListView):
			m.currentView = ViewList
			return m, m.listView.Init()
		case key.Matches(msg, m.keys.SortView):
			m.currentView = ViewSort
			return m, m.sortView.Init()
		case key.Matches(msg, m.keys.SetsView):
			m.currentView = ViewSets
			m.setsView = m.setsView.Reload()
			return m, m.setsView.Init()
		}

	case views.TabFormSubmitMsg:
		return m.submitTab(msg)

	case views.TabFormCancelMsg:
		return m, nil

	case views.TaskSetSavedMsg:
		// Delivered after the delay even if another view is showing
		return m, m.setsView.Announce(msg)

	case views.ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case views.StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case ThemeChangedMsg:
		m.statusMsg = fmt.Sprintf("Theme: %s", msg.ThemeName)
		return m, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewList:
		var updated tea.Model
		updated, cmd = m.listView.Update(msg)
		m.listView = updated.(views.ListView)
	case ViewSort:
		var updated tea.Model
		updated, cmd = m.sortView.Update(msg)
		m.sortView = updated.(views.SortView)
	case ViewSets:
		var updated tea.Model
		updated, cmd = m.setsView.Update(msg)
		m.setsView = updated.(views.TaskSetView)
	}
	return m, cmd
}

// submitTab applies the tab form to the board
func (m RootModel) submitTab(msg views.TabFormSubmitMsg) (tea.Model, tea.Cmd) {
	if msg.ID == uuid.Nil {
		tab, err := m.board.CreateTab(msg.Name, msg.ThemeIndex)
		if err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.listView = m.listView.Reset()
		m.statusMsg = fmt.Sprintf("Created tab %s", tab.Name)
		return m, nil
	}

	if err := m.board.UpdateTab(msg.ID, msg.Name, msg.ThemeIndex); err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}
	m.statusMsg = "Tab updated"
	return m, nil
}

// handleDeleteTabConfirm handles the delete tab prompt
func (m RootModel) handleDeleteTabConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.confirmDeleteTab
	switch msg.String() {
	case "y", "Y":
		m.confirmDeleteTab = uuid.Nil
		if !m.board.DeleteTab(id) {
			m.errorMsg = "The last tab cannot be deleted"
			return m, nil
		}
		m.listView = m.listView.Reset()
		m.statusMsg = "Tab deleted"
	case "n", "N", "esc":
		m.confirmDeleteTab = uuid.Nil
	}
	return m, nil
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTabBar())

	contentHeight := m.height - 5
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight--
	}

	var content string
	switch {
	case m.helpVisible:
		content = m.help.View(m.keys)
	case m.tabForm.Active():
		content = m.tabForm.View()
	case m.confirmDeleteTab != uuid.Nil:
		t := theme.Current.Theme
		confirmStyle := lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
		tab := m.board.ActiveTab()
		content = confirmStyle.Render(fmt.Sprintf("Delete tab %s and its %d task(s)? (y/n)", tab.Name, len(tab.Tasks)))
	default:
		switch m.currentView {
		case ViewList:
			content = m.listView.View()
		case ViewSort:
			content = m.sortView.View()
		case ViewSets:
			content = m.setsView.View()
		}
	}

	// Ensure content fills available space
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("tabdo")

	viewStyle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)
	viewIndicator := viewStyle.Render(fmt.Sprintf("[%s]", m.currentView.String()))
	themeIndicator := viewStyle.Render(fmt.Sprintf("theme: %s", t.Name))

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, viewIndicator)
	gap := max(0, m.width-lipgloss.Width(leftSide)-lipgloss.Width(themeIndicator))

	return leftSide + strings.Repeat(" ", gap) + themeIndicator
}

// renderTabBar renders one label per tab in its accent colour
func (m RootModel) renderTabBar() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	activeID := m.board.ActiveID()
	var labels []string
	for _, tab := range m.board.Tabs() {
		accent := t.Accent(m.board.ThemeIndex(tab))
		label := fmt.Sprintf("%s %d/%d", tab.Name, tab.CompletedCount(), len(tab.Tasks))
		if tab.ID == activeID {
			labels = append(labels, styles.TabActive.Background(accent).Render(label))
		} else {
			labels = append(labels, styles.Tab.Foreground(accent).Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// renderFooter renders the footer/status bar
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	key := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Info).Render(m.statusMsg)
	}

	var line1, line2 string
	switch {
	case m.isInputMode():
		line1 = key("enter", "confirm") + sep + key("esc", "cancel")
	case m.currentView == ViewList:
		line1 = key("a", "add") + sep +
			key("e", "edit") + sep +
			key("space", "done") + sep +
			key("p", "priority") + sep +
			key("d", "del") + sep +
			key("D", "del done") + sep +
			key("J/K", "move") + sep +
			key("s", "sort")
		line2 = key("tab", "next tab") + sep +
			key("T", "new tab") + sep +
			key("R", "edit tab") + sep +
			key("X", "del tab") + sep +
			key("1-3", "views") + sep +
			key("?", "help")
	case m.currentView == ViewSort:
		line1 = key("j/k", "level") + sep +
			key("h/l", "change key") + sep +
			key("x", "none") + sep +
			key("r", "reset") + sep +
			key("s", "sort now")
		line2 = key("1-3", "views") + sep + key("ctrl+t", "theme") + sep + key("?", "help")
	case m.currentView == ViewSets:
		line1 = key("enter", "apply") + sep +
			key("n", "save tab as set") + sep +
			key("d", "delete")
		line2 = key("tab", "next tab") + sep + key("1-3", "views") + sep + key("?", "help")
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}
	return strings.Join(lines, "\n")
}

// cycleTheme switches to the next available theme
func (m *RootModel) cycleTheme() tea.Cmd {
	next := theme.Next()
	theme.SetTheme(next)
	return func() tea.Msg {
		return ThemeChangedMsg{ThemeName: next.Name}
	}
}
