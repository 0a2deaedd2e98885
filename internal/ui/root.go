package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexamibco/tudu/internal/app"
	"github.com/alexamibco/tudu/internal/ui/theme"
	"github.com/alexamibco/tudu/internal/ui/views"
)

// Debug logging (enable by setting TUDU_DEBUG=1)
var rootDebugLog *os.File

func init() {
	if os.Getenv("TUDU_DEBUG") == "1" {
		rootDebugLog, _ = os.OpenFile("/tmp/tudu-root-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func rootDebugf(format string, args ...interface{}) {
	if rootDebugLog != nil {
		fmt.Fprintf(rootDebugLog, format+"\n", args...)
		rootDebugLog.Sync()
	}
}

// RootModel is the main application model
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	listView    views.ListView
	helpVisible bool

	// Status message
	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = false

	return RootModel{
		app:      application,
		keys:     DefaultKeyMap(),
		help:     h,
		listView: views.NewListView(application.Tasks),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return m.listView.Init()
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	rootDebugf("RootModel.Update received msg type: %T", msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header and footer
		contentHeight := m.height - 4
		m.listView = m.listView.SetSize(m.width, contentHeight)

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := m.listView.IsInputMode()

		// Global keybindings
		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not in input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			m.cycleTheme()
			return m, nil
		}

		if !isInputMode && key.Matches(msg, m.keys.Help) {
			m.helpVisible = !m.helpVisible
			m.help.ShowAll = m.helpVisible
			return m, nil
		}

		if m.helpVisible && key.Matches(msg, m.keys.Cancel) {
			m.helpVisible = false
			m.help.ShowAll = false
			return m, nil
		}

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case ThemeChangedMsg:
		m.statusMsg = fmt.Sprintf("Theme: %s", msg.ThemeName)
		return m, nil

	case views.ErrorRequest:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case views.StatusRequest:
		m.statusMsg = msg.Message
		return m, nil

	case views.FilterChangedRequest:
		m.statusMsg = fmt.Sprintf("Filter: %s", msg.Filter)
		return m, nil
	}

	// Delegate to the list view
	newListView, cmd := m.listView.Update(msg)
	m.listView = newListView.(views.ListView)
	return m, cmd
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight--
	}

	var content string
	if m.helpVisible {
		content = m.renderHelp()
	} else {
		content = m.listView.View()
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

	title := styles.Header.Render("tudu")

	infoStyle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)
	filterIndicator := infoStyle.Render(fmt.Sprintf("[%s]", m.app.Tasks.Filter()))
	themeIndicator := infoStyle.Render(fmt.Sprintf("theme: %s", t.Name))

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, filterIndicator)
	rightSide := themeIndicator

	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if gap < 0 {
		gap = 0
	}

	return leftSide + strings.Repeat(" ", gap) + rightSide
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
	if m.listView.IsInputMode() {
		line1 = key("enter", "confirm") + sep + key("esc", "cancel")
	} else {
		line1 = key("a", "add") + sep +
			key("enter", "edit") + sep +
			key("tab", "done") + sep +
			key("d", "del") + sep +
			key("1/2/3", "filter")
		line2 = key("T", "toggle all") + sep +
			key("C", "clear done") + sep +
			key("ctrl+t", "theme") + sep +
			key("?", "help") + sep +
			key("q", "quit")
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

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	t := theme.Current.Theme

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Subtle)

	var b strings.Builder

	b.WriteString(titleStyle.Render("Tudu Help"))
	b.WriteString("\n\n")

	section := func(name string, keys [][]string) {
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
		for _, kv := range keys {
			b.WriteString(keyStyle.Render(kv[0]))
			b.WriteString(descStyle.Render(kv[1]))
			b.WriteString("\n")
		}
	}

	section("Navigation", [][]string{
		{"↑/k ↓/j", "Navigate up/down"},
		{"g / G", "Go to top/bottom"},
	})

	section("Task Actions", [][]string{
		{"a", "Add new task"},
		{"enter", "Edit task"},
		{"tab", "Toggle done"},
		{"d", "Delete task (with confirm)"},
		{"T", "Toggle all done/active"},
		{"C", "Clear completed tasks"},
	})

	section("Filters", [][]string{
		{"1", "Show all tasks"},
		{"2", "Show active tasks"},
		{"3", "Show completed tasks"},
		{"f", "Cycle filter"},
	})

	section("System", [][]string{
		{"ctrl+t", "Cycle theme"},
		{"q / ctrl+c", "Quit"},
	})

	b.WriteString("\n")
	b.WriteString(descStyle.Render("Press ? or esc to close"))

	return b.String()
}

// cycleTheme cycles through available themes
func (m *RootModel) cycleTheme() {
	themes := theme.Available()
	current := theme.Current.Theme.Name

	for i, t := range themes {
		if t.Name == current {
			next := themes[(i+1)%len(themes)]
			theme.SetTheme(next)
			m.statusMsg = fmt.Sprintf("Theme: %s", next.Name)
			return
		}
	}
}
