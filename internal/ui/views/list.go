package views

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexamibco/tudu/internal/model"
	"github.com/alexamibco/tudu/internal/tasklist"
	"github.com/alexamibco/tudu/internal/ui/theme"
)

// Debug logging (enable by setting TUDU_DEBUG=1)
var debugLog *os.File

func init() {
	if os.Getenv("TUDU_DEBUG") == "1" {
		debugLog, _ = os.OpenFile("/tmp/tudu-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		fmt.Fprintf(debugLog, format+"\n", args...)
		debugLog.Sync()
	}
}

// ListMode represents the current input mode of the list view
type ListMode int

const (
	ListModeNormal ListMode = iota
	ListModeAdd
	ListModeEdit
	ListModeConfirmDelete
)

// ErrorRequest asks the root model to display an error
// (Defined here to avoid circular import with ui package)
type ErrorRequest struct {
	Err error
}

// StatusRequest asks the root model to display a status message
type StatusRequest struct {
	Message string
}

// FilterChangedRequest tells the root model the filter changed
type FilterChangedRequest struct {
	Filter model.Filter
}

// ListView displays the task list and drives all task commands
type ListView struct {
	tasks  *tasklist.List
	width  int
	height int

	visible      []model.Task // Current projection under the active filter
	cursor       int
	scrollOffset int // First visible row index

	mode      ListMode
	input     textinput.Model
	editingID string
	deleteID  string
}

// NewListView creates a new list view over the given task list
func NewListView(tasks *tasklist.List) ListView {
	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.CharLimit = 256

	v := ListView{
		tasks: tasks,
		input: ti,
	}
	v.refresh()
	return v
}

// Init initializes the list view
func (v ListView) Init() tea.Cmd {
	return nil
}

// IsInputMode returns true when the view is capturing text input
func (v ListView) IsInputMode() bool {
	return v.mode != ListModeNormal
}

// SetSize updates the view dimensions
func (v ListView) SetSize(width, height int) ListView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// refresh recomputes the visible projection and clamps cursor/scroll
func (v *ListView) refresh() {
	v.visible = v.tasks.Visible()
	if v.cursor >= len(v.visible) {
		v.cursor = len(v.visible) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.ensureCursorVisible()
}

// visibleRowCount returns how many tasks fit in the viewport
func (v ListView) visibleRowCount() int {
	// Filter tabs, spacing and count line take four rows
	available := v.height - 4
	if available < 1 {
		available = 1
	}
	return available
}

// ensureCursorVisible adjusts scrollOffset to keep the cursor in view
func (v *ListView) ensureCursorVisible() {
	rows := v.visibleRowCount()

	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+rows {
		v.scrollOffset = v.cursor - rows + 1
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
	maxOffset := len(v.visible) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.scrollOffset > maxOffset {
		v.scrollOffset = maxOffset
	}
}

// currentTask returns the task under the cursor, if any
func (v ListView) currentTask() (model.Task, bool) {
	if v.cursor < 0 || v.cursor >= len(v.visible) {
		return model.Task{}, false
	}
	return v.visible[v.cursor], true
}

// Update handles messages for the list view
func (v ListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch v.mode {
		case ListModeAdd:
			return v.handleAddMode(msg)
		case ListModeEdit:
			return v.handleEditMode(msg)
		case ListModeConfirmDelete:
			return v.handleDeleteConfirm(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}

	if v.mode == ListModeAdd || v.mode == ListModeEdit {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	return v, nil
}

// handleNormalMode handles keypresses in normal mode
func (v ListView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Navigation
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
			v.ensureCursorVisible()
		}
	case "down", "j":
		if v.cursor < len(v.visible)-1 {
			v.cursor++
			v.ensureCursorVisible()
		}
	case "g":
		v.cursor = 0
		v.ensureCursorVisible()
	case "G":
		if len(v.visible) > 0 {
			v.cursor = len(v.visible) - 1
		}
		v.ensureCursorVisible()

	// Add
	case "a":
		v.mode = ListModeAdd
		v.input.Placeholder = "New task..."
		v.input.SetValue("")
		v.input.Focus()
		return v, textinput.Blink

	// Edit
	case "enter":
		task, ok := v.currentTask()
		if !ok {
			break
		}
		v.mode = ListModeEdit
		v.editingID = task.ID
		v.input.Placeholder = "Task text..."
		v.input.SetValue(task.Text)
		v.input.CursorEnd()
		v.input.Focus()
		return v, textinput.Blink

	// Toggle done
	case "tab":
		task, ok := v.currentTask()
		if !ok {
			break
		}
		toggled, err := v.tasks.Toggle(task.ID)
		if err != nil {
			return v, requestError(err)
		}
		v.refresh()
		if toggled.Completed {
			return v, requestStatus(fmt.Sprintf("Done: %s", toggled.Text))
		}
		return v, requestStatus(fmt.Sprintf("Reopened: %s", toggled.Text))

	// Toggle all
	case "T":
		if v.tasks.Len() == 0 {
			break
		}
		v.tasks.ToggleAll()
		v.refresh()
		return v, requestStatus(fmt.Sprintf("%d active", v.tasks.ActiveCount()))

	// Delete (with confirm)
	case "d":
		task, ok := v.currentTask()
		if !ok {
			break
		}
		v.mode = ListModeConfirmDelete
		v.deleteID = task.ID

	// Clear completed
	case "C":
		removed := v.tasks.ClearCompleted()
		v.refresh()
		if removed == 0 {
			return v, requestStatus("Nothing completed to clear")
		}
		return v, requestStatus(fmt.Sprintf("Cleared %d completed", removed))

	// Filters
	case "1":
		return v.setFilter(model.FilterAll)
	case "2":
		return v.setFilter(model.FilterActive)
	case "3":
		return v.setFilter(model.FilterCompleted)
	case "f":
		return v.setFilter(nextFilter(v.tasks.Filter()))
	}

	return v, nil
}

// setFilter applies a filter and refreshes the projection
func (v ListView) setFilter(f model.Filter) (tea.Model, tea.Cmd) {
	if err := v.tasks.SetFilter(f); err != nil {
		return v, requestError(err)
	}
	v.cursor = 0
	v.scrollOffset = 0
	v.refresh()
	debugf("filter set to %s, %d visible", f, len(v.visible))
	return v, func() tea.Msg {
		return FilterChangedRequest{Filter: f}
	}
}

// nextFilter returns the filter after f in display order
func nextFilter(f model.Filter) model.Filter {
	filters := model.Filters()
	for i, candidate := range filters {
		if candidate == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return model.FilterAll
}

// handleAddMode handles keypresses while typing a new task
func (v ListView) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := v.input.Value()
		v.mode = ListModeNormal
		v.input.Blur()

		task, err := v.tasks.Add(text)
		if err != nil {
			return v, requestError(err)
		}
		v.refresh()
		v.moveCursorTo(task.ID)
		return v, requestStatus(fmt.Sprintf("Added: %s", task.Text))

	case "esc":
		v.mode = ListModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleEditMode handles keypresses while editing an existing task
func (v ListView) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := v.input.Value()
		id := v.editingID
		v.mode = ListModeNormal
		v.editingID = ""
		v.input.Blur()

		task, err := v.tasks.Edit(id, text)
		if err != nil {
			return v, requestError(err)
		}
		v.refresh()
		v.moveCursorTo(task.ID)
		return v, requestStatus(fmt.Sprintf("Updated: %s", task.Text))

	case "esc":
		v.mode = ListModeNormal
		v.editingID = ""
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleDeleteConfirm handles the delete confirmation prompt
func (v ListView) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		id := v.deleteID
		v.mode = ListModeNormal
		v.deleteID = ""

		if err := v.tasks.Delete(id); err != nil {
			return v, requestError(err)
		}
		v.refresh()
		return v, requestStatus("Task deleted")

	case "n", "N", "esc":
		v.mode = ListModeNormal
		v.deleteID = ""
	}

	return v, nil
}

// moveCursorTo places the cursor on the task with the given id, when it
// is visible under the current filter
func (v *ListView) moveCursorTo(id string) {
	for i, t := range v.visible {
		if t.ID == id {
			v.cursor = i
			v.ensureCursorVisible()
			return
		}
	}
}

// View renders the list view
func (v ListView) View() string {
	styles := theme.Current.Styles
	var b strings.Builder

	b.WriteString(v.renderFilterTabs())
	b.WriteString("\n\n")

	if len(v.visible) == 0 {
		b.WriteString(styles.Label.Render(v.emptyMessage()))
		b.WriteString("\n")
	} else {
		rows := v.visibleRowCount()
		end := v.scrollOffset + rows
		if end > len(v.visible) {
			end = len(v.visible)
		}
		for i := v.scrollOffset; i < end; i++ {
			b.WriteString(v.renderTask(i))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.renderCounts())

	switch v.mode {
	case ListModeAdd:
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(v.input.View()))
	case ListModeEdit:
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(v.input.View()))
	case ListModeConfirmDelete:
		b.WriteString("\n")
		prompt := "Delete task? (y/n)"
		if task, err := v.tasks.Get(v.deleteID); err == nil {
			prompt = fmt.Sprintf("Delete %q? (y/n)", task.Text)
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Current.Theme.Error).
			Bold(true).
			Render(prompt))
	}

	return b.String()
}

// renderFilterTabs renders the all/active/completed selector
func (v ListView) renderFilterTabs() string {
	styles := theme.Current.Styles
	current := v.tasks.Filter()

	var tabs []string
	for _, f := range model.Filters() {
		if f == current {
			tabs = append(tabs, styles.FilterActive.Render(f.String()))
		} else {
			tabs = append(tabs, styles.FilterInactive.Render(f.String()))
		}
	}
	sep := styles.HelpSeparator.Render("│")
	return strings.Join(tabs, sep)
}

// renderTask renders a single task row
func (v ListView) renderTask(i int) string {
	styles := theme.Current.Styles
	t := v.visible[i]

	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	cursor := "  "
	if i == v.cursor {
		cursor = "> "
	}

	line := fmt.Sprintf("%s%s %s", cursor, checkbox, t.Text)

	switch {
	case i == v.cursor:
		return styles.TaskSelected.Render(line)
	case t.Completed:
		return styles.TaskDone.Render(line)
	default:
		return styles.TaskNormal.Render(line)
	}
}

// renderCounts renders the items-left summary line
func (v ListView) renderCounts() string {
	styles := theme.Current.Styles

	active := v.tasks.ActiveCount()
	total := v.tasks.Len()

	label := fmt.Sprintf("%d items left", active)
	if active == 1 {
		label = "1 item left"
	}
	if total != active {
		label += fmt.Sprintf(" · %d done", total-active)
	}
	return styles.Label.Render(label)
}

// emptyMessage returns the placeholder text for an empty projection
func (v ListView) emptyMessage() string {
	if v.tasks.Len() == 0 {
		return "No tasks yet. Press 'a' to add one."
	}
	switch v.tasks.Filter() {
	case model.FilterActive:
		return "Nothing active. Nice work!"
	case model.FilterCompleted:
		return "Nothing completed yet."
	default:
		return "No tasks."
	}
}

func requestError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorRequest{Err: err}
	}
}

func requestStatus(message string) tea.Cmd {
	return func() tea.Msg {
		return StatusRequest{Message: message}
	}
}
