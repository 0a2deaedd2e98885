// Package tasklist owns the in-memory task collection and the current
// view filter. All mutation goes through the commands below; callers only
// ever see copies, so the visible projection is always consistent.
package tasklist

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexamibco/tudu/internal/model"
	"github.com/google/uuid"
)

// List holds an ordered collection of tasks and the current filter.
// It is not safe for concurrent use; the TUI drives it from a single
// update loop.
type List struct {
	tasks  []model.Task
	filter model.Filter
}

// New creates an empty list showing all tasks
func New() *List {
	return &List{
		filter: model.FilterAll,
	}
}

// Add creates a new task from the given text and appends it to the end
// of the collection. The text is trimmed; empty or whitespace-only text
// fails with ErrEmptyText. Returns the created task.
func (l *List) Add(text string) (model.Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Task{}, fmt.Errorf("%w: cannot add", ErrEmptyText)
	}

	now := time.Now()
	t := model.Task{
		ID:        uuid.New().String(),
		Text:      trimmed,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.tasks = append(l.tasks, t)
	return t, nil
}

// Toggle flips the completed flag on the task with the given id.
// Ordering is unaffected.
func (l *List) Toggle(id string) (model.Task, error) {
	i := l.index(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	l.tasks[i].Completed = !l.tasks[i].Completed
	l.tasks[i].UpdatedAt = time.Now()
	return l.tasks[i], nil
}

// Edit replaces the text of the task with the given id. Same validation
// as Add; id, completed flag and position are untouched. Editing to the
// identical text is a permitted no-op mutation.
func (l *List) Edit(id, newText string) (model.Task, error) {
	trimmed := strings.TrimSpace(newText)
	if trimmed == "" {
		return model.Task{}, fmt.Errorf("%w: cannot edit", ErrEmptyText)
	}

	i := l.index(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	l.tasks[i].Text = trimmed
	l.tasks[i].UpdatedAt = time.Now()
	return l.tasks[i], nil
}

// Delete removes the task with the given id permanently. The id is never
// reused; remaining tasks keep their ids and relative order.
func (l *List) Delete(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return nil
}

// Get returns a copy of the task with the given id
func (l *List) Get(id string) (model.Task, error) {
	i := l.index(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return l.tasks[i], nil
}

// SetFilter changes the current view filter
func (l *List) SetFilter(f model.Filter) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, string(f))
	}
	l.filter = f
	return nil
}

// Filter returns the current view filter
func (l *List) Filter() model.Filter {
	return l.filter
}

// Visible returns the tasks matching the current filter, preserving
// insertion order. Pure query: safe to call repeatedly, and the returned
// slice is a copy the caller may mutate freely.
func (l *List) Visible() []model.Task {
	visible := make([]model.Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if l.filter.Matches(t) {
			visible = append(visible, t)
		}
	}
	return visible
}

// All returns a copy of every task in insertion order, ignoring the filter
func (l *List) All() []model.Task {
	all := make([]model.Task, len(l.tasks))
	copy(all, l.tasks)
	return all
}

// Len returns the total number of tasks
func (l *List) Len() int {
	return len(l.tasks)
}

// ActiveCount returns the number of tasks not yet completed
func (l *List) ActiveCount() int {
	n := 0
	for _, t := range l.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// ToggleAll marks every task completed, or every task active when there
// is nothing left to complete
func (l *List) ToggleAll() {
	target := l.ActiveCount() > 0
	now := time.Now()
	for i := range l.tasks {
		if l.tasks[i].Completed != target {
			l.tasks[i].Completed = target
			l.tasks[i].UpdatedAt = now
		}
	}
}

// ClearCompleted deletes all completed tasks and returns how many were
// removed. Remaining tasks keep their relative order.
func (l *List) ClearCompleted() int {
	kept := l.tasks[:0]
	removed := 0
	for _, t := range l.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	l.tasks = kept
	return removed
}

// index returns the position of the task with the given id, or -1
func (l *List) index(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
