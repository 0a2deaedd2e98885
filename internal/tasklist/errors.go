package tasklist

import "errors"

// Errors returned by list commands. All of them are recoverable: the UI
// surfaces them in the status bar and the list stays untouched.
var (
	// ErrNotFound is returned when a command references a task id that
	// does not exist (never created, or already deleted).
	ErrNotFound = errors.New("task not found")

	// ErrEmptyText is returned when the task text is empty or
	// whitespace-only after trimming.
	ErrEmptyText = errors.New("task text is empty")

	// ErrUnknownFilter is returned for a filter value outside
	// all/active/completed.
	ErrUnknownFilter = errors.New("unknown filter")
)
