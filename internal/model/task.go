package model

import (
	"time"
)

// Task represents a single to-do item
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive returns true if the task has not been completed
func (t *Task) IsActive() bool {
	return !t.Completed
}
