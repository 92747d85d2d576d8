package models

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidInput is returned when a task name is empty, whitespace-only,
	// or not valid UTF-8.
	ErrInvalidInput = errors.New("task name is required")

	// ErrIndexOutOfRange is returned when an index does not address a current task.
	ErrIndexOutOfRange = errors.New("task index out of range")
)

// Task represents a single entry in the task list.
// A task has no id of its own; it is addressed by its position in the list.
type Task struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// TaskList is the aggregate persisted under the tasks key.
type TaskList struct {
	Tasks []Task `json:"tasks"`
}

// Validate checks that the task has valid field values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrInvalidInput
	}
	// JSON encoding would replace invalid bytes, so the saved name would differ.
	if !utf8.ValidString(t.Name) {
		return ErrInvalidInput
	}
	return nil
}

// Validate checks every task in the list.
func (l *TaskList) Validate() error {
	for i := range l.Tasks {
		if err := l.Tasks[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
