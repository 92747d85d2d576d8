package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"todolist/internal/models"
)

// TasksKey is the single key the whole task list is stored under.
const TasksKey = "tasks"

var (
	// ErrStorage wraps failures of the underlying key-value write.
	ErrStorage = errors.New("storage error")

	// ErrDecode reports a stored payload that cannot be turned back into a task list.
	ErrDecode = errors.New("malformed task payload")
)

// Persistence moves the task list to and from a KV store as JSON.
// It holds no task data of its own.
type Persistence struct {
	kv     KV
	logger *slog.Logger
}

// NewPersistence creates a Persistence over kv. A nil logger uses slog.Default.
func NewPersistence(kv KV, logger *slog.Logger) *Persistence {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persistence{
		kv:     kv,
		logger: logger.With("component", "persistence"),
	}
}

// Save encodes tasks and writes them under TasksKey.
func (p *Persistence) Save(ctx context.Context, tasks []models.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}

	if err := p.kv.Set(ctx, TasksKey, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// Load reads the stored task list. An absent, unreadable or malformed value
// yields an empty list; Load never fails.
func (p *Persistence) Load(ctx context.Context) models.TaskList {
	raw, ok, err := p.kv.Get(ctx, TasksKey)
	if err != nil {
		p.logger.Warn("reading stored tasks failed, starting empty", "error", err)
		return models.TaskList{Tasks: []models.Task{}}
	}
	if !ok {
		return models.TaskList{Tasks: []models.Task{}}
	}

	list, err := Decode([]byte(raw))
	if err != nil {
		p.logger.Debug("discarding stored tasks", "error", err)
		return models.TaskList{Tasks: []models.Task{}}
	}
	return list
}

// Encode returns the canonical JSON form: {"tasks":[{"name":...,"completed":...}]}.
func Encode(tasks []models.Task) ([]byte, error) {
	list := models.TaskList{Tasks: tasks}
	if list.Tasks == nil {
		list.Tasks = []models.Task{}
	}

	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return data, nil
}

// Decode parses a stored payload. Unknown fields are ignored and a missing
// completed flag means false. Any task with a blank name rejects the payload.
func Decode(data []byte) (models.TaskList, error) {
	var list models.TaskList
	if err := json.Unmarshal(data, &list); err != nil {
		return models.TaskList{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := list.Validate(); err != nil {
		return models.TaskList{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if list.Tasks == nil {
		list.Tasks = []models.Task{}
	}
	return list, nil
}
