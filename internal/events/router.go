// Package events turns UI events into task list mutations and drives the
// save-and-render refresh that follows each one.
package events

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"sync"

	"todolist/internal/models"
)

// EmptyTaskMessage is shown when the add control is activated with no task name.
const EmptyTaskMessage = "Please enter a task"

// Input is the text entry the add trigger reads from.
type Input interface {
	CurrentValue() string
	SetValue(text string)
}

// Notifier shows a message the user must acknowledge.
type Notifier interface {
	Notify(message string)
}

// View receives the re-rendered list markup.
type View interface {
	Update(markup template.HTML)
}

// Saver persists a task list snapshot.
type Saver interface {
	Save(ctx context.Context, tasks []models.Task) error
}

// Renderer turns a task list snapshot into list markup.
type Renderer interface {
	Render(tasks []models.Task) (template.HTML, error)
}

// Outcome reports what an event did.
type Outcome int

const (
	// Applied means a mutation ran and the list was saved and re-rendered.
	Applied Outcome = iota
	// Ignored means the event resolved to no operation.
	Ignored
	// Rejected means the input was refused and the user was notified.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Ignored:
		return "ignored"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Router owns the task state for the lifetime of the process. It handles one
// event at a time: the mutation and its save/render pair finish before the
// next event starts.
type Router struct {
	mu       sync.Mutex
	tasks    *models.TaskStore
	saver    Saver
	renderer Renderer
	logger   *slog.Logger
}

// NewRouter creates a Router over an initial task store.
func NewRouter(tasks *models.TaskStore, saver Saver, renderer Renderer, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		tasks:    tasks,
		saver:    saver,
		renderer: renderer,
		logger:   logger.With("component", "events"),
	}
}

// Add handles activation of the add control.
func (r *Router) Add(ctx context.Context, in Input, n Notifier, v View) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.tasks.Add(in.CurrentValue()); err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			n.Notify(EmptyTaskMessage)
			return Rejected
		}
		r.logger.Error("unexpected add failure", "error", err)
		return Ignored
	}

	in.SetValue("")
	r.refresh(ctx, v)
	return Applied
}

// Click handles a click anywhere inside the rendered list.
func (r *Router) Click(ctx context.Context, target Target, v View) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	switch target.Part {
	case PartItem:
		err = r.tasks.ToggleComplete(target.Index)
	case PartDelete:
		err = r.tasks.Remove(target.Index)
	default:
		return Ignored
	}

	if err != nil {
		r.logger.Debug("ignoring click", "target", target, "error", err)
		return Ignored
	}

	r.refresh(ctx, v)
	return Applied
}

// Clear removes every task. Clearing an empty list is ignored.
func (r *Router) Clear(ctx context.Context, v View) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tasks.Len() == 0 {
		return Ignored
	}

	r.tasks.Clear()
	r.refresh(ctx, v)
	return Applied
}

// Refresh renders the current list without changing it.
func (r *Router) Refresh(v View) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	markup, err := r.renderer.Render(r.tasks.List())
	if err != nil {
		return err
	}
	v.Update(markup)
	return nil
}

// Snapshot returns a copy of the current tasks.
func (r *Router) Snapshot() []models.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tasks.List()
}

// refresh saves and re-renders. A failed save is logged; the in-memory list
// stays authoritative and is rendered anyway.
func (r *Router) refresh(ctx context.Context, v View) {
	tasks := r.tasks.List()

	// The mutation already happened; a cancelled caller must not lose the save.
	if err := r.saver.Save(context.WithoutCancel(ctx), tasks); err != nil {
		r.logger.Warn("saving tasks failed", "error", err, "tasks", len(tasks))
	}

	markup, err := r.renderer.Render(tasks)
	if err != nil {
		r.logger.Error("rendering tasks failed", "error", err)
		return
	}
	v.Update(markup)
}
