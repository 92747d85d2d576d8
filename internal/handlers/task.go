package handlers

import (
	"net/http"

	"todolist/internal/events"
	"todolist/internal/models"
)

// ListTasks returns the current task list as JSON, in the persisted shape.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, models.TaskList{Tasks: h.router.Snapshot()})
}

// CreateTask handles the add control. An empty name produces a "notify"
// HX-Trigger event instead of a new task.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	in := &formInput{value: r.FormValue("name")}
	n := &triggerNotifier{}
	v := &fragmentView{}

	switch h.router.Add(ctx, in, n, v) {
	case events.Rejected:
		h.respondNotification(w, n)
	case events.Applied:
		h.respondFragment(w, v, in)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// ClickList handles a click inside the rendered list. The page reports which
// part was hit ("item" or "delete") and the item's data-index.
func (h *Handlers) ClickList(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	target := events.ParseTarget(r.FormValue("part"), r.FormValue("index"))
	h.click(w, r, target)
}

// ToggleTask toggles the completion status of the task at {index}.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndex(r, "index")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task index")
		return
	}

	h.click(w, r, events.Target{Part: events.PartItem, Index: index})
}

// DeleteTask deletes the task at {index}.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndex(r, "index")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task index")
		return
	}

	h.click(w, r, events.Target{Part: events.PartDelete, Index: index})
}

// ClearTasks deletes every task.
func (h *Handlers) ClearTasks(w http.ResponseWriter, r *http.Request) {
	v := &fragmentView{}
	if h.router.Clear(r.Context(), v) != events.Applied {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.respondFragment(w, v, nil)
}

func (h *Handlers) click(w http.ResponseWriter, r *http.Request, target events.Target) {
	v := &fragmentView{}
	if h.router.Click(r.Context(), target, v) != events.Applied {
		// Nothing changed; tell htmx to leave the list alone.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.respondFragment(w, v, nil)
}

func (h *Handlers) respondFragment(w http.ResponseWriter, v *fragmentView, in *formInput) {
	if !v.updated {
		h.respondServerError(w, errRenderFailed)
		return
	}
	if err := writeFragment(w, v, in); err != nil {
		h.logger.Warn("writing list fragment failed", "error", err)
	}
}

func (h *Handlers) respondNotification(w http.ResponseWriter, n *triggerNotifier) {
	header, err := n.header()
	if err != nil {
		h.respondServerError(w, err)
		return
	}
	w.Header().Set("HX-Trigger", header)
	w.Header().Set("HX-Reswap", "none")
	respondError(w, http.StatusBadRequest, n.message)
}
