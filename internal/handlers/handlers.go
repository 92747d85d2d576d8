package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"todolist/internal/events"
)

var errRenderFailed = errors.New("task list was not rendered")

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	router    *events.Router
	templates *template.Template
	logger    *slog.Logger
}

// New creates a new Handlers instance.
func New(router *events.Router, tmpl *template.Template) *Handlers {
	return &Handlers{
		router:    router,
		templates: tmpl,
		logger:    slog.Default().With("component", "handlers"),
	}
}

// parseIndex extracts and parses a task position from URL parameters.
func parseIndex(r *http.Request, param string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, param))
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func (h *Handlers) respondServerError(w http.ResponseWriter, err error) {
	h.logger.Error("internal server error", "error", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

func respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *Handlers) render(w http.ResponseWriter, name string, data interface{}) {
	if h.templates == nil {
		// For testing without templates
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.respondServerError(w, err)
	}
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
