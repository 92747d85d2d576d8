// Package render turns a task list snapshot into the markup of the visible list.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"todolist/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const listTemplate = "task_list"

// Renderer renders task lists. It holds only the parsed template and is safe
// for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded list template.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse list template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces one list item per task. Task names are emitted as escaped
// text, never as markup.
func (r *Renderer) Render(tasks []models.Task) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, listTemplate, tasks); err != nil {
		return "", fmt.Errorf("failed to render task list: %w", err)
	}
	return template.HTML(buf.String()), nil
}
