package handlers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
)

// inputBoxTemplate re-renders the task input as an htmx out-of-band swap.
var inputBoxTemplate = template.Must(template.New("input_box").Parse(
	`<input id="input-box" name="name" type="text" placeholder="Add your task" autocomplete="off" value="{{ . }}" hx-swap-oob="true">`,
))

// formInput exposes a submitted form field as the add trigger's input.
type formInput struct {
	value   string
	changed bool
}

func (i *formInput) CurrentValue() string { return i.value }

func (i *formInput) SetValue(text string) {
	i.value = text
	i.changed = true
}

// triggerNotifier turns a notification into an HX-Trigger "notify" event that
// the page shows with window.alert.
type triggerNotifier struct {
	message  string
	notified bool
}

func (n *triggerNotifier) Notify(message string) {
	n.message = message
	n.notified = true
}

func (n *triggerNotifier) header() (string, error) {
	payload := map[string]map[string]string{
		"notify": {"message": n.message},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// fragmentView captures the list markup to send back.
type fragmentView struct {
	markup  template.HTML
	updated bool
}

func (v *fragmentView) Update(markup template.HTML) {
	v.markup = markup
	v.updated = true
}

// writeFragment sends the list markup, followed by the input box when the
// event changed its value.
func writeFragment(w http.ResponseWriter, v *fragmentView, in *formInput) error {
	var buf bytes.Buffer
	buf.WriteString(string(v.markup))
	if in != nil && in.changed {
		if err := inputBoxTemplate.Execute(&buf, in.value); err != nil {
			return err
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write(buf.Bytes())
	return err
}
