package handlers

import (
	"html/template"
	"net/http"
)

// HomeData holds data for the home page template.
type HomeData struct {
	Title string
	List  template.HTML
}

// Home renders the page with the list rendered once from the current state.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	v := &fragmentView{}
	if err := h.router.Refresh(v); err != nil {
		h.respondServerError(w, err)
		return
	}

	data := HomeData{
		Title: "To-Do List",
		List:  v.markup,
	}

	h.render(w, "index.html", data)
}
