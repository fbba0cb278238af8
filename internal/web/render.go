// Package web serves the server-rendered pages. Mutations all go through the
// JSON API; these pages only read data and host the forms.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages are the templates that render inside the shared layout.
var pages = []string{
	"home", "posts", "post", "login", "register",
	"dashboard", "profile", "post_form", "admin", "error", "notfound",
}

// Renderer holds one compiled template set per page, each paired with the
// shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// Render executes a page into a buffer before writing, so a template failure
// never leaves a half-written body; it falls back to the error page instead.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := r.templates[page]
	if !ok {
		r.RenderError(w, "page not found in template set: "+page)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("[web] rendering %s: %v", page, err)
		r.RenderError(w, "Something went wrong rendering this page.")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// RenderError is the top-level fallback view.
func (r *Renderer) RenderError(w http.ResponseWriter, message string) {
	t, ok := r.templates["error"]
	if !ok {
		http.Error(w, message, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", map[string]any{"Message": message}); err != nil {
		http.Error(w, message, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	buf.WriteTo(w)
}
