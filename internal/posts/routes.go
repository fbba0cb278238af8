package posts

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the public and owner-gated post endpoints.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{post_id}", h.Get)
	r.Put("/{post_id}", h.Update)
	r.Delete("/{post_id}", h.Delete)

	return r
}

// AdminRoutes mounts the admin-only post endpoints.
func (h *Handler) AdminRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.AdminList)
	r.Delete("/{post_id}", h.AdminDelete)

	return r
}
