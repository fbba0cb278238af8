package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the profile endpoints under /api/user.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/profile", h.Profile)
	r.Put("/profile", h.UpdateProfile)

	return r
}

// AdminRoutes mounts account management under /api/admin/users.
func (h *Handler) AdminRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.AdminList)
	r.Post("/", h.AdminCreate)
	r.Put("/{account_id}", h.AdminUpdate)
	r.Delete("/{account_id}", h.AdminDelete)

	return r
}
