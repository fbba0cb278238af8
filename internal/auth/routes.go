package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogforge/blog-backend/internal/middleware"
)

// Routes mounts the authentication endpoints.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(h.Tokens))
		r.Get("/me", h.Me)
	})

	return r
}
