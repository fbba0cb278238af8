package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogforge/blog-backend/internal/middleware"
)

// Routes mounts the page routes behind the route gate.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Gate)

	r.Get("/", h.Home)
	r.Get("/login", h.Login)
	r.Get("/register", h.Register)

	r.Get("/posts", h.PostList)
	r.Get("/posts/create", h.PostCreate)
	r.Get("/posts/edit/{post_id}", h.PostEdit)
	r.Get("/posts/{post_id}", h.PostDetail)

	r.Get("/dashboard", h.Dashboard)
	r.Get("/profile", h.Profile)
	r.Get("/admin", h.Admin)

	r.NotFound(h.NotFound)

	return r
}
