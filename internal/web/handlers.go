package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/blogforge/blog-backend/internal/auth"
	"github.com/blogforge/blog-backend/internal/pagination"
	"github.com/blogforge/blog-backend/internal/posts"
	"github.com/blogforge/blog-backend/internal/utils"
)

type Handler struct {
	DB       *gorm.DB
	Tokens   *auth.TokenCodec
	Renderer *Renderer
}

func NewHandler(conn *gorm.DB, tokens *auth.TokenCodec) (*Handler, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{DB: conn, Tokens: tokens, Renderer: renderer}, nil
}

// identity verifies the token cookie. The gate already redirected requests
// with no cookie; this catches invalid or expired tokens.
func (h *Handler) identity(r *http.Request) (utils.Identity, bool) {
	cookie, err := r.Cookie(auth.TokenCookieName)
	if err != nil {
		return utils.Identity{}, false
	}
	return h.Tokens.Verify(cookie.Value)
}

// optionalIdentity is identity for public pages, where signed-out is fine.
func (h *Handler) optionalIdentity(r *http.Request) *utils.Identity {
	if id, ok := h.identity(r); ok {
		return &id
	}
	return nil
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	var recent []posts.Post
	if err := h.DB.Preload("Author").Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		h.Renderer.RenderError(w, "Could not load recent posts.")
		return
	}

	h.Renderer.Render(w, http.StatusOK, "home", map[string]any{
		"Identity": h.optionalIdentity(r),
		"Posts":    recent,
	})
}

func (h *Handler) PostList(w http.ResponseWriter, r *http.Request) {
	params := pagination.Parse(r)

	var total int64
	if err := h.DB.Model(&posts.Post{}).Count(&total).Error; err != nil {
		h.Renderer.RenderError(w, "Could not load posts.")
		return
	}

	var list []posts.Post
	if err := h.DB.Preload("Author").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&list).Error; err != nil {
		h.Renderer.RenderError(w, "Could not load posts.")
		return
	}

	h.Renderer.Render(w, http.StatusOK, "posts", map[string]any{
		"Identity":   h.optionalIdentity(r),
		"Posts":      list,
		"Pagination": pagination.NewMeta(params, total),
	})
}

func (h *Handler) PostDetail(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "post_id")

	var post posts.Post
	if err := h.DB.Preload("Author").First(&post, "id = ?", postID).Error; err != nil {
		h.NotFound(w, r)
		return
	}

	identity := h.optionalIdentity(r)
	canEdit := false
	if identity != nil {
		canEdit = identity.Role == utils.RoleAdmin || identity.AccountID == post.AuthorID
	}

	h.Renderer.Render(w, http.StatusOK, "post", map[string]any{
		"Identity": identity,
		"Post":     post,
		"CanEdit":  canEdit,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "login", map[string]any{})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "register", map[string]any{})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
		return
	}

	var own []posts.Post
	if err := h.DB.Where("author_id = ?", identity.AccountID).
		Order("created_at DESC").
		Find(&own).Error; err != nil {
		h.Renderer.RenderError(w, "Could not load your posts.")
		return
	}

	h.Renderer.Render(w, http.StatusOK, "dashboard", map[string]any{
		"Identity": &identity,
		"Posts":    own,
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
		return
	}

	var account auth.Account
	if err := h.DB.First(&account, "id = ?", identity.AccountID).Error; err != nil {
		h.NotFound(w, r)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "profile", map[string]any{
		"Identity": &identity,
		"Account":  account,
	})
}

func (h *Handler) PostCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "post_form", map[string]any{
		"Identity": &identity,
		"Title":    "Create Post",
	})
}

func (h *Handler) PostEdit(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
		return
	}

	postID := chi.URLParam(r, "post_id")

	var post posts.Post
	if err := h.DB.First(&post, "id = ?", postID).Error; err != nil {
		h.NotFound(w, r)
		return
	}

	if identity.Role != utils.RoleAdmin && identity.AccountID != post.AuthorID {
		http.Redirect(w, r, "/posts/"+post.ID, http.StatusTemporaryRedirect)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "post_form", map[string]any{
		"Identity": &identity,
		"Title":    "Edit Post",
		"Post":     post,
	})
}

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
		return
	}
	if identity.Role != utils.RoleAdmin {
		http.Redirect(w, r, "/dashboard", http.StatusTemporaryRedirect)
		return
	}

	var accounts []auth.Account
	if err := h.DB.Order("created_at DESC").Find(&accounts).Error; err != nil {
		h.Renderer.RenderError(w, "Could not load accounts.")
		return
	}

	var allPosts []posts.Post
	if err := h.DB.Preload("Author").Order("created_at DESC").Find(&allPosts).Error; err != nil {
		h.Renderer.RenderError(w, "Could not load posts.")
		return
	}

	h.Renderer.Render(w, http.StatusOK, "admin", map[string]any{
		"Identity": &identity,
		"Users":    accounts,
		"Posts":    allPosts,
	})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusNotFound, "notfound", map[string]any{
		"Identity": h.optionalIdentity(r),
	})
}
