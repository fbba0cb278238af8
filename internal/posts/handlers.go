package posts

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blogforge/blog-backend/internal/auth"
	"github.com/blogforge/blog-backend/internal/pagination"
	"github.com/blogforge/blog-backend/internal/utils"
)

// Handler serves post CRUD. Every mutating handler re-verifies the token from
// the cookie itself rather than trusting upstream middleware.
type Handler struct {
	DB     *gorm.DB
	Tokens *auth.TokenCodec
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// canMutate is the ownership rule: admins may mutate any post, users only
// their own. Unknown roles may mutate nothing.
func canMutate(identity utils.Identity, post Post) bool {
	switch identity.Role {
	case utils.RoleAdmin:
		return true
	case utils.RoleUser:
		return post.AuthorID == identity.AccountID
	}
	return false
}

func validatePostRequest(req *postRequest) (string, bool) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if req.Title == "" || req.Content == "" {
		return "Title and content are required", false
	}
	if utf8.RuneCountInString(req.Title) > MaxTitleLength {
		return "Title cannot be more than 100 characters", false
	}
	return "", true
}

// List returns a public, paginated page of posts, newest first, optionally
// filtered by author.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := pagination.Parse(r)

	query := h.DB.Model(&Post{})
	if author := r.URL.Query().Get("author"); author != "" {
		query = query.Where("author_id = ?", author)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[posts] counting posts: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var list []Post
	if err := query.Preload("Author").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&list).Error; err != nil {
		log.Printf("[posts] fetching posts: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"posts":      list,
		"pagination": pagination.NewMeta(params, total),
	})
}

// Get returns a single post by ID. Public.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "post_id")

	var post Post
	if err := h.DB.Preload("Author").First(&post, "id = ?", postID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Post not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"post": post})
}

// Create stores a new post owned by the authenticated account.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.TokenCookieName)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	identity, ok := h.Tokens.Verify(cookie.Value)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if msg, ok := validatePostRequest(&req); !ok {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	post := Post{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: identity.AccountID,
	}

	if err := h.DB.Create(&post).Error; err != nil {
		log.Printf("[posts] creating post: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Reload with the author association for the response.
	if err := h.DB.Preload("Author").First(&post, "id = ?", post.ID).Error; err != nil {
		log.Printf("[posts] reloading post: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "Post created successfully",
		"post":    post,
	})
}

// Update edits a post. Allowed for the author or an admin.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.TokenCookieName)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	identity, ok := h.Tokens.Verify(cookie.Value)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if msg, ok := validatePostRequest(&req); !ok {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	postID := chi.URLParam(r, "post_id")

	var post Post
	if err := h.DB.First(&post, "id = ?", postID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Post not found")
		return
	}

	if !canMutate(identity, post) {
		utils.RespondError(w, http.StatusForbidden, "Not authorized to edit this post")
		return
	}

	if err := h.DB.Model(&post).Updates(map[string]any{
		"title":   req.Title,
		"content": req.Content,
	}).Error; err != nil {
		log.Printf("[posts] updating post %s: %v", postID, err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.DB.Preload("Author").First(&post, "id = ?", postID).Error; err != nil {
		log.Printf("[posts] reloading post: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// Delete removes a post. Allowed for the author or an admin.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.TokenCookieName)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	identity, ok := h.Tokens.Verify(cookie.Value)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	postID := chi.URLParam(r, "post_id")

	var post Post
	if err := h.DB.First(&post, "id = ?", postID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Post not found")
		return
	}

	if !canMutate(identity, post) {
		utils.RespondError(w, http.StatusForbidden, "Not authorized to delete this post")
		return
	}

	if err := h.DB.Delete(&post).Error; err != nil {
		log.Printf("[posts] deleting post %s: %v", postID, err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}

// AdminList returns every post, paginated, for the admin dashboard.
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.TokenCookieName)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	identity, ok := h.Tokens.Verify(cookie.Value)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	if identity.Role != utils.RoleAdmin {
		utils.RespondError(w, http.StatusForbidden, "Admin access required")
		return
	}

	params := pagination.Parse(r)

	var total int64
	if err := h.DB.Model(&Post{}).Count(&total).Error; err != nil {
		log.Printf("[posts] counting posts: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var list []Post
	if err := h.DB.Preload("Author").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&list).Error; err != nil {
		log.Printf("[posts] fetching posts: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"posts":      list,
		"pagination": pagination.NewMeta(params, total),
	})
}

// AdminDelete removes any post regardless of owner.
func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.TokenCookieName)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	identity, ok := h.Tokens.Verify(cookie.Value)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	if identity.Role != utils.RoleAdmin {
		utils.RespondError(w, http.StatusForbidden, "Admin access required")
		return
	}

	postID := chi.URLParam(r, "post_id")

	var post Post
	if err := h.DB.First(&post, "id = ?", postID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "Post not found")
		return
	}

	if err := h.DB.Delete(&post).Error; err != nil {
		log.Printf("[posts] deleting post %s: %v", postID, err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
