// Package users serves the profile endpoints and admin account management.
package users

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blogforge/blog-backend/internal/auth"
	"github.com/blogforge/blog-backend/internal/db"
	"github.com/blogforge/blog-backend/internal/pagination"
	"github.com/blogforge/blog-backend/internal/posts"
	"github.com/blogforge/blog-backend/internal/utils"
)

type Handler struct {
	DB        *gorm.DB
	Tokens    *auth.TokenCodec
	Passwords *auth.Hasher
}

type profileUpdateRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type adminCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type adminUpdateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// Profile returns the caller's account and their posts, newest first.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
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

	var account auth.Account
	if err := h.DB.First(&account, "id = ?", identity.AccountID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	var ownPosts []posts.Post
	if err := h.DB.Where("author_id = ?", identity.AccountID).
		Order("created_at DESC").
		Find(&ownPosts).Error; err != nil {
		log.Printf("[users] fetching posts for %s: %v", identity.AccountID, err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"user":  account,
		"posts": ownPosts,
	})
}

// UpdateProfile edits the caller's name, email, and optionally password. The
// password changes only when both current and new passwords are supplied and
// the current one matches.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
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

	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	var account auth.Account
	if err := h.DB.First(&account, "id = ?", identity.AccountID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		if len(name) > 50 {
			utils.RespondError(w, http.StatusBadRequest, "Name cannot be more than 50 characters")
			return
		}
		account.Name = name
	}

	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" && email != account.Email {
		var existing auth.Account
		if err := h.DB.First(&existing, "email = ?", email).Error; err == nil {
			utils.RespondError(w, http.StatusConflict, "Email is already taken")
			return
		}
		account.Email = email
	}

	if req.CurrentPassword != "" && req.NewPassword != "" {
		if !auth.CheckPassword(req.CurrentPassword, account.HashedPassword) {
			utils.RespondError(w, http.StatusBadRequest, "Current password is incorrect")
			return
		}
		if len(req.NewPassword) < 6 {
			utils.RespondError(w, http.StatusBadRequest, "New password must be at least 6 characters long")
			return
		}
		digest, err := h.Passwords.Hash(req.NewPassword)
		if err != nil {
			log.Printf("[users] hashing password: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		account.HashedPassword = digest
	}

	if err := h.DB.Save(&account).Error; err != nil {
		if db.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "Email is already taken")
			return
		}
		log.Printf("[users] updating account %s: %v", account.ID, err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"user":    account,
	})
}

// AdminList returns all accounts, paginated, newest first.
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
	if err := h.DB.Model(&auth.Account{}).Count(&total).Error; err != nil {
		log.Printf("[users] counting accounts: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var accounts []auth.Account
	if err := h.DB.Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&accounts).Error; err != nil {
		log.Printf("[users] fetching accounts: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"users":      accounts,
		"pagination": pagination.NewMeta(params, total),
	})
}

// AdminCreate creates an account with an explicit role.
func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
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

	var req adminCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}
	if len(req.Password) < 6 {
		utils.RespondError(w, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	role := utils.RoleUser
	if req.Role != "" {
		role = utils.Role(req.Role)
		if !role.Valid() {
			utils.RespondError(w, http.StatusBadRequest, "Invalid role")
			return
		}
	}

	digest, err := h.Passwords.Hash(req.Password)
	if err != nil {
		log.Printf("[users] hashing password: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	account := auth.Account{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: digest,
		Role:           role,
	}

	if err := h.DB.Create(&account).Error; err != nil {
		if db.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "User with this email already exists")
			return
		}
		log.Printf("[users] creating account: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    account,
	})
}

// AdminUpdate edits another account. Admin accounts cannot be demoted here;
// the UI hides the control, and the handler enforces it as well.
func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req adminUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID := chi.URLParam(r, "account_id")

	var account auth.Account
	if err := h.DB.First(&account, "id = ?", accountID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	if req.Role != "" {
		role := utils.Role(req.Role)
		if !role.Valid() {
			utils.RespondError(w, http.StatusBadRequest, "Invalid role")
			return
		}
		if account.Role == utils.RoleAdmin && role != utils.RoleAdmin {
			utils.RespondError(w, http.StatusForbidden, "Admin accounts cannot be demoted")
			return
		}
		account.Role = role
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		if len(name) > 50 {
			utils.RespondError(w, http.StatusBadRequest, "Name cannot be more than 50 characters")
			return
		}
		account.Name = name
	}

	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" && email != account.Email {
		var existing auth.Account
		if err := h.DB.First(&existing, "email = ?", email).Error; err == nil {
			utils.RespondError(w, http.StatusConflict, "Email is already taken")
			return
		}
		account.Email = email
	}

	if req.Password != "" {
		if len(req.Password) < 6 {
			utils.RespondError(w, http.StatusBadRequest, "Password must be at least 6 characters long")
			return
		}
		digest, err := h.Passwords.Hash(req.Password)
		if err != nil {
			log.Printf("[users] hashing password: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		account.HashedPassword = digest
	}

	if err := h.DB.Save(&account).Error; err != nil {
		if db.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "Email is already taken")
			return
		}
		log.Printf("[users] updating account %s: %v", account.ID, err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    account,
	})
}

// AdminDelete removes an account and all posts it owns. Admin accounts cannot
// be deleted through this path.
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

	accountID := chi.URLParam(r, "account_id")

	var account auth.Account
	if err := h.DB.First(&account, "id = ?", accountID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	if account.Role == utils.RoleAdmin {
		utils.RespondError(w, http.StatusForbidden, "Admin accounts cannot be deleted")
		return
	}

	// Owned posts go with the account.
	if err := h.DB.Where("author_id = ?", account.ID).Delete(&posts.Post{}).Error; err != nil {
		log.Printf("[users] deleting posts for %s: %v", account.ID, err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := h.DB.Delete(&account).Error; err != nil {
		log.Printf("[users] deleting account %s: %v", account.ID, err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
