package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blogforge/blog-backend/internal/db"
	"github.com/blogforge/blog-backend/internal/utils"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Handler serves registration, login, logout and the current-account
// endpoint. DB and Tokens are injected at startup.
type Handler struct {
	DB        *gorm.DB
	Tokens    *TokenCodec
	Passwords *Hasher

	// SecureCookies marks session cookies Secure; enabled in production.
	SecureCookies bool
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// accountResponse is an Account without its credential digest.
type accountResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      utils.Role `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toResponse(a Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// Register creates an account with role "user" and signs the caller in.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
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
	if len(req.Name) > 50 {
		utils.RespondError(w, http.StatusBadRequest, "Name cannot be more than 50 characters")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		utils.RespondError(w, http.StatusBadRequest, "Please enter a valid email")
		return
	}
	if len(req.Password) < 6 {
		utils.RespondError(w, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	digest, err := h.Passwords.Hash(req.Password)
	if err != nil {
		log.Printf("[auth] hashing password: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	account := Account{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: digest,
		Role:           utils.RoleUser,
	}

	if err := h.DB.Create(&account).Error; err != nil {
		if db.IsUniqueViolation(err) {
			utils.RespondError(w, http.StatusConflict, "User with this email already exists")
			return
		}
		log.Printf("[auth] creating account: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.Tokens.Issue(account.ID, account.Email, account.Role)
	if err != nil {
		log.Printf("[auth] issuing token: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.setTokenCookie(w, token)

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    toResponse(account),
	})
}

// Login verifies credentials and sets the session cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	var account Account
	if err := h.DB.First(&account, "email = ?", req.Email).Error; err != nil {
		// Same response as a bad password so the check leaks nothing.
		utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !CheckPassword(req.Password, account.HashedPassword) {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Tokens.Issue(account.ID, account.Email, account.Role)
	if err != nil {
		log.Printf("[auth] issuing token: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.setTokenCookie(w, token)

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    toResponse(account),
	})
}

// Logout clears the session cookie. Tokens are stateless, so a copy the
// client kept stays valid until its expiry; logout is cookie deletion only.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.SecureCookies,
	})
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// Me returns the account behind the verified identity in the context.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var account Account
	if err := h.DB.First(&account, "id = ?", identity.AccountID).Error; err != nil {
		utils.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"user": toResponse(account)})
}

func (h *Handler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.SecureCookies,
	})
}
