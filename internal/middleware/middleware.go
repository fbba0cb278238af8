package middleware

import (
	"net/http"

	"github.com/blogforge/blog-backend/internal/utils"
)

// TokenVerifier checks a session token and returns the identity it carries.
// Implemented by auth.TokenCodec.
type TokenVerifier interface {
	Verify(token string) (utils.Identity, bool)
}

// AuthMiddleware reads the token cookie, verifies it, and puts the identity
// into the request context. Requests without a valid token get 401.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(utils.TokenCookieName)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			identity, ok := verifier.Verify(cookie.Value)
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
		})
	}
}

// AdminMiddleware requires a verified identity with the admin role. It runs
// after AuthMiddleware and checks the role from the token claims; the handler
// behind it re-verifies independently.
func AdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.IdentityFromContext(r.Context())
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			switch identity.Role {
			case utils.RoleAdmin:
				next.ServeHTTP(w, r)
			case utils.RoleUser:
				utils.RespondError(w, http.StatusForbidden, "Admin access required")
			default:
				utils.RespondError(w, http.StatusForbidden, "Admin access required")
			}
		})
	}
}

// CORSMiddleware echoes the origin back only when it is on the allow-list.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
