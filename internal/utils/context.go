package utils

import (
	"context"
)

// TokenCookieName is the cookie that carries the session token. It lives
// here so the middleware, the route gate and the auth handlers share one
// definition.
const TokenCookieName = "token"

// Role is the closed set of account roles. Checks against it use exhaustive
// switches rather than raw string comparison.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Identity is the verified content of a session token, as placed in the
// request context by the auth middleware.
type Identity struct {
	AccountID string
	Email     string
	Role      Role
}

type contextKey string

const ContextIdentityKey contextKey = "identity"

// WithIdentity returns a context carrying the verified identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ContextIdentityKey, id)
}

// IdentityFromContext extracts the verified identity, if present.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ContextIdentityKey).(Identity)
	return id, ok
}
