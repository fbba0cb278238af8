package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/blogforge/blog-backend/internal/utils"
)

// TokenCookieName is the cookie that carries the session token.
const TokenCookieName = utils.TokenCookieName

// TokenTTL is the fixed validity window of an issued token.
const TokenTTL = 7 * 24 * time.Hour

// Claims are the identity fields embedded in a session token. The account ID
// travels in the registered Subject claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string     `json:"email"`
	Role  utils.Role `json:"role"`
}

// TokenCodec signs and verifies session tokens. Tokens are stateless: nothing
// is persisted server-side, so validity is purely signature plus expiry.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec returns a codec signing with the given secret. A zero ttl
// falls back to TokenTTL.
func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &TokenCodec{secret: secret, ttl: ttl}
}

// Issue mints a signed token for the account.
func (c *TokenCodec) Issue(accountID, email string, role utils.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Email: email,
		Role:  role,
	})
	return token.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded identity. The
// second return is false on any failure: bad signature, malformed token,
// expiry, or an unknown role claim. Callers never see an error value.
func (c *TokenCodec) Verify(tokenString string) (utils.Identity, bool) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return utils.Identity{}, false
	}

	if claims.Subject == "" || !claims.Role.Valid() {
		return utils.Identity{}, false
	}

	return utils.Identity{
		AccountID: claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
	}, true
}
