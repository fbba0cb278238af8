package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the default bcrypt work factor for stored credentials.
// Deliberately expensive so offline guessing is slow.
const HashCost = 12

// Hasher produces bcrypt digests at a configured work factor. The cost is
// injected from config so tests and local setups can dial it down.
type Hasher struct {
	cost int
}

// NewHasher builds a Hasher; a non-positive cost falls back to HashCost.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = HashCost
	}
	return &Hasher{cost: cost}
}

// Hash produces a salted bcrypt digest of the plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the stored digest. Malformed
// digests simply fail the check; no error reaches the caller.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
