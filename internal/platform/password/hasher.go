// Package password hashes and verifies user credentials.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher salts and hashes passwords with bcrypt. A server-wide pepper is
// appended to the plaintext before hashing, so digests are only verifiable
// by a process holding the same pepper.
type Hasher struct {
	pepper string
	cost   int
}

// NewHasher builds a Hasher with the given pepper and bcrypt cost factor.
// The cost is validated at config load; bcrypt rejects out-of-range values
// itself as a second line.
func NewHasher(pepper string, cost int) *Hasher {
	return &Hasher{pepper: pepper, cost: cost}
}

// Hash returns the bcrypt digest of password+pepper.
func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password+h.pepper), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Compare checks password+pepper against a stored digest. The comparison is
// constant-time inside bcrypt. A nil return means the password matches.
func (h *Hasher) Compare(digest, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password+h.pepper))
}
