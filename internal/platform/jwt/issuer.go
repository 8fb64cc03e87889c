// Package jwtmw issues and verifies the bearer tokens that gate protected
// routes, and provides the Gin middleware enforcing them.
package jwtmw

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any token that fails signature
// or structural checks.
var ErrInvalidToken = errors.New("invalid token")

// UserClaims is the authenticated user record embedded in the token payload
// under the "user" key. The password digest is deliberately not part of the
// claim set.
type UserClaims struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type tokenClaims struct {
	User UserClaims `json:"user"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 tokens.
type Issuer struct {
	secret []byte
}

// NewIssuer creates an Issuer with the given signing secret. The secret is
// injected here once rather than read from the environment per request.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue creates a signed token for the given user. No expiration is set:
// tokens stay valid until the signing secret rotates.
func (i *Issuer) Issue(id int64, username, firstname, lastname string) (string, error) {
	claims := tokenClaims{
		User: UserClaims{
			ID:        id,
			Username:  username,
			Firstname: firstname,
			Lastname:  lastname,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and returns the embedded user claims. It does
// not check whether that user still exists; a token for a deleted user
// verifies fine until the secret rotates.
func (i *Issuer) Verify(tokenStr string) (UserClaims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return UserClaims{}, ErrInvalidToken
	}
	return claims.User, nil
}
