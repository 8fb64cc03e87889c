package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront_backend/internal/api"
)

// ContextUser is the Gin context key the verified user claims are stored
// under.
const ContextUser = "authUser"

// Verifier checks a bearer token and returns the user claims it carries.
type Verifier interface {
	Verify(token string) (UserClaims, error)
}

// AuthRequired returns a Gin middleware that rejects requests without a
// valid bearer token. The scheme is matched case-insensitively; the original
// API documents the header as "Authorization: bearer <token>".
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.MessageAccessDenied})
			return
		}

		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.MessageAccessDenied})
			return
		}

		user, err := verifier.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.MessageAccessDenied})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}
