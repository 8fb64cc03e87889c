package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront_backend/internal/domain/repository"
)

// ErrorWriter turns repository and usecase errors into HTTP replies.
//
// The default mode preserves the original API's contract: every error after
// request validation collapses to 400 with the raw error text, so callers
// cannot distinguish a bad request from a downstream outage. Strict mode is
// the documented deviation that maps not-found to 404 and anything else to
// 500.
type ErrorWriter struct {
	Strict bool
}

// Write responds with the status and body for err and aborts the request.
func (w ErrorWriter) Write(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if w.Strict {
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		} else {
			status = http.StatusInternalServerError
		}
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}
