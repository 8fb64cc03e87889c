package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterTagNames makes validator report fields by their json tag so that
// validation messages use wire names. Call once at router construction.
func RegisterTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// BindError replies to a failed request bind. Missing required fields get
// the fixed plain-text message the original API sends; anything else
// (malformed JSON, wrong types) gets the generic 400 error body.
func BindError(c *gin.Context, err error) {
	if msg, ok := RequiredFieldsMessage(err); ok {
		c.String(http.StatusBadRequest, msg)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// RequiredFieldsMessage builds the fixed "Field <names> is required" message
// from a binding error. The second return is false when err is not a
// required-field validation failure (e.g. malformed JSON), in which case the
// caller falls back to the generic error reply.
func RequiredFieldsMessage(err error) (string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "", false
	}

	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			names = append(names, fe.Field())
		}
	}
	if len(names) == 0 {
		return "", false
	}
	return fmt.Sprintf("Field %s is required", strings.Join(names, ", ")), true
}
