package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/ecnhealth/clinical-api/pkg/errors"
)

// Error writes a service error as a JSON response and records it on the
// context for the error-logging middleware.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), gin.H{"detail": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}

// BindingError converts a request-binding failure into a 422 response.
func BindingError(c *gin.Context, err error) {
	Error(c, apperrors.NewValidation(bindingMessage(err), err))
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", toSnake(fe.Field())))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email", toSnake(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", toSnake(fe.Field())))
		}
	}
	return strings.Join(msgs, "; ")
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IDParam parses the named path parameter as an entity id.
func IDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidation(fmt.Sprintf("invalid %s: %q", name, c.Param(name)), err)
	}
	return id, nil
}

// PaginationParams parses skip/limit query parameters with their defaults.
func PaginationParams(c *gin.Context) (skip, limit int, err error) {
	skip, err = intQuery(c, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = intQuery(c, "limit", 100)
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidation(fmt.Sprintf("invalid %s: %q", name, raw), err)
	}
	return v, nil
}
