package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"portfolio/internal/auth"
	"portfolio/internal/database"
	"portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

var (
	ErrNoData        = errors.New("no data provided")
	ErrMalformedBody = errors.New("malformed request body")
)

// MissingFieldError names a required form field that was not sent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func statusFor(err error) int {
	var missing *MissingFieldError
	var invalid *InvalidFieldError

	switch {
	case errors.As(err, &missing), errors.As(err, &invalid),
		errors.Is(err, ErrNoData), errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail answers with the status matching err. Internal errors are logged
// and hidden from the client.
func (h *Handlers) fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		h.log.Error().Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		msg = "internal server error"
	}

	if middleware.WantsJSON(c) {
		c.AbortWithStatusJSON(status, gin.H{"error": msg})
		return
	}
	c.String(status, msg)
	c.Abort()
}
