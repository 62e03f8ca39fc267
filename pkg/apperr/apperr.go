// Package apperr classifies service errors and maps them onto HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrNotFound covers both missing rows and rows owned by someone else.
var ErrNotFound = errors.New("not found")

// ValidationError is a user-correctable problem; Msg is shown as-is.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func Validation(msg string) error { return &ValidationError{Msg: msg} }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFound wraps ErrNotFound with the entity name used in the message.
func NotFound(entity string) error { return fmt.Errorf("%s %w", entity, ErrNotFound) }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// JSON writes err as an error response. Unknown errors are logged and hidden.
func JSON(c echo.Context, err error) error {
	var v *ValidationError
	switch {
	case errors.As(err, &v):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": v.Msg})
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFoundMessage(err)})
	default:
		log.Printf("[http] %s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func notFoundMessage(err error) string {
	msg := err.Error()
	if msg == ErrNotFound.Error() {
		return "Not found."
	}
	// "order not found" -> "Order not found."
	b := []byte(msg)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b) + "."
}
