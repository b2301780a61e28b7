package errors

import (
	"fmt"
	"net/http"
	"strings"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Error is the API error type carried through handlers and services.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %d", e.Message, e.Status)
}

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

var (
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
	ErrNotFound            = New("not found", http.StatusNotFound)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	InActiveUserError      = errors.New("user inactive")
)

// GetUniqueContraintError maps postgres unique-violation errors to a friendly
// API error instead of leaking SQL details to the client.
func GetUniqueContraintError(err error) *Error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "email"):
		return New("user with this email already exists", http.StatusBadRequest)
	case strings.Contains(msg, "username"):
		return New("user with this username already exists", http.StatusBadRequest)
	case strings.Contains(msg, "duplicate key"):
		return New("record already exists", http.StatusBadRequest)
	default:
		return ErrInternalServerError
	}
}

// ErrorHandler is passed to the rate limiter middleware.
func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error": "too many requests, try again in " + info.ResetTime.Format("15:04:05"),
	})
}
