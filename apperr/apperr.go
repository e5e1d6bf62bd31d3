package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Base errors, one per caller-visible failure kind. Every error the
// stores return wraps exactly one of these so handlers can map to an
// HTTP status with errors.Is.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUnavailable     = errors.New("service unavailable")
)

type AppError struct {
	Base    error
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Base.Error(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Base
}

func New(base error, msg string, cause error) *AppError {
	return &AppError{Base: base, Message: msg, Cause: cause}
}

func NewNotFound(resource string) *AppError {
	return New(ErrNotFound, fmt.Sprintf("%s not found", resource), nil)
}

func NewValidation(msg string) *AppError {
	return New(ErrValidation, msg, nil)
}

func NewConflict(msg string) *AppError {
	return New(ErrConflict, msg, nil)
}

func NewForbidden(msg string) *AppError {
	return New(ErrForbidden, msg, nil)
}

func NewUnauthenticated(msg string) *AppError {
	return New(ErrUnauthenticated, msg, nil)
}

// NewUnavailable keeps the underlying store failure as the cause so it
// can be logged at the boundary; the cause is never serialized.
func NewUnavailable(msg string, cause error) *AppError {
	return New(ErrUnavailable, msg, cause)
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (e *AppError) ToJSON() gin.H {
	return gin.H{
		"error":   e.Base.Error(),
		"message": e.Message,
	}
}
