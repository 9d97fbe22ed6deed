package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists reports a registration attempt with a taken email.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials reports a failed login. It never says which of
// email or password was wrong.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound reports an operation against a user that does not exist.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch reports a password change with a wrong current password.
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrAdminRequired reports a non-admin user hitting an admin route.
type ErrAdminRequired struct{}

func (e *ErrAdminRequired) Error() string {
	return "admin privileges required"
}

// ErrValidation reports a request field that failed validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps service errors to response status codes. Errors are
// unwrapped first, so wrapped service errors map the same as bare ones.
func HTTPStatus(err error) int {
	var (
		emailExists   *ErrEmailAlreadyExists
		badCreds      *ErrInvalidCredentials
		userNotFound  *ErrUserNotFound
		passMismatch  *ErrPasswordMismatch
		adminRequired *ErrAdminRequired
		validation    *ErrValidation
	)

	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCreds), errors.As(err, &passMismatch):
		return http.StatusUnauthorized
	case errors.As(err, &userNotFound):
		return http.StatusNotFound
	case errors.As(err, &adminRequired):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
