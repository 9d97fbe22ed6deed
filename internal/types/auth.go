// Package types provides the request and response types shared between the
// HTTP handlers, database layer, and analysis pipeline.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is shared by all request Validate methods; the validator caches
// struct metadata, so one instance serves the whole package.
var validate = validator.New()

// CreateUserRequest registers a new account.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User is the account shape returned by the API. It mirrors db.User minus
// the password hash.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	IsAdmin     bool      `json:"is_admin"`
	PasswordSet bool      `json:"password_set"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse carries the account and its bearer token after register
// or login.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UpdatePasswordRequest changes an account password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdatePasswordRequest) Validate() error {
	return validate.Struct(r)
}
