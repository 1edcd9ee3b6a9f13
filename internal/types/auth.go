package types

import (
	"github.com/go-playground/validator/v10"
)

// RegisterRequest represents the request to create a new account with
// password authentication.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login/register response with the account's
// profile (nil until onboarding completes) and authentication token.
type LoginResponse struct {
	UserID string       `json:"userId"`
	User   *UserProfile `json:"user,omitempty"`
	Token  string       `json:"token"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the OnboardRequest using the validator.
func (r *OnboardRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
