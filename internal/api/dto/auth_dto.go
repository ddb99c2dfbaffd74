package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/animal-catalog/internal/domain"
)

// CredentialsRequest is the body of both login and registration.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate requires both fields. Length and character rules are not
// enforced so existing accounts keep working.
func (r CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	OK    bool            `json:"ok"`
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

// RegisterResponse is returned on a successful registration.
type RegisterResponse struct {
	OK bool `json:"ok"`
}

// SessionResponse describes the caller of a bearer-authenticated request.
type SessionResponse struct {
	OK        bool            `json:"ok"`
	User      domain.Identity `json:"user"`
	ExpiresAt int64           `json:"expiresAt"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
