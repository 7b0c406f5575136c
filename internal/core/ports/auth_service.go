package ports

import (
	"context"
	"time"

	"github.com/tpi-backend/e-commerce-api/internal/core/domain"
)

// SignUpInput carries the data needed to register an account. Password is
// plaintext and transient; it is hashed before anything is persisted.
type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	DateBirth time.Time
	// Admin requests an elevated account. Token must then carry a valid
	// ADMIN-role bearer token; regular sign-ups leave both zero.
	Admin bool
	Token string
}

// SignInInput carries login credentials.
type SignInInput struct {
	Email    string
	Password string
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

// AuthSuccess is the identity summary plus freshly issued token.
type AuthSuccess struct {
	FirstName string
	LastName  string
	Email     string
	Role      domain.Role
	Token     string
}

// AuthFailure is a structured rejection: an HTTP-ish status code and one
// message per offending field.
type AuthFailure struct {
	Status int
	Fields []FieldError
}

// AuthResult is a discriminated outcome: exactly one of Success or Failure
// is set. Collaborator faults (store or hasher I/O) are reported as plain
// errors alongside a zero AuthResult, never folded into Failure.
type AuthResult struct {
	Success *AuthSuccess
	Failure *AuthFailure
}

// OK reports whether the result carries a success.
func (r AuthResult) OK() bool { return r.Success != nil }

// Rejected builds a failure result.
func Rejected(status int, fields ...FieldError) AuthResult {
	return AuthResult{Failure: &AuthFailure{Status: status, Fields: fields}}
}

// Accepted builds a success result from a persisted user and its token.
func Accepted(user *domain.User, token string) AuthResult {
	return AuthResult{Success: &AuthSuccess{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		Token:     token,
	}}
}

// AuthService orchestrates sign-up and sign-in. Field-level validation happens
// upstream (at the transport boundary); its outcome is handed in as-is.
type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput, fieldErrors []FieldError) (AuthResult, error)
	SignIn(ctx context.Context, in SignInInput, fieldErrors []FieldError) (AuthResult, error)
}
