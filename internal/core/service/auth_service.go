package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tpi-backend/e-commerce-api/internal/core/domain"
	"github.com/tpi-backend/e-commerce-api/internal/core/ports"
)

const (
	msgDuplicateEmail    = "a user with that email already exists"
	msgUnknownEmail      = "no user exists with that email"
	msgIncorrectPassword = "the password is incorrect"
	msgAdminOnly         = "only ADMIN users can register other ADMIN users"
)

// AuthService implements sign-up and sign-in on top of the credential store,
// password hasher, and token issuer. Every call is a stateless
// request-to-result transformation; failures are structured rejections, and
// only collaborator faults surface as errors.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// SignUp registers a new account. Order of checks: field validation, email
// uniqueness, admin elevation. Nothing is persisted on any failure path;
// success persists exactly one user and returns a freshly issued token.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput, fieldErrors []ports.FieldError) (ports.AuthResult, error) {
	if len(fieldErrors) > 0 {
		return ports.Rejected(http.StatusBadRequest, fieldErrors...), nil
	}

	email := normalizeEmail(in.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return ports.AuthResult{}, fmt.Errorf("signup: check email: %w", err)
	}
	if exists {
		return ports.Rejected(http.StatusConflict, ports.FieldError{Field: "email", Message: msgDuplicateEmail}), nil
	}

	// Self-elevation guard: minting an ADMIN account requires a bearer token
	// whose verified role claim is itself ADMIN. A missing token, a bad
	// token, and a non-ADMIN claim are indistinguishable to the caller.
	role := domain.RoleUser
	if in.Admin {
		claims, err := s.tokens.Verify(in.Token)
		if err != nil || claims.Role != domain.RoleAdmin {
			return ports.Rejected(http.StatusForbidden, ports.FieldError{Field: "jwt", Message: msgAdminOnly}), nil
		}
		role = domain.RoleAdmin
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return ports.AuthResult{}, fmt.Errorf("signup: hash password: %w", err)
	}

	user := domain.NewUser(in.FirstName, in.LastName, email, hash, in.DateBirth, role)
	saved, err := s.users.Save(ctx, user)
	if err != nil {
		// The pre-check races with concurrent sign-ups; an insert-time
		// uniqueness violation reads the same as the pre-check hit.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return ports.Rejected(http.StatusConflict, ports.FieldError{Field: "email", Message: msgDuplicateEmail}), nil
		}
		return ports.AuthResult{}, fmt.Errorf("signup: save user: %w", err)
	}

	token, err := s.tokens.Issue(saved.Email, saved.Role)
	if err != nil {
		return ports.AuthResult{}, fmt.Errorf("signup: issue token: %w", err)
	}

	s.log.Info().Str("email", saved.Email).Str("role", string(saved.Role)).Msg("user registered")
	return ports.Accepted(saved, token), nil
}

// SignIn authenticates an existing account and issues a token for its stored
// identity and role.
func (s *AuthService) SignIn(ctx context.Context, in ports.SignInInput, fieldErrors []ports.FieldError) (ports.AuthResult, error) {
	if len(fieldErrors) > 0 {
		return ports.Rejected(http.StatusBadRequest, fieldErrors...), nil
	}

	user, err := s.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ports.Rejected(http.StatusNotFound, ports.FieldError{Field: "email", Message: msgUnknownEmail}), nil
		}
		return ports.AuthResult{}, fmt.Errorf("signin: find user: %w", err)
	}

	if !s.hasher.Matches(in.Password, user.PasswordHash) {
		return ports.Rejected(http.StatusUnauthorized, ports.FieldError{Field: "password", Message: msgIncorrectPassword}), nil
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return ports.AuthResult{}, fmt.Errorf("signin: issue token: %w", err)
	}

	s.log.Info().Str("email", user.Email).Msg("user signed in")
	return ports.Accepted(user, token), nil
}

// normalizeEmail fixes the collation: emails are compared and stored
// lower-cased, so lookups are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
