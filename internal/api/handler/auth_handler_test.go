package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tpi-backend/e-commerce-api/internal/core/domain"
	"github.com/tpi-backend/e-commerce-api/internal/core/ports"
)

type stubAuthService struct {
	signUpFn func(ctx context.Context, in ports.SignUpInput, fieldErrors []ports.FieldError) (ports.AuthResult, error)
	signInFn func(ctx context.Context, in ports.SignInInput, fieldErrors []ports.FieldError) (ports.AuthResult, error)
}

func (s *stubAuthService) SignUp(ctx context.Context, in ports.SignUpInput, fieldErrors []ports.FieldError) (ports.AuthResult, error) {
	return s.signUpFn(ctx, in, fieldErrors)
}

func (s *stubAuthService) SignIn(ctx context.Context, in ports.SignInInput, fieldErrors []ports.FieldError) (ports.AuthResult, error) {
	return s.signInFn(ctx, in, fieldErrors)
}

func newAuthTestContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validSignUpBody = `{"first_name":"Julian","last_name":"Salvucci","email":"test@example.com","password":"securePassword123","date_birth":"1999-03-14T00:00:00Z"}`

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(_ context.Context, in ports.SignUpInput, fieldErrors []ports.FieldError) (ports.AuthResult, error) {
			if len(fieldErrors) != 0 {
				t.Fatalf("unexpected field errors: %+v", fieldErrors)
			}
			if in.Email != "test@example.com" || in.FirstName != "Julian" {
				t.Fatalf("unexpected input: %+v", in)
			}
			user := domain.NewUser(in.FirstName, in.LastName, in.Email, "hash", in.DateBirth, domain.RoleUser)
			return ports.Accepted(user, "token123"), nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/signup", validSignUpBody)
	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" || resp["role"] != "USER" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["first_name"] != "Julian" || resp["email"] != "test@example.com" {
		t.Fatalf("unexpected identity summary: %+v", resp)
	}
}

func TestAuthHandler_SignUp_FieldErrorsReachService(t *testing.T) {
	var received []ports.FieldError
	stub := &stubAuthService{
		signUpFn: func(_ context.Context, _ ports.SignUpInput, fieldErrors []ports.FieldError) (ports.AuthResult, error) {
			received = fieldErrors
			return ports.Rejected(http.StatusBadRequest, fieldErrors...), nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/signup", `{"email":"not-an-email"}`)
	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(received) == 0 {
		t.Fatalf("validation failures must be handed to the service")
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["email"]; !ok {
		t.Fatalf("expected email entry, got %+v", resp)
	}
	if _, ok := resp["password"]; !ok {
		t.Fatalf("expected password entry, got %+v", resp)
	}
}

func TestAuthHandler_SignUp_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(context.Context, ports.SignUpInput, []ports.FieldError) (ports.AuthResult, error) {
			return ports.Rejected(http.StatusConflict, ports.FieldError{Field: "email", Message: "a user with that email already exists"}), nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/signup", validSignUpBody)
	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "a user with that email already exists" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAuthHandler_SignUp_UnauthorizedAdminCreation(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(_ context.Context, in ports.SignUpInput, _ []ports.FieldError) (ports.AuthResult, error) {
			if !in.Admin || in.Token != "some-token" {
				t.Fatalf("admin flag and token must be forwarded: %+v", in)
			}
			return ports.Rejected(http.StatusForbidden, ports.FieldError{Field: "jwt", Message: "only ADMIN users can register other ADMIN users"}), nil
		},
	}
	h := NewAuthHandler(stub)

	body := `{"first_name":"Julian","last_name":"Salvucci","email":"test@example.com","password":"securePassword123","date_birth":"1999-03-14T00:00:00Z","admin":true,"jwt":"some-token"}`
	c, rec := newAuthTestContext(t, "/auth/signup", body)
	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthHandler_SignUp_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(context.Context, ports.SignUpInput, []ports.FieldError) (ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return ports.AuthResult{}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/signup", "not-json")
	_ = h.SignUp(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(_ context.Context, in ports.SignInInput, _ []ports.FieldError) (ports.AuthResult, error) {
			if in.Email != "alice@example.com" || in.Password != "secretpw" {
				t.Fatalf("unexpected input: %+v", in)
			}
			user := domain.NewUser("Alice", "Doe", in.Email, "hash", time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC), domain.RoleAdmin)
			return ports.Accepted(user, "token456"), nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/signin", `{"email":"alice@example.com","password":"secretpw"}`)
	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token456" || resp["role"] != "ADMIN" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_SignIn_UnknownEmail(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(context.Context, ports.SignInInput, []ports.FieldError) (ports.AuthResult, error) {
			return ports.Rejected(http.StatusNotFound, ports.FieldError{Field: "email", Message: "no user exists with that email"}), nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/signin", `{"email":"ghost@example.com","password":"secretpw"}`)
	_ = h.SignIn(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_SignIn_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(context.Context, ports.SignInInput, []ports.FieldError) (ports.AuthResult, error) {
			return ports.Rejected(http.StatusUnauthorized, ports.FieldError{Field: "password", Message: "the password is incorrect"}), nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, "/auth/signin", `{"email":"alice@example.com","password":"wrong-pw"}`)
	_ = h.SignIn(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["password"] != "the password is incorrect" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}
