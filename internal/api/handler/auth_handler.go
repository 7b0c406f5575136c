package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tpi-backend/e-commerce-api/internal/api/metrics"
	"github.com/tpi-backend/e-commerce-api/internal/core/ports"
)

// AuthHandler exposes sign-up and sign-in over HTTP. Request validation runs
// here and its outcome is handed to the service untouched, so the service
// decides how field errors map into the result.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signUpRequest struct {
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name"  validate:"required"`
	Email     string    `json:"email"      validate:"required,email"`
	Password  string    `json:"password"   validate:"required,min=8"`
	DateBirth time.Time `json:"date_birth" validate:"required"`
	Admin     bool      `json:"admin"`
	// JWT carries the ADMIN bearer token authorising elevated account
	// creation; only read when Admin is set.
	JWT string `json:"jwt,omitempty"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}

// SignUp registers a new user account and returns a signed token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	fieldErrs, err := validateRequest(c, &req)
	if err != nil {
		return err
	}

	result, err := h.auth.SignUp(c.Request().Context(), ports.SignUpInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		DateBirth: req.DateBirth,
		Admin:     req.Admin,
		Token:     req.JWT,
	}, fieldErrs)
	if err != nil {
		return err
	}

	if !result.OK() {
		metrics.AuthFailuresTotal.WithLabelValues(failureReason(result.Failure)).Inc()
		return c.JSON(result.Failure.Status, fieldMap(result.Failure.Fields))
	}

	metrics.SignupsTotal.WithLabelValues(string(result.Success.Role)).Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, toAuthResponse(result.Success))
}

// SignIn authenticates a user and returns a signed token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	fieldErrs, err := validateRequest(c, &req)
	if err != nil {
		return err
	}

	result, err := h.auth.SignIn(c.Request().Context(), ports.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	}, fieldErrs)
	if err != nil {
		return err
	}

	if !result.OK() {
		metrics.SigninsTotal.WithLabelValues("failure").Inc()
		metrics.AuthFailuresTotal.WithLabelValues(failureReason(result.Failure)).Inc()
		return c.JSON(result.Failure.Status, fieldMap(result.Failure.Fields))
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, toAuthResponse(result.Success))
}

// validateRequest runs the echo validator and converts field-level failures
// into the service's field-error input. Non-field validator errors propagate.
func validateRequest(c echo.Context, req any) ([]ports.FieldError, error) {
	err := c.Validate(req)
	if err == nil {
		return nil, nil
	}
	var rve *RequestValidationError
	if errors.As(err, &rve) {
		return rve.Fields, nil
	}
	return nil, err
}

// fieldMap renders failures the way the API reports them: one message per field.
func fieldMap(fields []ports.FieldError) map[string]string {
	out := make(map[string]string, len(fields))
	for _, fe := range fields {
		out[fe.Field] = fe.Message
	}
	return out
}

func failureReason(f *ports.AuthFailure) string {
	switch f.Status {
	case http.StatusBadRequest:
		return "validation"
	case http.StatusConflict:
		return "duplicate_email"
	case http.StatusForbidden:
		return "unauthorized_admin"
	case http.StatusNotFound:
		return "unknown_email"
	case http.StatusUnauthorized:
		return "incorrect_password"
	default:
		return "other"
	}
}

func toAuthResponse(s *ports.AuthSuccess) authResponse {
	return authResponse{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Role:      string(s.Role),
		Token:     s.Token,
	}
}
