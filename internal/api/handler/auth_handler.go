package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/personal-cabinet/account-api/internal/api/metrics"
	"github.com/personal-cabinet/account-api/internal/core/domain"
	"github.com/personal-cabinet/account-api/internal/core/ports"
)

type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterStep1 accepts email and password and returns the intermediate token
// for step 2.
//
// @Summary      First registration step
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerStep1Request  true  "Email and password"
// @Success      200   {object}  registerStep1Response
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register-step1 [post]
func (h *AuthHandler) RegisterStep1(c echo.Context) error {
	var req registerStep1Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.auth.BeginRegistration(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.RegistrationFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		return err
	}

	metrics.RegistrationsStartedTotal.Inc()
	return c.JSON(http.StatusOK, registerStep1Response{TempToken: token})
}

// RegisterStep2 consumes the intermediate token together with name and birth
// date and finalizes the account.
//
// @Summary      Second registration step
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerStep2Request  true  "Name, birth date, and the step-1 token"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register-step2 [post]
func (h *AuthHandler) RegisterStep2(c echo.Context) error {
	var req registerStep2Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.auth.CompleteRegistration(c.Request().Context(), req.FullName, req.BirthDate, req.TempToken)
	if err != nil {
		metrics.RegistrationFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		return err
	}

	metrics.RegistrationsCompletedTotal.Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Login authenticates with email and password and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.auth.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Validate reports whether the bearer token identifies a live session. Every
// failure mode collapses to {"valid": false}: callers treat an invalid
// session as "not authenticated", never as a fault.
//
// @Summary      Validate a session token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  validateResponse
// @Router       /auth/validate [get]
func (h *AuthHandler) Validate(c echo.Context) error {
	token := bearerToken(c.Request().Header.Get("Authorization"))
	if token != "" {
		if _, err := h.auth.ValidateSession(c.Request().Context(), token); err == nil {
			metrics.SessionValidationsTotal.WithLabelValues("valid").Inc()
			return c.JSON(http.StatusOK, validateResponse{Valid: true})
		}
	}
	metrics.SessionValidationsTotal.WithLabelValues("invalid").Inc()
	return c.JSON(http.StatusOK, validateResponse{Valid: false})
}

// bearerToken extracts the token from an Authorization header value, or
// returns "" when the header is missing or not a bearer scheme.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return "email_taken"
	case errors.Is(err, domain.ErrTokenInvalid):
		return "invalid_token"
	case errors.Is(err, domain.ErrWrongTokenPhase):
		return "wrong_phase"
	case errors.Is(err, domain.ErrRegistrationNotStarted):
		return "not_started"
	default:
		return "internal"
	}
}
