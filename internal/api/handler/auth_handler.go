package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wheeltrip/assist-api/internal/api/metrics"
	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=8"`
	ConfirmPassword string  `json:"confirm_password" validate:"required"`
	Role            string  `json:"role" validate:"required"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	DateOfBirth     string  `json:"date_of_birth"`
	HandicapType    *string `json:"handicap_type,omitempty"`
	Available       *bool   `json:"available,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new client or assistant account and returns a token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
		}
		dob = &parsed
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DateOfBirth:     dob,
		HandicapType:    req.HandicapType,
		Available:       req.Available,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(req.Role).Inc()

	return c.JSON(http.StatusCreated, tokenResponse{
		AccessToken: result.Token,
		TokenType:   result.TokenType,
	})
}

// Login authenticates a user by email and password and returns a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: result.Token,
		TokenType:   result.TokenType,
	})
}

// CheckToken validates the bearer token and returns the resolved identity.
//
// @Summary      Validate access token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  map[string]string
// @Router       /auth/check_token [get]
func (h *AuthHandler) CheckToken(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		metrics.TokenChecksTotal.WithLabelValues("invalid").Inc()
		return domain.ErrInvalidToken
	}

	identity, err := h.authService.CheckToken(c.Request().Context(), token)
	if err != nil {
		metrics.TokenChecksTotal.WithLabelValues("invalid").Inc()
		return err
	}

	metrics.TokenChecksTotal.WithLabelValues("valid").Inc()
	return c.JSON(http.StatusOK, identity)
}

// bearerToken extracts the token from the Authorization header, or returns
// an empty string when the header is missing or malformed. The scheme is
// matched case-insensitively, same as the Auth middleware.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
