package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

// RegisterRequest is the body of POST /api/v1/auth/register
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest is the body of POST /api/v1/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler handles account HTTP requests
type AuthHandler struct {
	authService AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), dto.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user": newUserResponse(user),
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), dto.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.ToHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"access_token": result.AccessToken,
		"token_type":   "Bearer",
		"expires_at":   result.ExpiresAt.UTC().Format(time.RFC3339),
		"user":         newUserResponse(result.User),
	})
}
