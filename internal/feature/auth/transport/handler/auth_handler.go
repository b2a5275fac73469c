// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog_backend/internal/api"
	"microblog_backend/internal/feature/auth/domain/entity"
	"microblog_backend/internal/feature/auth/transport/middleware"
	"microblog_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with the given username and password.
	Register(ctx context.Context, username, password string) (*entity.User, error)
	// Login authenticates a user and returns a session token on success.
	Login(ctx context.Context, username, password string) (string, error)
	// Logout ends the session referenced by the token. Idempotent.
	Logout(ctx context.Context, token string) error
}

// AuthHandler handles HTTP requests for registration, login and logout.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
// - binds the request JSON and returns 400 on validation failure
// - returns 409 when the username is already taken
// - returns 201 with the created user on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "username already taken"})
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
		}
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.UserResponse{ID: user.ID, Username: user.Username})
}

// Login handles the user login endpoint.
// Authentication failures always return the same 401 body so usernames
// cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid username or password"})
		return
	}

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Logout handles the logout endpoint. It requires a resolved identity; the
// underlying session end is idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	actor := middleware.IdentityFrom(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), middleware.TokenFrom(c)); err != nil {
		slog.Error("logout failed", "error", err, "username", actor.Username)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
		return
	}

	slog.Info("user logout successful", "username", actor.Username)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
