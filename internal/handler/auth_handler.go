package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradekeep/gradebook-backend/internal/middleware"
	"github.com/gradekeep/gradebook-backend/internal/model"
	"github.com/gradekeep/gradebook-backend/internal/response"
	"github.com/gradekeep/gradebook-backend/internal/service"
	"github.com/gradekeep/gradebook-backend/internal/validator"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /api/users/login/
// Validates username + password and returns the account's bearer token,
// creating one if none exists. Failure is always the same 400 regardless
// of whether the username exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailFields(c, fields)
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"token": token.Key})
}

// Logout godoc
// POST /api/users/logout/
// Deletes the caller's token. The token that authenticated this request is
// dead afterwards.
func (h *AuthHandler) Logout(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), user.ID, middleware.GetTokenKey(c)); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.NoContent(c)
}
