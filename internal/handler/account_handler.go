package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradekeep/gradebook-backend/internal/middleware"
	"github.com/gradekeep/gradebook-backend/internal/model"
	"github.com/gradekeep/gradebook-backend/internal/repository"
	"github.com/gradekeep/gradebook-backend/internal/response"
	"github.com/gradekeep/gradebook-backend/internal/service"
	"github.com/gradekeep/gradebook-backend/internal/validator"
)

// AccountHandler handles admin management, registration, and profiles.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAdmin godoc
// POST /api/admin/create/
// Creates a fully privileged admin account and its token. Binding and
// uniqueness violations come back together in one field-keyed 400 body.
func (h *AccountHandler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	fields, ok := bindCollecting(c, &req)
	if !ok {
		return
	}

	user, err := h.accountService.CreateAdmin(c.Request.Context(), &req, fields)
	if err != nil {
		failAccountError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Admin user created successfully.",
		"user":    model.NewAdminSummary(user),
	})
}

// ListAdmins godoc
// GET /api/admin/list/
// Lists all staff/superuser accounts sorted by username.
func (h *AccountHandler) ListAdmins(c *gin.Context) {
	admins, err := h.accountService.ListAdmins(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"count":  len(admins),
		"admins": admins,
	})
}

// Register godoc
// POST /api/users/register/
// Creates a plain, non-privileged account. Admin capability required; no
// token is issued for the new account.
func (h *AccountHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	fields, ok := bindCollecting(c, &req)
	if !ok {
		return
	}

	user, err := h.accountService.Register(c.Request.Context(), &req, fields)
	if err != nil {
		failAccountError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, user)
}

// Profile godoc
// GET /api/user/profile/
// Returns the caller's own profile with the derived role label. Succeeds
// for any resolved identity.
func (h *AccountHandler) Profile(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	profile, err := h.accountService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// bindCollecting binds the payload but defers validation failures to the
// service, which merges its own checks into the same field map. Only a
// malformed body (not valid JSON for the struct) stops the request here.
func bindCollecting(c *gin.Context, dst interface{}) (service.FieldErrors, bool) {
	fields := validator.Bind(c, dst)
	if fields == nil {
		return service.FieldErrors{}, true
	}
	if _, malformed := fields["detail"]; malformed {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return nil, false
	}
	return service.FieldErrors(fields), true
}

func failAccountError(c *gin.Context, err error) {
	var fields service.FieldErrors
	switch {
	case errors.As(err, &fields):
		response.FailFields(c, fields)
	case errors.Is(err, repository.ErrDuplicateUser):
		// Lost the insert race despite passing the existence checks.
		response.Fail(c, http.StatusBadRequest, response.ErrConflict)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
