package handlers

import (
	"fmt"
	"net/http"
	"time"

	"storefront-backend/application/services"
	"storefront-backend/pkg/common"
	pkgerrors "storefront-backend/pkg/errors"
	"storefront-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler handles account-related HTTP requests
type UserHandler struct {
	users  *services.UserService
	errs   *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *services.UserService, errs *pkgerrors.ErrorHandler, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		errs:   errs,
		logger: logger,
	}
}

// CreateUserRequest represents the request body for registering a user.
// The ID comes from the external identity provider, so the operation is an
// upsert: posting an existing ID greets the account instead of failing.
type CreateUserRequest struct {
	ID     string `json:"_id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Photo  string `json:"photo" validate:"required"`
	Gender string `json:"gender" validate:"required,oneof=male female"`
	DOB    string `json:"dob" validate:"required"`
}

// CreateUser handles POST /user/new
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := common.ParseJSONBody(r, &req, 1<<20); err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		h.errs.Handle(w, r, pkgerrors.NewValidationError("dob must be a valid date"))
		return
	}

	user, created, err := h.users.Create(r.Context(), services.NewUser{
		ID:     req.ID,
		Name:   req.Name,
		Email:  req.Email,
		Photo:  req.Photo,
		Gender: req.Gender,
		DOB:    dob,
	})
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	if !created {
		common.RespondMessage(w, http.StatusOK, fmt.Sprintf("welcome back, %s", user.Name))
		return
	}
	common.RespondMessage(w, http.StatusCreated, fmt.Sprintf("welcome, %s", user.Name))
}

// ListUsers handles GET /user/all
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.All(r.Context())
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, users)
}

// GetUser handles GET /user/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.users.ByID(r.Context(), userID)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /user/{userID}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.users.Delete(r.Context(), userID); err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "user deleted successfully")
}

// parseDate accepts both full RFC 3339 timestamps and bare yyyy-mm-dd dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
