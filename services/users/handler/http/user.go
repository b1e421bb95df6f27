package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/middleware"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/users"
	"github.com/farmchain/backend/services/users/usecase"
)

// UserHandler handles HTTP requests for user profiles
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), user.Role, user.ID.Hex())
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to load profile", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UpdateMe handles PUT /users/me
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid profile fields")
	}

	profile, err := h.userUC.UpdateProfile(c.Request().Context(), user.Role, user.ID.Hex(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to update profile", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", profile)
}
