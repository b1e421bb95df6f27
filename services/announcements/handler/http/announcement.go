package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/middleware"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/announcements"
	"github.com/farmchain/backend/services/announcements/usecase"
)

// AnnouncementHandler handles HTTP requests for platform notices
type AnnouncementHandler struct {
	announcementUC announcements.AnnouncementUC
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementUC announcements.AnnouncementUC) *AnnouncementHandler {
	return &AnnouncementHandler{announcementUC: announcementUC}
}

// List handles GET /announcements (any signed-in role)
func (h *AnnouncementHandler) List(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	items, err := h.announcementUC.ListForRole(c.Request().Context(), user.Role)
	if err != nil {
		logger.Error("Failed to list announcements", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list announcements")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", items)
}

// Create handles POST /announcements (admin)
func (h *AnnouncementHandler) Create(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid announcement fields")
	}

	a, err := h.announcementUC.Create(c.Request().Context(), user.ID.Hex(), &req)
	if err != nil {
		logger.Error("Failed to create announcement", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create announcement")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Announcement published", a)
}

// Update handles PUT /announcements/:id (admin)
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req models.UpdateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid announcement fields")
	}

	a, err := h.announcementUC.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrAnnouncementNotFound) {
			return utils.NotFoundResponse(c, "Announcement not found")
		}
		logger.Error("Failed to update announcement", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update announcement")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Announcement updated", a)
}

// Delete handles DELETE /announcements/:id (admin)
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	if err := h.announcementUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		logger.Error("Failed to delete announcement", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to delete announcement")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Announcement deleted", nil)
}
