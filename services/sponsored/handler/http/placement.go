package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/middleware"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/sponsored"
	"github.com/farmchain/backend/services/sponsored/usecase"
)

// PlacementHandler handles HTTP requests for sponsored placements
type PlacementHandler struct {
	placementUC sponsored.PlacementUC
}

// NewPlacementHandler creates a new placement handler
func NewPlacementHandler(placementUC sponsored.PlacementUC) *PlacementHandler {
	return &PlacementHandler{placementUC: placementUC}
}

// ListPublic handles GET /sponsored?placement=home_banner
func (h *PlacementHandler) ListPublic(c echo.Context) error {
	items, err := h.placementUC.ListPublic(c.Request().Context(), c.QueryParam("placement"))
	if err != nil {
		logger.Error("Failed to list placements", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list placements")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", items)
}

// ListMine handles GET /sponsored/mine (supplier)
func (h *PlacementHandler) ListMine(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	items, err := h.placementUC.ListMine(c.Request().Context(), user.ID.Hex())
	if err != nil {
		logger.Error("Failed to list placements", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list placements")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", items)
}

// Create handles POST /sponsored (supplier)
func (h *PlacementHandler) Create(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreatePlacementRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid placement fields")
	}

	p, err := h.placementUC.Create(c.Request().Context(), user.ID.Hex(), &req)
	if err != nil {
		logger.Error("Failed to create placement", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create placement")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Placement created", p)
}

// Update handles PUT /sponsored/:id (supplier)
func (h *PlacementHandler) Update(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdatePlacementRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid placement fields")
	}

	p, err := h.placementUC.Update(c.Request().Context(), user.ID.Hex(), c.Param("id"), &req)
	if err != nil {
		return h.mapWriteError(c, err, "Failed to update placement")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Placement updated", p)
}

// Delete handles DELETE /sponsored/:id (supplier)
func (h *PlacementHandler) Delete(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.placementUC.Delete(c.Request().Context(), user.ID.Hex(), c.Param("id")); err != nil {
		return h.mapWriteError(c, err, "Failed to delete placement")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Placement deleted", nil)
}

func (h *PlacementHandler) mapWriteError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, usecase.ErrPlacementNotFound):
		return utils.NotFoundResponse(c, "Placement not found")
	case errors.Is(err, usecase.ErrNotOwner):
		return utils.ForbiddenResponse(c, "Not your placement")
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
