package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/middleware"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/lands"
	"github.com/farmchain/backend/services/lands/usecase"
)

// LandHandler handles HTTP requests for land parcels
type LandHandler struct {
	landUC lands.LandUC
}

// NewLandHandler creates a new land handler
func NewLandHandler(landUC lands.LandUC) *LandHandler {
	return &LandHandler{landUC: landUC}
}

// Register handles POST /lands (farmer)
func (h *LandHandler) Register(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RegisterLandRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid land fields")
	}

	land, err := h.landUC.Register(c.Request().Context(), user.ID.Hex(), &req)
	if err != nil {
		logger.Error("Failed to register land", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to register land")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Land registered, pending verification", land)
}

// ListMine handles GET /lands/mine (farmer)
func (h *LandHandler) ListMine(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	items, err := h.landUC.ListMine(c.Request().Context(), user.ID.Hex())
	if err != nil {
		logger.Error("Failed to list lands", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list lands")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", items)
}

// Nearby handles GET /lands/nearby?lat=..&lng=..&precision=..
func (h *LandHandler) Nearby(c echo.Context) error {
	var query models.NearbyLandsQuery
	if err := c.Bind(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	if err := c.Validate(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid coordinates")
	}

	items, err := h.landUC.Nearby(c.Request().Context(), query)
	if err != nil {
		logger.Error("Failed to query nearby lands", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to query nearby lands")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", items)
}

// ListPending handles GET /lands/pending (admin)
func (h *LandHandler) ListPending(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, total, err := h.landUC.ListPending(c.Request().Context(), page, limit)
	if err != nil {
		logger.Error("Failed to list pending lands", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list pending lands")
	}

	page, limit, _ = utils.Pagination(page, limit, 20, 100)
	pages := int((total + int64(limit) - 1) / int64(limit))
	return utils.PagedSuccessResponse(c, items, page, pages, total, limit)
}

// Review handles PUT /lands/:id/review (admin)
func (h *LandHandler) Review(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ReviewLandRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Action must be APPROVED or REJECTED")
	}

	land, err := h.landUC.Review(c.Request().Context(), user.ID.Hex(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrLandNotFound) {
			return utils.NotFoundResponse(c, "Land not found")
		}
		logger.Error("Failed to review land", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to review land")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Review recorded", land)
}
