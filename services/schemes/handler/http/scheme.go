package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/schemes"
	"github.com/farmchain/backend/services/schemes/usecase"
)

// SchemeHandler handles HTTP requests for government schemes
type SchemeHandler struct {
	schemeUC schemes.SchemeUC
}

// NewSchemeHandler creates a new scheme handler
func NewSchemeHandler(schemeUC schemes.SchemeUC) *SchemeHandler {
	return &SchemeHandler{schemeUC: schemeUC}
}

// List handles GET /schemes (public)
func (h *SchemeHandler) List(c echo.Context) error {
	filter := models.SchemeFilter{
		State:    c.QueryParam("state"),
		District: c.QueryParam("district"),
		Search:   c.QueryParam("q"),
		Tags:     c.QueryParams()["tags"],
	}

	items, err := h.schemeUC.List(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to list schemes", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list schemes")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", items)
}

// Create handles POST /schemes/admin (admin)
func (h *SchemeHandler) Create(c echo.Context) error {
	var req models.CreateSchemeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid scheme fields")
	}

	s, err := h.schemeUC.Create(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create scheme", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create scheme")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Scheme created", s)
}

// Update handles PUT /schemes/admin/:id (admin)
func (h *SchemeHandler) Update(c echo.Context) error {
	var req models.UpdateSchemeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid scheme fields")
	}

	s, err := h.schemeUC.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrSchemeNotFound) {
			return utils.NotFoundResponse(c, "Scheme not found")
		}
		logger.Error("Failed to update scheme", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update scheme")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Scheme updated", s)
}

// Delete handles DELETE /schemes/admin/:id (admin)
func (h *SchemeHandler) Delete(c echo.Context) error {
	if err := h.schemeUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrSchemeNotFound) {
			return utils.NotFoundResponse(c, "Scheme not found")
		}
		logger.Error("Failed to delete scheme", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to delete scheme")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Scheme deleted", nil)
}
