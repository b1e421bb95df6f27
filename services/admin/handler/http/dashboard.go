package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/admin"
)

// DashboardHandler handles HTTP requests for the admin dashboard
type DashboardHandler struct {
	adminUC admin.AdminUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(adminUC admin.AdminUC) *DashboardHandler {
	return &DashboardHandler{adminUC: adminUC}
}

// Overview handles GET /admin/overview
func (h *DashboardHandler) Overview(c echo.Context) error {
	overview, err := h.adminUC.Overview(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build admin overview", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to build overview")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", overview)
}

// Reports handles GET /admin/reports
func (h *DashboardHandler) Reports(c echo.Context) error {
	reports, err := h.adminUC.Reports(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build admin reports", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to build reports")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", reports)
}

// ListUsers handles GET /admin/users?role=farmer&page=1&limit=20
func (h *DashboardHandler) ListUsers(c echo.Context) error {
	role := models.Role(c.QueryParam("role"))
	if role == "" {
		role = models.RoleFarmer
	}
	if !role.Valid() {
		return utils.BadRequestResponse(c, "Role must be farmer, supplier or admin")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, total, err := h.adminUC.ListUsers(c.Request().Context(), role, page, limit)
	if err != nil {
		logger.Error("Failed to list users", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list users")
	}

	page, limit, _ = utils.Pagination(page, limit, 20, 100)
	pages := int((total + int64(limit) - 1) / int64(limit))
	return utils.PagedSuccessResponse(c, items, page, pages, total, limit)
}
