package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/services/admin/handler/http"
)

// Handler wires the admin dashboard HTTP handlers onto the router
type Handler struct {
	dashboardHandler *http.DashboardHandler
}

// NewHandler creates the admin handler group
func NewHandler(dashboardHandler *http.DashboardHandler) *Handler {
	return &Handler{dashboardHandler: dashboardHandler}
}

// RegisterRoutes mounts the admin endpoints, all behind the admin guard
func (h *Handler) RegisterRoutes(g *echo.Group, adminGuard echo.MiddlewareFunc) {
	adminGroup := g.Group("/admin", adminGuard)

	adminGroup.GET("/overview", h.dashboardHandler.Overview)
	adminGroup.GET("/reports", h.dashboardHandler.Reports)
	adminGroup.GET("/users", h.dashboardHandler.ListUsers)
}
