package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/services/schemes/handler/http"
)

// Handler wires the scheme HTTP handlers onto the router
type Handler struct {
	schemeHandler *http.SchemeHandler
}

// NewHandler creates the scheme handler group
func NewHandler(schemeHandler *http.SchemeHandler) *Handler {
	return &Handler{schemeHandler: schemeHandler}
}

// RegisterRoutes mounts the scheme endpoints. The listing is public;
// curation lives under /schemes/admin behind the admin guard.
func (h *Handler) RegisterRoutes(g *echo.Group, adminGuard echo.MiddlewareFunc) {
	schemeGroup := g.Group("/schemes")

	schemeGroup.GET("", h.schemeHandler.List)
	schemeGroup.POST("/admin", h.schemeHandler.Create, adminGuard)
	schemeGroup.PUT("/admin/:id", h.schemeHandler.Update, adminGuard)
	schemeGroup.DELETE("/admin/:id", h.schemeHandler.Delete, adminGuard)
}
