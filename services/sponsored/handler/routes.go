package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/services/sponsored/handler/http"
)

// Handler wires the sponsored placement HTTP handlers onto the router
type Handler struct {
	placementHandler *http.PlacementHandler
}

// NewHandler creates the sponsored placement handler group
func NewHandler(placementHandler *http.PlacementHandler) *Handler {
	return &Handler{placementHandler: placementHandler}
}

// RegisterRoutes mounts the sponsored placement endpoints
func (h *Handler) RegisterRoutes(g *echo.Group, supplierGuard echo.MiddlewareFunc) {
	placementGroup := g.Group("/sponsored")

	placementGroup.GET("", h.placementHandler.ListPublic)
	placementGroup.GET("/mine", h.placementHandler.ListMine, supplierGuard)
	placementGroup.POST("", h.placementHandler.Create, supplierGuard)
	placementGroup.PUT("/:id", h.placementHandler.Update, supplierGuard)
	placementGroup.DELETE("/:id", h.placementHandler.Delete, supplierGuard)
}
