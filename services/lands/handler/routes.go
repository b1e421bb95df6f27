package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/services/lands/handler/http"
)

// Handler wires the land HTTP handlers onto the router
type Handler struct {
	landHandler *http.LandHandler
}

// NewHandler creates the land handler group
func NewHandler(landHandler *http.LandHandler) *Handler {
	return &Handler{landHandler: landHandler}
}

// RegisterRoutes mounts the land endpoints
func (h *Handler) RegisterRoutes(g *echo.Group, farmerGuard, adminGuard echo.MiddlewareFunc) {
	landGroup := g.Group("/lands")

	landGroup.GET("/nearby", h.landHandler.Nearby)
	landGroup.GET("/mine", h.landHandler.ListMine, farmerGuard)
	landGroup.POST("", h.landHandler.Register, farmerGuard)
	landGroup.GET("/pending", h.landHandler.ListPending, adminGuard)
	landGroup.PUT("/:id/review", h.landHandler.Review, adminGuard)
}
