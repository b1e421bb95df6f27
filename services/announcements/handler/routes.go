package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/services/announcements/handler/http"
)

// Handler wires the announcement HTTP handlers onto the router
type Handler struct {
	announcementHandler *http.AnnouncementHandler
}

// NewHandler creates the announcement handler group
func NewHandler(announcementHandler *http.AnnouncementHandler) *Handler {
	return &Handler{announcementHandler: announcementHandler}
}

// RegisterRoutes mounts the announcement endpoints
func (h *Handler) RegisterRoutes(g *echo.Group, authGuard, adminGuard echo.MiddlewareFunc) {
	announcementGroup := g.Group("/announcements")

	announcementGroup.GET("", h.announcementHandler.List, authGuard)
	announcementGroup.POST("", h.announcementHandler.Create, adminGuard)
	announcementGroup.PUT("/:id", h.announcementHandler.Update, adminGuard)
	announcementGroup.DELETE("/:id", h.announcementHandler.Delete, adminGuard)
}
