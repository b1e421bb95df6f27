package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/services/users/handler/http"
)

// Handler wires the user HTTP handlers onto the router
type Handler struct {
	userHandler *http.UserHandler
}

// NewHandler creates the user handler group
func NewHandler(userHandler *http.UserHandler) *Handler {
	return &Handler{userHandler: userHandler}
}

// RegisterRoutes mounts the profile endpoints on an authenticated group
func (h *Handler) RegisterRoutes(g *echo.Group, authGuard echo.MiddlewareFunc) {
	userGroup := g.Group("/users", authGuard)
	userGroup.GET("/me", h.userHandler.GetMe)
	userGroup.PUT("/me", h.userHandler.UpdateMe)
}
