package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/services/auth/handler/http"
)

// Handler wires the auth HTTP handlers onto the router
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates the auth handler group
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{authHandler: authHandler}
}

// RegisterRoutes mounts the public authentication endpoints
func (h *Handler) RegisterRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/send-otp", h.authHandler.SendOTP)
	authGroup.POST("/verify", h.authHandler.VerifyOTP)
	authGroup.POST("/admin/login", h.authHandler.AdminLogin)
}
