package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/services/messages/handler/http"
)

// Handler wires the messaging HTTP handlers onto the router
type Handler struct {
	messageHandler *http.MessageHandler
}

// NewHandler creates the messaging handler group
func NewHandler(messageHandler *http.MessageHandler) *Handler {
	return &Handler{messageHandler: messageHandler}
}

// RegisterRoutes mounts the messaging endpoints. All of them require a
// signed-in user of any role.
func (h *Handler) RegisterRoutes(g *echo.Group, authGuard echo.MiddlewareFunc) {
	messageGroup := g.Group("/messages", authGuard)

	messageGroup.POST("", h.messageHandler.Send)
	messageGroup.GET("/threads", h.messageHandler.ListThreads)
	messageGroup.GET("/threads/:threadId", h.messageHandler.ListThread)
	messageGroup.PUT("/:id/read", h.messageHandler.MarkRead)
}
