package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/middleware"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/messages"
	"github.com/farmchain/backend/services/messages/usecase"
)

// MessageHandler handles HTTP requests for direct messaging
type MessageHandler struct {
	messageUC messages.MessageUC
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageUC messages.MessageUC) *MessageHandler {
	return &MessageHandler{messageUC: messageUC}
}

// Send handles POST /messages
func (h *MessageHandler) Send(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid message fields")
	}

	m, err := h.messageUC.Send(c.Request().Context(), user, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrRecipientNotFound) {
			return utils.NotFoundResponse(c, "Recipient not found")
		}
		logger.Error("Failed to send message", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to send message")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", m)
}

// ListThreads handles GET /messages/threads
func (h *MessageHandler) ListThreads(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	threads, err := h.messageUC.ListThreads(c.Request().Context(), user.ID.Hex())
	if err != nil {
		logger.Error("Failed to list threads", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list threads")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", threads)
}

// ListThread handles GET /messages/threads/:threadId
func (h *MessageHandler) ListThread(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	items, err := h.messageUC.ListThread(c.Request().Context(), user.ID.Hex(), c.Param("threadId"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotParticipant) {
			return utils.ForbiddenResponse(c, "Not a participant of this thread")
		}
		logger.Error("Failed to list thread", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list thread")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", items)
}

// MarkRead handles PUT /messages/:id/read
func (h *MessageHandler) MarkRead(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	m, err := h.messageUC.MarkRead(c.Request().Context(), user.ID.Hex(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMessageNotFound):
			return utils.NotFoundResponse(c, "Message not found")
		case errors.Is(err, usecase.ErrNotParticipant):
			return utils.ForbiddenResponse(c, "Only the recipient can mark a message read")
		default:
			logger.Error("Failed to mark message read", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to mark message read")
		}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Message marked read", m)
}
