package handler

import (
	"net/http"
	"time"

	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/response"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConversationHandlerParams holds dependencies for ConversationHandler, injected by Fx.
type ConversationHandlerParams struct {
	fx.In

	MessagingUC usecase.MessagingUsecase
}

// ConversationHandler serves the inbox and message endpoints.
type ConversationHandler struct {
	messagingUC usecase.MessagingUsecase
}

// NewConversationHandler is the constructor for ConversationHandler
func NewConversationHandler(params ConversationHandlerParams) *ConversationHandler {
	return &ConversationHandler{messagingUC: params.MessagingUC}
}

// SendMessageRequest is the body of a new message.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// TypingView lists the other participants typing right now.
type TypingView struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

// List returns the caller's inbox.
func (h *ConversationHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	summaries, err := h.messagingUC.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, newConversationViews(summaries))
}

// Messages returns the conversation's messages, optionally only those after ?since=<RFC3339>.
func (h *ConversationHandler) Messages(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	since, err := parseSince(c.QueryParam("since"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	messages, err := h.messagingUC.GetMessages(c.Request().Context(), userID, conversationID, since)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, messages)
}

// Send posts a message to the conversation.
func (h *ConversationHandler) Send(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	message, err := h.messagingUC.SendMessage(c.Request().Context(), userID, conversationID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}

// MarkRead clears the caller's unread counter.
func (h *ConversationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.messagingUC.MarkRead(c.Request().Context(), userID, conversationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StartTyping flags the caller as typing.
func (h *ConversationHandler) StartTyping(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.messagingUC.SetTyping(c.Request().Context(), userID, conversationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Typing lists the other participants typing right now.
func (h *ConversationHandler) Typing(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	conversationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	users, err := h.messagingUC.ListTyping(c.Request().Context(), userID, conversationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TypingView{UserIDs: nonNil(users)})
}

func parseSince(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	since, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("since must be an RFC3339 timestamp")
	}

	return &since, nil
}
