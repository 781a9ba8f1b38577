package handler

import (
	"net/http"

	"budgetai/internal/delivery/http/response"
	"budgetai/internal/errors"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ChatHandler holds dependencies for assistant and agent-relay handlers.
type ChatHandler struct {
	uc usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Send posts a message to the shopping assistant and returns its reply.
func (h *ChatHandler) Send(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var input usecase.SendMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid chat input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	reply, err := h.uc.SendMessage(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newChatSessionView(reply.Session), "Message sent successfully")
}

// ListSessions returns the caller's chat sessions.
func (h *ChatHandler) ListSessions(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	sessions, err := h.uc.ListSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newChatSessionViews(sessions), "Chat sessions retrieved successfully")
}

// GetSession returns one session with its full history.
func (h *ChatHandler) GetSession(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid session id")
	}

	session, err := h.uc.GetSession(c.Request().Context(), userID, sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newChatSessionView(session), "Chat session retrieved successfully")
}

// DeleteSession removes a session and its messages.
func (h *ChatHandler) DeleteSession(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid session id")
	}

	if err := h.uc.DeleteSession(c.Request().Context(), userID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Chat session deleted successfully")
}

// FinancialChat relays a message to the financial agent.
func (h *ChatHandler) FinancialChat(c echo.Context) error {
	var input usecase.FinancialChatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid chat input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	reply, err := h.uc.RelayFinancialChat(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"reply": reply}, "Agent reply retrieved successfully")
}
