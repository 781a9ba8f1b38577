package usecase

import (
	"context"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SendMessageInput posts a user message into a session. A nil SessionID starts
// a new session titled after the message.
type SendMessageInput struct {
	SessionID *uuid.UUID `json:"sessionId"`
	Message   string     `json:"message" validate:"required,max=4000"`
}

// FinancialChatInput is a free-text message relayed to the financial agent.
type FinancialChatInput struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// --- Output DTOs ---

// ChatReply returns the session (with history) and the assistant's reply.
type ChatReply struct {
	Session *entity.ChatSession
	Reply   *entity.ChatMessage
}

// ChatUsecase defines the interface for the shopping assistant and the
// financial-agent relay.
type ChatUsecase interface {
	// SendMessage persists the user's message, relays the conversation to the
	// assistant agent, and persists and returns the reply.
	SendMessage(ctx context.Context, userID uuid.UUID, input *SendMessageInput) (*ChatReply, error)

	// ListSessions returns the caller's sessions, most recently active first.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.ChatSession, error)

	// GetSession returns one session with its full message history.
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.ChatSession, error)

	// DeleteSession removes a session and its messages.
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error

	// RelayFinancialChat forwards a message to the financial agent and returns
	// its reply verbatim. Nothing is persisted.
	RelayFinancialChat(ctx context.Context, input *FinancialChatInput) (string, error)
}
