package repository

import (
	"context"
	"errors"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrChatSessionNotFound is returned when no chat session matches the lookup.
var ErrChatSessionNotFound = errors.New("chat session not found")

// ChatRepository defines the persistence operations for chat sessions.
type ChatRepository interface {
	// CreateSession persists a new chat session.
	CreateSession(ctx context.Context, session *entity.ChatSession) error

	// FindSessionByID retrieves a session with its messages, oldest message first.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error)

	// FindSessionsByUser retrieves a user's sessions, newest first, without messages.
	FindSessionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ChatSession, error)

	// AppendMessage adds a message to an existing session.
	AppendMessage(ctx context.Context, message *entity.ChatMessage) error

	// DeleteSession removes a session and its messages.
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
