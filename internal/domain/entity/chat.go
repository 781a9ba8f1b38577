package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole is the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single turn inside a chat session.
type ChatMessage struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}

// ChatSession groups the shopping-assistant conversation of one user.
type ChatSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string // First user message, trimmed, used as the sidebar label.
	Messages  []ChatMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}
