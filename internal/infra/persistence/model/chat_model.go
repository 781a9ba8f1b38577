package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatSessionModel mirrors the 'chat_sessions' table.
type ChatSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(200)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Messages []*ChatMessageModel `gorm:"foreignKey:SessionID"`
}

// TableName explicitly sets the table name for GORM.
func (ChatSessionModel) TableName() string {
	return "chat_sessions"
}

// ChatMessageModel mirrors the 'chat_messages' table.
type ChatMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
