package postgres

import (
	"context"
	"time"

	"budgetai/internal/domain/entity"
	"budgetai/internal/domain/repository"
	"budgetai/internal/errors"
	"budgetai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateSession(ctx context.Context, session *entity.ChatSession) error {
	sessionModel := chatSessionEntityToModel(session)
	if err := r.db.WithContext(ctx).Create(sessionModel).Error; err != nil {
		return errors.Wrap(err, "failed to create chat session")
	}

	session.ID = sessionModel.ID
	session.CreatedAt = sessionModel.CreatedAt
	session.UpdatedAt = sessionModel.UpdatedAt
	for i, messageModel := range sessionModel.Messages {
		session.Messages[i].ID = messageModel.ID
		session.Messages[i].SessionID = messageModel.SessionID
	}

	return nil
}

func (r *chatRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	var sessionModel model.ChatSessionModel
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("chat_messages.created_at ASC")
		}).
		First(&sessionModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat session by id")
	}

	return chatSessionModelToEntity(&sessionModel), nil
}

func (r *chatRepository) FindSessionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ChatSession, error) {
	var sessionModels []model.ChatSessionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat sessions by user")
	}

	sessions := make([]*entity.ChatSession, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = chatSessionModelToEntity(&sessionModels[i])
	}

	return sessions, nil
}

func (r *chatRepository) AppendMessage(ctx context.Context, message *entity.ChatMessage) error {
	messageModel := &model.ChatMessageModel{
		ID:        message.ID,
		SessionID: message.SessionID,
		Role:      string(message.Role),
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(messageModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrChatSessionNotFound
		}

		return errors.Wrap(err, "failed to append chat message")
	}

	message.ID = messageModel.ID
	message.CreatedAt = messageModel.CreatedAt

	// Bump the session so recency ordering in the sidebar stays correct.
	err := r.db.WithContext(ctx).
		Model(&model.ChatSessionModel{}).
		Where("id = ?", message.SessionID).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return errors.Wrap(err, "failed to touch chat session")
	}

	return nil
}

func (r *chatRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.ChatMessageModel{}, "session_id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete chat messages")
	}

	result := r.db.WithContext(ctx).Delete(&model.ChatSessionModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete chat session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChatSessionNotFound
	}

	return nil
}

func chatSessionModelToEntity(m *model.ChatSessionModel) *entity.ChatSession {
	messages := make([]entity.ChatMessage, len(m.Messages))
	for i, messageModel := range m.Messages {
		messages[i] = entity.ChatMessage{
			ID:        messageModel.ID,
			SessionID: messageModel.SessionID,
			Role:      entity.ChatRole(messageModel.Role),
			Content:   messageModel.Content,
			CreatedAt: messageModel.CreatedAt,
		}
	}

	return &entity.ChatSession{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Messages:  messages,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func chatSessionEntityToModel(e *entity.ChatSession) *model.ChatSessionModel {
	messages := make([]*model.ChatMessageModel, len(e.Messages))
	for i, message := range e.Messages {
		messages[i] = &model.ChatMessageModel{
			ID:        message.ID,
			SessionID: message.SessionID,
			Role:      string(message.Role),
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		}
	}

	return &model.ChatSessionModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Messages:  messages,
	}
}
