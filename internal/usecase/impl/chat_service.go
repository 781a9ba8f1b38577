package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "budgetai/internal/delivery/context"
	"budgetai/internal/domain/entity"
	domainerrors "budgetai/internal/domain/errors"
	"budgetai/internal/domain/repository"
	"budgetai/internal/domain/service"
	"budgetai/internal/errors"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionTitleLimit caps the sidebar label derived from the first message.
const sessionTitleLimit = 60

const shoppingAssistantPrompt = "You are a helpful shopping assistant for an online storefront. " +
	"Help the user find products, compare options and answer questions about orders. Keep replies short."

const financialAgentPrompt = "You are a financial operations agent. " +
	"Answer questions about budgets, spending and payments precisely and concisely."

// chatService implements the ChatUsecase interface.
type chatService struct {
	chatRepo     repository.ChatRepository
	agentService service.AgentService
	logger       *slog.Logger
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo     repository.ChatRepository
	AgentService service.AgentService
	Logger       *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo:     params.ChatRepo,
		agentService: params.AgentService,
		logger:       params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage persists the user's message, relays the conversation to the
// assistant agent, and persists its reply. The user message is kept even when
// the agent fails, so the client can retry without losing history.
func (srv *chatService) SendMessage(ctx context.Context, userID uuid.UUID, input *usecase.SendMessageInput) (*usecase.ChatReply, error) {
	session, err := srv.sessionForMessage(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	history := make([]service.AgentMessage, 0, len(session.Messages))
	for _, message := range session.Messages {
		history = append(history, service.AgentMessage{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}

	reply, err := srv.agentService.Chat(ctx, shoppingAssistantPrompt, history)
	if err != nil {
		srv.log(ctx).Error("Assistant agent call failed", slog.Any("sessionID", session.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "assistant agent call failed")
	}

	assistantMessage := &entity.ChatMessage{
		SessionID: session.ID,
		Role:      entity.ChatRoleAssistant,
		Content:   reply,
	}
	if err := srv.chatRepo.AppendMessage(ctx, assistantMessage); err != nil {
		return nil, errors.Wrap(err, "failed to store assistant reply")
	}
	session.Messages = append(session.Messages, *assistantMessage)

	return &usecase.ChatReply{
		Session: session,
		Reply:   assistantMessage,
	}, nil
}

// sessionForMessage appends the user message to an existing session or starts
// a new session titled after the message.
func (srv *chatService) sessionForMessage(ctx context.Context, userID uuid.UUID, input *usecase.SendMessageInput) (*entity.ChatSession, error) {
	if input.SessionID == nil {
		session := &entity.ChatSession{
			UserID: userID,
			Title:  sessionTitle(input.Message),
			Messages: []entity.ChatMessage{{
				Role:    entity.ChatRoleUser,
				Content: input.Message,
			}},
		}
		if err := srv.chatRepo.CreateSession(ctx, session); err != nil {
			return nil, errors.Wrap(err, "failed to create chat session")
		}

		return session, nil
	}

	session, err := srv.GetSession(ctx, userID, *input.SessionID)
	if err != nil {
		return nil, err
	}

	userMessage := &entity.ChatMessage{
		SessionID: session.ID,
		Role:      entity.ChatRoleUser,
		Content:   input.Message,
	}
	if err := srv.chatRepo.AppendMessage(ctx, userMessage); err != nil {
		return nil, errors.Wrap(err, "failed to store user message")
	}
	session.Messages = append(session.Messages, *userMessage)

	return session, nil
}

// ListSessions returns the caller's sessions, most recently active first.
func (srv *chatService) ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.ChatSession, error) {
	sessions, err := srv.chatRepo.FindSessionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat sessions")
	}

	return sessions, nil
}

// GetSession returns one session with full history. Other users' sessions are
// invisible, not forbidden.
func (srv *chatService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.ChatSession, error) {
	session, err := srv.chatRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrChatSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChatSessionNotFound, "chat session does not exist")
		}

		return nil, errors.Wrap(err, "failed to load chat session")
	}
	if session.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrChatSessionNotFound, "chat session belongs to another user")
	}

	return session, nil
}

// DeleteSession removes a session and its messages.
func (srv *chatService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	if _, err := srv.GetSession(ctx, userID, sessionID); err != nil {
		return err
	}

	if err := srv.chatRepo.DeleteSession(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to delete chat session")
	}

	return nil
}

// RelayFinancialChat forwards a single message to the financial agent and
// returns its reply verbatim. Nothing is persisted.
func (srv *chatService) RelayFinancialChat(ctx context.Context, input *usecase.FinancialChatInput) (string, error) {
	srv.log(ctx).Debug("Relaying message to financial agent")

	reply, err := srv.agentService.Chat(ctx, financialAgentPrompt, []service.AgentMessage{{
		Role:    string(entity.ChatRoleUser),
		Content: input.Message,
	}})
	if err != nil {
		srv.log(ctx).Error("Financial agent call failed", slog.Any("error", err))

		return "", errors.Wrap(err, "financial agent call failed")
	}

	return reply, nil
}

func sessionTitle(message string) string {
	title := strings.TrimSpace(message)
	if utf8.RuneCountInString(title) <= sessionTitleLimit {
		return title
	}

	runes := []rune(title)

	return string(runes[:sessionTitleLimit])
}
