package impl

import (
	"context"
	"strings"
	"testing"

	"budgetai/internal/domain/entity"
	domainerrors "budgetai/internal/domain/errors"
	"budgetai/internal/domain/repository"
	"budgetai/internal/domain/service"
	mockRepo "budgetai/internal/mocks/repository"
	mockSvc "budgetai/internal/mocks/service"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service      usecase.ChatUsecase
	chatRepo     *mockRepo.MockChatRepository
	agentService *mockSvc.MockAgentService
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	chatRepo := mockRepo.NewMockChatRepository(t)
	agentService := mockSvc.NewMockAgentService(t)

	service := NewChatService(ChatServiceParams{
		ChatRepo:     chatRepo,
		AgentService: agentService,
		Logger:       newDiscardLogger(),
	})

	return chatServiceFixtures{
		service:      service,
		chatRepo:     chatRepo,
		agentService: agentService,
	}
}

func TestChatService_SendMessage_NewSession(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.chatRepo.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("*entity.ChatSession")).
		Run(func(ctx context.Context, session *entity.ChatSession) {
			session.ID = uuid.New()
		}).
		Return(nil)
	fx.agentService.EXPECT().
		Chat(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]service.AgentMessage")).
		Return("Here are some options.", nil)
	fx.chatRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Run(func(ctx context.Context, message *entity.ChatMessage) {
			assert.Equal(t, entity.ChatRoleAssistant, message.Role)
		}).
		Return(nil)

	reply, err := fx.service.SendMessage(ctx, userID, &usecase.SendMessageInput{
		Message: "Find me a standing desk",
	})

	require.NoError(t, err)
	assert.Equal(t, "Find me a standing desk", reply.Session.Title)
	assert.Equal(t, "Here are some options.", reply.Reply.Content)
	assert.Len(t, reply.Session.Messages, 2)
}

func TestChatService_SendMessage_ExistingSession(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	session := &entity.ChatSession{
		ID:     sessionID,
		UserID: userID,
		Title:  "Standing desks",
		Messages: []entity.ChatMessage{
			{SessionID: sessionID, Role: entity.ChatRoleUser, Content: "Find me a standing desk"},
			{SessionID: sessionID, Role: entity.ChatRoleAssistant, Content: "Here are some options."},
		},
	}

	fx.chatRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)
	fx.chatRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Return(nil).
		Twice()
	fx.agentService.EXPECT().
		Chat(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]service.AgentMessage")).
		Run(func(ctx context.Context, system string, history []service.AgentMessage) {
			// Full history including the new user message goes to the agent.
			assert.Len(t, history, 3)
		}).
		Return("The second one is cheaper.", nil)

	reply, err := fx.service.SendMessage(ctx, userID, &usecase.SendMessageInput{
		SessionID: &sessionID,
		Message:   "Which is cheapest?",
	})

	require.NoError(t, err)
	assert.Len(t, reply.Session.Messages, 4)
}

func TestChatService_SendMessage_KeepsUserMessageOnAgentFailure(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	session := &entity.ChatSession{ID: sessionID, UserID: userID}

	fx.chatRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)
	fx.chatRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Return(nil).
		Once()
	fx.agentService.EXPECT().
		Chat(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]service.AgentMessage")).
		Return("", errors.New("agent unreachable"))

	reply, err := fx.service.SendMessage(ctx, userID, &usecase.SendMessageInput{
		SessionID: &sessionID,
		Message:   "Hello?",
	})

	assert.Error(t, err)
	assert.Nil(t, reply)
}

func TestChatService_GetSession_OtherUserInvisible(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	sessionID := uuid.New()
	session := &entity.ChatSession{ID: sessionID, UserID: uuid.New()}

	fx.chatRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)

	found, err := fx.service.GetSession(ctx, uuid.New(), sessionID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrChatSessionNotFound))
}

func TestChatService_DeleteSession_NotFound(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.chatRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(nil, repository.ErrChatSessionNotFound)

	err := fx.service.DeleteSession(ctx, uuid.New(), sessionID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChatSessionNotFound))
}

func TestChatService_RelayFinancialChat(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	fx.agentService.EXPECT().
		Chat(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]service.AgentMessage")).
		Run(func(ctx context.Context, system string, history []service.AgentMessage) {
			assert.Len(t, history, 1)
			assert.Equal(t, "How much budget is left?", history[0].Content)
		}).
		Return("About $750.", nil)

	reply, err := fx.service.RelayFinancialChat(ctx, &usecase.FinancialChatInput{
		Message: "How much budget is left?",
	})

	require.NoError(t, err)
	assert.Equal(t, "About $750.", reply)
}

func TestSessionTitle_TruncatesLongMessages(t *testing.T) {
	long := strings.Repeat("a", 200)

	title := sessionTitle("  " + long + "  ")

	assert.Len(t, []rune(title), sessionTitleLimit)
}

func TestSessionTitle_KeepsShortMessages(t *testing.T) {
	assert.Equal(t, "Find a desk", sessionTitle("Find a desk"))
}
