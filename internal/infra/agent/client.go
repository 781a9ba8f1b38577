// Package agent implements the external financial-agent relay over an
// OpenAI-compatible chat-completion endpoint.
package agent

import (
	"context"
	"log/slog"
	"time"

	"budgetai/config"
	domainerrors "budgetai/internal/domain/errors"
	"budgetai/internal/domain/service"

	openai "github.com/sashabaranov/go-openai"
)

const defaultTimeout = 30 * time.Second

type agentClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewAgentClient builds the relay from config. The base URL points at the
// agent's OpenAI-compatible endpoint; the key is read from the environment.
func NewAgentClient(cfg *config.Config, logger *slog.Logger) service.AgentService {
	agentCfg := cfg.Agent

	clientCfg := openai.DefaultConfig(agentCfg.APIKey)
	if agentCfg.BaseURL != "" {
		clientCfg.BaseURL = agentCfg.BaseURL
	}

	timeout := agentCfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &agentClient{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   agentCfg.Model,
		timeout: timeout,
		logger:  logger,
	}
}

// Chat sends the conversation so far and returns the agent's reply.
// Every call is bounded by the configured timeout so a hung agent cannot
// hang the handler.
func (a *agentClient) Chat(ctx context.Context, system string, history []service.AgentMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
	})
	if err != nil {
		a.logger.Error("Agent call failed", slog.Any("error", err))

		return "", domainerrors.ErrAgentUnavailable.WrapMessage("agent chat completion failed")
	}

	if len(resp.Choices) == 0 {
		return "", domainerrors.ErrAgentUnavailable.WrapMessage("agent returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
