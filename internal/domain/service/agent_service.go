package service

import "context"

// AgentMessage is one turn of an agent conversation.
type AgentMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// AgentService relays natural-language messages to the external
// financial-agent endpoint and returns its reply. Implementations must bound
// the call with a timeout; a hung agent must not hang the handler.
type AgentService interface {
	// Chat sends the conversation so far and returns the agent's reply.
	Chat(ctx context.Context, system string, history []AgentMessage) (string, error)
}
