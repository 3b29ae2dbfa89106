package llm

import "context"

// API is a chat completion endpoint: one system instruction, one user
// instruction, free-text response.
type API interface {
	SendChat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
