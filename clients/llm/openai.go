package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type openaiImpl struct {
	client *openai.Client
	model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

const defaultOpenAIModel = "gpt-4o-mini"

func NewOpenAI(cfg *OpenAIConfig) (API, error) {
	if cfg == nil {
		return nil, errors.New("missing parameter: cfg")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("missing parameter: cfg.APIKey")
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &openaiImpl{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
	}, nil
}

func (c *openaiImpl) SendChat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		MaxTokens:   220,
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion from model %s", c.model)
	}

	return resp.Choices[0].Message.Content, nil
}
