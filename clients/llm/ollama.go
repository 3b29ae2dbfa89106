package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

type ollamaImpl struct {
	host       string
	model      string
	httpClient *http.Client
}

type OllamaConfig struct {
	Host    string
	Model   string
	Timeout time.Duration
}

const (
	defaultOllamaHost    = "http://localhost:11434"
	defaultOllamaModel   = "llama3.1"
	defaultOllamaTimeout = 120 * time.Second
)

func NewOllama(cfg *OllamaConfig) (API, error) {
	if cfg == nil {
		return nil, errors.New("missing parameter: cfg")
	}

	host := cfg.Host
	if host == "" {
		host = defaultOllamaHost
	}

	model := cfg.Model
	if model == "" {
		model = defaultOllamaModel
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultOllamaTimeout
	}

	return &ollamaImpl{
		host:  host,
		model: model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

func (c *ollamaImpl) SendChat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := ollamaChatRequest{
		Model: c.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, respBody)
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", err
	}

	return chatResp.Message.Content, nil
}
