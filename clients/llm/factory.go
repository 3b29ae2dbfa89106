package llm

import (
	"fmt"
	"time"
)

type FactoryConfig struct {
	Provider     string
	Model        string
	OpenAIAPIKey string
	OllamaHost   string
	Timeout      time.Duration
}

// NewFromConfig builds the configured chat client.
func NewFromConfig(cfg *FactoryConfig) (API, error) {
	if cfg == nil {
		return nil, fmt.Errorf("missing parameter: cfg")
	}

	switch cfg.Provider {
	case "openai", "":
		return NewOpenAI(&OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.Model,
		})
	case "ollama":
		return NewOllama(&OllamaConfig{
			Host:    cfg.OllamaHost,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
