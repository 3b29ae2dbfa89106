// Package config loads settings.yaml plus the environment. Every knob has a
// default, so a missing config file still yields a runnable setup; only
// secrets (the OpenAI key) must come from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Role      string          `mapstructure:"role"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Streaming StreamingConfig `mapstructure:"streaming"`
	STT       STTConfig       `mapstructure:"stt"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Retrieval RetrievalConfig `mapstructure:"retrieval"`
	Paths     PathsConfig     `mapstructure:"paths"`
}

type AudioConfig struct {
	Rate        int `mapstructure:"rate"`
	Channels    int `mapstructure:"channels"`
	ChunkMs     int `mapstructure:"chunk_ms"`
	InputDevice int `mapstructure:"input_device"`
}

type StreamingConfig struct {
	WindowS      int     `mapstructure:"window_s"`
	StepS        int     `mapstructure:"step_s"`
	VADRMSThresh float64 `mapstructure:"vad_rms_thresh"`
	MinSpeechMs  int     `mapstructure:"min_speech_ms"`
}

type STTConfig struct {
	ModelPath string `mapstructure:"model_path"`
}

type LLMConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	Host     string `mapstructure:"host"`
	TimeoutS int    `mapstructure:"timeout_s"`
}

type RetrievalConfig struct {
	SimilarityThresh float64 `mapstructure:"similarity_thresh"`
	OverlapThresh    float64 `mapstructure:"overlap_thresh"`
}

type PathsConfig struct {
	Resume     string `mapstructure:"resume"`
	JD         string `mapstructure:"jd"`
	Projects   string `mapstructure:"projects"`
	AnswerBank string `mapstructure:"answer_bank"`
	Sessions   string `mapstructure:"sessions"`
}

func Load() (*Config, error) {
	// secrets live in config/.env when present
	_ = godotenv.Load("config/.env")

	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("role", "MLOps Engineer")

	viper.SetDefault("audio.rate", 16000)
	viper.SetDefault("audio.channels", 1)
	viper.SetDefault("audio.chunk_ms", 250)
	viper.SetDefault("audio.input_device", -1)

	viper.SetDefault("streaming.window_s", 6)
	viper.SetDefault("streaming.step_s", 2)
	viper.SetDefault("streaming.vad_rms_thresh", 0.01)
	viper.SetDefault("streaming.min_speech_ms", 200)

	viper.SetDefault("stt.model_path", "models/ggml-base.en.bin")

	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.host", "http://localhost:11434")
	viper.SetDefault("llm.timeout_s", 120)

	viper.SetDefault("retrieval.similarity_thresh", 0.82)
	viper.SetDefault("retrieval.overlap_thresh", 0.55)

	viper.SetDefault("paths.resume", "data/resume.md")
	viper.SetDefault("paths.jd", "data/current_jd.md")
	viper.SetDefault("paths.projects", "data/projects.yaml")
	viper.SetDefault("paths.answer_bank", "data/answer_bank.jsonl")
	viper.SetDefault("paths.sessions", "data/sessions")

	viper.SetEnvPrefix("INTERVIEW_COPILOT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// no config file, run on defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Audio.Rate <= 0 {
		return fmt.Errorf("audio.rate must be positive")
	}

	if c.Audio.Channels != 1 && c.Audio.Channels != 2 {
		return fmt.Errorf("audio.channels must be 1 or 2")
	}

	if c.Streaming.WindowS <= 0 || c.Streaming.StepS <= 0 {
		return fmt.Errorf("streaming window and step must be positive")
	}

	if c.Streaming.StepS > c.Streaming.WindowS {
		return fmt.Errorf("streaming.step_s cannot exceed streaming.window_s")
	}

	if c.LLM.Provider != "openai" && c.LLM.Provider != "ollama" {
		return fmt.Errorf("llm.provider must be openai or ollama")
	}

	return nil
}

// OpenAIKey reads the API key from the environment; it is not part of
// settings.yaml so config files stay shareable.
func (c *Config) OpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}
