package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server configuration, loaded from the environment.
// GEMINI_API_KEY is the one required secret; everything else has a
// working default.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	JWTSecret    string `env:"JWT_SECRET" envDefault:"zeia-dev-secret"`

	SessionTokenTTL   time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"24h"`
	ConversationTTL   time.Duration `env:"CONVERSATION_TTL" envDefault:"30m"`
	CleanupInterval   time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
	ConsultationLimit int           `env:"CONSULTATION_LIMIT" envDefault:"20"`

	// UseMockAssistant swaps the gateway for the offline mock
	UseMockAssistant bool `env:"USE_MOCK_ASSISTANT" envDefault:"false"`
}

// Load reads .env when present, then parses the environment. A missing
// API key fails here, before any gateway call is attempted.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if !cfg.UseMockAssistant && cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	return cfg, nil
}
