package config

import (
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("USE_MOCK_ASSISTANT", "false")

	if _, err := Load(); err == nil {
		t.Error("expected error when GEMINI_API_KEY is unset")
	}
}

func TestLoadMockModeSkipsAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("USE_MOCK_ASSISTANT", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.UseMockAssistant {
		t.Error("expected mock mode to be enabled")
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.ConsultationLimit != 20 {
		t.Errorf("expected default consultation limit 20, got %d", cfg.ConsultationLimit)
	}
}

func TestLoadParsesDurations(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("CONVERSATION_TTL", "45m")
	t.Setenv("CLEANUP_INTERVAL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ConversationTTL != 45*time.Minute {
		t.Errorf("expected 45m conversation TTL, got %v", cfg.ConversationTTL)
	}
	if cfg.CleanupInterval != 5*time.Minute {
		t.Errorf("expected 5m cleanup interval, got %v", cfg.CleanupInterval)
	}
}
