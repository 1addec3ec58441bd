package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/domain/entities"
)

func TestStorePutGetDelete(t *testing.T) {
	store := NewConversationStore()

	conversation := entities.NewConversation(entities.ConversationKindChat)
	store.Put(conversation)

	got, err := store.Get(conversation.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != conversation.ID {
		t.Errorf("Expected conversation %s, got %s", conversation.ID, got.ID)
	}

	store.Delete(conversation.ID)
	if _, err := store.Get(conversation.ID); !errors.Is(err, ErrConversationNotFound) {
		t.Errorf("Expected ErrConversationNotFound after delete, got %v", err)
	}
}

func TestPurgeIdleDropsOnlyStaleConversations(t *testing.T) {
	store := NewConversationStore()

	stale := entities.NewConversation(entities.ConversationKindAnalysis)
	stale.LastActiveAt = time.Now().Add(-2 * time.Hour)
	fresh := entities.NewConversation(entities.ConversationKindChat)
	store.Put(stale)
	store.Put(fresh)

	purged := store.PurgeIdle(time.Hour)
	if purged != 1 {
		t.Errorf("Expected 1 purged conversation, got %d", purged)
	}
	if _, err := store.Get(stale.ID); !errors.Is(err, ErrConversationNotFound) {
		t.Error("Expected the stale conversation to be gone")
	}
	if _, err := store.Get(fresh.ID); err != nil {
		t.Errorf("Expected the fresh conversation to survive: %v", err)
	}
}

func TestSpeakRejectsEmptyText(t *testing.T) {
	service := NewSpeechService(&stubAssistant{}, zap.NewNop())

	if _, err := service.Speak(context.Background(), ""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Expected ErrEmptyText, got %v", err)
	}
}

func TestSpeakReturnsGatewayAudio(t *testing.T) {
	assistant := &stubAssistant{audio: make([]byte, 4800)}
	service := NewSpeechService(assistant, zap.NewNop())

	audio, err := service.Speak(context.Background(), "Reporte listo")
	if err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if len(audio) != 4800 {
		t.Errorf("Expected 4800 audio bytes, got %d", len(audio))
	}
	if len(assistant.ttsCalls) != 1 || assistant.ttsCalls[0] != "Reporte listo" {
		t.Errorf("Expected one synthesis call with the text, got %+v", assistant.ttsCalls)
	}
}
