package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/domain/repositories"
)

func newAnalysisService(assistant *stubAssistant, limit int) *AnalysisService {
	return NewAnalysisService(assistant, NewConversationStore(), limit, zap.NewNop())
}

func TestAnalyzeOpensFollowUpThread(t *testing.T) {
	assistant := &stubAssistant{report: "🔍 Identificación: contactor tripolar."}
	service := newAnalysisService(assistant, 20)

	conversation, reply, err := service.Analyze(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if reply.Content != "🔍 Identificación: contactor tripolar." {
		t.Errorf("Unexpected report: %q", reply.Content)
	}
	if conversation.UserMessageCount() != 0 {
		t.Errorf("Initial analysis must not consume the follow-up quota, got %d", conversation.UserMessageCount())
	}
}

func TestFollowUpCarriesDiagnosisContext(t *testing.T) {
	assistant := &stubAssistant{
		report:    "Reporte: breaker en buen estado.",
		chatReply: repositories.Reply{Text: "El torque recomendado es 2.5 Nm."},
	}
	service := newAnalysisService(assistant, 20)

	conversation, _, err := service.Analyze(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if _, err := service.FollowUp(context.Background(), conversation.ID, "¿qué torque usar?"); err != nil {
		t.Fatalf("FollowUp failed: %v", err)
	}

	if len(assistant.chatCalls) != 1 {
		t.Fatalf("Expected 1 chat call, got %d", len(assistant.chatCalls))
	}
	prompt := assistant.chatCalls[0]
	if !strings.Contains(prompt, "Reporte: breaker en buen estado.") {
		t.Errorf("Expected diagnosis context in the prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "¿qué torque usar?") {
		t.Errorf("Expected the question in the prompt, got %q", prompt)
	}
}

func TestFollowUpQuota(t *testing.T) {
	assistant := &stubAssistant{report: "ok", chatReply: repositories.Reply{Text: "ok"}}
	service := newAnalysisService(assistant, 2)

	conversation, _, err := service.Analyze(context.Background(), []byte{1}, "image/png")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := service.FollowUp(context.Background(), conversation.ID, "pregunta"); err != nil {
			t.Fatalf("FollowUp %d failed: %v", i, err)
		}
	}

	before := len(conversation.Messages)
	_, err = service.FollowUp(context.Background(), conversation.ID, "una más")
	if !errors.Is(err, ErrQuotaReached) {
		t.Fatalf("Expected ErrQuotaReached, got %v", err)
	}
	if len(conversation.Messages) != before {
		t.Error("Blocked follow-up must not change state")
	}
	if len(assistant.chatCalls) != 2 {
		t.Errorf("Blocked follow-up must not hit the gateway, got %d calls", len(assistant.chatCalls))
	}
}

func TestAnalyzeFailureStillOpensThread(t *testing.T) {
	assistant := &stubAssistant{reportErr: errors.New("vision backend down")}
	service := newAnalysisService(assistant, 20)

	conversation, reply, err := service.Analyze(context.Background(), []byte{1}, "image/png")
	if err != nil {
		t.Fatalf("Analyze must not fail on a gateway error: %v", err)
	}
	if !strings.Contains(reply.Content, "Error en el sistema de visión artificial") {
		t.Errorf("Expected the vision error reply, got %q", reply.Content)
	}
	if _, err := service.FollowUp(context.Background(), conversation.ID, "¿y ahora?"); err != nil {
		t.Errorf("Follow-ups should still work after a failed analysis: %v", err)
	}
}
