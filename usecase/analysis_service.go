package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/domain/entities"
	"github.com/zonaelectrica/zeia-server/domain/repositories"
)

const (
	analysisErrorText = "❌ Error en el sistema de visión artificial. Intenta con otra imagen."
	followUpErrorText = "Ocurrió un error consultando al asesor virtual."
	emptyReportText   = "No se pudo generar un reporte detallado."
)

// AnalysisService runs equipment inspections: one image-analysis call
// followed by plain chat follow-ups that carry the first report as
// context, capped per conversation.
type AnalysisService struct {
	assistant repositories.Assistant
	store     *ConversationStore
	limit     int
	logger    *zap.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(assistant repositories.Assistant, store *ConversationStore, limit int, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		assistant: assistant,
		store:     store,
		limit:     limit,
		logger:    logger,
	}
}

// Analyze diagnoses an equipment image and opens a follow-up thread.
// A vision failure still opens the thread with a user-visible error reply.
func (s *AnalysisService) Analyze(ctx context.Context, imageData []byte, mimeType string) (*entities.Conversation, entities.Message, error) {
	conversation := entities.NewConversation(entities.ConversationKindAnalysis)

	report, err := s.assistant.AnalyzeImage(ctx, imageData, mimeType)
	if err != nil {
		s.logger.Error("Image analysis failed", zap.Error(err))
		report = analysisErrorText
	} else if report == "" {
		report = emptyReportText
	}

	reply := entities.NewMessage(entities.MessageRoleAssistant, report, entities.MessageTypeText)
	conversation.AddMessage(reply)
	s.store.Put(conversation)

	return conversation, reply, nil
}

// FollowUp sends a question about an earlier diagnosis. Once the quota is
// reached further attempts are no-ops: state unchanged, no gateway call.
// Locking is per conversation, so concurrent inspections never wait on
// each other's gateway calls.
func (s *AnalysisService) FollowUp(ctx context.Context, conversationID, question string) (entities.Message, error) {
	conversation, err := s.store.Get(conversationID)
	if err != nil {
		return entities.Message{}, err
	}

	conversation.Lock()
	defer conversation.Unlock()
	if conversation.QuotaReached(s.limit) {
		return entities.Message{}, ErrQuotaReached
	}

	conversation.AddMessage(entities.NewMessage(entities.MessageRoleUser, question, entities.MessageTypeText))

	prompt := fmt.Sprintf("Contexto del diagnóstico previo: %s. El usuario pregunta ahora: %s",
		conversation.FirstAssistantText(), question)

	var reply entities.Message
	result, err := s.assistant.Chat(ctx, prompt)
	if err != nil {
		s.logger.Error("Follow-up chat failed", zap.Error(err))
		reply = entities.NewMessage(entities.MessageRoleAssistant, followUpErrorText, entities.MessageTypeText)
	} else {
		text := result.Text
		if text == "" {
			text = "No logré procesar tu pregunta técnica."
		}
		reply = entities.NewMessage(entities.MessageRoleAssistant, text, entities.MessageTypeText)
	}

	conversation.AddMessage(reply)
	return reply, nil
}
