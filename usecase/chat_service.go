package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/domain/entities"
	"github.com/zonaelectrica/zeia-server/domain/repositories"
)

// ErrQuotaReached is returned when the consultation limit is hit. The
// conversation state is left untouched and no gateway call is made.
var ErrQuotaReached = errors.New("consultation limit reached")

const (
	chatFallbackText  = "Entendido. ¿Deseas ampliar algún detalle técnico o hablar con un asesor?"
	imageFallbackText = "Aquí tienes la visualización técnica solicitada."
)

// ChatService handles the technical-terminal conversation logic: routing
// between plain chat, extended reasoning and image generation.
type ChatService struct {
	assistant repositories.Assistant
	store     *ConversationStore
	policy    RoutingPolicy
	logger    *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(assistant repositories.Assistant, store *ConversationStore, policy RoutingPolicy, logger *zap.Logger) *ChatService {
	return &ChatService{
		assistant: assistant,
		store:     store,
		policy:    policy,
		logger:    logger,
	}
}

// StartConversation opens a fresh chat thread
func (s *ChatService) StartConversation() *entities.Conversation {
	conversation := entities.NewConversation(entities.ConversationKindChat)
	s.store.Put(conversation)
	return conversation
}

// Get returns a conversation by id
func (s *ChatService) Get(id string) (*entities.Conversation, error) {
	return s.store.Get(id)
}

// Reset clears a conversation's messages, keeping its id. The activity
// timestamp is refreshed so a just-reset thread survives the idle purge.
func (s *ChatService) Reset(id string) error {
	conversation, err := s.store.Get(id)
	if err != nil {
		return err
	}

	conversation.Lock()
	defer conversation.Unlock()
	conversation.Messages = conversation.Messages[:0]
	conversation.LastActiveAt = time.Now()
	return nil
}

// Send routes a user input and appends both the user message and the
// assistant reply to the conversation. Gateway failures do not fail the
// call: they become an assistant-style error message in the thread.
// Only the target conversation is locked, so a slow gateway call never
// blocks other threads.
func (s *ChatService) Send(ctx context.Context, conversationID, input string) (entities.Message, error) {
	conversation, err := s.store.Get(conversationID)
	if err != nil {
		return entities.Message{}, err
	}

	conversation.Lock()
	defer conversation.Unlock()
	if conversation.QuotaReached(s.policy.ConsultationLimit) {
		return entities.Message{}, ErrQuotaReached
	}

	conversation.AddMessage(entities.NewMessage(entities.MessageRoleUser, input, entities.MessageTypeText))

	var reply entities.Message
	switch {
	case s.policy.IsImageRequest(input):
		reply = s.generateImage(ctx, input)
	case s.policy.IsComplex(input):
		reply = s.answer(ctx, input, s.assistant.Reason)
	default:
		reply = s.answer(ctx, input, s.assistant.Chat)
	}

	conversation.AddMessage(reply)
	return reply, nil
}

// answer runs a text path (chat or reasoning) and maps grounding sources
func (s *ChatService) answer(ctx context.Context, input string, call func(context.Context, string) (repositories.Reply, error)) entities.Message {
	result, err := call(ctx, input)
	if err != nil {
		s.logger.Error("Assistant call failed", zap.Error(err))
		return errorMessage(err)
	}

	text := result.Text
	if text == "" {
		text = chatFallbackText
	}

	msg := entities.NewMessage(entities.MessageRoleAssistant, text, entities.MessageTypeText)
	if len(result.Sources) > 0 {
		msg.Type = entities.MessageTypeGrounding
		msg.Sources = result.Sources
	}
	return msg
}

// generateImage runs the image path and embeds the result as a data URI
// reference followed by the returned text
func (s *ChatService) generateImage(ctx context.Context, input string) entities.Message {
	result, err := s.assistant.GenerateImage(ctx, input)
	if err != nil {
		s.logger.Error("Image generation failed", zap.Error(err))
		return errorMessage(err)
	}

	content := ""
	if len(result.PNG) > 0 {
		encoded := base64.StdEncoding.EncodeToString(result.PNG)
		content = fmt.Sprintf("![Imagen Generada](data:image/png;base64,%s)\n\n", encoded)
	}
	if result.Text != "" {
		content += result.Text
	} else {
		content += imageFallbackText
	}

	return entities.NewMessage(entities.MessageRoleAssistant, content, entities.MessageTypeImage)
}

// errorMessage converts a gateway failure into a user-visible reply
func errorMessage(err error) entities.Message {
	content := fmt.Sprintf("### ⚠️ Error en la Terminal\n\nNo fue posible procesar la consulta técnica en este momento.\n\n**Causa probable:** %s", err.Error())
	return entities.NewMessage(entities.MessageRoleAssistant, content, entities.MessageTypeText)
}
