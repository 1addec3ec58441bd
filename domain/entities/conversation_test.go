package entities

import (
	"testing"
	"time"
)

func TestConversationCreation(t *testing.T) {
	conversation := NewConversation(ConversationKindChat)

	if conversation.ID == "" {
		t.Error("Expected a conversation id to be assigned")
	}

	if conversation.Kind != ConversationKindChat {
		t.Errorf("Expected kind %s, got %s", ConversationKindChat, conversation.Kind)
	}

	if len(conversation.Messages) != 0 {
		t.Errorf("Expected empty messages, got %d messages", len(conversation.Messages))
	}
}

func TestAddMessageRefreshesActivity(t *testing.T) {
	conversation := NewConversation(ConversationKindChat)
	before := conversation.LastActiveAt

	time.Sleep(time.Millisecond)
	conversation.AddMessage(NewMessage(MessageRoleUser, "¿Qué cable necesito?", MessageTypeText))

	if len(conversation.Messages) != 1 {
		t.Errorf("Expected 1 message, got %d", len(conversation.Messages))
	}

	if !conversation.LastActiveAt.After(before) {
		t.Error("Expected LastActiveAt to advance")
	}
}

func TestUserMessageCountIgnoresAssistant(t *testing.T) {
	conversation := NewConversation(ConversationKindChat)
	conversation.AddMessage(NewMessage(MessageRoleUser, "hola", MessageTypeText))
	conversation.AddMessage(NewMessage(MessageRoleAssistant, "¿En qué puedo ayudarte?", MessageTypeText))
	conversation.AddMessage(NewMessage(MessageRoleUser, "necesito un breaker", MessageTypeText))

	if got := conversation.UserMessageCount(); got != 2 {
		t.Errorf("Expected 2 user messages, got %d", got)
	}
}

func TestQuotaReached(t *testing.T) {
	conversation := NewConversation(ConversationKindChat)
	for i := 0; i < 3; i++ {
		conversation.AddMessage(NewMessage(MessageRoleUser, "pregunta", MessageTypeText))
	}

	if conversation.QuotaReached(4) {
		t.Error("Expected quota not reached at 3 of 4")
	}

	if !conversation.QuotaReached(3) {
		t.Error("Expected quota reached at 3 of 3")
	}

	if conversation.QuotaReached(0) {
		t.Error("Expected zero limit to disable the quota")
	}
}

func TestFirstAssistantText(t *testing.T) {
	conversation := NewConversation(ConversationKindAnalysis)

	if got := conversation.FirstAssistantText(); got != "" {
		t.Errorf("Expected empty diagnosis context, got %q", got)
	}

	conversation.AddMessage(NewMessage(MessageRoleAssistant, "Identificación: contactor trifásico", MessageTypeText))
	conversation.AddMessage(NewMessage(MessageRoleAssistant, "otro mensaje", MessageTypeText))

	if got := conversation.FirstAssistantText(); got != "Identificación: contactor trifásico" {
		t.Errorf("Expected first assistant message, got %q", got)
	}
}

func TestIdleSince(t *testing.T) {
	conversation := NewConversation(ConversationKindChat)
	conversation.LastActiveAt = time.Now().Add(-time.Hour)

	if !conversation.IdleSince(30 * time.Minute) {
		t.Error("Expected conversation to be idle")
	}

	if conversation.IdleSince(2 * time.Hour) {
		t.Error("Expected conversation to be within the idle window")
	}
}

func TestConversationValidation(t *testing.T) {
	conversation := NewConversation(ConversationKindChat)
	if err := conversation.Validate(); err != nil {
		t.Errorf("Expected valid conversation, got %v", err)
	}

	conversation.ID = ""
	if err := conversation.Validate(); err == nil {
		t.Error("Expected validation error for missing id")
	}

	conversation = NewConversation(ConversationKind("voice"))
	if err := conversation.Validate(); err == nil {
		t.Error("Expected validation error for unknown kind")
	}
}
