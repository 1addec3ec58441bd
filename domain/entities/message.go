package entities

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole represents the role of a message sender
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// MessageType distinguishes how a message body should be rendered
type MessageType string

const (
	MessageTypeText      MessageType = "text"
	MessageTypeImage     MessageType = "image"
	MessageTypeGrounding MessageType = "grounding"
)

// GroundingSource is a citation attached to a grounded reply
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Message is one entry in a conversation
type Message struct {
	ID        string            `json:"id"`
	Role      MessageRole       `json:"role"`
	Content   string            `json:"content"`
	Type      MessageType       `json:"type"`
	Sources   []GroundingSource `json:"sources,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewMessage creates a message with a fresh id and the current timestamp
func NewMessage(role MessageRole, content string, msgType MessageType) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Type:      msgType,
		Timestamp: time.Now(),
	}
}
