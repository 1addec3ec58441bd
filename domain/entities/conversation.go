package entities

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ConversationKind separates the chat terminal from image-diagnosis threads
type ConversationKind string

const (
	ConversationKindChat     ConversationKind = "chat"
	ConversationKindAnalysis ConversationKind = "analysis"
)

// Conversation is one in-memory thread of messages between a user and ZEIA.
// Nothing is persisted; a conversation lives until it is reset or expires.
type Conversation struct {
	ID           string           `json:"id"`
	Kind         ConversationKind `json:"kind"`
	CreatedAt    time.Time        `json:"created_at"`
	LastActiveAt time.Time        `json:"last_active_at"`
	Messages     []Message        `json:"messages"`

	// mu serializes quota checks and message appends within this one
	// thread. Unrelated conversations never contend on it.
	mu sync.Mutex
}

// Lock takes the conversation's own mutex
func (c *Conversation) Lock() { c.mu.Lock() }

// Unlock releases the conversation's own mutex
func (c *Conversation) Unlock() { c.mu.Unlock() }

// NewConversation creates an empty conversation of the given kind
func NewConversation(kind ConversationKind) *Conversation {
	now := time.Now()
	return &Conversation{
		ID:           uuid.NewString(),
		Kind:         kind,
		CreatedAt:    now,
		LastActiveAt: now,
		Messages:     make([]Message, 0),
	}
}

// AddMessage appends a message and refreshes the activity timestamp
func (c *Conversation) AddMessage(msg Message) {
	c.Messages = append(c.Messages, msg)
	c.LastActiveAt = time.Now()
}

// UserMessageCount counts messages sent by the user, which is what the
// consultation quota is measured against
func (c *Conversation) UserMessageCount() int {
	count := 0
	for _, msg := range c.Messages {
		if msg.Role == MessageRoleUser {
			count++
		}
	}
	return count
}

// QuotaReached reports whether the per-conversation consultation limit is hit
func (c *Conversation) QuotaReached(limit int) bool {
	return limit > 0 && c.UserMessageCount() >= limit
}

// FirstAssistantText returns the first assistant message body, used as the
// diagnosis context for analysis follow-ups
func (c *Conversation) FirstAssistantText() string {
	for _, msg := range c.Messages {
		if msg.Role == MessageRoleAssistant {
			return msg.Content
		}
	}
	return ""
}

// IdleSince reports whether the conversation has seen no activity for ttl
func (c *Conversation) IdleSince(ttl time.Duration) bool {
	return time.Since(c.LastActiveAt) > ttl
}

// Validate validates the conversation data
func (c *Conversation) Validate() error {
	if c.ID == "" {
		return errors.New("conversation id is required")
	}
	if c.Kind != ConversationKindChat && c.Kind != ConversationKindAnalysis {
		return errors.New("invalid conversation kind")
	}
	return nil
}
