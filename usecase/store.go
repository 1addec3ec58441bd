package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/zonaelectrica/zeia-server/domain/entities"
)

// ErrConversationNotFound is returned for unknown or expired conversations
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationStore keeps live conversations in memory. Nothing is
// persisted; a restart drops every thread.
type ConversationStore struct {
	mu            sync.RWMutex
	conversations map[string]*entities.Conversation
}

// NewConversationStore creates an empty store
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string]*entities.Conversation),
	}
}

// Put registers a conversation
func (s *ConversationStore) Put(conversation *entities.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conversation.ID] = conversation
}

// Get looks a conversation up by id
func (s *ConversationStore) Get(id string) (*entities.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conversation, ok := s.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return conversation, nil
}

// Delete removes a conversation
func (s *ConversationStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, id)
}

// Count returns the number of live conversations
func (s *ConversationStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}

// PurgeIdle drops conversations without activity for ttl and reports how
// many were removed
func (s *ConversationStore) PurgeIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, conversation := range s.conversations {
		if conversation.IdleSince(ttl) {
			delete(s.conversations, id)
			purged++
		}
	}
	return purged
}
