package usecase

import (
	"time"

	"go.uber.org/zap"
)

// CleanupService purges idle conversations in the background so abandoned
// threads do not accumulate in memory.
type CleanupService struct {
	store    *ConversationStore
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewCleanupService creates a cleanup service for the given store
func NewCleanupService(store *ConversationStore, ttl, interval time.Duration, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		store:    store,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins the background cleanup process
func (s *CleanupService) Start() {
	go s.cleanupLoop()
	s.logger.Info("Conversation cleanup service started",
		zap.Duration("ttl", s.ttl),
		zap.Duration("interval", s.interval))
}

// Stop gracefully stops the cleanup service
func (s *CleanupService) Stop() {
	close(s.stopChan)
	s.logger.Info("Conversation cleanup service stopped")
}

func (s *CleanupService) cleanupLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			if purged := s.store.PurgeIdle(s.ttl); purged > 0 {
				s.logger.Info("Purged idle conversations", zap.Int("count", purged))
			}
		}
	}
}
