package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/domain/repositories"
)

// ErrEmptyText is returned when synthesis is requested with no text
var ErrEmptyText = errors.New("text is required")

// SpeechService converts report text to speech for immediate playback
type SpeechService struct {
	assistant repositories.Assistant
	logger    *zap.Logger
}

// NewSpeechService creates a new speech service
func NewSpeechService(assistant repositories.Assistant, logger *zap.Logger) *SpeechService {
	return &SpeechService{assistant: assistant, logger: logger}
}

// Speak synthesizes one text into raw PCM (24 kHz, mono, 16-bit)
func (s *SpeechService) Speak(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	audio, err := s.assistant.Synthesize(ctx, text)
	if err != nil {
		s.logger.Error("Speech synthesis failed", zap.Error(err))
		return nil, err
	}
	return audio, nil
}
