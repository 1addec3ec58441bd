package gemini

import (
	"context"
	"fmt"
	"sync"

	"github.com/zonaelectrica/zeia-server/domain/entities"
	"github.com/zonaelectrica/zeia-server/domain/repositories"
)

// MockAssistant is a placeholder gateway for tests and offline development
type MockAssistant struct{}

// NewMockAssistant creates a new mock gateway
func NewMockAssistant() *MockAssistant {
	return &MockAssistant{}
}

// Chat implements repositories.Assistant
func (m *MockAssistant) Chat(ctx context.Context, message string) (repositories.Reply, error) {
	return repositories.Reply{
		Text: fmt.Sprintf("⚡ Entendido: '%s'. ¿Deseas ampliar algún detalle técnico o hablar con un asesor?", message),
	}, nil
}

// Reason implements repositories.Assistant
func (m *MockAssistant) Reason(ctx context.Context, prompt string) (repositories.Reply, error) {
	return repositories.Reply{
		Text: "⚙️ Cálculo de ingeniería completado. Revisa los parámetros con tu asesor técnico.",
	}, nil
}

// GenerateImage implements repositories.Assistant
func (m *MockAssistant) GenerateImage(ctx context.Context, prompt string) (repositories.GeneratedImage, error) {
	return repositories.GeneratedImage{
		PNG:  []byte{0x89, 'P', 'N', 'G'},
		Text: "Aquí tienes la visualización técnica solicitada.",
	}, nil
}

// AnalyzeImage implements repositories.Assistant
func (m *MockAssistant) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	return "🔍 Identificación: componente industrial. Descripción: sin fallos visibles.", nil
}

// FindPlaces implements repositories.Assistant
func (m *MockAssistant) FindPlaces(ctx context.Context, query string, location entities.LatLng) ([]entities.Place, error) {
	return []entities.Place{
		{
			Title:    "Distribuidora Industrial del Caribe",
			URI:      "https://maps.google.com/?q=distribuidora",
			Snippets: []string{"Buen surtido de material eléctrico."},
		},
	}, nil
}

// Synthesize implements repositories.Assistant
func (m *MockAssistant) Synthesize(ctx context.Context, text string) ([]byte, error) {
	// 100ms of silence at 24 kHz mono PCM16
	return make([]byte, 4800), nil
}

// ConnectLive implements repositories.LiveConnector with a canned
// greeting so the voice path works offline.
func (m *MockAssistant) ConnectLive(ctx context.Context) (repositories.LiveStream, error) {
	s := &mockLiveStream{events: make(chan repositories.LiveEvent, 8)}
	s.events <- repositories.LiveEvent{
		Kind: repositories.LiveEventOutputTranscript,
		Text: "Hola, soy ZEIA. ¿En qué puedo ayudarte hoy?",
	}
	s.events <- repositories.LiveEvent{
		Kind:  repositories.LiveEventAudio,
		Audio: make([]byte, 4800),
	}
	s.events <- repositories.LiveEvent{Kind: repositories.LiveEventTurnComplete}
	return s, nil
}

type mockLiveStream struct {
	events chan repositories.LiveEvent
	once   sync.Once
}

func (s *mockLiveStream) SendAudio(frame []byte) error { return nil }

func (s *mockLiveStream) Events() <-chan repositories.LiveEvent { return s.events }

func (s *mockLiveStream) Close() error {
	s.once.Do(func() {
		s.events <- repositories.LiveEvent{Kind: repositories.LiveEventClosed}
		close(s.events)
	})
	return nil
}
