package repositories

import (
	"context"

	"github.com/zonaelectrica/zeia-server/domain/entities"
)

// Reply is the text outcome of a one-shot assistant call
type Reply struct {
	Text    string
	Sources []entities.GroundingSource
}

// GeneratedImage is the outcome of an image-generation call
type GeneratedImage struct {
	PNG  []byte // raw PNG bytes, empty when the model returned text only
	Text string
}

// Assistant abstracts the hosted generative model behind the four
// interaction modes. Every method is a single request/response call.
type Assistant interface {
	// Chat answers a message with the search tool granted
	Chat(ctx context.Context, message string) (Reply, error)
	// Reason answers with an extended thinking budget instead of search
	Reason(ctx context.Context, prompt string) (Reply, error)
	// GenerateImage renders a technical visualization for the prompt
	GenerateImage(ctx context.Context, prompt string) (GeneratedImage, error)
	// AnalyzeImage produces a diagnosis report for an inline image
	AnalyzeImage(ctx context.Context, data []byte, mimeType string) (string, error)
	// FindPlaces runs a maps-grounded search biased to the user location
	FindPlaces(ctx context.Context, query string, location entities.LatLng) ([]entities.Place, error)
	// Synthesize converts text to raw PCM speech (24 kHz, mono, 16-bit)
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// LiveConnector opens duplex voice streams to the assistant
type LiveConnector interface {
	ConnectLive(ctx context.Context) (LiveStream, error)
}
