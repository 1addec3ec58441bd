package api

import (
	"time"

	"github.com/zonaelectrica/zeia-server/domain/entities"
)

// SessionResponse represents the response payload for session bootstrap
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	ClientID  string    `json:"client_id"`
}

// ChatRequest represents one user consultation. ConversationID is empty
// on the first message of a thread.
type ChatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" validate:"required"`
}

// ChatResponse carries the assistant reply and the thread it belongs to
type ChatResponse struct {
	ConversationID string           `json:"conversation_id"`
	Reply          entities.Message `json:"reply"`
}

// AnalysisRequest represents an image diagnostic request. ImageData is
// base64-encoded.
type AnalysisRequest struct {
	ImageData string `json:"image_data" validate:"required"`
	MimeType  string `json:"mime_type"`
}

// AnalysisResponse carries the diagnostic report and the follow-up thread
type AnalysisResponse struct {
	ConversationID string           `json:"conversation_id"`
	Report         entities.Message `json:"report"`
}

// FollowUpRequest represents a question about a previous diagnosis
type FollowUpRequest struct {
	Question string `json:"question" validate:"required"`
}

// DistributorsRequest represents a distributor search near a location
type DistributorsRequest struct {
	Query     string  `json:"query"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistributorsResponse carries the distributor listing, featured entry first
type DistributorsResponse struct {
	Places []entities.Place `json:"places"`
}

// SpeechRequest represents a text-to-speech request
type SpeechRequest struct {
	Text string `json:"text" validate:"required"`
}

// SpeechResponse carries synthesized speech as base64-encoded PCM16
type SpeechResponse struct {
	AudioData  string `json:"audio_data"`
	SampleRate int    `json:"sample_rate"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
