package websocket

import (
	"encoding/json"
	"time"

	"github.com/zonaelectrica/zeia-server/domain/entities"
)

// MessageType identifies the kind of a JSON frame on the voice socket.
type MessageType string

const (
	// Client -> server control frames
	MessageTypeSessionStart MessageType = "session_start"
	MessageTypeSessionStop  MessageType = "session_stop"

	// Server -> client frames
	MessageTypeSessionStarted    MessageType = "session_started"
	MessageTypeSessionClosed     MessageType = "session_closed"
	MessageTypeAudioChunk        MessageType = "audio_chunk"
	MessageTypeInterrupted       MessageType = "interrupted"
	MessageTypeTranscriptPartial MessageType = "transcript_partial"
	MessageTypeTranscript        MessageType = "transcript"
	MessageTypeError             MessageType = "error"
)

// BaseMessage is the envelope shared by every JSON frame.
type BaseMessage struct {
	Type      MessageType `json:"type"`
	Timestamp int64       `json:"timestamp"`
}

// InboundMessage is a control frame sent by the browser. Mic audio
// travels as binary frames and never goes through JSON.
type InboundMessage struct {
	Type MessageType `json:"type"`
}

// AudioChunkMessage carries one chunk of assistant speech, already
// placed on the playback timeline. Data is base64-encoded PCM16 at
// 24 kHz mono.
type AudioChunkMessage struct {
	BaseMessage
	Data       string `json:"data"`
	StartMs    int64  `json:"start_ms"`
	DurationMs int64  `json:"duration_ms"`
}

// TranscriptPartialMessage carries an in-flight transcript delta.
type TranscriptPartialMessage struct {
	BaseMessage
	Role entities.MessageRole `json:"role"`
	Text string               `json:"text"`
}

// TranscriptMessage carries the bounded turn history after a completed
// model turn.
type TranscriptMessage struct {
	BaseMessage
	Turns []entities.TranscriptTurn `json:"turns"`
}

// SessionStartedMessage acknowledges a successful live connection.
type SessionStartedMessage struct {
	BaseMessage
	SampleRate int `json:"sample_rate"`
}

// SessionClosedMessage reports that the live session ended. Error is
// set when the session ended abnormally.
type SessionClosedMessage struct {
	BaseMessage
	Error string `json:"error,omitempty"`
}

// ErrorMessage reports a protocol or gateway failure to the client.
type ErrorMessage struct {
	BaseMessage
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newBase(t MessageType) BaseMessage {
	return BaseMessage{Type: t, Timestamp: time.Now().UnixMilli()}
}

// ParseInbound decodes a JSON control frame from the client.
func ParseInbound(data []byte) (*InboundMessage, error) {
	var msg InboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
