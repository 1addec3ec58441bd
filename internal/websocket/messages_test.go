package websocket

import (
	"encoding/json"
	"testing"

	"github.com/zonaelectrica/zeia-server/domain/entities"
)

func TestParseInboundControlFrame(t *testing.T) {
	msg, err := ParseInbound([]byte(`{"type":"session_start"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Type != MessageTypeSessionStart {
		t.Errorf("expected session_start, got %s", msg.Type)
	}
}

func TestParseInboundRejectsGarbage(t *testing.T) {
	if _, err := ParseInbound([]byte("not json")); err == nil {
		t.Error("expected error for malformed frame")
	}
}

func TestAudioChunkMessageWireFormat(t *testing.T) {
	msg := AudioChunkMessage{
		BaseMessage: newBase(MessageTypeAudioChunk),
		Data:        "AAAA",
		StartMs:     1500,
		DurationMs:  250,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded["type"] != "audio_chunk" {
		t.Errorf("expected type audio_chunk, got %v", decoded["type"])
	}
	if decoded["start_ms"] != float64(1500) {
		t.Errorf("expected start_ms 1500, got %v", decoded["start_ms"])
	}
	if decoded["duration_ms"] != float64(250) {
		t.Errorf("expected duration_ms 250, got %v", decoded["duration_ms"])
	}
}

func TestSessionClosedOmitsEmptyError(t *testing.T) {
	payload, err := json.Marshal(SessionClosedMessage{BaseMessage: newBase(MessageTypeSessionClosed)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := decoded["error"]; ok {
		t.Error("expected error field to be omitted on clean close")
	}
}

func TestTranscriptMessageCarriesTurns(t *testing.T) {
	msg := TranscriptMessage{
		BaseMessage: newBase(MessageTypeTranscript),
		Turns: []entities.TranscriptTurn{
			{Role: entities.MessageRoleUser, Text: "hola"},
			{Role: entities.MessageRoleAssistant, Text: "¿En qué puedo ayudarte?"},
		},
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded TranscriptMessage
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded.Turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(decoded.Turns))
	}
	if decoded.Turns[0].Role != entities.MessageRoleUser {
		t.Errorf("expected first turn to be user, got %s", decoded.Turns[0].Role)
	}
}
