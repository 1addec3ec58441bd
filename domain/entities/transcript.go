package entities

// TranscriptTurn is one finalized utterance from the live voice session.
// Turns are immutable once promoted from a partial transcript.
type TranscriptTurn struct {
	Role MessageRole `json:"role"`
	Text string      `json:"text"`
}
