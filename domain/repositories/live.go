package repositories

// LiveEventKind tags events arriving on a live stream
type LiveEventKind int

const (
	// LiveEventAudio carries a synthesized speech chunk (PCM16 @ 24 kHz mono)
	LiveEventAudio LiveEventKind = iota
	// LiveEventInterrupted signals barge-in: the user spoke over the model
	LiveEventInterrupted
	// LiveEventInputTranscript carries a delta of the user's speech transcript
	LiveEventInputTranscript
	// LiveEventOutputTranscript carries a delta of the model's speech transcript
	LiveEventOutputTranscript
	// LiveEventTurnComplete marks the end of one user/assistant exchange
	LiveEventTurnComplete
	// LiveEventClosed means the stream ended; Err is nil on a clean close
	LiveEventClosed
)

// LiveEvent is one inbound event from the duplex stream. Events are
// delivered strictly in arrival order on the stream's channel.
type LiveEvent struct {
	Kind  LiveEventKind
	Audio []byte
	Text  string
	Err   error
}

// LiveStream is one open duplex voice connection. SendAudio is
// fire-and-forget per frame; the caller never waits for acknowledgment.
type LiveStream interface {
	// SendAudio forwards one microphone frame (PCM16 LE @ 16 kHz mono)
	SendAudio(frame []byte) error
	// Events yields inbound events until the stream closes. The channel is
	// closed after a LiveEventClosed is delivered.
	Events() <-chan LiveEvent
	// Close tears the stream down; pending playback is left to finish
	Close() error
}
