package live

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/domain/entities"
	"github.com/zonaelectrica/zeia-server/domain/repositories"
)

// Sink receives the session's outcomes. All methods are invoked from the
// session's single event-handling goroutine, in event arrival order.
type Sink interface {
	// OnAudio delivers a scheduled playback chunk
	OnAudio(chunk PlaybackChunk)
	// OnInterrupted tells the sink to stop and discard pending playback
	OnInterrupted()
	// OnPartial delivers the accumulated in-progress transcript for a role
	OnPartial(role entities.MessageRole, text string)
	// OnTurnComplete delivers the bounded turn history after a promotion
	OnTurnComplete(history []entities.TranscriptTurn)
	// OnClosed marks the end of the session; err is nil on a clean close
	OnClosed(err error)
}

// Session is one live voice interaction: a duplex stream to the assistant,
// the playback scheduler and the transcript assembler. It is created by
// Start and destroyed by Stop, a remote close, or a stream error.
type Session struct {
	stream     repositories.LiveStream
	scheduler  *Scheduler
	transcript *Assembler
	sink       Sink
	logger     *zap.Logger
	done       chan struct{}
}

// Start opens the duplex stream and begins consuming inbound events.
// A connect failure leaves the caller in the pre-session state.
func Start(ctx context.Context, connector repositories.LiveConnector, sink Sink, logger *zap.Logger) (*Session, error) {
	stream, err := connector.ConnectLive(ctx)
	if err != nil {
		return nil, err
	}

	epoch := time.Now()
	session := &Session{
		stream:     stream,
		scheduler:  NewScheduler(func() time.Duration { return time.Since(epoch) }),
		transcript: NewAssembler(TranscriptHistoryLimit),
		sink:       sink,
		logger:     logger,
		done:       make(chan struct{}),
	}
	go session.run()

	return session, nil
}

// SendFrame forwards one microphone frame to the stream. Forwarding is
// fire-and-forget; a send failure is logged and the frame dropped.
func (s *Session) SendFrame(frame []byte) {
	if err := s.stream.SendAudio(frame); err != nil {
		s.logger.Warn("Failed to forward audio frame", zap.Error(err))
	}
}

// Stop closes the stream. In-flight playback on the sink side is left to
// finish naturally.
func (s *Session) Stop() error {
	return s.stream.Close()
}

// Done is closed once the event loop has finished
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// History returns the current bounded turn history
func (s *Session) History() []entities.TranscriptTurn {
	return s.transcript.History()
}

// run consumes inbound events strictly in arrival order
func (s *Session) run() {
	defer close(s.done)

	for event := range s.stream.Events() {
		if event.Kind == repositories.LiveEventClosed {
			s.sink.OnClosed(event.Err)
			return
		}
		s.handle(event)
	}

	// Channel closed without a terminal event: treat as a clean close.
	s.sink.OnClosed(nil)
}

func (s *Session) handle(event repositories.LiveEvent) {
	switch event.Kind {
	case repositories.LiveEventAudio:
		chunk := s.scheduler.Schedule(event.Audio)
		s.sink.OnAudio(chunk)

	case repositories.LiveEventInterrupted:
		s.scheduler.Interrupt()
		s.transcript.Interrupt()
		s.sink.OnInterrupted()

	case repositories.LiveEventInputTranscript:
		partial := s.transcript.AppendInput(event.Text)
		s.sink.OnPartial(entities.MessageRoleUser, partial)

	case repositories.LiveEventOutputTranscript:
		partial := s.transcript.AppendOutput(event.Text)
		s.sink.OnPartial(entities.MessageRoleAssistant, partial)

	case repositories.LiveEventTurnComplete:
		if promoted := s.transcript.CompleteTurn(); len(promoted) > 0 {
			s.sink.OnTurnComplete(s.transcript.History())
		}

	default:
		s.logger.Warn("Unknown live event", zap.Int("kind", int(event.Kind)))
	}
}
