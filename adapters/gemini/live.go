package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/zonaelectrica/zeia-server/domain/repositories"
)

const micMIMEType = "audio/pcm;rate=16000"

// liveStream adapts one genai live session to the repository interface.
// A single goroutine reads the wire and translates messages into the
// tagged event stream, preserving arrival order.
type liveStream struct {
	session *genai.Session
	events  chan repositories.LiveEvent
	logger  *zap.Logger
}

// ConnectLive opens a duplex voice stream: audio responses, the ZEIA
// voice, and transcription of both directions.
func (c *Client) ConnectLive(ctx context.Context) (repositories.LiveStream, error) {
	config := &genai.LiveConnectConfig{
		ResponseModalities: []genai.Modality{genai.ModalityAudio},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: liveVoice},
			},
		},
		SystemInstruction:        genai.NewContentFromText(systemPrompt+livePromptSuffix, genai.RoleUser),
		InputAudioTranscription:  &genai.AudioTranscriptionConfig{},
		OutputAudioTranscription: &genai.AudioTranscriptionConfig{},
	}

	session, err := c.genai.Live.Connect(ctx, modelLive, config)
	if err != nil {
		c.logger.Error("Live connect failed", zap.Error(err))
		return nil, fmt.Errorf("live connect failed: %w", err)
	}

	stream := &liveStream{
		session: session,
		events:  make(chan repositories.LiveEvent, 64),
		logger:  c.logger,
	}
	go stream.receiveLoop()

	return stream, nil
}

// SendAudio forwards one microphone frame, fire-and-forget
func (s *liveStream) SendAudio(frame []byte) error {
	return s.session.SendRealtimeInput(genai.LiveRealtimeInput{
		Media: &genai.Blob{Data: frame, MIMEType: micMIMEType},
	})
}

func (s *liveStream) Events() <-chan repositories.LiveEvent {
	return s.events
}

func (s *liveStream) Close() error {
	return s.session.Close()
}

// receiveLoop translates wire messages into events until the session ends.
// Event order within one message follows the wire: audio first, then
// interruption, transcription deltas, turn completion.
func (s *liveStream) receiveLoop() {
	defer close(s.events)

	for {
		message, err := s.session.Receive()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.events <- repositories.LiveEvent{Kind: repositories.LiveEventClosed}
			} else {
				s.logger.Error("Live stream receive failed", zap.Error(err))
				s.events <- repositories.LiveEvent{Kind: repositories.LiveEventClosed, Err: err}
			}
			return
		}

		content := message.ServerContent
		if content == nil {
			continue
		}

		if content.ModelTurn != nil {
			for _, part := range content.ModelTurn.Parts {
				if part.InlineData != nil && len(part.InlineData.Data) > 0 {
					s.events <- repositories.LiveEvent{
						Kind:  repositories.LiveEventAudio,
						Audio: part.InlineData.Data,
					}
				}
			}
		}

		if content.Interrupted {
			s.events <- repositories.LiveEvent{Kind: repositories.LiveEventInterrupted}
		}

		if content.InputTranscription != nil && content.InputTranscription.Text != "" {
			s.events <- repositories.LiveEvent{
				Kind: repositories.LiveEventInputTranscript,
				Text: content.InputTranscription.Text,
			}
		}
		if content.OutputTranscription != nil && content.OutputTranscription.Text != "" {
			s.events <- repositories.LiveEvent{
				Kind: repositories.LiveEventOutputTranscript,
				Text: content.OutputTranscription.Text,
			}
		}

		if content.TurnComplete {
			s.events <- repositories.LiveEvent{Kind: repositories.LiveEventTurnComplete}
		}
	}
}
