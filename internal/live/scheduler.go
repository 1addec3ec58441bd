package live

import "time"

// outputSampleRate is the sample rate of model speech (PCM16 mono)
const outputSampleRate = 24000

// PlaybackChunk is one decoded model audio buffer with its slot on the
// output clock. Ownership passes to the sink once scheduled.
type PlaybackChunk struct {
	Data     []byte
	StartAt  time.Duration
	Duration time.Duration
}

// Scheduler assigns gapless, non-overlapping start times to incoming audio
// chunks even when they arrive with jitter. Not safe for concurrent use:
// it is only ever touched from the session's single event-handling loop.
type Scheduler struct {
	clock   func() time.Duration
	next    time.Duration
	pending []PlaybackChunk
}

// NewScheduler creates a scheduler reading the output clock from clock
func NewScheduler(clock func() time.Duration) *Scheduler {
	return &Scheduler{clock: clock}
}

// Schedule slots a chunk at max(current clock, next start time) and
// advances the running clock by the chunk's duration. Start times are
// non-decreasing while the session runs.
func (s *Scheduler) Schedule(pcm []byte) PlaybackChunk {
	now := s.clock()
	s.prune(now)

	if s.next < now {
		s.next = now
	}

	chunk := PlaybackChunk{
		Data:     pcm,
		StartAt:  s.next,
		Duration: chunkDuration(len(pcm)),
	}
	s.next += chunk.Duration
	s.pending = append(s.pending, chunk)

	return chunk
}

// Interrupt drops every scheduled chunk and resets the clock to zero.
// Models barge-in: the user started speaking over the assistant.
func (s *Scheduler) Interrupt() {
	s.pending = nil
	s.next = 0
}

// NextStartTime exposes the running clock position
func (s *Scheduler) NextStartTime() time.Duration {
	return s.next
}

// PendingCount reports how many chunks are scheduled or still playing
func (s *Scheduler) PendingCount() int {
	s.prune(s.clock())
	return len(s.pending)
}

// prune drops chunks whose playback has already ended
func (s *Scheduler) prune(now time.Duration) {
	kept := s.pending[:0]
	for _, chunk := range s.pending {
		if chunk.StartAt+chunk.Duration > now {
			kept = append(kept, chunk)
		}
	}
	s.pending = kept
}

func chunkDuration(byteLen int) time.Duration {
	samples := byteLen / 2
	return time.Duration(samples) * time.Second / outputSampleRate
}
