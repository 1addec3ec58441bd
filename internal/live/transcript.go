package live

import (
	"github.com/zonaelectrica/zeia-server/domain/entities"
)

// TranscriptHistoryLimit bounds the retained turn history; the oldest
// turns are evicted first.
const TranscriptHistoryLimit = 10

// Assembler accumulates streamed transcription deltas and promotes them
// into finalized turns when the model signals turn completion.
type Assembler struct {
	limit      int
	turns      []entities.TranscriptTurn
	partialIn  string
	partialOut string
}

// NewAssembler creates an assembler keeping at most limit turns
func NewAssembler(limit int) *Assembler {
	if limit <= 0 {
		limit = TranscriptHistoryLimit
	}
	return &Assembler{limit: limit}
}

// AppendInput appends a delta of the user's speech transcript
func (a *Assembler) AppendInput(delta string) string {
	a.partialIn += delta
	return a.partialIn
}

// AppendOutput appends a delta of the assistant's speech transcript
func (a *Assembler) AppendOutput(delta string) string {
	a.partialOut += delta
	return a.partialOut
}

// Interrupt discards the in-progress assistant transcript. The user
// partial survives: the interruption is the user speaking.
func (a *Assembler) Interrupt() {
	a.partialOut = ""
}

// CompleteTurn promotes the non-empty partials (user first, then
// assistant) into immutable turns, truncates history to the limit and
// clears both partials. It returns the newly promoted turns.
func (a *Assembler) CompleteTurn() []entities.TranscriptTurn {
	var promoted []entities.TranscriptTurn
	if a.partialIn != "" {
		promoted = append(promoted, entities.TranscriptTurn{
			Role: entities.MessageRoleUser,
			Text: a.partialIn,
		})
	}
	if a.partialOut != "" {
		promoted = append(promoted, entities.TranscriptTurn{
			Role: entities.MessageRoleAssistant,
			Text: a.partialOut,
		})
	}

	a.turns = append(a.turns, promoted...)
	if len(a.turns) > a.limit {
		a.turns = a.turns[len(a.turns)-a.limit:]
	}

	a.partialIn = ""
	a.partialOut = ""

	return promoted
}

// History returns a copy of the retained turns, oldest first
func (a *Assembler) History() []entities.TranscriptTurn {
	history := make([]entities.TranscriptTurn, len(a.turns))
	copy(history, a.turns)
	return history
}

// Partials returns the in-progress user and assistant transcripts
func (a *Assembler) Partials() (input, output string) {
	return a.partialIn, a.partialOut
}
