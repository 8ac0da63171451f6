package life

import (
	"lifeline/internal/channel"
	"lifeline/internal/core"
)

// Message is anything carried between the engine and its viewer.
type Message interface {
	isMessage()
}

// CellTransitions is the only payload the engine sends. Generation 0 carries
// the initial live set; every later message is the diff of one generation.
type CellTransitions struct {
	Generation  uint64
	Transitions []core.Transition
}

// EvolutionRateChange sets the evolution rate in evolutions per 100 time-units.
type EvolutionRateChange struct {
	Rate int
}

// TogglePlay flips the paused flag.
type TogglePlay struct{}

// Evolve advances Count generations immediately, paused or not.
type Evolve struct {
	Count int
}

// Reset reseeds the grid. A zero Seed draws a fresh one.
type Reset struct {
	Seed int64
}

// Shutdown makes Run return.
type Shutdown struct{}

func (CellTransitions) isMessage()     {}
func (EvolutionRateChange) isMessage() {}
func (TogglePlay) isMessage()          {}
func (Evolve) isMessage()              {}
func (Reset) isMessage()               {}
func (Shutdown) isMessage()            {}

// Link is one end of the engine/viewer pipe.
type Link = channel.Endpoint[Message]

// NewLink returns the engine's end and the viewer's end of a new pipe.
func NewLink() (engine, viewer *Link) {
	return channel.NewPair[Message]()
}
