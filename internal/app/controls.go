package app

import (
	"fmt"

	"lifeline/internal/core"
	"lifeline/internal/life"
)

// RateStep is how much Faster and Slower change the evolution rate.
const RateStep = 5

// Action is a viewer-level command, independent of the input device.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePlay
	ActionStep
	ActionStepMany
	ActionFaster
	ActionSlower
	ActionReset
	ActionReseed
	ActionQuit
)

// ActionForRune maps the shared keyboard layout onto actions.
func ActionForRune(r rune) Action {
	switch r {
	case ' ', 'p':
		return ActionTogglePlay
	case 'n':
		return ActionStep
	case 'm':
		return ActionStepMany
	case '+', '=':
		return ActionFaster
	case '-', '_':
		return ActionSlower
	case 'r':
		return ActionReset
	case 's':
		return ActionReseed
	case 'q':
		return ActionQuit
	}
	return ActionNone
}

// Controller turns viewer actions into control messages for the engine and
// keeps the viewer's own idea of the rate and pause state for display.
type Controller struct {
	link   *life.Link
	rate   int
	paused bool
	seed   int64
}

// NewController returns a controller mirroring the engine's starting state.
func NewController(link *life.Link, cfg life.Config) *Controller {
	return &Controller{link: link, rate: cfg.EvolutionRate, paused: cfg.Paused, seed: cfg.Seed}
}

// Do performs a and reports whether the viewer should exit.
func (c *Controller) Do(a Action) (quit bool) {
	switch a {
	case ActionTogglePlay:
		c.paused = !c.paused
		c.send(life.TogglePlay{})
	case ActionStep:
		c.send(life.Evolve{Count: 1})
	case ActionStepMany:
		c.send(life.Evolve{Count: 10})
	case ActionFaster:
		c.SetRate(c.rate + RateStep)
	case ActionSlower:
		c.SetRate(c.rate - RateStep)
	case ActionReset:
		c.send(life.Reset{Seed: c.seed})
	case ActionReseed:
		c.send(life.Reset{})
	case ActionQuit:
		c.send(life.Shutdown{})
		return true
	}
	return false
}

// SetRate sends a rate change, clamped to 0..core.MaxRate.
func (c *Controller) SetRate(rate int) {
	rate = min(max(rate, 0), core.MaxRate)
	c.rate = rate
	c.send(life.EvolutionRateChange{Rate: rate})
}

// Rate returns the last rate sent.
func (c *Controller) Rate() int { return c.rate }

// Paused returns the pause state the engine should be in.
func (c *Controller) Paused() bool { return c.paused }

// Status formats the state line shown by the viewers.
func (c *Controller) Status(generation uint64, live int) string {
	state := "running"
	if c.paused {
		state = "paused"
	}
	return fmt.Sprintf("gen %d  live %d  %d.%d/s  %s", generation, live, c.rate/10, c.rate%10, state)
}

func (c *Controller) send(m life.Message) {
	_ = c.link.Send(m)
}
