package app

import (
	"strings"
	"testing"

	"lifeline/internal/core"
	"lifeline/internal/life"
)

func TestControllerSendsControlMessages(t *testing.T) {
	engine, viewer := life.NewLink()
	cfg := life.DefaultConfig()
	cfg.Seed = 77
	ctl := NewController(viewer, cfg)

	for _, a := range []Action{ActionTogglePlay, ActionStep, ActionStepMany, ActionFaster, ActionReset, ActionReseed, ActionNone} {
		if ctl.Do(a) {
			t.Fatalf("action %d must not quit", a)
		}
	}
	got := engine.Receive()
	want := []life.Message{
		life.TogglePlay{},
		life.Evolve{Count: 1},
		life.Evolve{Count: 10},
		life.EvolutionRateChange{Rate: cfg.EvolutionRate + RateStep},
		life.Reset{Seed: 77},
		life.Reset{},
	}
	if len(got) != len(want) {
		t.Fatalf("received %d messages, expected %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d = %#v, expected %#v", i, got[i], want[i])
		}
	}
	if !ctl.Paused() {
		t.Fatal("controller should track the toggle")
	}

	if !ctl.Do(ActionQuit) {
		t.Fatal("quit action must report exit")
	}
	if msgs := engine.Receive(); len(msgs) != 1 || msgs[0] != (life.Shutdown{}) {
		t.Fatalf("quit sent %v, expected Shutdown", msgs)
	}
}

func TestControllerRateClampsAtZero(t *testing.T) {
	engine, viewer := life.NewLink()
	cfg := life.DefaultConfig()
	cfg.EvolutionRate = 3
	ctl := NewController(viewer, cfg)

	ctl.Do(ActionSlower)
	if ctl.Rate() != 0 {
		t.Fatalf("rate = %d, expected 0", ctl.Rate())
	}
	msgs := engine.Receive()
	if len(msgs) != 1 || msgs[0] != (life.EvolutionRateChange{Rate: 0}) {
		t.Fatalf("sent %v", msgs)
	}
}

func TestControllerRateClampsAtMaxRate(t *testing.T) {
	engine, viewer := life.NewLink()
	cfg := life.DefaultConfig()
	cfg.EvolutionRate = core.MaxRate
	ctl := NewController(viewer, cfg)

	ctl.Do(ActionFaster)
	if ctl.Rate() != core.MaxRate {
		t.Fatalf("rate = %d, expected %d", ctl.Rate(), core.MaxRate)
	}
	msgs := engine.Receive()
	if len(msgs) != 1 || msgs[0] != (life.EvolutionRateChange{Rate: core.MaxRate}) {
		t.Fatalf("sent %v", msgs)
	}
}

func TestControllerSurvivesClosedEngine(t *testing.T) {
	engine, viewer := life.NewLink()
	engine.Close()
	ctl := NewController(viewer, life.DefaultConfig())
	ctl.Do(ActionStep)
	if !ctl.Do(ActionQuit) {
		t.Fatal("quit must still report exit")
	}
}

func TestActionForRune(t *testing.T) {
	cases := map[rune]Action{
		' ': ActionTogglePlay,
		'n': ActionStep,
		'm': ActionStepMany,
		'+': ActionFaster,
		'-': ActionSlower,
		'r': ActionReset,
		's': ActionReseed,
		'q': ActionQuit,
		'x': ActionNone,
	}
	for r, want := range cases {
		if got := ActionForRune(r); got != want {
			t.Fatalf("ActionForRune(%q) = %d, expected %d", r, got, want)
		}
	}
}

func TestStatus(t *testing.T) {
	_, viewer := life.NewLink()
	cfg := life.DefaultConfig()
	cfg.EvolutionRate = 25
	ctl := NewController(viewer, cfg)

	if got := ctl.Status(12, 340); got != "gen 12  live 340  2.5/s  running" {
		t.Fatalf("status = %q", got)
	}
	ctl.Do(ActionTogglePlay)
	if got := ctl.Status(0, 0); !strings.HasSuffix(got, "paused") {
		t.Fatalf("status = %q", got)
	}
}
