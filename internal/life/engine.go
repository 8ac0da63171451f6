package life

import (
	"context"
	"slices"
	"time"

	"lifeline/internal/core"
)

// Engine owns the authoritative grid and is its only writer. It runs on its
// own goroutine and talks to the viewer exclusively through a Link.
type Engine struct {
	cfg  Config
	rule Rule
	grid *core.Grid
	link *Link

	sched *core.Scheduler
	rng   *core.RNG

	paused     bool
	generation uint64
}

// New validates cfg, seeds a fresh grid and sends the initial live set to
// the viewer as generation 0.
func New(link *Link, cfg Config) (*Engine, error) {
	return newEngine(link, cfg, nil)
}

func newEngine(link *Link, cfg Config, now func() time.Time) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		rule:   cfg.rule(),
		grid:   core.NewGrid(cfg.GridSize),
		link:   link,
		rng:    core.NewRNG(cfg.Seed),
		paused: cfg.Paused,
	}

	live := e.seed()
	initial := make([]core.Transition, 0, len(live))
	for _, p := range live {
		e.grid.Set(p, core.Alive)
		initial = append(initial, core.Transition{Position: p, State: core.Alive})
	}
	e.send(CellTransitions{Transitions: initial})

	e.sched = core.NewScheduler(cfg.TargetRefreshRate, cfg.EvolutionRate, now)
	return e, nil
}

func (e *Engine) seed() []core.Position {
	return SeedPositions(e.rng, e.cfg.GridSize, e.cfg.LivePercent)
}

// SeedPositions draws percent of the n×n cell count at random, with
// replacement, and collapses duplicate draws. The live fraction can
// therefore land slightly under percent. The result is sorted by row.
func SeedPositions(rng *core.RNG, n, percent int) []core.Position {
	draws := rng.Positions(n, n*n*percent/100)
	slices.SortFunc(draws, comparePositions)
	return slices.Compact(draws)
}

func comparePositions(a, b core.Position) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

// Run drives the simulation until a Shutdown message arrives (nil) or ctx
// is cancelled (ctx.Err()).
func (e *Engine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if stop := e.iterate(); stop {
			return nil
		}
		if err := sleep(ctx, e.sched.FrameDelay()); err != nil {
			return err
		}
	}
}

// iterate applies every pending control message, then advances one
// generation if the schedule says one is due.
func (e *Engine) iterate() (stop bool) {
	if e.drain() {
		return true
	}
	if !e.paused && e.sched.ShouldEvolve() {
		e.advance()
		e.sched.Evolved()
	}
	return false
}

func (e *Engine) drain() (stop bool) {
	for _, msg := range e.link.Receive() {
		switch m := msg.(type) {
		case EvolutionRateChange:
			e.sched.SetRate(m.Rate)
		case TogglePlay:
			e.paused = !e.paused
		case Evolve:
			for i := 0; i < m.Count; i++ {
				e.advance()
			}
		case Reset:
			e.reset(m.Seed)
		case Shutdown:
			return true
		}
	}
	return false
}

// advance steps the grid once and sends the diff, even when it is empty.
func (e *Engine) advance() {
	ts := Step(e.grid, e.rule)
	e.grid.Apply(ts)
	e.generation++
	e.send(CellTransitions{Generation: e.generation, Transitions: ts})
}

func (e *Engine) reset(seed int64) {
	e.rng = core.NewRNG(seed)
	live := e.seed()

	next := core.NewGrid(e.cfg.GridSize)
	for _, p := range live {
		next.Set(p, core.Alive)
	}
	var ts []core.Transition
	for i, cell := range e.grid.Cells() {
		if s := next.Cells()[i].State; s != cell.State {
			ts = append(ts, core.Transition{Position: cell.Position, State: s})
		}
	}
	e.grid.Apply(ts)
	e.generation = 0
	e.sched.Reset()
	e.send(CellTransitions{Transitions: ts})
}

// send is best-effort; a vanished viewer never stalls the simulation.
func (e *Engine) send(m Message) {
	_ = e.link.Send(m)
}

// Paused reports whether automatic evolution is suspended.
func (e *Engine) Paused() bool { return e.paused }

// EvolutionRate returns the current rate in evolutions per 100 time-units.
func (e *Engine) EvolutionRate() int { return e.sched.Rate() }

// Generation returns the number of generations since the last seeding.
func (e *Engine) Generation() uint64 { return e.generation }

// LiveCount returns the number of live cells.
func (e *Engine) LiveCount() int { return e.grid.LiveCount() }

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
