package life

import (
	"errors"
	"slices"
	"testing"

	"lifeline/internal/core"
)

func gridWith(n int, alive ...core.Position) *core.Grid {
	g := core.NewGrid(n)
	for _, p := range alive {
		g.Set(p, core.Alive)
	}
	return g
}

func TestConwayNext(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := core.Dead
		if n == 2 || n == 3 {
			wantAlive = core.Alive
		}
		if got := Conway.Next(core.Alive, n); got != wantAlive {
			t.Fatalf("alive with %d neighbors -> %v, expected %v", n, got, wantAlive)
		}
		wantDead := core.Dead
		if n == 3 {
			wantDead = core.Alive
		}
		if got := Conway.Next(core.Dead, n); got != wantDead {
			t.Fatalf("dead with %d neighbors -> %v, expected %v", n, got, wantDead)
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := gridWith(5, core.Position{X: 2, Y: 2})
	got := Step(g, Conway)
	want := []core.Transition{{Position: core.Position{X: 2, Y: 2}, State: core.Dead}}
	if !slices.Equal(got, want) {
		t.Fatalf("transitions = %v, expected %v", got, want)
	}
}

func TestCellWithTwoNeighborsSurvives(t *testing.T) {
	g := gridWith(6, core.Position{X: 1, Y: 1}, core.Position{X: 2, Y: 2}, core.Position{X: 3, Y: 3})
	got := Step(g, Conway)
	want := []core.Transition{
		{Position: core.Position{X: 1, Y: 1}, State: core.Dead},
		{Position: core.Position{X: 3, Y: 3}, State: core.Dead},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("transitions = %v, expected %v", got, want)
	}
}

func TestDeadCellWithThreeNeighborsIsBorn(t *testing.T) {
	g := gridWith(6, core.Position{X: 1, Y: 1}, core.Position{X: 2, Y: 1}, core.Position{X: 1, Y: 2})
	got := Step(g, Conway)
	want := []core.Transition{{Position: core.Position{X: 2, Y: 2}, State: core.Alive}}
	if !slices.Equal(got, want) {
		t.Fatalf("transitions = %v, expected %v", got, want)
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	center := core.Position{X: 2, Y: 2}
	g := gridWith(5, center,
		core.Position{X: 1, Y: 1}, core.Position{X: 3, Y: 1},
		core.Position{X: 1, Y: 3}, core.Position{X: 3, Y: 3})
	for _, tr := range Step(g, Conway) {
		if tr.Position == center {
			if tr.State != core.Dead {
				t.Fatalf("center transition = %v, expected dead", tr.State)
			}
			return
		}
	}
	t.Fatal("overcrowded center did not die")
}

func TestEmptyGridHasNoTransitions(t *testing.T) {
	if got := Step(core.NewGrid(8), Conway); len(got) != 0 {
		t.Fatalf("empty grid produced %v", got)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := []core.Position{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	g := gridWith(5, vertical...)

	first := Step(g, Conway)
	if g.LiveCount() != 3 || g.State(2, 1) != core.Alive {
		t.Fatal("Step must not modify the grid")
	}
	want := []core.Transition{
		{Position: core.Position{X: 2, Y: 1}, State: core.Dead},
		{Position: core.Position{X: 1, Y: 2}, State: core.Alive},
		{Position: core.Position{X: 3, Y: 2}, State: core.Alive},
		{Position: core.Position{X: 2, Y: 3}, State: core.Dead},
	}
	if !slices.Equal(first, want) {
		t.Fatalf("first step = %v, expected %v", first, want)
	}
	g.Apply(first)

	expects := map[core.Position]bool{{X: 1, Y: 2}: true, {X: 2, Y: 2}: true, {X: 3, Y: 2}: true}
	for _, c := range g.Cells() {
		if alive := c.State == core.Alive; alive != expects[c.Position] {
			t.Fatalf("cell %v alive=%v, expected %v", c.Position, alive, expects[c.Position])
		}
	}

	g.Apply(Step(g, Conway))
	for _, c := range g.Cells() {
		alive := c.State == core.Alive
		if alive != slices.Contains(vertical, c.Position) {
			t.Fatalf("after second step cell %v alive=%v", c.Position, alive)
		}
	}
}

func TestGliderWrapsAroundTheTorus(t *testing.T) {
	glider := []core.Position{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	g := gridWith(8, glider...)
	// A glider moves one cell diagonally every 4 generations, so after
	// 4*8 generations it is back where it started.
	for i := 0; i < 32; i++ {
		g.Apply(Step(g, Conway))
	}
	if g.LiveCount() != len(glider) {
		t.Fatalf("live count = %d, expected %d", g.LiveCount(), len(glider))
	}
	for _, p := range glider {
		if g.State(p.X, p.Y) != core.Alive {
			t.Fatalf("glider cell %v missing after a full lap", p)
		}
	}
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("B3/S23")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	if r != Conway {
		t.Fatalf("parsed %+v, expected Conway", r)
	}

	highlife, err := ParseRule(" b36/s23 ")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	if got := highlife.String(); got != "B36/S23" {
		t.Fatalf("String() = %q", got)
	}
	if highlife.Next(core.Dead, 6) != core.Alive {
		t.Fatal("HighLife births on 6")
	}

	for _, bad := range []string{"", "B3", "B9/S23", "X3/S23", "B3/", "B3/S2/S3"} {
		if _, err := ParseRule(bad); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("ParseRule(%q) err = %v, expected ErrInvalidRule", bad, err)
		}
	}
}
