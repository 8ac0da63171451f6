package render

import (
	"image/color"

	"lifeline/internal/core"
	"lifeline/internal/life"
)

// Shadow is the viewer's render-only copy of the grid, kept in sync by
// applying CellTransitions diffs. It is owned by the viewer goroutine.
type Shadow struct {
	n          int
	cells      []uint8
	live       int
	generation uint64
}

// NewShadow allocates an all-dead shadow for an n×n grid.
func NewShadow(n int) *Shadow {
	if n <= 0 {
		n = 1
	}
	return &Shadow{n: n, cells: make([]uint8, n*n)}
}

// Apply folds every CellTransitions in msgs into the shadow and reports
// whether anything was applied. Other message kinds are ignored.
func (s *Shadow) Apply(msgs []life.Message) bool {
	changed := false
	for _, msg := range msgs {
		ct, ok := msg.(life.CellTransitions)
		if !ok {
			continue
		}
		s.generation = ct.Generation
		for _, t := range ct.Transitions {
			s.set(t.Position, t.State)
		}
		changed = true
	}
	return changed
}

func (s *Shadow) set(p core.Position, state core.CellState) {
	if p.X < 0 || p.X >= s.n || p.Y < 0 || p.Y >= s.n {
		return
	}
	idx := p.Y*s.n + p.X
	v := uint8(0)
	if state == core.Alive {
		v = 1
	}
	s.live += int(v) - int(s.cells[idx])
	s.cells[idx] = v
}

// Cells exposes the 0/1 cell buffer in row-major order.
func (s *Shadow) Cells() []uint8 { return s.cells }

// Size returns the grid dimensions.
func (s *Shadow) Size() core.Size { return core.Size{W: s.n, H: s.n} }

// Alive reports whether (x, y) is alive.
func (s *Shadow) Alive(x, y int) bool {
	if x < 0 || x >= s.n || y < 0 || y >= s.n {
		return false
	}
	return s.cells[y*s.n+x] != 0
}

// LiveCount returns the number of live cells.
func (s *Shadow) LiveCount() int { return s.live }

// Generation returns the generation of the last applied diff.
func (s *Shadow) Generation() uint64 { return s.generation }

// Pixels writes one RGBA pixel per cell into buf, which must hold 4*W*H bytes.
func (s *Shadow) Pixels(buf []byte, on, off color.Color) {
	if len(buf) < 4*len(s.cells) {
		return
	}
	fillBinaryRGBA(buf, s.cells, on, off)
}
