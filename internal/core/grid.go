package core

// Grid stores a square toroidal grid of cells in row-major order.
type Grid struct {
	N     int
	cells []Cell
}

// NewGrid allocates an all-dead grid with edge length n.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	cells := make([]Cell, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			cells[y*n+x] = Cell{Position: Position{X: x, Y: y}}
		}
	}
	return &Grid{N: n, cells: cells}
}

// Cells exposes the backing slice in row-major order. Callers must not
// rewrite positions.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.N + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.N + g.N) % g.N
	y = (y%g.N + g.N) % g.N
	return x, y
}

// State returns the state at (x, y) after wrapping.
func (g *Grid) State(x, y int) CellState {
	x, y = g.Wrap(x, y)
	return g.cells[g.Index(x, y)].State
}

// Set overwrites the state at p.
func (g *Grid) Set(p Position, s CellState) {
	x, y := g.Wrap(p.X, p.Y)
	g.cells[g.Index(x, y)].State = s
}

// Neighbors returns the eight wrapped positions around p.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(p.X+dx, p.Y+dy)
			out = append(out, Position{X: nx, Y: ny})
		}
	}
	return out
}

// NeighborCount returns how many of the eight cells around p are alive.
func (g *Grid) NeighborCount(p Position) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.State(p.X+dx, p.Y+dy) == Alive {
				n++
			}
		}
	}
	return n
}

// Apply writes each transition's state into the grid.
func (g *Grid) Apply(ts []Transition) {
	for _, t := range ts {
		g.Set(t.Position, t.State)
	}
}

// LiveCount returns the number of live cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, c := range g.cells {
		if c.State == Alive {
			n++
		}
	}
	return n
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].State = Dead
	}
}
