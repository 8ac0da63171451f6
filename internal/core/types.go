package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Position addresses a single cell.
type Position struct {
	X, Y int
}

// Less orders positions by row, then column.
func (p Position) Less(o Position) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// CellState is the two-valued state of a cell. The zero value is Dead.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Cell is one grid location. Only State changes after construction.
type Cell struct {
	Position Position
	State    CellState
}

// Transition records a cell whose state changed and the state it changed to.
type Transition struct {
	Position Position
	State    CellState
}
