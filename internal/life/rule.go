package life

import (
	"errors"
	"fmt"
	"strings"

	"lifeline/internal/core"
)

// ErrInvalidRule is returned by ParseRule for malformed rulestrings.
var ErrInvalidRule = errors.New("life: invalid rule")

// Rule is a Life-like rule. Bit n of Birth (Survive) is set when a dead
// (live) cell with n live neighbors is alive in the next generation.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is B3/S23.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// Next maps a cell's state and live-neighbor count to its next state.
func (r Rule) Next(s core.CellState, liveNeighbors int) core.CellState {
	if liveNeighbors < 0 || liveNeighbors > 8 {
		return core.Dead
	}
	mask := r.Birth
	if s == core.Alive {
		mask = r.Survive
	}
	if mask&(1<<liveNeighbors) != 0 {
		return core.Alive
	}
	return core.Dead
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.Birth)
	b.WriteString("/S")
	writeCounts(&b, r.Survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}

// ParseRule parses a B/S rulestring such as "B3/S23" or "b36/s23".
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
	var r Rule
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
		}
		var mask uint16
		for _, c := range part[1:] {
			if c < '0' || c > '8' {
				return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
			}
			mask |= 1 << (c - '0')
		}
		switch part[0] {
		case 'B':
			r.Birth = mask
		case 'S':
			r.Survive = mask
		default:
			return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
		}
	}
	return r, nil
}

// Step computes one synchronous generation of g under r and returns the
// cells that change, in row-major order. g is not modified; every neighbor
// count is taken against the generation's starting state.
func Step(g *core.Grid, r Rule) []core.Transition {
	var out []core.Transition
	for _, cell := range g.Cells() {
		next := r.Next(cell.State, g.NeighborCount(cell.Position))
		if next != cell.State {
			out = append(out, core.Transition{Position: cell.Position, State: next})
		}
	}
	return out
}
