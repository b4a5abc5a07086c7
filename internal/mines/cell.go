package mines

import "strconv"

// Contents is what a cell hides: a bomb, or the count of bomb-containing
// neighbors (0-8). Contents never change once a board has been generated.
type Contents int8

const Bomb Contents = -1

// Hint returns the contents of a non-bomb cell with n bomb neighbors.
func Hint(n int) Contents {
	return Contents(n)
}

func (c Contents) IsBomb() bool {
	return c == Bomb
}

// HintCount returns the neighboring bomb count of a non-bomb cell.
// Meaningless for bomb cells.
func (c Contents) HintCount() int {
	return int(c)
}

func (c Contents) String() string {
	if c == Bomb {
		return "*"
	}
	return strconv.Itoa(int(c))
}

// State is the player-visible side of a cell.
//
// Legal transitions: Hidden -> Revealed, Hidden <-> Flagged.
// Revealed is terminal.
type State int8

const (
	Hidden State = iota
	Revealed
	Flagged
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "invalid"
	}
}

// Cell is one grid position. Contents are fixed by the generator; state is
// mutated only through Grid operations.
type Cell struct {
	contents Contents
	state    State
}

func (c Cell) Contents() Contents {
	return c.contents
}

func (c Cell) State() State {
	return c.state
}

// Glyph returns the marker a rendering layer should draw for the cell:
// flagged cells a flag marker, hidden cells a concealed marker, revealed
// cells their contents.
func (c Cell) Glyph() string {
	switch c.state {
	case Flagged:
		return "[~]"
	case Revealed:
		return "[" + c.contents.String() + "]"
	default:
		return "[#]"
	}
}
