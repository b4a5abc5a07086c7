package mines

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Coord addresses a cell by (row, column).
type Coord struct {
	Row, Col int
}

// neighborOffsets enumerates the Moore neighborhood in row-major order, so
// Neighbors output is deterministic.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid owns a dense row-major collection of cells. Size is fixed at
// construction; the grid is populated once by PlaceBombs and then mutated in
// place by Reveal/ToggleFlag for the rest of the game.
type Grid struct {
	rows, cols int
	cells      []Cell
	bombs      int
	revealed   int
}

// NewGrid allocates a rows x cols grid of hidden Hint(0) cells.
// Returns ErrEmptyGrid if either dimension is zero or negative.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether (r,c) lies within the grid. Callers feeding
// untrusted coordinates must check this before using the accessors below.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// At returns the cell at (r,c). Bounds are the caller's responsibility;
// out-of-range access is a programming error, not a runtime condition.
func (g *Grid) At(r, c int) *Cell {
	return &g.cells[g.index(r, c)]
}

// Neighbors returns the in-bounds Moore neighborhood of (r,c) in a fixed
// row-major order: 3 coords at a corner, 5 on an edge, 8 in the interior.
func (g *Grid) Neighbors(r, c int) []Coord {
	coords := make([]Coord, 0, 8)
	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if g.InBounds(nr, nc) {
			coords = append(coords, Coord{Row: nr, Col: nc})
		}
	}
	return coords
}

func (g *Grid) reveal(cell *Cell) {
	if cell.state != Revealed {
		cell.state = Revealed
		g.revealed++
	}
}

// Reveal marks (r,c) revealed. If the cell is an empty Hint(0), the whole
// connected zero region plus its non-zero boundary is revealed as well, via
// an explicit work stack so stack usage stays independent of grid size.
//
// Reveal assumes the caller has already ruled out a bomb at (r,c); bomb
// handling (losing the game) belongs to the session layer. Revealing an
// already-revealed cell is a no-op. The revealed state doubles as the
// visited marker, so each cell is visited at most once.
func (g *Grid) Reveal(r, c int) {
	cell := g.At(r, c)
	if cell.state == Revealed {
		return
	}
	g.reveal(cell)
	if cell.contents != Hint(0) {
		return
	}

	stack := g.Neighbors(r, c)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		next := g.At(cur.Row, cur.Col)
		if next.state == Revealed {
			continue
		}
		g.reveal(next)
		if next.contents == Hint(0) {
			stack = append(stack, g.Neighbors(cur.Row, cur.Col)...)
		}
	}
}

// ToggleFlag flips a hidden cell to flagged and back. Revealed cells are
// left untouched.
func (g *Grid) ToggleFlag(r, c int) {
	cell := g.At(r, c)
	switch cell.state {
	case Flagged:
		cell.state = Hidden
	case Hidden:
		cell.state = Flagged
	}
}

// RevealAll exposes every cell, flags included, for the final-board display
// after a lost game.
func (g *Grid) RevealAll() {
	for i := range g.cells {
		g.reveal(&g.cells[i])
	}
}

func (g *Grid) Bombs() int {
	return g.bombs
}

func (g *Grid) RevealedCount() int {
	return g.revealed
}

// Cleared reports whether every non-bomb cell has been revealed.
func (g *Grid) Cleared() bool {
	return g.revealed == g.rows*g.cols-g.bombs
}

func (g *Grid) String() string {
	var b strings.Builder
	for r := range g.rows {
		for c := range g.cols {
			b.WriteString(g.cells[g.index(r, c)].Glyph())
		}
		b.WriteString("\n")
	}
	return b.String()
}
