package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Difficulty names a preset board configuration.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Expert:
		return "Expert"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// GameParams is a board configuration: dimensions plus bomb count. Created
// once at game start and never mutated.
type GameParams struct {
	Rows      int `schema:"rows,required"`
	Cols      int `schema:"cols,required"`
	BombCount int `schema:"bombs,required"`
}

// Params maps a difficulty preset to its board configuration. Unknown
// difficulties fall back to Beginner.
func (d Difficulty) Params() GameParams {
	switch d {
	case Intermediate:
		return GameParams{Rows: 16, Cols: 16, BombCount: 40}
	case Expert:
		return GameParams{Rows: 16, Cols: 30, BombCount: 99}
	default:
		return GameParams{Rows: 9, Cols: 9, BombCount: 10}
	}
}

// Validate rejects configurations no grid can be built from: zero-sized
// boards and bomb counts with no free cell left. Values are never clamped.
func (p GameParams) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyGrid, p.Rows, p.Cols)
	}
	if p.BombCount < 0 || p.BombCount >= p.Rows*p.Cols {
		return fmt.Errorf("%w: %d bombs on %dx%d", ErrBombCount, p.BombCount, p.Rows, p.Cols)
	}
	return nil
}

func (p GameParams) Fields() logrus.Fields {
	return logrus.Fields{
		"rows":  p.Rows,
		"cols":  p.Cols,
		"bombs": p.BombCount,
	}
}

func logFields(g *Grid) logrus.Fields {
	return logrus.Fields{
		"rows":  g.rows,
		"cols":  g.cols,
		"bombs": g.bombs,
	}
}
