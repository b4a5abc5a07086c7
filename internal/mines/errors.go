package mines

import "errors"

// Sentinel errors for board construction and session-level coordinate checks.
var (
	// ErrEmptyGrid indicates a grid with zero rows or zero columns.
	ErrEmptyGrid = errors.New("mines: grid must have at least one row and one column")
	// ErrBombCount indicates a bomb count outside [0, rows*cols).
	ErrBombCount = errors.New("mines: bomb count must be non-negative and less than the cell count")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("mines: coordinates out of grid bounds")
)
