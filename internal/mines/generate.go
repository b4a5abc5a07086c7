package mines

// Rand is the uniform random integer source consumed by the generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// PlaceBombs plants bombCount bombs on g at distinct uniformly random
// coordinates and bumps the hint count of each non-bomb neighbor as it goes.
// Sampling a cell that is already a bomb makes no progress and is simply
// retried, so bombCount must be strictly less than the cell count; anything
// else returns ErrBombCount before the grid is touched.
//
// Only cell contents are mutated, never visibility state.
func PlaceBombs(g *Grid, bombCount int, rng Rand) error {
	if bombCount < 0 || bombCount >= g.rows*g.cols {
		return ErrBombCount
	}
	for placed := 0; placed < bombCount; {
		r, c := rng.IntN(g.rows), rng.IntN(g.cols)
		cell := g.At(r, c)
		if cell.contents == Bomb {
			continue
		}
		cell.contents = Bomb
		g.bombs++
		for _, n := range g.Neighbors(r, c) {
			if neighbor := g.At(n.Row, n.Col); neighbor.contents != Bomb {
				neighbor.contents++
			}
		}
		placed++
	}
	Log.WithFields(logFields(g)).Debug("bombs placed")
	return nil
}

// NewBoard builds a grid from params and populates it in one go.
func NewBoard(params GameParams, rng Rand) (*Grid, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	g, err := NewGrid(params.Rows, params.Cols)
	if err != nil {
		return nil, err
	}
	if err := PlaceBombs(g, params.BombCount, rng); err != nil {
		return nil, err
	}
	return g, nil
}
