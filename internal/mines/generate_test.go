package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countBombs(g *Grid) (count int) {
	rows, cols := g.Size()
	for r := range rows {
		for c := range cols {
			if g.At(r, c).Contents().IsBomb() {
				count++
			}
		}
	}
	return
}

func TestPlaceBombsCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{"9x9(10)", Beginner.Params()},
		{"16x16(40)", Intermediate.Params()},
		{"16x30(99)", Expert.Params()},
		{"5x5(1)", GameParams{Rows: 5, Cols: 5, BombCount: 1}},
		{"3x3(8)", GameParams{Rows: 3, Cols: 3, BombCount: 8}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			g, err := NewBoard(test.params, r)
			require.NoError(t, err)
			assert.Equal(t, test.params.BombCount, countBombs(g))
			assert.Equal(t, test.params.BombCount, g.Bombs())
		})
	}
}

func TestHintAccuracy(t *testing.T) {
	t.Parallel()

	for _, d := range []Difficulty{Beginner, Intermediate, Expert} {
		t.Run(d.String(), func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			g, err := NewBoard(d.Params(), r)
			require.NoError(t, err)

			rows, cols := g.Size()
			for row := range rows {
				for col := range cols {
					cell := g.At(row, col)
					if cell.Contents().IsBomb() {
						continue
					}
					want := 0
					for _, n := range g.Neighbors(row, col) {
						if g.At(n.Row, n.Col).Contents().IsBomb() {
							want++
						}
					}
					require.Equal(t, want, cell.Contents().HintCount(),
						"hint mismatch @ %d:%d", row, col)
				}
			}
		})
	}
}

func TestPlaceBombsRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name  string
		bombs int
	}{
		{"all cells", 9},
		{"more than cells", 10},
		{"negative", -1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := NewGrid(3, 3)
			require.NoError(t, err)
			err = PlaceBombs(g, test.bombs, rand.New(rand.NewPCG(1, 2)))
			require.ErrorIs(t, err, ErrBombCount)
			assert.Zero(t, countBombs(g))
		})
	}
}

func TestPlaceBombsResamplesCollisions(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	// (1,1) sampled twice; the duplicate makes no progress
	rng := &scriptedRand{vals: []int{1, 1, 1, 1, 0, 0}}
	require.NoError(t, PlaceBombs(g, 2, rng))

	assert.True(t, g.At(1, 1).Contents().IsBomb())
	assert.True(t, g.At(0, 0).Contents().IsBomb())
	assert.Equal(t, 2, countBombs(g))
}

func TestPlaceBombsLeavesVisibilityUntouched(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g, err := NewBoard(Beginner.Params(), r)
	require.NoError(t, err)

	rows, cols := g.Size()
	for row := range rows {
		for col := range cols {
			require.Equal(t, Hidden, g.At(row, col).State())
		}
	}
	assert.Zero(t, g.RevealedCount())
}

func TestBombNeighborKeepsBombContents(t *testing.T) {
	// adjacent bombs must not overwrite each other with hint counts
	g := mustBoard(t, 3, 3, Coord{Row: 0, Col: 0}, Coord{Row: 0, Col: 1})

	assert.True(t, g.At(0, 0).Contents().IsBomb())
	assert.True(t, g.At(0, 1).Contents().IsBomb())
	assert.Equal(t, Hint(2), g.At(1, 0).Contents())
	assert.Equal(t, Hint(2), g.At(1, 1).Contents())
	assert.Equal(t, Hint(1), g.At(0, 2).Contents())
}

func TestNewBoardValidatesParams(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	_, err := NewBoard(GameParams{Rows: 0, Cols: 9, BombCount: 5}, r)
	require.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewBoard(GameParams{Rows: 3, Cols: 3, BombCount: 9}, r)
	require.ErrorIs(t, err, ErrBombCount)
}
