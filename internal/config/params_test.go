package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minesweeper/internal/config"
	"minesweeper/internal/mines"
)

func TestParseGameParams(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    mines.GameParams
		wantErr bool
	}{
		{
			name:  "beginner equivalent",
			input: "rows=9&cols=9&bombs=10",
			want:  mines.GameParams{Rows: 9, Cols: 9, BombCount: 10},
		},
		{
			name:  "unknown keys ignored",
			input: "rows=4&cols=7&bombs=5&theme=dark",
			want:  mines.GameParams{Rows: 4, Cols: 7, BombCount: 5},
		},
		{
			name:    "missing required key",
			input:   "rows=9&cols=9",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "rows=nine&cols=9&bombs=10",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := config.ParseGameParams(test.input)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, params)
		})
	}
}

func TestParseGameParamsValidates(t *testing.T) {
	_, err := config.ParseGameParams("rows=0&cols=9&bombs=1")
	require.ErrorIs(t, err, mines.ErrEmptyGrid)

	_, err = config.ParseGameParams("rows=3&cols=3&bombs=9")
	require.ErrorIs(t, err, mines.ErrBombCount)
}
