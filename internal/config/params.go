package config

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"minesweeper/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// ParseGameParams decodes custom board parameters from a query-style string,
// e.g. "rows=12&cols=20&bombs=30", and validates them before any grid is
// built.
func ParseGameParams(s string) (mines.GameParams, error) {
	var params mines.GameParams
	values, err := url.ParseQuery(s)
	if err != nil {
		return params, fmt.Errorf("invalid game params: %w", err)
	}
	if err := decoder.Decode(&params, values); err != nil {
		return params, fmt.Errorf("invalid game params: %w", err)
	}
	if err := params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}
