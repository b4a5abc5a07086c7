package main

import (
	"errors"
	"strconv"
	"strings"

	"minesweeper/internal/config"
	"minesweeper/internal/mines"
	"minesweeper/internal/session"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"n": 1,
	"s": 0,
	"q": 0,
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func parseNewGame(arg string) (session.Command, error) {
	switch arg {
	case "b":
		return session.NewGame{Difficulty: mines.Beginner}, nil
	case "i":
		return session.NewGame{Difficulty: mines.Intermediate}, nil
	case "e":
		return session.NewGame{Difficulty: mines.Expert}, nil
	}
	params, err := config.ParseGameParams(arg)
	if err != nil {
		return nil, err
	}
	return session.CustomGame{Params: params}, nil
}

// parseCommand translates one line of input into a session command.
func parseCommand(c string) (session.Command, error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil, errors.New("empty command")
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return nil, errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return nil, errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "o":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return nil, err
		}
		return session.RevealCell{Row: row, Col: col}, nil
	case "f":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return nil, err
		}
		return session.ToggleFlag{Row: row, Col: col}, nil
	case "n":
		return parseNewGame(parts[1])
	case "s":
		return session.ShowScores{}, nil
	case "q":
		return session.Quit{}, nil
	}
	return nil, errors.New("invalid command")
}
