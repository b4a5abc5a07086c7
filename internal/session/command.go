package session

import "minesweeper/internal/mines"

// Command is a player action translated by the presentation layer. The
// session is the single owner of grid state; a UI only ever produces these
// values and reads cell state back for rendering.
type Command interface {
	isCommand()
}

// RevealCell attempts to reveal the cell at (Row, Col).
type RevealCell struct {
	Row, Col int
}

// ToggleFlag flips the flag marker on the cell at (Row, Col).
type ToggleFlag struct {
	Row, Col int
}

// NewGame discards the current board and starts a fresh one from a preset.
type NewGame struct {
	Difficulty mines.Difficulty
}

// CustomGame starts a fresh board from explicit parameters.
type CustomGame struct {
	Params mines.GameParams
}

// ShowScores asks the application to display the high-score surface.
type ShowScores struct{}

// Quit asks the application to exit.
type Quit struct{}

func (RevealCell) isCommand() {}
func (ToggleFlag) isCommand() {}
func (NewGame) isCommand()    {}
func (CustomGame) isCommand() {}
func (ShowScores) isCommand() {}
func (Quit) isCommand()       {}

// Action tells the application what to do after a command has been applied,
// instead of commands reaching into application control flow themselves.
type Action int

const (
	Continue Action = iota
	GameStarted
	ScoresRequested
	QuitRequested
)

// Flow is the control-flow result of applying a command.
type Flow struct {
	Action Action
	// Params describes the board that was started when Action is GameStarted.
	Params mines.GameParams
}
