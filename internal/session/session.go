package session

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"minesweeper/internal/mines"
)

// ErrNoGame indicates a cell command arrived before any board was started.
var ErrNoGame = errors.New("session: no game in progress")

// Status is the state of the current game.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "invalid"
	}
}

// Session owns one game at a time: the grid, its parameters, and the
// win/loss decision the grid itself never makes. All operations are
// synchronous; the session is driven by one input loop.
type Session struct {
	log    *logrus.Logger
	rng    mines.Rand
	params mines.GameParams
	grid   *mines.Grid
	status Status
}

func New(log *logrus.Logger, rng mines.Rand) *Session {
	if log == nil {
		log = logrus.New()
	}
	return &Session{log: log, rng: rng}
}

// Start builds and populates a fresh board, replacing any current game.
func (s *Session) Start(params mines.GameParams) error {
	grid, err := mines.NewBoard(params, s.rng)
	if err != nil {
		return err
	}
	s.params = params
	s.grid = grid
	s.status = Playing
	s.log.WithFields(params.Fields()).Info("new game")
	return nil
}

func (s *Session) Grid() *mines.Grid {
	return s.grid
}

func (s *Session) Params() mines.GameParams {
	return s.params
}

func (s *Session) Status() Status {
	return s.status
}

// Over reports whether the current game has ended.
func (s *Session) Over() bool {
	return s.grid != nil && s.status != Playing
}

// Render returns the glyph read-out of the current board.
func (s *Session) Render() string {
	if s.grid == nil {
		return ""
	}
	return s.grid.String()
}

// Apply executes a single command and reports the resulting control flow.
// Cell commands validate their coordinates here, at the boundary; the grid
// itself stays unchecked.
func (s *Session) Apply(cmd Command) (Flow, error) {
	switch cmd := cmd.(type) {
	case RevealCell:
		return Flow{Action: Continue}, s.revealCell(cmd.Row, cmd.Col)
	case ToggleFlag:
		return Flow{Action: Continue}, s.toggleFlag(cmd.Row, cmd.Col)
	case NewGame:
		return s.startGame(cmd.Difficulty.Params())
	case CustomGame:
		return s.startGame(cmd.Params)
	case ShowScores:
		return Flow{Action: ScoresRequested}, nil
	case Quit:
		return Flow{Action: QuitRequested}, nil
	default:
		return Flow{Action: Continue}, fmt.Errorf("session: unknown command %T", cmd)
	}
}

func (s *Session) startGame(params mines.GameParams) (Flow, error) {
	if err := s.Start(params); err != nil {
		return Flow{Action: Continue}, err
	}
	return Flow{Action: GameStarted, Params: params}, nil
}

func (s *Session) checkCell(row, col int) error {
	if s.grid == nil {
		return ErrNoGame
	}
	if !s.grid.InBounds(row, col) {
		return fmt.Errorf("%w: %d:%d", mines.ErrOutOfBounds, row, col)
	}
	return nil
}

func (s *Session) revealCell(row, col int) error {
	if err := s.checkCell(row, col); err != nil {
		return err
	}
	if s.status != Playing {
		return nil
	}
	cell := s.grid.At(row, col)
	if cell.State() == mines.Revealed {
		return nil
	}

	// the bomb check happens before Reveal: the grid only reports contents,
	// the session decides the loss
	if cell.Contents().IsBomb() {
		s.status = Lost
		s.grid.RevealAll()
		s.log.WithFields(logrus.Fields{
			"row": row, "col": col,
		}).Info("bomb revealed, game lost")
		return nil
	}

	s.grid.Reveal(row, col)
	if s.grid.Cleared() {
		s.status = Won
		s.log.WithFields(s.params.Fields()).Info("board cleared, game won")
	}
	return nil
}

func (s *Session) toggleFlag(row, col int) error {
	if err := s.checkCell(row, col); err != nil {
		return err
	}
	if s.status != Playing {
		return nil
	}
	s.grid.ToggleFlag(row, col)
	return nil
}
