package game

import (
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/termsweeper/models"
)

var Log = logrus.New()

type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Session is one game: the grid, the cursor and the outcome so far.
type Session struct {
	grid   *models.Grid
	row    int
	col    int
	status Status
	quit   bool
}

func NewSession(grid *models.Grid) *Session {
	return &Session{grid: grid}
}

func (s *Session) Grid() *models.Grid { return s.grid }
func (s *Session) Status() Status      { return s.status }

// Cursor returns the cursor column and row.
func (s *Session) Cursor() (x, y int) { return s.col, s.row }

// Done reports whether the game is over or the player asked to quit.
func (s *Session) Done() bool {
	return s.quit || s.status != Playing
}

// Apply performs one player action. Once the game is won or lost only Quit
// has any effect.
func (s *Session) Apply(a Action) Status {
	if a == Quit {
		s.quit = true
		return s.status
	}
	if s.status != Playing {
		return s.status
	}

	switch a {
	case MoveUp:
		s.moveTo(s.col, s.row-1)
	case MoveDown:
		s.moveTo(s.col, s.row+1)
	case MoveLeft:
		s.moveTo(s.col-1, s.row)
	case MoveRight:
		s.moveTo(s.col+1, s.row)
	case Reveal:
		s.reveal()
	case Flag:
		s.flag()
	}

	return s.status
}

// moveTo steps the cursor; moves off the board are dropped.
func (s *Session) moveTo(x, y int) {
	if !s.grid.InBounds(x, y) {
		return
	}
	s.col, s.row = x, y
}

func (s *Session) reveal() {
	fields := logrus.Fields{"x": s.col, "y": s.row}

	if s.grid.Reveal(s.col, s.row) {
		s.status = Lost
		s.grid.RevealMines()
		Log.WithFields(fields).Info("mine revealed, game lost")
		return
	}

	Log.WithFields(fields).Debug("cell revealed")
	if s.grid.CheckWin() {
		s.status = Won
		Log.Info("board solved, game won")
	}
}

func (s *Session) flag() {
	if !s.grid.ToggleFlag(s.col, s.row) {
		return
	}

	Log.WithFields(logrus.Fields{
		"x":     s.col,
		"y":     s.row,
		"state": s.grid.Cell(s.col, s.row).State,
	}).Debug("flag toggled")

	if s.grid.CheckWin() {
		s.status = Won
		Log.Info("board solved, game won")
	}
}
