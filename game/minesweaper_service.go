package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/termsweeper/models"
)

type MinesweeperService struct {
	session    *Session
	controller *GameController
	renderer   *Renderer
	app        *tview.Application
}

func NewMinesweeperService(grid *models.Grid) *MinesweeperService {
	session := NewSession(grid)
	return &MinesweeperService{
		session:    session,
		controller: NewGameController(session),
		renderer:   NewRenderer(),
	}
}

func (s *MinesweeperService) Session() *Session { return s.session }

// layout stacks the board above a one line status bar.
func (s *MinesweeperService) layout() tview.Primitive {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(s.renderer.boardTable, 0, 1, true).
		AddItem(s.renderer.status, 1, 0, false)
}

// handleKey is the input capture for the application. Every key is consumed
// here so tview never moves its own selection.
func (s *MinesweeperService) handleKey(event *tcell.EventKey) *tcell.EventKey {
	action := s.controller.HandleKey(event)
	if action == None {
		return nil
	}

	Log.WithFields(logrus.Fields{
		"action": action,
		"status": s.session.Status(),
	}).Debug("key handled")

	if s.session.Done() && action == Quit {
		s.app.Stop()
		return nil
	}
	s.renderer.DrawBoard(s.session)
	return nil
}

// Run draws the board and blocks until the player quits or presses a key
// after the game ends. It returns the final status.
func (s *MinesweeperService) Run() (Status, error) {
	grid := s.session.Grid()
	Log.WithFields(logrus.Fields{
		"width":  grid.Width(),
		"height": grid.Height(),
		"mines":  grid.MineCount(),
	}).Info("game started")

	s.renderer.DrawBoard(s.session)

	s.app = tview.NewApplication()
	s.app.SetRoot(s.layout(), true)
	s.app.SetInputCapture(s.handleKey)

	if err := s.app.Run(); err != nil {
		return s.session.Status(), fmt.Errorf("run terminal ui: %w", err)
	}

	Log.WithField("status", s.session.Status()).Info("game finished")
	return s.session.Status(), nil
}
