package game

import (
	"github.com/gdamore/tcell/v2"
)

type Action int

const (
	None Action = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Reveal
	Flag
	Quit
)

var actionNames = [...]string{
	None:      "none",
	MoveUp:    "up",
	MoveDown:  "down",
	MoveLeft:  "left",
	MoveRight: "right",
	Reveal:    "reveal",
	Flag:      "flag",
	Quit:      "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// GameController translates key events into session actions.
type GameController struct {
	session *Session
}

func NewGameController(session *Session) *GameController {
	return &GameController{session: session}
}

// ActionFor maps a key to an action: wasd or arrows move, space or Enter
// reveal, f flags, q, Esc or Ctrl-C quit.
func ActionFor(event *tcell.EventKey) Action {
	switch event.Key() {
	case tcell.KeyUp:
		return MoveUp
	case tcell.KeyDown:
		return MoveDown
	case tcell.KeyLeft:
		return MoveLeft
	case tcell.KeyRight:
		return MoveRight
	case tcell.KeyEnter:
		return Reveal
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
		switch event.Rune() {
		case 'w', 'W':
			return MoveUp
		case 's', 'S':
			return MoveDown
		case 'a', 'A':
			return MoveLeft
		case 'd', 'D':
			return MoveRight
		case ' ':
			return Reveal
		case 'f', 'F':
			return Flag
		case 'q', 'Q':
			return Quit
		}
	}
	return None
}

// HandleKey applies the key to the session and returns the action taken.
// Any key ends a finished game.
func (c *GameController) HandleKey(event *tcell.EventKey) Action {
	if c.session.Status() != Playing {
		c.session.Apply(Quit)
		return Quit
	}

	action := ActionFor(event)
	if action != None {
		c.session.Apply(action)
	}
	return action
}
