package models

type position struct {
	x, y int
}

// Reveal shows the cell at (x, y) and reports whether it was a mine. Cells
// that are already shown or flagged are left alone. Revealing an Empty cell
// opens its whole neighbourhood, cascading through connected Empty cells
// and stopping at their Near(n) border.
//
// The grid does not track game over; callers stop revealing after a mine.
func (g *Grid) Reveal(x, y int) bool {
	cell := &g.board[y][x]
	if cell.State != Hidden {
		return false
	}

	cell.State = Shown
	if cell.Content.IsMine() {
		return true
	}
	if !cell.Content.IsEmpty() {
		return false
	}

	// Work list instead of recursion so large empty regions cannot blow
	// the stack. Only Empty cells are pushed.
	stack := []position{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		g.neighbourhood(p.x, p.y, func(nx, ny int) {
			next := &g.board[ny][nx]
			if next.State != Hidden {
				return
			}
			next.State = Shown
			if next.Content.IsEmpty() {
				stack = append(stack, position{nx, ny})
			}
		})
	}

	return false
}

// CheckWin reports whether every cell is resolved: nothing is hidden, and
// exactly the mines carry flags.
func (g *Grid) CheckWin() bool {
	for _, row := range g.board {
		for _, cell := range row {
			if cell.State == Hidden {
				return false
			}
			if (cell.State == Flagged) != cell.Content.IsMine() {
				return false
			}
		}
	}
	return true
}

// ToggleFlag flips (x, y) between Hidden and Flagged. Shown cells are
// ignored and false is returned.
func (g *Grid) ToggleFlag(x, y int) bool {
	cell := &g.board[y][x]
	switch cell.State {
	case Hidden:
		cell.State = Flagged
	case Flagged:
		cell.State = Hidden
	default:
		return false
	}
	return true
}

// RevealMines shows every mine that is not flagged. Used once a game is
// lost to expose the board.
func (g *Grid) RevealMines() {
	for y := range g.board {
		for x := range g.board[y] {
			cell := &g.board[y][x]
			if cell.Content.IsMine() && cell.State == Hidden {
				cell.State = Shown
			}
		}
	}
}
