package models

import (
	"math"
	"math/rand"
	"strings"
	"time"
)

// Sampler yields uniform values in [0, 1). *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// Grid is a fixed width x height board addressed by (x, y), where x is the
// column and y the row.
type Grid struct {
	board  [][]Cell
	width  int
	height int
}

func newEmptyGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("models: grid dimensions must be positive")
	}

	board := make([][]Cell, height)
	for y := range board {
		board[y] = make([]Cell, width)
	}

	return &Grid{
		board:  board,
		width:  width,
		height: height,
	}
}

// NewGrid seeds every cell as a mine independently with the given
// probability, clamped to [0, 1], and counts adjacent mines. A nil sampler
// uses a time-seeded source.
func NewGrid(width, height int, probability float64, sampler Sampler) *Grid {
	g := newEmptyGrid(width, height)

	if sampler == nil {
		sampler = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	probability = clampProbability(probability)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if sampler.Float64() < probability {
				g.board[y][x].Content = MineContent()
			}
		}
	}

	g.CountMines()
	return g
}

// NewGridFromMines builds a grid from an explicit layout, mines[y][x]. All
// rows must have the same, non-zero length.
func NewGridFromMines(mines [][]bool) *Grid {
	if len(mines) == 0 {
		panic("models: empty mine layout")
	}
	width := len(mines[0])
	g := newEmptyGrid(width, len(mines))

	for y, row := range mines {
		if len(row) != width {
			panic("models: ragged mine layout")
		}
		for x, mine := range row {
			if mine {
				g.board[y][x].Content = MineContent()
			}
		}
	}

	g.CountMines()
	return g
}

func clampProbability(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the cell at (x, y). The pointer stays valid for the life of
// the grid, so callers may set State through it.
func (g *Grid) Cell(x, y int) *Cell {
	return &g.board[y][x]
}

// neighbourhood calls fn for every in-bounds position of the 3x3 block
// centred on (x, y), the centre included.
func (g *Grid) neighbourhood(x, y int, fn func(nx, ny int)) {
	for ny := max(y-1, 0); ny <= min(y+1, g.height-1); ny++ {
		for nx := max(x-1, 0); nx <= min(x+1, g.width-1); nx++ {
			fn(nx, ny)
		}
	}
}

// CountMines sets every non-mine cell to Near(n) or Empty from the mines in
// its neighbourhood. Constructors call it once; calling it again is a no-op.
func (g *Grid) CountMines() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.board[y][x].Content.IsMine() {
				continue
			}

			count := 0
			g.neighbourhood(x, y, func(nx, ny int) {
				if g.board[ny][nx].Content.IsMine() {
					count++
				}
			})
			g.board[y][x].Content = NearContent(count)
		}
	}
}

func (g *Grid) MineCount() int {
	n := 0
	for _, row := range g.board {
		for _, cell := range row {
			if cell.Content.IsMine() {
				n++
			}
		}
	}
	return n
}

// Count returns the number of cells in state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, row := range g.board {
		for _, cell := range row {
			if cell.State == s {
				n++
			}
		}
	}
	return n
}

func (g *Grid) FlagCount() int { return g.Count(Flagged) }

// String dumps the board one row per line, each cell as " <glyph>".
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.board {
		for _, cell := range row {
			b.WriteByte(' ')
			b.WriteString(cell.glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
