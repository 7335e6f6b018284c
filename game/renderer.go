package game

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"github.com/dimaq12/termsweeper/models"
)

const (
	hiddenGlyph  = "·"
	flaggedGlyph = "F"
	mineGlyph    = "*"
	emptyGlyph   = " "

	helpText = "wasd/arrows move  space reveal  f flag  q quit"
)

var (
	hiddenColor  = tcell.ColorGray
	flaggedColor = tcell.ColorYellow
	mineColor    = tcell.ColorRed
	// nearColors[n] colours the count n, shading from blue to red.
	nearColors = nearPalette("#3a86ff", "#d62828")
)

func nearPalette(fromHex, toHex string) [9]tcell.Color {
	var p [9]tcell.Color
	from, err := colorful.Hex(fromHex)
	if err != nil {
		panic(err)
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		panic(err)
	}
	for n := 1; n <= 8; n++ {
		c := from.BlendHcl(to, float64(n-1)/7).Clamped()
		r, g, b := c.RGB255()
		p[n] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	p[0] = tcell.ColorDefault
	return p
}

type Renderer struct {
	boardTable *tview.Table
	status     *tview.TextView
}

func NewRenderer() *Renderer {
	return &Renderer{
		boardTable: tview.NewTable(),
		status:     tview.NewTextView().SetDynamicColors(true),
	}
}

// DrawBoard redraws every cell and the status line.
func (r *Renderer) DrawBoard(s *Session) {
	grid := s.Grid()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			r.RenderCell(s, x, y)
		}
	}
	r.boardTable.SetFixed(grid.Height(), grid.Width())
	r.renderStatus(s)
}

// RenderCell draws the cell at column x, row y. The cursor cell is wrapped
// in brackets.
func (r *Renderer) RenderCell(s *Session, x, y int) {
	glyph, color := cellGlyph(*s.Grid().Cell(x, y))
	glyph = runewidth.FillRight(glyph, glyphWidth())

	cx, cy := s.Cursor()
	text := " " + glyph + " "
	if cx == x && cy == y {
		text = tview.Escape("[" + glyph + "]")
	}

	r.boardTable.SetCell(y, x, tview.NewTableCell(text).
		SetTextColor(color).
		SetAlign(tview.AlignCenter))
}

// glyphWidth is the column width every glyph is padded to. It is computed
// per draw because ambiguous runes such as the hidden dot are two columns
// wide in East Asian locales.
func glyphWidth() int {
	w := 1
	for _, g := range []string{hiddenGlyph, flaggedGlyph, mineGlyph, emptyGlyph, "8"} {
		w = max(w, runewidth.StringWidth(g))
	}
	return w
}

func cellGlyph(c models.Cell) (string, tcell.Color) {
	switch c.State {
	case models.Hidden:
		return hiddenGlyph, hiddenColor
	case models.Flagged:
		return flaggedGlyph, flaggedColor
	}

	if c.Content.IsMine() {
		return mineGlyph, mineColor
	}
	if n, ok := c.Content.Near(); ok {
		return strconv.Itoa(n), nearColors[min(n, 8)]
	}
	return emptyGlyph, tcell.ColorDefault
}

func (r *Renderer) renderStatus(s *Session) {
	grid := s.Grid()
	line := fmt.Sprintf("Mines left: %d  %s", grid.MineCount()-grid.FlagCount(), helpText)

	switch s.Status() {
	case Won:
		line = "[green]You won![-] Press any key to exit."
	case Lost:
		line = "[red]You lost![-] Press any key to exit."
	}
	r.status.SetText(line)
}
