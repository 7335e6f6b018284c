package game

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/termsweeper/models"
)

func cellText(r *Renderer, x, y int) string {
	return r.boardTable.GetCell(y, x).Text
}

func TestRendererGlyphs(t *testing.T) {
	s := NewSession(rowLayout("x.x..."))
	s.Apply(MoveRight)
	s.Apply(MoveRight)
	s.Apply(Flag)
	s.Apply(MoveRight)
	s.Apply(MoveRight)
	s.Apply(MoveRight)
	s.Apply(Reveal)

	r := NewRenderer()
	r.DrawBoard(s)

	assert.Equal(t, " · ", cellText(r, 0, 0))
	assert.Equal(t, " · ", cellText(r, 1, 0))
	assert.Equal(t, " F ", cellText(r, 2, 0))
	assert.Equal(t, " 1 ", cellText(r, 3, 0))
	assert.Equal(t, "   ", cellText(r, 4, 0))
	assert.Equal(t, tview.Escape("[ ]"), cellText(r, 5, 0), "cursor brackets")
}

func TestRendererShowsMinesAfterLoss(t *testing.T) {
	s := NewSession(rowLayout(".x"))
	s.Apply(MoveRight)
	s.Apply(Reveal)
	require.Equal(t, Lost, s.Status())

	r := NewRenderer()
	r.DrawBoard(s)

	assert.Equal(t, tview.Escape("[*]"), cellText(r, 1, 0))
	assert.Equal(t, mineColor, r.boardTable.GetCell(0, 1).Color)
	assert.Contains(t, r.status.GetText(true), "You lost!")
}

func TestRendererStatusLine(t *testing.T) {
	s := NewSession(rowLayout("x.."))
	s.Apply(Flag)

	r := NewRenderer()
	r.DrawBoard(s)
	line := r.status.GetText(true)
	assert.True(t, strings.HasPrefix(line, "Mines left: 0"), line)

	s.Apply(Flag)
	r.DrawBoard(s)
	line = r.status.GetText(true)
	assert.True(t, strings.HasPrefix(line, "Mines left: 1"), line)
	s.Apply(Flag)

	s.Apply(MoveRight)
	s.Apply(MoveRight)
	s.Apply(Reveal)
	r.DrawBoard(s)
	assert.Contains(t, r.status.GetText(true), "You won!")
}

func TestNearPalette(t *testing.T) {
	seen := map[tcell.Color]bool{}
	for n := 1; n <= 8; n++ {
		assert.NotEqual(t, tcell.ColorDefault, nearColors[n])
		seen[nearColors[n]] = true
	}
	assert.Greater(t, len(seen), 4)
}

func TestCellGlyphNear(t *testing.T) {
	g := models.NewGridFromMines([][]bool{
		{true, true, true},
		{true, false, true},
		{true, true, true},
	})
	g.Reveal(1, 1)
	glyph, color := cellGlyph(*g.Cell(1, 1))
	assert.Equal(t, "8", glyph)
	assert.Equal(t, nearColors[8], color)
}

func TestRendererCellsAlignWithWideGlyphs(t *testing.T) {
	saved := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = true
	defer func() { runewidth.DefaultCondition.EastAsianWidth = saved }()
	require.Equal(t, 2, runewidth.StringWidth(hiddenGlyph))

	s := NewSession(rowLayout("x.x..."))
	s.Apply(MoveRight)
	s.Apply(MoveRight)
	s.Apply(Flag)
	s.Apply(MoveRight)
	s.Apply(MoveRight)
	s.Apply(MoveRight)
	s.Apply(Reveal)

	r := NewRenderer()
	r.DrawBoard(s)

	// Undo tview.Escape on the cursor cell before measuring.
	width := func(x int) int {
		return runewidth.StringWidth(strings.ReplaceAll(cellText(r, x, 0), "[]", "]"))
	}
	for x := 0; x < 6; x++ {
		assert.Equal(t, 4, width(x), "column %d: %q", x, cellText(r, x, 0))
	}
	assert.Equal(t, " 1  ", cellText(r, 3, 0))
}
