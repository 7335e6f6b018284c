package models

import "strconv"

type contentKind uint8

const (
	emptyKind contentKind = iota
	nearKind
	mineKind
)

// Content is what a cell holds: a mine, nothing, or a count of
// neighbouring mines. The zero value is Empty.
type Content struct {
	kind contentKind
	n    int
}

// MineContent returns the Mine variant.
func MineContent() Content { return Content{kind: mineKind} }

// EmptyContent returns the Empty variant: no mine, no mined neighbours.
func EmptyContent() Content { return Content{kind: emptyKind} }

// NearContent returns Near(n). A count of zero or less is Empty.
func NearContent(n int) Content {
	if n <= 0 {
		return EmptyContent()
	}
	return Content{kind: nearKind, n: n}
}

// IsMine reports whether c is a mine.
func (c Content) IsMine() bool { return c.kind == mineKind }

// IsEmpty reports whether c is a safe cell with no mined neighbours.
func (c Content) IsEmpty() bool { return c.kind == emptyKind }

// Near returns the adjacent mine count and whether c is a Near variant.
func (c Content) Near() (int, bool) {
	if c.kind != nearKind {
		return 0, false
	}
	return c.n, true
}

func (c Content) String() string {
	switch c.kind {
	case mineKind:
		return "Mine"
	case nearKind:
		return "Near(" + strconv.Itoa(c.n) + ")"
	default:
		return "Empty"
	}
}

type State uint8

const (
	Hidden State = iota
	Shown
	Flagged
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Shown:
		return "Shown"
	case Flagged:
		return "Flagged"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

type Cell struct {
	Content Content
	State   State
}

// glyph is the single character the board dump uses for the cell.
func (c Cell) glyph() string {
	switch c.State {
	case Hidden:
		return "I"
	case Flagged:
		return "f"
	}
	switch c.Content.kind {
	case mineKind:
		return "*"
	case nearKind:
		return strconv.Itoa(c.Content.n)
	default:
		return " "
	}
}
