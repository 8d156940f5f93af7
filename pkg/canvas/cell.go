package canvas

import "github.com/mattn/go-runewidth"

// Attr tags a cell for styling when the buffer is rendered.
type Attr uint8

const (
	// AttrNone is plain cell text.
	AttrNone Attr = iota
	// AttrLine marks separator lines.
	AttrLine
	// AttrHeader marks header labels.
	AttrHeader
	// AttrCursor marks the text of the selected cell.
	AttrCursor
)

// Cell is a single character cell in the buffer. Wide characters occupy two
// cells; the second is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Width uint8
	Attr  Attr

	// lines holds the directions of separator lines through this cell.
	lines uint8
}

var blank = Cell{Rune: ' ', Width: 1}

// IsContinuation returns true if this cell is the tail of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsLine returns true if a separator line passes through this cell.
func (c Cell) IsLine() bool {
	return c.lines != 0
}

// runeWidth returns the display width of r, treating zero-width and control
// runes as one cell so every rune stays visible.
func runeWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}
