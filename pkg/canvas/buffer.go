package canvas

import "strings"

// Buffer is a 2D grid of cells, initialized to spaces.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the specified dimensions. Negative
// dimensions are treated as zero.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in cells.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) to a flat index, or -1 when out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

func (b *Buffer) setCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// SetRune writes r at (x, y). A wide rune also claims x+1; a wide rune that
// would not fit is replaced by a space. Any wide character it overlaps is
// cleared.
func (b *Buffer) SetRune(x, y int, r rune, attr Attr) {
	if b.idx(x, y) < 0 {
		return
	}

	width := runeWidth(r)
	b.clearWideAt(x, y)
	if width == 2 {
		if x+1 >= b.width {
			b.setCell(x, y, Cell{Rune: ' ', Width: 1, Attr: attr})
			return
		}
		b.clearWideAt(x+1, y)
	}

	b.setCell(x, y, Cell{Rune: r, Width: uint8(width), Attr: attr})
	if width == 2 {
		b.setCell(x+1, y, Cell{Width: 0, Attr: attr})
	}
}

// clearWideAt blanks the wide character covering (x, y), if any.
func (b *Buffer) clearWideAt(x, y int) {
	c := b.Cell(x, y)
	switch {
	case c.IsContinuation():
		b.setCell(x-1, y, blank)
		b.setCell(x, y, blank)
	case c.Width == 2:
		b.setCell(x, y, blank)
		b.setCell(x+1, y, blank)
	}
}

// SetString writes s starting at (x, y) and returns the display width
// written. It stops at the buffer edge without wrapping.
func (b *Buffer) SetString(x, y int, s string, attr Attr) int {
	return b.SetStringClipped(x, y, s, attr, b.Rect())
}

// SetStringClipped writes s starting at (x, y), skipping any rune that does
// not fit entirely inside clip. It returns the display width written.
func (b *Buffer) SetStringClipped(x, y int, s string, attr Attr, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	cur := x
	for _, r := range s {
		if cur >= clip.Right() {
			break
		}
		width := runeWidth(r)
		if cur >= clip.X && cur+width <= clip.Right() {
			b.SetRune(cur, y, r, attr)
			written += width
		}
		cur += width
	}
	return written
}

// Fill sets every cell of rect to r.
func (b *Buffer) Fill(rect Rect, r rune, attr Attr) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetRune(x, y, r, attr)
		}
	}
}

// Clear resets every cell to a plain space.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Resize changes the buffer dimensions and clears it.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width*height != len(b.cells) {
		b.cells = make([]Cell, width*height)
	}
	b.width, b.height = width, height
	b.Clear()
}

// String renders the buffer as plain text, one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := range b.height {
		b.writeRow(&sb, y)
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	var sb strings.Builder
	for y := range b.height {
		var line strings.Builder
		b.writeRow(&line, y)
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Buffer) writeRow(sb *strings.Builder, y int) {
	for x := range b.width {
		c := b.cells[y*b.width+x]
		if c.IsContinuation() {
			continue
		}
		if c.Rune == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteRune(c.Rune)
		}
	}
}

// Blit copies src into b with its top-left corner at (x, y). Cells falling
// outside b are dropped.
func (b *Buffer) Blit(x, y int, src *Buffer) {
	for sy := range src.height {
		for sx := range src.width {
			if i := b.idx(x+sx, y+sy); i >= 0 {
				b.cells[i] = src.cells[sy*src.width+sx]
			}
		}
	}
}
