package canvas

// Line directions leaving a cell.
const (
	lineUp uint8 = 1 << iota
	lineDown
	lineLeft
	lineRight
)

var junctions = [16]rune{
	0:                                        ' ',
	lineUp:                                   '╵',
	lineDown:                                 '╷',
	lineLeft:                                 '╴',
	lineRight:                                '╶',
	lineUp | lineDown:                        '│',
	lineLeft | lineRight:                     '─',
	lineDown | lineRight:                     '┌',
	lineDown | lineLeft:                      '┐',
	lineUp | lineRight:                       '└',
	lineUp | lineLeft:                        '┘',
	lineUp | lineDown | lineRight:            '├',
	lineUp | lineDown | lineLeft:             '┤',
	lineDown | lineLeft | lineRight:          '┬',
	lineUp | lineLeft | lineRight:            '┴',
	lineUp | lineDown | lineLeft | lineRight: '┼',
}

// HLine draws a horizontal line on row y from x0 to x1 inclusive. Where it
// meets an existing line the cell becomes the matching junction.
func (b *Buffer) HLine(x0, x1, y int) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	b.hline(x0, x1, y, x0, x1)
}

// VLine draws a vertical line in column x from y0 to y1 inclusive.
func (b *Buffer) VLine(x, y0, y1 int) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	b.vline(x, y0, y1, y0, y1)
}

// hline draws the cells [from, to] of a line whose ends are x0 and x1.
// A line that ends outside [from, to] runs through the drawn cells.
func (b *Buffer) hline(x0, x1, y, from, to int) {
	for x := max(from, 0); x <= min(to, b.width-1); x++ {
		var dirs uint8
		if x > x0 {
			dirs |= lineLeft
		}
		if x < x1 {
			dirs |= lineRight
		}
		b.addLine(x, y, dirs)
	}
}

func (b *Buffer) vline(x, y0, y1, from, to int) {
	for y := max(from, 0); y <= min(to, b.height-1); y++ {
		var dirs uint8
		if y > y0 {
			dirs |= lineUp
		}
		if y < y1 {
			dirs |= lineDown
		}
		b.addLine(x, y, dirs)
	}
}

func (b *Buffer) addLine(x, y int, dirs uint8) {
	i := b.idx(x, y)
	if i < 0 || dirs == 0 {
		return
	}
	b.clearWideAt(x, y)
	lines := b.cells[i].lines | dirs
	b.cells[i] = Cell{Rune: junctions[lines], Width: 1, Attr: AttrLine, lines: lines}
}
