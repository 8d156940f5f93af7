package canvas

import "testing"

func TestBuffer_Lines(t *testing.T) {
	type tc struct {
		draw func(b *Buffer)
		want string
	}

	tests := map[string]tc{
		"horizontal": {
			draw: func(b *Buffer) { b.HLine(0, 4, 1) },
			want: "     \n╶───╴\n     ",
		},
		"vertical": {
			draw: func(b *Buffer) { b.VLine(2, 0, 2) },
			want: "  ╷  \n  │  \n  ╵  ",
		},
		"cross": {
			draw: func(b *Buffer) {
				b.HLine(0, 4, 1)
				b.VLine(2, 0, 2)
			},
			want: "  ╷  \n╶─┼─╴\n  ╵  ",
		},
		"box": {
			draw: func(b *Buffer) {
				b.HLine(0, 4, 0)
				b.HLine(0, 4, 2)
				b.VLine(0, 0, 2)
				b.VLine(4, 0, 2)
				b.VLine(2, 0, 2)
			},
			want: "┌─┬─┐\n│ │ │\n└─┴─┘",
		},
		"clipped to buffer": {
			draw: func(b *Buffer) { b.HLine(-3, 10, 0) },
			want: "─────\n     \n     ",
		},
		"reversed endpoints": {
			draw: func(b *Buffer) { b.VLine(0, 2, 0) },
			want: "╷    \n│    \n╵    ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(5, 3)
			tt.draw(b)
			if got := b.String(); got != tt.want {
				t.Errorf("String() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestBuffer_TextReplacesLine(t *testing.T) {
	b := NewBuffer(3, 1)
	b.HLine(0, 2, 0)
	b.SetRune(1, 0, 'x', AttrNone)
	if got := b.String(); got != "╶x╴" {
		t.Errorf("String() = %q", got)
	}
	if b.Cell(1, 0).IsLine() {
		t.Errorf("text cell still reports a line")
	}

	b.VLine(1, 0, 0)
	if got := b.String(); got != "╶x╴" {
		t.Errorf("single-cell line should draw nothing, got %q", got)
	}
}
