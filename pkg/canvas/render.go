package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles maps cell attributes to the lipgloss style used by Render.
// Attributes without an entry render unstyled.
type Styles map[Attr]lipgloss.Style

// DefaultStyles returns the styles used by the interactive viewer.
func DefaultStyles() Styles {
	return Styles{
		AttrLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		AttrHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		AttrCursor: lipgloss.NewStyle().Reverse(true),
	}
}

// Render returns the buffer as styled text, one line per row. Runs of cells
// sharing an attribute are rendered together.
func (b *Buffer) Render(styles Styles) string {
	var sb strings.Builder
	var run strings.Builder
	for y := range b.height {
		attr := AttrNone
		for x := range b.width {
			c := b.cells[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if c.Attr != attr && run.Len() > 0 {
				sb.WriteString(styles.render(attr, run.String()))
				run.Reset()
			}
			attr = c.Attr
			if c.Rune == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(c.Rune)
			}
		}
		sb.WriteString(styles.render(attr, run.String()))
		run.Reset()
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (s Styles) render(attr Attr, text string) string {
	if text == "" {
		return ""
	}
	style, ok := s[attr]
	if !ok {
		return text
	}
	return style.Render(text)
}
