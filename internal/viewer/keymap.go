package viewer

import "github.com/charmbracelet/bubbles/key"

// keymap defines the viewer key bindings.
type keymap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	home     key.Binding
	end      key.Binding
	top      key.Binding
	bottom   key.Binding
	wider    key.Binding
	narrower key.Binding
	taller   key.Binding
	shorter  key.Binding
	toggle   key.Binding
	help     key.Binding
	quit     key.Binding
}

func newKeymap() keymap {
	return keymap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		pageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		pageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		home:     key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("home", "first column")),
		end:      key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("end", "last column")),
		top:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first row")),
		bottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last row")),
		wider:    key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "wider column")),
		narrower: key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "narrower column")),
		taller:   key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "taller row")),
		shorter:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shorter row")),
		toggle:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "toggle column sizing")),
		help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:     key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.wider, k.narrower, k.toggle, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right},
		{k.pageUp, k.pageDown, k.home, k.end, k.top, k.bottom},
		{k.wider, k.narrower, k.taller, k.shorter, k.toggle},
		{k.help, k.quit},
	}
}
