package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/SeamusWaldron/cubeturn"
)

// turnBinding ties a key to a quarter turn.
type turnBinding struct {
	binding key.Binding
	move    cubeturn.Move
}

// KeyMap lists the bindings of the interactive driver.
type KeyMap struct {
	Turns []turnBinding
	Undo  key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.turnHelp(), km.Undo, km.Reset, km.Help, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	turns := make([]key.Binding, 0, len(km.Turns))
	for _, t := range km.Turns {
		turns = append(turns, t.binding)
	}
	return [][]key.Binding{turns, {km.Undo, km.Reset, km.Help, km.Quit}}
}

// turnHelp is the single short-help entry standing in for all turn keys.
func (km KeyMap) turnHelp() key.Binding {
	return key.NewBinding(
		key.WithKeys("f", "r", "u", "b", "l", "d"),
		key.WithHelp("f/r/u/b/l/d", "turn (shift: anticlockwise)"),
	)
}

// KeyMap implements help.KeyMap
var _ help.KeyMap = KeyMap{}

func turnKey(k string, m cubeturn.Move) turnBinding {
	return turnBinding{
		binding: key.NewBinding(key.WithKeys(k), key.WithHelp(k, m.Notation())),
		move:    m,
	}
}

// DefaultKeyMap binds lower-case face letters to clockwise turns and
// upper-case letters to anticlockwise turns.
var DefaultKeyMap = KeyMap{
	Turns: []turnBinding{
		turnKey("f", cubeturn.F), turnKey("F", cubeturn.FPrime),
		turnKey("r", cubeturn.R), turnKey("R", cubeturn.RPrime),
		turnKey("u", cubeturn.U), turnKey("U", cubeturn.UPrime),
		turnKey("b", cubeturn.B), turnKey("B", cubeturn.BPrime),
		turnKey("l", cubeturn.L), turnKey("L", cubeturn.LPrime),
		turnKey("d", cubeturn.D), turnKey("D", cubeturn.DPrime),
	},
	Undo: key.NewBinding(
		key.WithKeys("z", "backspace"),
		key.WithHelp("z", "undo"),
	),
	Reset: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
