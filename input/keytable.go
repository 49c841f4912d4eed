package input

import "github.com/gdamore/tcell/v2"

// Context selects which binding table applies
type Context uint8

const (
	ContextGame Context = iota
	ContextMenu
)

// Binding identifies a physical key; Rune is set only when Key is tcell.KeyRune
type Binding struct {
	Key  tcell.Key
	Rune rune
}

// RuneBinding returns the binding for a printable key
func RuneBinding(r rune) Binding {
	return Binding{Key: tcell.KeyRune, Rune: r}
}

// KeyBinding returns the binding for a special key
func KeyBinding(k tcell.Key) Binding {
	return Binding{Key: k}
}

// BindingOf extracts the binding from a key event
func BindingOf(ev *tcell.EventKey) Binding {
	if ev.Key() == tcell.KeyRune {
		return RuneBinding(ev.Rune())
	}
	return KeyBinding(ev.Key())
}

// KeyTable maps keys to actions per context
type KeyTable struct {
	Game map[Binding]Action
	Menu map[Binding]Action
}

// DefaultKeyTable returns the default key bindings
// Left paddle W/S, right paddle arrows, menus arrows/enter or 1/2
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Game: map[Binding]Action{
			RuneBinding('w'):            ActionLeftUp,
			RuneBinding('W'):            ActionLeftUp,
			RuneBinding('s'):            ActionLeftDown,
			RuneBinding('S'):            ActionLeftDown,
			KeyBinding(tcell.KeyUp):     ActionRightUp,
			KeyBinding(tcell.KeyDown):   ActionRightDown,
			KeyBinding(tcell.KeyEscape): ActionBack,
			KeyBinding(tcell.KeyCtrlC):  ActionQuit,
		},
		Menu: map[Binding]Action{
			KeyBinding(tcell.KeyUp):      ActionMenuUp,
			KeyBinding(tcell.KeyDown):    ActionMenuDown,
			KeyBinding(tcell.KeyTab):     ActionMenuDown,
			KeyBinding(tcell.KeyBacktab): ActionMenuUp,
			KeyBinding(tcell.KeyEnter):   ActionMenuSelect,
			RuneBinding(' '):             ActionMenuSelect,
			RuneBinding('1'):             ActionOnePlayer,
			RuneBinding('2'):             ActionTwoPlayers,
			KeyBinding(tcell.KeyEscape):  ActionBack,
			RuneBinding('q'):             ActionQuit,
			KeyBinding(tcell.KeyCtrlC):   ActionQuit,
		},
	}
}

// Lookup returns the action bound to the event in the given context
func (kt *KeyTable) Lookup(ctx Context, ev *tcell.EventKey) Action {
	return kt.table(ctx)[BindingOf(ev)]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Game: cloneMap(kt.Game),
		Menu: cloneMap(kt.Menu),
	}
}

func (kt *KeyTable) table(ctx Context) map[Binding]Action {
	if ctx == ContextMenu {
		return kt.Menu
	}
	return kt.Game
}

func cloneMap(m map[Binding]Action) map[Binding]Action {
	if m == nil {
		return nil
	}
	out := make(map[Binding]Action, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
