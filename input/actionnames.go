package input

// Action is a logical input action, independent of the key that triggers it
type Action uint8

const (
	ActionNone Action = iota

	// Paddles
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown

	// Menus
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionOnePlayer
	ActionTwoPlayers

	// System
	ActionBack
	ActionQuit

	actionCount
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"left_up":    ActionLeftUp,
	"left_down":  ActionLeftDown,
	"right_up":   ActionRightUp,
	"right_down": ActionRightDown,

	"menu_up":     ActionMenuUp,
	"menu_down":   ActionMenuDown,
	"menu_select": ActionMenuSelect,
	"one_player":  ActionOnePlayer,
	"two_players": ActionTwoPlayers,

	"back": ActionBack,
	"quit": ActionQuit,
}

// actionNames is the reverse of actionRegistry
var actionNames = func() [actionCount]string {
	var names [actionCount]string
	for name, a := range actionRegistry {
		names[a] = name
	}
	return names
}()

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// String returns the canonical action name
func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Opposite returns the reverse direction of a movement action, ActionNone otherwise
func (a Action) Opposite() Action {
	switch a {
	case ActionLeftUp:
		return ActionLeftDown
	case ActionLeftDown:
		return ActionLeftUp
	case ActionRightUp:
		return ActionRightDown
	case ActionRightDown:
		return ActionRightUp
	case ActionMenuUp:
		return ActionMenuDown
	case ActionMenuDown:
		return ActionMenuUp
	default:
		return ActionNone
	}
}
