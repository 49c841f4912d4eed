package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"quote":     '"',
}

// keyNames is the lowercase reverse of tcell.KeyNames
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections present in the TOML are populated; a nil map means no override
//
//	[game]
//	"k"  = "left_up"
//	"Up" = "none"
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw map[string]map[string]string
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	for section, bindings := range raw {
		parsed, err := parseSection(section, bindings)
		if err != nil {
			return nil, err
		}
		switch section {
		case "game":
			kt.Game = parsed
		case "menu":
			kt.Menu = parsed
		default:
			return nil, fmt.Errorf("keymap: unknown section [%s]", section)
		}
	}

	return kt, nil
}

func parseSection(section string, data map[string]string) (map[Binding]Action, error) {
	result := make(map[Binding]Action, len(data))

	for keyStr, actionName := range data {
		b, err := resolveBinding(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[b] = a
	}

	return result, nil
}

// resolveBinding converts a TOML key string to a Binding
// Accepts single characters, rune aliases and tcell key names (case-insensitive)
func resolveBinding(s string) (Binding, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return RuneBinding(r), nil
	}

	if runes := []rune(s); len(runes) == 1 {
		return RuneBinding(runes[0]), nil
	}

	if k, ok := keyNames[strings.ToLower(s)]; ok {
		return KeyBinding(k), nil
	}

	return Binding{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	result.Game = mergeMap(result.Game, override.Game)
	result.Menu = mergeMap(result.Menu, override.Menu)

	return result
}

func mergeMap(base, override map[Binding]Action) map[Binding]Action {
	if override == nil {
		return base
	}
	if base == nil {
		base = make(map[Binding]Action, len(override))
	}
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
	return base
}
