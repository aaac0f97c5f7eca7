// Package userconfig persists user settings such as key bindings in the
// user's configuration directory.
package userconfig

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownKey is returned when a binding names a key the game cannot read.
var ErrUnknownKey = errors.New("userconfig: unknown key")

// Key is the name of a keyboard key: a lower-case letter or digit, or one of
// the named keys below.
type Key string

const (
	KeySpace     Key = "Space"
	KeyEnter     Key = "Enter"
	KeyEsc       Key = "Esc"
	KeyTab       Key = "Tab"
	KeyUp        Key = "Up"
	KeyDown      Key = "Down"
	KeyLeft      Key = "Left"
	KeyRight     Key = "Right"
	KeyBackspace Key = "Backspace"
)

var namedKeys = []Key{KeySpace, KeyEnter, KeyEsc, KeyTab, KeyUp, KeyDown, KeyLeft, KeyRight, KeyBackspace}

// Keys returns every bindable key, sorted.
func Keys() []Key {
	keys := make([]Key, 0, 36+len(namedKeys))
	for r := 'a'; r <= 'z'; r++ {
		keys = append(keys, Key(string(r)))
	}
	for r := '0'; r <= '9'; r++ {
		keys = append(keys, Key(string(r)))
	}
	keys = append(keys, namedKeys...)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Valid reports whether k is a bindable key.
func (k Key) Valid() bool {
	if len(k) == 1 {
		c := k[0]
		return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
	}
	for _, n := range namedKeys {
		if k == n {
			return true
		}
	}
	return false
}

// Action is something the player can do with a key.
type Action int

const (
	MoveForward Action = iota
	MoveLeft
	MoveBackward
	MoveRight
	RotateLeft
	RotateRight
	Interact
	Confirm
	Back
	MenuUp
	MenuDown
)

// Actions lists every action in declaration order.
var Actions = []Action{
	MoveForward, MoveLeft, MoveBackward, MoveRight,
	RotateLeft, RotateRight, Interact, Confirm, Back, MenuUp, MenuDown,
}

// String returns the action's name as used in the bindings file.
func (a Action) String() string {
	switch a {
	case MoveForward:
		return "move_forward"
	case MoveLeft:
		return "move_left"
	case MoveBackward:
		return "move_backward"
	case MoveRight:
		return "move_right"
	case RotateLeft:
		return "rotate_left"
	case RotateRight:
		return "rotate_right"
	case Interact:
		return "interact"
	case Confirm:
		return "confirm"
	case Back:
		return "back"
	case MenuUp:
		return "menu_up"
	case MenuDown:
		return "menu_down"
	default:
		return "unknown"
	}
}

// KeyBinds maps each action to a key. Fields missing from the file keep
// their default.
type KeyBinds struct {
	MoveForward  Key `yaml:"move_forward"`
	MoveLeft     Key `yaml:"move_left"`
	MoveBackward Key `yaml:"move_backward"`
	MoveRight    Key `yaml:"move_right"`
	RotateLeft   Key `yaml:"rotate_left"`
	RotateRight  Key `yaml:"rotate_right"`
	Interact     Key `yaml:"interact"`
	Confirm      Key `yaml:"confirm"`
	Back         Key `yaml:"back"`
	MenuUp       Key `yaml:"menu_up"`
	MenuDown     Key `yaml:"menu_down"`
}

// DefaultKeyBinds returns the bindings used when no file exists.
func DefaultKeyBinds() KeyBinds {
	return KeyBinds{
		MoveForward:  "w",
		MoveLeft:     "a",
		MoveBackward: "s",
		MoveRight:    "d",
		RotateLeft:   "q",
		RotateRight:  "e",
		Interact:     "f",
		Confirm:      KeyEnter,
		Back:         KeyEsc,
		MenuUp:       KeyUp,
		MenuDown:     KeyDown,
	}
}

// Key returns the key bound to action.
func (kb KeyBinds) Key(a Action) Key {
	switch a {
	case MoveForward:
		return kb.MoveForward
	case MoveLeft:
		return kb.MoveLeft
	case MoveBackward:
		return kb.MoveBackward
	case MoveRight:
		return kb.MoveRight
	case RotateLeft:
		return kb.RotateLeft
	case RotateRight:
		return kb.RotateRight
	case Interact:
		return kb.Interact
	case Confirm:
		return kb.Confirm
	case Back:
		return kb.Back
	case MenuUp:
		return kb.MenuUp
	case MenuDown:
		return kb.MenuDown
	default:
		return ""
	}
}

// Set binds action to key.
func (kb *KeyBinds) Set(a Action, k Key) {
	switch a {
	case MoveForward:
		kb.MoveForward = k
	case MoveLeft:
		kb.MoveLeft = k
	case MoveBackward:
		kb.MoveBackward = k
	case MoveRight:
		kb.MoveRight = k
	case RotateLeft:
		kb.RotateLeft = k
	case RotateRight:
		kb.RotateRight = k
	case Interact:
		kb.Interact = k
	case Confirm:
		kb.Confirm = k
	case Back:
		kb.Back = k
	case MenuUp:
		kb.MenuUp = k
	case MenuDown:
		kb.MenuDown = k
	}
}

// ActionsFor returns every action bound to k. Several actions may share a key,
// e.g. Enter for confirm in menus and interact in the overworld.
func (kb KeyBinds) ActionsFor(k Key) []Action {
	var out []Action
	for _, a := range Actions {
		if kb.Key(a) == k {
			out = append(out, a)
		}
	}
	return out
}

// Validate checks every binding names a known key.
func (kb KeyBinds) Validate() error {
	for _, a := range Actions {
		if k := kb.Key(a); !k.Valid() {
			return fmt.Errorf("%s = %q: %w", a, k, ErrUnknownKey)
		}
	}
	return nil
}
