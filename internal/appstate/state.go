// Package appstate provides the application state machine that decides which
// screen is active and which hooks run each tick.
package appstate

import "errors"

// ErrUnknownState is returned when a value outside the State enum is used.
var ErrUnknownState = errors.New("appstate: unknown state")

// State represents the current top-level screen.
type State int

const (
	// MainMenu is the title screen shown at startup.
	MainMenu State = iota
	// SettingsMenu shows configuration such as key bindings.
	SettingsMenu
	// Overworld is exploration mode where the player walks around.
	Overworld
	// Battle is the (stub) battle board.
	Battle
	// Dialog shows a conversation with an NPC.
	Dialog
)

// All lists every state in declaration order.
var All = []State{MainMenu, SettingsMenu, Overworld, Battle, Dialog}

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case MainMenu:
		return "main_menu"
	case SettingsMenu:
		return "settings_menu"
	case Overworld:
		return "overworld"
	case Battle:
		return "battle"
	case Dialog:
		return "dialog"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	return s >= MainMenu && s <= Dialog
}
