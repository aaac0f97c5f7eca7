// Package menu models the main and settings menus.
package menu

import "github.com/samdwyer/sotora/internal/appstate"

// ActionKind says what activating an item does.
type ActionKind int

const (
	ChangeState ActionKind = iota
	Exit
)

// Action is the effect of clicking a menu item.
type Action struct {
	Kind   ActionKind
	Target appstate.State
}

// GoTo returns an action that requests target.
func GoTo(target appstate.State) Action {
	return Action{Kind: ChangeState, Target: target}
}

// Quit returns an action that exits the game.
func Quit() Action {
	return Action{Kind: Exit}
}

// Item is a selectable menu entry.
type Item struct {
	Label  string
	Action Action
}

// Menu is a titled list of items with one selected.
type Menu struct {
	Title    string
	Items    []Item
	Footer   []string
	selected int
}

// New creates a menu with the first item selected.
func New(title string, items ...Item) *Menu {
	return &Menu{Title: title, Items: items}
}

// MainMenu is shown at startup.
func MainMenu() *Menu {
	return New("SOTORA",
		Item{Label: "Play", Action: GoTo(appstate.Overworld)},
		Item{Label: "Settings", Action: GoTo(appstate.SettingsMenu)},
		Item{Label: "Quit", Action: Quit()},
	)
}

// SettingsMenu lists the bound keys. Editing them in-game is not supported
// yet; the footer says so.
func SettingsMenu() *Menu {
	m := New("Settings",
		Item{Label: "Back", Action: GoTo(appstate.MainMenu)},
	)
	m.Footer = []string{"Key rebinding coming soon. Edit key_binds.yaml instead."}
	return m
}

// Selected returns the index of the selected item.
func (m *Menu) Selected() int {
	return m.selected
}

// Move shifts the selection by delta, wrapping at both ends.
func (m *Menu) Move(delta int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// Reset selects the first item.
func (m *Menu) Reset() {
	m.selected = 0
}

// Activate returns the selected item's action.
func (m *Menu) Activate() (Action, bool) {
	if len(m.Items) == 0 {
		return Action{}, false
	}
	return m.Items[m.selected].Action, true
}
