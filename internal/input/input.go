// Package input turns terminal key events into per-tick action snapshots.
//
// Terminals report key presses but not releases, so an action counts as
// pressed on every tick its key produced an event (including auto-repeat).
// JustPressed is true only on the first of a run of such ticks.
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/sotora/internal/userconfig"
)

// Snapshot is the input state for one tick.
type Snapshot struct {
	pressed map[userconfig.Action]bool
	just    map[userconfig.Action]bool
	quit    bool
}

// Pressed reports whether the action's key was seen this tick.
func (s Snapshot) Pressed(a userconfig.Action) bool {
	return s.pressed[a]
}

// JustPressed reports whether the action's key was seen this tick but not
// on the previous one.
func (s Snapshot) JustPressed(a userconfig.Action) bool {
	return s.just[a]
}

// Quit reports whether Ctrl-C was pressed.
func (s Snapshot) Quit() bool {
	return s.quit
}

// Press builds a snapshot where every given action was just pressed.
func Press(actions ...userconfig.Action) Snapshot {
	s := Snapshot{
		pressed: make(map[userconfig.Action]bool, len(actions)),
		just:    make(map[userconfig.Action]bool, len(actions)),
	}
	for _, a := range actions {
		s.pressed[a] = true
		s.just[a] = true
	}
	return s
}

// Hold builds a snapshot where the given actions are held but not new.
func Hold(actions ...userconfig.Action) Snapshot {
	s := Snapshot{pressed: make(map[userconfig.Action]bool, len(actions))}
	for _, a := range actions {
		s.pressed[a] = true
	}
	return s
}

// Collector accumulates key events between ticks.
type Collector struct {
	binds userconfig.KeyBinds
	seen  map[userconfig.Key]bool
	prev  map[userconfig.Action]bool
	quit  bool
}

// NewCollector creates a collector using binds.
func NewCollector(binds userconfig.KeyBinds) *Collector {
	return &Collector{
		binds: binds,
		seen:  make(map[userconfig.Key]bool),
		prev:  make(map[userconfig.Action]bool),
	}
}

// SetBinds replaces the key bindings used by the next Snapshot.
func (c *Collector) SetBinds(binds userconfig.KeyBinds) {
	c.binds = binds
}

// Binds returns the active key bindings.
func (c *Collector) Binds() userconfig.KeyBinds {
	return c.binds
}

// HandleKey records a terminal key event.
func (c *Collector) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		c.quit = true
		return
	}
	if k, ok := KeyName(ev); ok {
		c.Press(k)
	}
}

// Press records k as seen this tick.
func (c *Collector) Press(k userconfig.Key) {
	c.seen[k] = true
}

// Snapshot resolves the keys seen since the last call into actions and
// starts a new tick.
func (c *Collector) Snapshot() Snapshot {
	s := Snapshot{
		pressed: make(map[userconfig.Action]bool),
		just:    make(map[userconfig.Action]bool),
		quit:    c.quit,
	}
	for k := range c.seen {
		for _, a := range c.binds.ActionsFor(k) {
			s.pressed[a] = true
		}
	}
	for a := range s.pressed {
		if !c.prev[a] {
			s.just[a] = true
		}
	}

	c.prev = s.pressed
	c.seen = make(map[userconfig.Key]bool)
	c.quit = false
	return s
}

// KeyName maps a tcell key event to a bindable key name.
func KeyName(ev *tcell.EventKey) (userconfig.Key, bool) {
	return keyName(ev.Key(), ev.Rune())
}

func keyName(key tcell.Key, r rune) (userconfig.Key, bool) {
	switch key {
	case tcell.KeyEscape:
		return userconfig.KeyEsc, true
	case tcell.KeyEnter:
		return userconfig.KeyEnter, true
	case tcell.KeyTab:
		return userconfig.KeyTab, true
	case tcell.KeyUp:
		return userconfig.KeyUp, true
	case tcell.KeyDown:
		return userconfig.KeyDown, true
	case tcell.KeyLeft:
		return userconfig.KeyLeft, true
	case tcell.KeyRight:
		return userconfig.KeyRight, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return userconfig.KeyBackspace, true
	case tcell.KeyRune:
		if r == ' ' {
			return userconfig.KeySpace, true
		}
		k := userconfig.Key(string(unicode.ToLower(r)))
		if k.Valid() {
			return k, true
		}
	}
	return "", false
}
