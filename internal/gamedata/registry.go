package gamedata

import (
	"errors"
	"fmt"
)

// PortraitDef is the ASCII art shown next to an NPC in the dialog box.
type PortraitDef struct {
	ID    string   `json:"id"`
	Color string   `json:"color"`
	Art   []string `json:"art"`
}

// Width returns the widest art line in runes.
func (p *PortraitDef) Width() int {
	w := 0
	for _, line := range p.Art {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return w
}

// PortraitsFile represents the structure of portraits.json.
type PortraitsFile struct {
	Portraits []PortraitDef `json:"portraits"`
}

// PortraitRegistry holds loaded portraits keyed by sprite ID.
type PortraitRegistry struct {
	portraits map[string]*PortraitDef
	all       []PortraitDef
}

// NewPortraitRegistry creates a registry from loaded portrait definitions.
func NewPortraitRegistry(portraits []PortraitDef) *PortraitRegistry {
	registry := &PortraitRegistry{
		portraits: make(map[string]*PortraitDef),
		all:       portraits,
	}
	for i := range portraits {
		registry.portraits[portraits[i].ID] = &portraits[i]
	}
	return registry
}

// LoadPortraitRegistry loads and creates a registry from the embedded portraits.json.
func LoadPortraitRegistry() (*PortraitRegistry, error) {
	file, err := Load[PortraitsFile]("portraits.json")
	if err != nil {
		return nil, err
	}
	if len(file.Portraits) == 0 {
		return nil, errors.New("no portraits loaded from portraits.json")
	}
	for _, p := range file.Portraits {
		if _, err := ParseHexColor(p.Color); err != nil {
			return nil, fmt.Errorf("portrait %q: %w", p.ID, err)
		}
	}
	return NewPortraitRegistry(file.Portraits), nil
}

// MustLoadPortraitRegistry loads a registry, panicking on error.
func MustLoadPortraitRegistry() *PortraitRegistry {
	registry, err := LoadPortraitRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the portrait with the given sprite ID, or nil if not found.
func (r *PortraitRegistry) GetByID(id string) *PortraitDef {
	return r.portraits[id]
}

// All returns all portrait definitions.
func (r *PortraitRegistry) All() []PortraitDef {
	return r.all
}

// Count returns the number of portraits in the registry.
func (r *PortraitRegistry) Count() int {
	return len(r.all)
}

// CheckSprites returns an error naming the first NPC whose sprite has no
// portrait.
func (r *PortraitRegistry) CheckSprites(npcs []NPCDef) error {
	for _, n := range npcs {
		if r.GetByID(n.Sprite) == nil {
			return fmt.Errorf("npc %q: no portrait for sprite %q", n.ID, n.Sprite)
		}
	}
	return nil
}
