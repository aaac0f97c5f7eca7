package gamedata

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/samdwyer/sotora/internal/world"
)

// Point is a position on the ground plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector converts the point to a cp.Vector.
func (p Point) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// AreaDef defines a named region shown in the HUD when entered.
type AreaDef struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// Area converts the definition to a world.Area.
func (a AreaDef) Area() world.Area {
	return world.Area{Name: a.Name, X: a.X, Y: a.Y, W: a.W, H: a.H}
}

// NPCDef defines a character the player can talk to.
type NPCDef struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`   // Shown in the name tag and dialog box
	Sprite string  `json:"sprite"` // Portrait ID in portraits.json
	Symbol string  `json:"symbol"`
	Color  string  `json:"color"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// SymbolRune returns the symbol as a rune for rendering.
func (n *NPCDef) SymbolRune() rune {
	if len(n.Symbol) == 0 {
		return '?'
	}
	return rune(n.Symbol[0])
}

// Pos returns the NPC position.
func (n *NPCDef) Pos() cp.Vector {
	return cp.Vector{X: n.X, Y: n.Y}
}

// BattleStarterDef places an object that starts a battle.
type BattleStarterDef struct {
	Symbol string  `json:"symbol"`
	Color  string  `json:"color"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// SymbolRune returns the symbol as a rune for rendering.
func (b *BattleStarterDef) SymbolRune() rune {
	if len(b.Symbol) == 0 {
		return 'X'
	}
	return rune(b.Symbol[0])
}

// Pos returns the starter position.
func (b *BattleStarterDef) Pos() cp.Vector {
	return cp.Vector{X: b.X, Y: b.Y}
}

// OverworldDef is the layout of the overworld loaded from overworld.json.
type OverworldDef struct {
	HalfSize       float64            `json:"halfSize"` // Ground plane spans [-halfSize, halfSize] on both axes
	GroundColor    string             `json:"groundColor"`
	PlayerStart    Point              `json:"playerStart"`
	Areas          []AreaDef          `json:"areas"`
	NPCs           []NPCDef           `json:"npcs"`
	BattleStarters []BattleStarterDef `json:"battleStarters"`
}

// WorldAreas returns the areas as world.Area values, in file order.
func (d *OverworldDef) WorldAreas() []world.Area {
	areas := make([]world.Area, len(d.Areas))
	for i, a := range d.Areas {
		areas[i] = a.Area()
	}
	return areas
}

// Validate checks the layout is usable.
func (d *OverworldDef) Validate() error {
	if d.HalfSize <= 0 {
		return errors.New("overworld halfSize must be positive")
	}
	inPlane := func(x, y float64) bool {
		return x >= -d.HalfSize && x <= d.HalfSize && y >= -d.HalfSize && y <= d.HalfSize
	}
	if !inPlane(d.PlayerStart.X, d.PlayerStart.Y) {
		return fmt.Errorf("player start (%v, %v) outside the ground plane", d.PlayerStart.X, d.PlayerStart.Y)
	}
	for i, a := range d.Areas {
		if a.Name == "" || a.W <= 0 || a.H <= 0 {
			return fmt.Errorf("invalid area %+v", a)
		}
		// Areas are looked up by first match, so they must not overlap.
		for _, b := range d.Areas[:i] {
			if a.Area().Intersects(b.Area()) {
				return fmt.Errorf("area %q overlaps %q", a.Name, b.Name)
			}
		}
	}
	for _, n := range d.NPCs {
		if n.Name == "" {
			return fmt.Errorf("npc %q has no name", n.ID)
		}
		if !inPlane(n.X, n.Y) {
			return fmt.Errorf("npc %q outside the ground plane", n.ID)
		}
		if _, err := ParseHexColor(n.Color); err != nil {
			return fmt.Errorf("npc %q: %w", n.ID, err)
		}
	}
	for i, b := range d.BattleStarters {
		if !inPlane(b.X, b.Y) {
			return fmt.Errorf("battle starter %d outside the ground plane", i)
		}
	}
	return nil
}

// LoadOverworld loads and validates the embedded overworld.json.
func LoadOverworld() (*OverworldDef, error) {
	def, err := Load[OverworldDef]("overworld.json")
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("overworld.json: %w", err)
	}
	return &def, nil
}

// MustLoadOverworld loads the overworld, panicking on error.
func MustLoadOverworld() *OverworldDef {
	def, err := LoadOverworld()
	if err != nil {
		panic(err)
	}
	return def
}
