package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
)

func TestLoadOverworld(t *testing.T) {
	def, err := LoadOverworld()
	if err != nil {
		t.Fatalf("Failed to load overworld: %v", err)
	}

	if def.HalfSize != 10 {
		t.Errorf("HalfSize = %v, want 10", def.HalfSize)
	}
	if len(def.Areas) == 0 {
		t.Fatal("Expected at least one area")
	}
	if len(def.BattleStarters) == 0 {
		t.Error("Expected at least one battle starter")
	}

	var ferris *NPCDef
	for i := range def.NPCs {
		if def.NPCs[i].Name == "Ferris" {
			ferris = &def.NPCs[i]
		}
	}
	if ferris == nil {
		t.Fatal("Expected NPC Ferris")
	}
	if ferris.SymbolRune() != 'F' {
		t.Errorf("Ferris symbol = %q, want 'F'", ferris.SymbolRune())
	}
}

func TestPlayerStartsInsideAnArea(t *testing.T) {
	def := MustLoadOverworld()

	start := def.PlayerStart.Vector()
	found := false
	for _, a := range def.WorldAreas() {
		if a.Contains(start) {
			found = true
		}
	}
	if !found {
		t.Errorf("player start %v is not inside any area", start)
	}
}

func TestInteractablesAreApart(t *testing.T) {
	def := MustLoadOverworld()

	var positions []cp.Vector
	for i := range def.NPCs {
		positions = append(positions, def.NPCs[i].Pos())
	}
	for i := range def.BattleStarters {
		positions = append(positions, def.BattleStarters[i].Pos())
	}

	// Two interactables within reach of one spot would make interaction ambiguous.
	for i := range positions {
		for j := i + 1; j < len(positions); j++ {
			if d := positions[i].Distance(positions[j]); d < 2 {
				t.Errorf("interactables %v and %v are %v apart", positions[i], positions[j], d)
			}
		}
	}
}

func TestOverworldValidate(t *testing.T) {
	valid := func() OverworldDef {
		return OverworldDef{
			HalfSize: 5,
			Areas:    []AreaDef{{Name: "A", X: -5, Y: -5, W: 10, H: 10}},
			NPCs:     []NPCDef{{ID: "n", Name: "N", Color: "#FFFFFF"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*OverworldDef)
		wantErr bool
	}{
		{"valid", func(*OverworldDef) {}, false},
		{"zero half size", func(d *OverworldDef) { d.HalfSize = 0 }, true},
		{"start outside", func(d *OverworldDef) { d.PlayerStart = Point{X: 6} }, true},
		{"unnamed area", func(d *OverworldDef) { d.Areas[0].Name = "" }, true},
		{"overlapping areas", func(d *OverworldDef) {
			d.Areas = append(d.Areas, AreaDef{Name: "B", X: 4, Y: 4, W: 2, H: 2})
		}, true},
		{"adjacent areas", func(d *OverworldDef) {
			d.Areas[0].W = 5
			d.Areas = append(d.Areas, AreaDef{Name: "B", X: 0, Y: -5, W: 5, H: 10})
		}, false},
		{"npc without name", func(d *OverworldDef) { d.NPCs[0].Name = "" }, true},
		{"npc bad color", func(d *OverworldDef) { d.NPCs[0].Color = "#ZZZZZZ" }, true},
		{"starter outside", func(d *OverworldDef) {
			d.BattleStarters = []BattleStarterDef{{X: 0, Y: -9}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(&d)
			err := d.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPortraitRegistry(t *testing.T) {
	registry, err := LoadPortraitRegistry()
	if err != nil {
		t.Fatalf("Failed to load portraits: %v", err)
	}

	ferris := registry.GetByID("ferris")
	if ferris == nil {
		t.Fatal("ferris portrait not found")
	}
	if len(ferris.Art) == 0 || ferris.Width() == 0 {
		t.Error("ferris portrait has no art")
	}
	if registry.GetByID("nobody") != nil {
		t.Error("GetByID() for unknown ID should return nil")
	}
	if registry.Count() != len(registry.All()) {
		t.Errorf("Count() = %d, All() has %d", registry.Count(), len(registry.All()))
	}

	if err := registry.CheckSprites(MustLoadOverworld().NPCs); err != nil {
		t.Errorf("CheckSprites() = %v", err)
	}
	if err := registry.CheckSprites([]NPCDef{{ID: "x", Sprite: "missing"}}); err == nil {
		t.Error("CheckSprites() should fail for a missing sprite")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"good.json": {Data: []byte(`{"portraits":[{"id":"a","color":"#000000","art":["x"]}]}`)},
		"bad.json":  {Data: []byte(`{"portraits":`)},
	}

	file, err := LoadFS[PortraitsFile](fsys, "good.json")
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}
	if len(file.Portraits) != 1 || file.Portraits[0].ID != "a" {
		t.Errorf("LoadFS() = %+v", file)
	}

	if _, err := LoadFS[PortraitsFile](fsys, "bad.json"); err == nil {
		t.Error("LoadFS() should fail on malformed JSON")
	}
	if _, err := LoadFS[PortraitsFile](fsys, "missing.json"); err == nil {
		t.Error("LoadFS() should fail on a missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"00ff80", tcell.NewRGBColor(0, 255, 128), false},
		{"#FFF", tcell.ColorDefault, true},
		{"#GG0000", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		opacity float64
		want    tcell.Color
	}{
		{1, tcell.NewRGBColor(200, 100, 50)},
		{0.5, tcell.NewRGBColor(100, 50, 25)},
		{0, tcell.NewRGBColor(0, 0, 0)},
		{2, tcell.NewRGBColor(200, 100, 50)},
	}

	for _, tt := range tests {
		got, err := Fade("#C86432", tt.opacity)
		if err != nil {
			t.Fatalf("Fade() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("Fade(%v) = %v, want %v", tt.opacity, got, tt.want)
		}
	}
}

func TestColorOr(t *testing.T) {
	if got := ColorOr("", tcell.ColorWhite); got != tcell.ColorWhite {
		t.Errorf("ColorOr(\"\") = %v, want white", got)
	}
	if got := ColorOr("nope", tcell.ColorWhite); got != tcell.ColorWhite {
		t.Errorf("ColorOr(\"nope\") = %v, want white", got)
	}
	if got := ColorOr("#000000", tcell.ColorWhite); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("ColorOr(\"#000000\") = %v, want black", got)
	}
}
