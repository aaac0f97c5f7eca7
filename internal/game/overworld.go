package game

import (
	"context"

	"github.com/jakecoffman/cp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/sotora/internal/appstate"
	"github.com/samdwyer/sotora/internal/entity"
	"github.com/samdwyer/sotora/internal/interact"
	"github.com/samdwyer/sotora/internal/userconfig"
	"github.com/samdwyer/sotora/internal/world"
)

// spawnOverworld places the ground, player, NPCs and battle starters.
func (g *Game) spawnOverworld(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "overworld.spawn")
	defer span.End()

	if g.newRun {
		g.player = entity.NewPlayer(g.overworld.PlayerStart.Vector())
		g.camera = entity.NewCamera()
		g.newRun = false
	}
	g.inArea = false
	g.area = ""

	scope := g.world.Scope(appstate.Overworld)
	scope.Spawn(world.Object{Kind: world.KindGround, Name: "ground", Color: g.overworld.GroundColor})

	g.playerID = scope.Spawn(world.Object{
		Kind:  world.KindPlayer,
		Name:  "player",
		Pos:   g.player.Position(),
		Glyph: g.player.Symbol,
	})
	if _, err := g.world.SpawnChild(g.playerID, world.Object{Kind: world.KindCamera, Name: "camera"}); err != nil {
		g.logger.Error("spawn camera", "error", err)
	}

	for i := range g.overworld.NPCs {
		npc := &g.overworld.NPCs[i]
		id := scope.Spawn(world.Object{
			Kind:    world.KindNPC,
			Name:    npc.ID,
			Pos:     npc.Pos(),
			Glyph:   npc.SymbolRune(),
			Color:   npc.Color,
			Payload: interact.DialogStarter{NPCName: npc.Name, Sprite: npc.Sprite},
		})
		if _, err := g.world.SpawnChild(id, world.Object{Kind: world.KindNameTag, Name: npc.Name}); err != nil {
			g.logger.Error("spawn name tag", "npc", npc.ID, "error", err)
		}
	}

	for i := range g.overworld.BattleStarters {
		b := &g.overworld.BattleStarters[i]
		scope.Spawn(world.Object{
			Kind:    world.KindBattleStarter,
			Name:    "battle_starter",
			Pos:     b.Pos(),
			Glyph:   b.SymbolRune(),
			Color:   b.Color,
			Payload: interact.BattleStarter{},
		})
	}

	span.SetAttributes(
		attribute.Int("overworld.objects", g.world.Count(appstate.Overworld)),
		attribute.Int("overworld.npcs", len(g.overworld.NPCs)),
	)
}

// movePlayer walks the player relative to the camera, inside the plane.
func (g *Game) movePlayer(context.Context) {
	var intent entity.Intent
	if g.snap.Pressed(userconfig.MoveForward) {
		intent.Forward++
	}
	if g.snap.Pressed(userconfig.MoveBackward) {
		intent.Forward--
	}
	if g.snap.Pressed(userconfig.MoveRight) {
		intent.Strafe++
	}
	if g.snap.Pressed(userconfig.MoveLeft) {
		intent.Strafe--
	}

	g.player.Step(intent, g.camera, g.dt, g.overworld.HalfSize)
	if o, ok := g.world.Get(g.playerID); ok {
		o.Pos = g.player.Position()
	}
}

func (g *Game) rotateCamera(context.Context) {
	dir := 0.0
	if g.snap.Pressed(userconfig.RotateLeft) {
		dir--
	}
	if g.snap.Pressed(userconfig.RotateRight) {
		dir++
	}
	if dir != 0 {
		g.camera.Rotate(dir, g.dt)
	}
}

// detectArea shows the area title when the player walks into a new area.
func (g *Game) detectArea(context.Context) {
	a, ok := world.AreaAt(g.areas, g.player.Position())
	if !ok {
		g.inArea = false
		return
	}
	if g.inArea && a.Name == g.area {
		return
	}
	g.inArea = true
	g.area = a.Name
	g.label.ShowAreaTitle(a.Name)
	g.logger.Debug("entered area", "area", a.Name)
}

func (g *Game) interactBattle(context.Context) {
	p, ok := interact.Detect[interact.BattleStarter](g.scanner, g.playerPositions(), g.snap.JustPressed(userconfig.Interact))
	if interact.StartBattle(p, ok, g.machine) {
		g.logger.Info("battle started")
	}
}

func (g *Game) interactDialog(context.Context) {
	p, ok := interact.Detect[interact.DialogStarter](g.scanner, g.playerPositions(), g.snap.JustPressed(userconfig.Interact))
	if interact.StartDialog(p, ok, g.dialogs, g.machine) {
		g.logger.Info("dialog started", "npc", p.NPCName)
	}
}

// interactables lists every payload-carrying object in spawn order.
func (g *Game) interactables() []interact.Candidate {
	var out []interact.Candidate
	g.world.Each(func(o *world.Object) {
		if o.Payload != nil {
			out = append(out, interact.Candidate{Pos: o.Pos, Payload: o.Payload})
		}
	})
	return out
}

func (g *Game) playerPositions() []cp.Vector {
	players := g.world.Query(world.KindPlayer)
	out := make([]cp.Vector, len(players))
	for i, p := range players {
		out[i] = p.Pos
	}
	return out
}
