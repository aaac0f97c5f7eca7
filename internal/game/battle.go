package game

import (
	"context"

	"github.com/samdwyer/sotora/internal/appstate"
)

// spawnBattle lays out the stub battle board.
func (g *Game) spawnBattle(ctx context.Context) {
	n := g.board.Spawn(ctx, g.world.Scope(appstate.Battle))
	g.logger.Debug("battle board spawned", "tiles", n)
}
