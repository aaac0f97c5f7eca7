package game

import (
	"context"

	"github.com/samdwyer/sotora/internal/appstate"
	"github.com/samdwyer/sotora/internal/dialog"
	"github.com/samdwyer/sotora/internal/ui"
	"github.com/samdwyer/sotora/internal/userconfig"
	"github.com/samdwyer/sotora/internal/world"
)

// openDialog reads the staged resource and spawns the dialog box. Without
// one there is nobody to talk to, so the game returns to the overworld.
func (g *Game) openDialog(context.Context) {
	r, ok := g.dialogs.Current()
	if !ok {
		g.logger.Warn("dialog entered without a resource")
		g.machine.Request(appstate.Overworld)
		return
	}

	scope := g.world.Scope(appstate.Dialog)
	scope.Spawn(world.Object{Kind: world.KindPortrait, Name: r.Sprite})
	scope.Spawn(world.Object{Kind: world.KindText, Name: r.NPCName})
	scope.Spawn(world.Object{Kind: world.KindText, Name: dialog.Greeting})

	g.dialogView = &ui.DialogView{
		Name:     r.NPCName,
		Message:  dialog.Greeting,
		Portrait: g.portraits.GetByID(r.Sprite),
	}
}

// closeDialog returns to the overworld on Back or Confirm.
func (g *Game) closeDialog(context.Context) {
	if g.snap.JustPressed(userconfig.Back) || g.snap.JustPressed(userconfig.Confirm) {
		g.machine.Request(appstate.Overworld)
	}
}

// clearDialog drops the resource so a later Dialog entry needs a new one.
func (g *Game) clearDialog(context.Context) {
	g.dialogs.Clear()
	g.dialogView = nil
}
