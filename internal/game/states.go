package game

import (
	"context"

	"github.com/samdwyer/sotora/internal/appstate"
	"github.com/samdwyer/sotora/internal/menu"
	"github.com/samdwyer/sotora/internal/userconfig"
	"github.com/samdwyer/sotora/internal/world"
)

// registerStates installs the hooks of every state. Each state's objects
// are despawned when it exits.
func (g *Game) registerStates() {
	g.machine.
		OnEnter(appstate.MainMenu, g.enterMainMenu).
		OnUpdate(appstate.MainMenu, g.navigate(g.mainMenu))

	g.machine.
		OnEnter(appstate.SettingsMenu, g.enterSettingsMenu).
		OnUpdate(appstate.SettingsMenu, g.navigate(g.settingsMenu), g.backTo(appstate.MainMenu))

	g.machine.
		OnEnter(appstate.Overworld, g.spawnOverworld).
		OnUpdate(appstate.Overworld,
			g.movePlayer,
			g.rotateCamera,
			g.detectArea,
			g.interactBattle,
			g.interactDialog,
			g.backTo(appstate.MainMenu),
		)

	g.machine.
		OnEnter(appstate.Battle, g.spawnBattle).
		OnUpdate(appstate.Battle, g.rotateCamera, g.backTo(appstate.Overworld))

	g.machine.
		OnEnter(appstate.Dialog, g.openDialog).
		OnUpdate(appstate.Dialog, g.closeDialog).
		OnExit(appstate.Dialog, g.clearDialog)

	for _, s := range appstate.All {
		g.machine.OnExit(s, g.despawn(s))
	}
}

// despawn releases every object owned by s.
func (g *Game) despawn(s appstate.State) appstate.Hook {
	return func(context.Context) {
		n := g.world.Despawn(s)
		g.logger.Debug("despawned state objects", "state", s.String(), "count", n)
	}
}

// backTo requests target when Back was just pressed.
func (g *Game) backTo(target appstate.State) appstate.Hook {
	return func(context.Context) {
		if g.snap.JustPressed(userconfig.Back) {
			g.machine.Request(target)
		}
	}
}

func (g *Game) enterMainMenu(context.Context) {
	g.mainMenu.Reset()
	g.spawnButtons(appstate.MainMenu, g.mainMenu)
	// Play from the main menu starts over at the spawn point.
	g.newRun = true
}

func (g *Game) enterSettingsMenu(context.Context) {
	g.settingsMenu.Reset()
	g.spawnButtons(appstate.SettingsMenu, g.settingsMenu)
}

// spawnButtons adds one button node per menu item to the scope of s.
func (g *Game) spawnButtons(s appstate.State, m *menu.Menu) {
	scope := g.world.Scope(s)
	for _, item := range m.Items {
		scope.Spawn(world.Object{Kind: world.KindButton, Name: item.Label})
	}
}

// navigate moves the selection of m and activates the selected item on
// Confirm.
func (g *Game) navigate(m *menu.Menu) appstate.Hook {
	return func(context.Context) {
		if g.snap.JustPressed(userconfig.MenuUp) {
			m.Move(-1)
		}
		if g.snap.JustPressed(userconfig.MenuDown) {
			m.Move(1)
		}
		if !g.snap.JustPressed(userconfig.Confirm) {
			return
		}

		action, ok := m.Activate()
		if !ok {
			return
		}
		switch action.Kind {
		case menu.ChangeState:
			g.machine.Request(action.Target)
		case menu.Exit:
			g.logger.Info("quit selected")
			g.running = false
		}
	}
}
