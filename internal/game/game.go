// Package game wires the state machine, world, HUD and input together and
// runs the tick loop.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/sotora/internal/appstate"
	"github.com/samdwyer/sotora/internal/dialog"
	"github.com/samdwyer/sotora/internal/entity"
	"github.com/samdwyer/sotora/internal/gamedata"
	"github.com/samdwyer/sotora/internal/hud"
	"github.com/samdwyer/sotora/internal/input"
	"github.com/samdwyer/sotora/internal/interact"
	"github.com/samdwyer/sotora/internal/logger"
	"github.com/samdwyer/sotora/internal/menu"
	"github.com/samdwyer/sotora/internal/telemetry"
	"github.com/samdwyer/sotora/internal/ui"
	"github.com/samdwyer/sotora/internal/userconfig"
	"github.com/samdwyer/sotora/internal/world"
)

// Game holds the entire game state. Every field is owned by the tick loop.
type Game struct {
	cfg       Config
	configDir string
	sessionID string
	logger    *slog.Logger
	tracer    trace.Tracer

	machine *appstate.Machine
	world   *world.World
	label   *hud.AreaLabel
	hudID   world.ID
	dialogs *dialog.Store
	input   *input.Collector
	scanner *interact.LinearScanner

	overworld *gamedata.OverworldDef
	areas     []world.Area
	portraits *gamedata.PortraitRegistry

	player   *entity.Player
	camera   *entity.Camera
	playerID world.ID
	newRun   bool
	area     string
	inArea   bool

	board      *world.Board
	dialogView *ui.DialogView

	mainMenu     *menu.Menu
	settingsMenu *menu.Menu

	// Per-tick input and delta, read by the state hooks.
	snap input.Snapshot
	dt   time.Duration

	ticks   uint64
	running bool

	screen   *ui.Screen
	renderer *ui.Renderer
	watcher  *userconfig.Watcher
}

type options struct {
	sessionID string
}

// Option configures a Game.
type Option func(*options)

// WithSessionID reuses an existing session ID, e.g. the one the tracer
// was set up with. By default a new one is generated.
func WithSessionID(id string) Option {
	return func(o *options) {
		o.sessionID = id
	}
}

// NewHeadless creates a game without a terminal. Key bindings are loaded
// from cfg.ConfigDir; a missing file is created with defaults.
func NewHeadless(cfg Config, log *slog.Logger, opts ...Option) (*Game, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	dir, err := userconfig.ConfigDir(cfg.ConfigDir)
	if err != nil {
		return nil, err
	}
	binds, err := userconfig.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load key binds: %w", err)
	}

	overworld, err := gamedata.LoadOverworld()
	if err != nil {
		return nil, fmt.Errorf("load overworld: %w", err)
	}
	portraits, err := gamedata.LoadPortraitRegistry()
	if err != nil {
		return nil, fmt.Errorf("load portraits: %w", err)
	}
	if err := portraits.CheckSprites(overworld.NPCs); err != nil {
		return nil, fmt.Errorf("load portraits: %w", err)
	}

	sessionID := o.sessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	log = logger.WithSession(log, sessionID)

	g := &Game{
		cfg:          cfg,
		configDir:    dir,
		sessionID:    sessionID,
		logger:       log,
		tracer:       telemetry.Tracer("game"),
		machine:      appstate.New(appstate.MainMenu, appstate.WithLogger(log)),
		world:        world.New(),
		label:        hud.NewAreaLabel(),
		dialogs:      dialog.NewStore(),
		input:        input.NewCollector(binds),
		overworld:    overworld,
		areas:        overworld.WorldAreas(),
		portraits:    portraits,
		player:       entity.NewPlayer(overworld.PlayerStart.Vector()),
		camera:       entity.NewCamera(),
		board:        world.NewBoard(world.DefaultBoardHalfSize),
		mainMenu:     menu.MainMenu(),
		settingsMenu: menu.SettingsMenu(),
		running:      true,
	}
	g.scanner = interact.NewLinearScanner(g.interactables)
	// The area label outlives every state.
	g.hudID = g.world.Global().Spawn(world.Object{Kind: world.KindHUD, Name: "area_label"})
	g.registerStates()

	if err := g.machine.Validate(); err != nil {
		return nil, fmt.Errorf("state machine: %w", err)
	}

	return g, nil
}

// New creates a game attached to the terminal.
func New(cfg Config, log *slog.Logger, opts ...Option) (*Game, error) {
	g, err := NewHeadless(cfg, log, opts...)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)

	if cfg.WatchKeyBinds {
		w, err := userconfig.NewWatcher(g.configDir)
		if err != nil {
			// Hot reload is a convenience; the game runs without it.
			logger.WithError(g.logger, err).Warn("key binds watcher disabled")
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// SessionID identifies this run in logs and traces.
func (g *Game) SessionID() string {
	return g.sessionID
}

// State returns the current application state.
func (g *Game) State() appstate.State {
	return g.machine.Current()
}

// Running reports whether the game loop should continue.
func (g *Game) Running() bool {
	return g.running
}

// Run executes the main game loop until Quit, Ctrl-C or ctx cancellation.
func (g *Game) Run(ctx context.Context) error {
	if g.screen == nil {
		return fmt.Errorf("game has no screen")
	}
	defer g.Close()

	ctx, span := g.tracer.Start(ctx, "game.run",
		trace.WithAttributes(
			attribute.String("session.id", g.sessionID),
			attribute.Int("tick.rate", g.cfg.TickRate),
		),
	)
	defer span.End()

	g.logger.Info("game started", "config_dir", g.configDir, "tick_rate", g.cfg.TickRate)

	events := g.screen.Events(64)
	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	last := time.Now()
	for g.running {
		select {
		case <-ctx.Done():
			g.logger.Info("game cancelled", "ticks", g.ticks)
			return nil
		case now := <-ticker.C:
			g.drainEvents(events)
			g.drainReloads()

			dt := now.Sub(last)
			last = now
			g.Step(ctx, dt, g.input.Snapshot())
			g.render()
		}
	}

	span.SetAttributes(attribute.Int64("ticks", int64(g.ticks)))
	g.logger.Info("game stopped", "ticks", g.ticks)
	return nil
}

// Step advances the game by one tick: state transitions and hooks first,
// then the HUD label, which animates in every state.
func (g *Game) Step(ctx context.Context, dt time.Duration, snap input.Snapshot) {
	g.snap = snap
	g.dt = dt
	if snap.Quit() {
		g.running = false
	}

	g.machine.Tick(ctx)
	g.label.Update(dt)
	if o, ok := g.world.Get(g.hudID); ok {
		o.Name = g.label.Text()
	}
	g.ticks++
}

// drainEvents feeds every queued terminal event into the input collector.
func (g *Game) drainEvents(events <-chan tcell.Event) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				g.running = false
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				g.input.HandleKey(ev)
			case *tcell.EventResize:
				g.screen.Sync()
			}
		default:
			return
		}
	}
}

// drainReloads applies key binding changes made on disk. A bad file is
// logged and the previous bindings stay active.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.ReloadKeyBinds(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			logger.WithError(g.logger, err).Warn("key binds watcher error")
		default:
			return
		}
	}
}

// ReloadKeyBinds re-reads the bindings file at path.
func (g *Game) ReloadKeyBinds(path string) {
	kb, err := userconfig.Read(path)
	if err != nil {
		logger.WithError(g.logger, err).Warn("key binds reload failed, keeping previous bindings")
		return
	}
	g.input.SetBinds(kb)
	g.logger.Info("key binds reloaded", "path", path)
}

// KeyBinds returns the active key bindings.
func (g *Game) KeyBinds() userconfig.KeyBinds {
	return g.input.Binds()
}

func (g *Game) render() {
	if g.renderer == nil {
		return
	}
	g.renderer.Render(g.View())
}

// View builds the read-only frame description for the renderer.
func (g *Game) View() ui.View {
	v := ui.View{
		State:  g.machine.Current(),
		Binds:  g.input.Binds(),
		World:  g.world,
		Camera: g.camera,
		Label:  ui.LabelFrom(g.label),
	}

	switch v.State {
	case appstate.MainMenu:
		v.Menu = g.mainMenu
	case appstate.SettingsMenu:
		v.Menu = g.settingsMenu
	case appstate.Overworld:
		v.Focus = g.player.Position()
		v.HalfSize = g.overworld.HalfSize
		v.Ground = g.overworld.GroundColor
	case appstate.Battle:
		v.Focus = g.board.Center()
	case appstate.Dialog:
		v.Dialog = g.dialogView
	}
	return v
}

// Close releases the terminal and the key binds watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			logger.WithError(g.logger, err).Warn("close key binds watcher")
		}
		g.watcher = nil
	}
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
