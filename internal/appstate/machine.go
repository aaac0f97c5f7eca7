package appstate

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/sotora/internal/telemetry"
)

// Hook is a callback run when entering, updating or exiting a state.
type Hook func(ctx context.Context)

type hooks struct {
	enter  []Hook
	update []Hook
	exit   []Hook
}

// Machine owns the current and requested state and the hooks registered
// for each state. It holds no game objects itself.
type Machine struct {
	current     State
	pending     State
	hasPending  bool
	started     bool
	transitions int

	hooks  map[State]*hooks
	logger *slog.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transition messages.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a machine starting in the given state. Enter hooks of the
// initial state run on the first Tick.
func New(initial State, opts ...Option) *Machine {
	m := &Machine{
		current: initial,
		hooks:   make(map[State]*hooks),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Validate checks that the machine can run.
func (m *Machine) Validate() error {
	if m == nil {
		return fmt.Errorf("appstate: nil machine")
	}
	if !m.current.Valid() {
		return fmt.Errorf("initial state %d: %w", int(m.current), ErrUnknownState)
	}
	return nil
}

func (m *Machine) hooksFor(s State) *hooks {
	h, ok := m.hooks[s]
	if !ok {
		h = &hooks{}
		m.hooks[s] = h
	}
	return h
}

// OnEnter registers hooks run once each time s becomes current.
func (m *Machine) OnEnter(s State, fns ...Hook) *Machine {
	h := m.hooksFor(s)
	h.enter = append(h.enter, fns...)
	return m
}

// OnUpdate registers hooks run every tick while s is current.
func (m *Machine) OnUpdate(s State, fns ...Hook) *Machine {
	h := m.hooksFor(s)
	h.update = append(h.update, fns...)
	return m
}

// OnExit registers hooks run once each time s stops being current.
func (m *Machine) OnExit(s State, fns ...Hook) *Machine {
	h := m.hooksFor(s)
	h.exit = append(h.exit, fns...)
	return m
}

// Request records an intended transition, honored on the next Tick.
// The latest request wins. Requesting the current state drops any pending
// request, so nothing happens on the next Tick.
func (m *Machine) Request(target State) {
	if target == m.current {
		m.hasPending = false
		return
	}
	m.pending = target
	m.hasPending = true
}

// Current returns the active state.
func (m *Machine) Current() State {
	return m.current
}

// Pending returns the requested state, if any.
func (m *Machine) Pending() (State, bool) {
	return m.pending, m.hasPending
}

// Transitions returns how many state changes have been applied.
func (m *Machine) Transitions() int {
	return m.transitions
}

// Tick applies a pending transition, then runs the update hooks of the
// current state. Hooks run synchronously in registration order; requests
// they make are applied on the following Tick.
func (m *Machine) Tick(ctx context.Context) {
	if !m.started {
		m.started = true
		m.logger.Debug("entering initial state", "state", m.current)
		run(ctx, m.hooksFor(m.current).enter)
	}

	if m.hasPending {
		target := m.pending
		m.hasPending = false
		m.transition(ctx, target)
	}

	run(ctx, m.hooksFor(m.current).update)
}

func (m *Machine) transition(ctx context.Context, target State) {
	from := m.current

	tracer := telemetry.Tracer("appstate")
	ctx, span := tracer.Start(ctx, "appstate.transition")
	span.SetAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", target.String()),
	)
	defer span.End()

	run(ctx, m.hooksFor(from).exit)
	m.current = target
	m.transitions++
	run(ctx, m.hooksFor(target).enter)

	m.logger.Info("state transition", "from", from, "to", target)
}

func run(ctx context.Context, fns []Hook) {
	for _, fn := range fns {
		fn(ctx)
	}
}
