package entity

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
)

func near(a, b cp.Vector) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(cp.Vector{X: 1, Y: 2})

	if p.Position() != (cp.Vector{X: 1, Y: 2}) {
		t.Errorf("Position() = %v, want (1,2)", p.Position())
	}
	if p.Speed != DefaultSpeed {
		t.Errorf("Speed = %v, want %v", p.Speed, DefaultSpeed)
	}
	if p.Symbol != '@' {
		t.Errorf("Symbol = %q, want '@'", p.Symbol)
	}
}

func TestPlayerStepRelativeToCamera(t *testing.T) {
	tests := []struct {
		name   string
		yaw    float64
		intent Intent
		want   cp.Vector
	}{
		{"forward", 0, Intent{Forward: 1}, cp.Vector{X: 0, Y: -1}},
		{"backward", 0, Intent{Forward: -1}, cp.Vector{X: 0, Y: 1}},
		{"strafe right", 0, Intent{Strafe: 1}, cp.Vector{X: 1, Y: 0}},
		{"strafe left", 0, Intent{Strafe: -1}, cp.Vector{X: -1, Y: 0}},
		{"forward turned right", math.Pi / 2, Intent{Forward: 1}, cp.Vector{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(cp.Vector{})
			cam := &Camera{Yaw: tt.yaw}

			// 100ms at 10 u/s is one unit
			p.Step(tt.intent, cam, 100*time.Millisecond, 0)

			if !near(p.Pos, tt.want) {
				t.Errorf("Pos = %v, want %v", p.Pos, tt.want)
			}
		})
	}
}

func TestPlayerStepDiagonalIsNormalized(t *testing.T) {
	p := NewPlayer(cp.Vector{})
	p.Step(Intent{Forward: 1, Strafe: 1}, NewCamera(), 100*time.Millisecond, 0)

	if got := p.Pos.Length(); math.Abs(got-1) > 1e-9 {
		t.Errorf("diagonal step length = %v, want 1", got)
	}
}

func TestPlayerStepClampsToBound(t *testing.T) {
	p := NewPlayer(cp.Vector{X: 9.5})
	p.Step(Intent{Strafe: 1}, NewCamera(), time.Second, 10)

	if p.Pos.X != 10 {
		t.Errorf("Pos.X = %v, want clamped to 10", p.Pos.X)
	}
}

func TestPlayerStepNoIntentNoMove(t *testing.T) {
	p := NewPlayer(cp.Vector{X: 3, Y: 3})
	p.Step(Intent{}, NewCamera(), time.Second, 10)

	if p.Pos != (cp.Vector{X: 3, Y: 3}) {
		t.Errorf("Pos = %v, want unchanged", p.Pos)
	}
}

func TestCameraRotateWraps(t *testing.T) {
	c := NewCamera()
	c.Rotate(-1, 500*time.Millisecond)

	want := 2*math.Pi - math.Pi/2
	if math.Abs(c.Yaw-want) > 1e-9 {
		t.Errorf("Yaw = %v, want %v", c.Yaw, want)
	}

	c.Rotate(1, time.Second)
	if math.Abs(c.Yaw-math.Pi/2) > 1e-9 {
		t.Errorf("Yaw = %v, want pi/2", c.Yaw)
	}
}
