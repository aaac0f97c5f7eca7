// Package entity provides the player and camera models of the overworld.
package entity

import (
	"time"

	"github.com/jakecoffman/cp"
)

// DefaultSpeed is the player's walking speed in world units per second.
const DefaultSpeed = 10.0

// Intent is the movement requested for one tick, in camera space.
// Forward is +1 (forward), -1 (backward) or 0; Strafe is +1 (right), -1 (left) or 0.
type Intent struct {
	Forward float64
	Strafe  float64
}

// IsZero reports whether no movement was requested.
func (i Intent) IsZero() bool {
	return i.Forward == 0 && i.Strafe == 0
}

// Player represents the player-controlled character on the ground plane.
type Player struct {
	Pos    cp.Vector // Current position on the ground plane
	Speed  float64   // World units per second
	Symbol rune      // Display symbol
}

// NewPlayer creates a new player at the given position.
func NewPlayer(pos cp.Vector) *Player {
	return &Player{
		Pos:    pos,
		Speed:  DefaultSpeed,
		Symbol: '@',
	}
}

// Step moves the player by intent relative to the camera's facing for dt,
// keeping it inside the square [-bound, bound] when bound > 0.
func (p *Player) Step(intent Intent, cam *Camera, dt time.Duration, bound float64) {
	if intent.IsZero() || dt <= 0 {
		return
	}

	dir := cam.Forward().Mult(intent.Forward).Add(cam.Right().Mult(intent.Strafe))
	if dir.Length() > 1 {
		dir = dir.Normalize()
	}
	delta := dir.Mult(p.Speed * dt.Seconds())
	p.Pos = p.Pos.Add(delta)

	if bound > 0 {
		p.Pos.X = clamp(p.Pos.X, -bound, bound)
		p.Pos.Y = clamp(p.Pos.Y, -bound, bound)
	}
}

// Position returns the current position.
func (p *Player) Position() cp.Vector {
	return p.Pos
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
