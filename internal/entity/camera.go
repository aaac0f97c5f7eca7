package entity

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
)

// RotateSpeed is the camera turn rate in radians per second.
const RotateSpeed = math.Pi

// Camera orbits the player (overworld) or the board (battle).
// Yaw 0 looks toward negative Y, which is "up" on screen.
type Camera struct {
	Yaw float64
}

// NewCamera creates a camera looking up the screen.
func NewCamera() *Camera {
	return &Camera{}
}

// Rotate turns the camera by dir (+1 clockwise, -1 counter-clockwise) for dt.
func (c *Camera) Rotate(dir float64, dt time.Duration) {
	if dir == 0 || dt <= 0 {
		return
	}
	c.Yaw = math.Mod(c.Yaw+dir*RotateSpeed*dt.Seconds(), 2*math.Pi)
	if c.Yaw < 0 {
		c.Yaw += 2 * math.Pi
	}
}

// Forward returns the unit vector the camera looks along.
func (c *Camera) Forward() cp.Vector {
	return cp.Vector{X: math.Sin(c.Yaw), Y: -math.Cos(c.Yaw)}
}

// Right returns the unit vector to the camera's right.
func (c *Camera) Right() cp.Vector {
	return cp.Vector{X: math.Cos(c.Yaw), Y: math.Sin(c.Yaw)}
}
