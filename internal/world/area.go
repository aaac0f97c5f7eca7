package world

import "github.com/jakecoffman/cp"

// Area is a named rectangular region of the overworld ground plane.
// Entering a different area shows its name in the HUD.
type Area struct {
	Name string
	X, Y float64 // Top-left corner on the ground plane
	W, H float64 // Dimensions of the area
}

// Center returns the center of the area.
func (a Area) Center() cp.Vector {
	return cp.Vector{X: a.X + a.W/2, Y: a.Y + a.H/2}
}

// Contains returns true if the given point is inside the area.
func (a Area) Contains(p cp.Vector) bool {
	return p.X >= a.X && p.X < a.X+a.W && p.Y >= a.Y && p.Y < a.Y+a.H
}

// Intersects returns true if this area overlaps with another area.
func (a Area) Intersects(other Area) bool {
	return a.X < other.X+other.W &&
		a.X+a.W > other.X &&
		a.Y < other.Y+other.H &&
		a.Y+a.H > other.Y
}

// AreaAt returns the first area containing p, in slice order.
func AreaAt(areas []Area, p cp.Vector) (Area, bool) {
	for _, a := range areas {
		if a.Contains(p) {
			return a, true
		}
	}
	return Area{}, false
}
