// Package gamemath holds the pure vector helpers used by the simulation.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// Vec3 builds a 3D vector.
func Vec3(x, y, z float64) vector.Vector {
	return vector.Vector{x, y, z}
}

// Zero returns a new zero 3D vector.
func Zero() vector.Vector {
	return vector.Vector{0, 0, 0}
}

// MoveTowards moves current toward target by at most maxDelta and never
// past it. The result is always a new vector.
func MoveTowards(current, target vector.Vector, maxDelta float64) vector.Vector {
	delta := target.Sub(current)
	dist := delta.Magnitude()
	if dist <= maxDelta || dist == 0 {
		return target.Clone()
	}
	return current.Add(delta.Scale(maxDelta / dist))
}

// GroundDirection returns the unit vector of (x, 0, z), or ok=false when the
// input is exactly zero.
func GroundDirection(x, z float64) (dir vector.Vector, ok bool) {
	if x == 0 && z == 0 {
		return Zero(), false
	}
	l := math.Hypot(x, z)
	return vector.Vector{x / l, 0, z / l}, true
}

// HorizontalDistance is the distance between a and b on the XZ plane.
func HorizontalDistance(a, b vector.Vector) float64 {
	return math.Hypot(a[0]-b[0], a[2]-b[2])
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
