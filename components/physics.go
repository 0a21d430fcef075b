package components

import (
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// ForceMode selects how AddForce changes a body's velocity.
type ForceMode int

const (
	// ForceModeForce is a continuous force, scaled by mass and step length.
	ForceModeForce ForceMode = iota
	// ForceModeAcceleration is a continuous acceleration, ignoring mass.
	ForceModeAcceleration
	// ForceModeImpulse is an instant velocity change scaled by mass.
	ForceModeImpulse
)

type BodyData struct {
	Velocity   vector.Vector
	Mass       float64
	Radius     float64
	Kinematic  bool // moved only by direct position assignment
	UseGravity bool

	// Accumulated for the next step and cleared by the physics system.
	Force vector.Vector
	Accel vector.Vector

	// PendingMove is the target of a MovePosition call, applied on the next step.
	PendingMove vector.Vector
}

var Body = donburi.NewComponentType[BodyData]()
