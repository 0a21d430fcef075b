package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MoveChangedEvent carries a new movement intent (X = world x, Z = world z).
type MoveChangedEvent struct {
	Player donburi.Entity
	X, Z   float64
}

// JumpPressedEvent is a discrete jump request.
type JumpPressedEvent struct {
	Player donburi.Entity
}

// DashPressedEvent is a discrete dash request.
type DashPressedEvent struct {
	Player donburi.Entity
}

// ContactEvent reports a body touching a solid surface (collision) or
// overlapping a trigger volume.
type ContactEvent struct {
	Self  donburi.Entity
	Other donburi.Entity
}

var (
	MoveChanged = events.NewEventType[MoveChangedEvent]()
	JumpPressed = events.NewEventType[JumpPressedEvent]()
	DashPressed = events.NewEventType[DashPressedEvent]()

	// CollisionEnter and CollisionStay are both published while touching;
	// CollisionExit fires once when contact ends.
	CollisionEnter = events.NewEventType[ContactEvent]()
	CollisionStay  = events.NewEventType[ContactEvent]()
	CollisionExit  = events.NewEventType[ContactEvent]()

	TriggerEnter = events.NewEventType[ContactEvent]()
)
