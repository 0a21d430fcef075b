package components

import (
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	// MovementIntent is the last received move vector (X = world x, Y = world z).
	// It persists until the next MoveChanged event.
	MovementIntent math.Vec2
	IsGrounded     bool
	// Forward is the facing direction on the ground plane, used when dashing
	// without movement intent.
	Forward vector.Vector
}

var Player = donburi.NewComponentType[PlayerData]()

// DashData tracks dash availability.
type DashData struct {
	CanDash  bool
	Cooldown Timer
}

var Dash = donburi.NewComponentType[DashData]()

// MagnetData tracks the magnet power-up window.
type MagnetData struct {
	Active bool
	Window Timer
}

var Magnet = donburi.NewComponentType[MagnetData]()

// ScoreData tracks collected pickups and the win state.
type ScoreData struct {
	Count  int
	HasWon bool
	// Dirty is set when Count changed since the scoreboard last saw it.
	Dirty bool
}

var Score = donburi.NewComponentType[ScoreData]()
