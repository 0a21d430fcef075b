package components

import (
	cfg "github.com/automoto/rollaball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores the current and previous frame's pressed state for
// all actions. JustPressed/JustReleased are computed on demand by comparing
// frames.
type PlayerInputData struct {
	CurrentInput   [cfg.ActionCount]bool
	PreviousInput  [cfg.ActionCount]bool
	Analog         math.Vec2          // Left stick after deadzone (X = x, Y = z)
	BoundGamepadID *ebiten.GamepadID // nil = any connected gamepad
	// LastMove is the last move vector published, so MoveChanged only fires on change.
	LastMove math.Vec2
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Action returns the temporal state of id.
func (in *PlayerInputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.CurrentInput[id],
		JustPressed:  in.CurrentInput[id] && !in.PreviousInput[id],
		JustReleased: !in.CurrentInput[id] && in.PreviousInput[id],
	}
}

// JumpHeld reports whether the jump action is currently held.
func (in *PlayerInputData) JumpHeld() bool {
	return in.CurrentInput[cfg.ActionJump]
}
