package systems

import (
	"math"

	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads for every player and publishes the
// resulting input events. Must run BEFORE ProcessInputEvents.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		pollDevices(input, gamepadIDs)
		PublishInputEvents(ecs.World, entry, input)
	})
}

// pollDevices swaps the input buffers and reads the current device state.
func pollDevices(input *components.PlayerInputData, gamepads []ebiten.GamepadID) {
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}
	input.Analog = dmath.Vec2{}

	if input.BoundGamepadID != nil {
		gamepads = []ebiten.GamepadID{*input.BoundGamepadID}
	}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
			}
		}
		for _, gpID := range gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.CurrentInput[actionID] = true
				}
			}
		}
	}

	input.Analog = analogStick(gamepads)
}

// analogStick reads the first left stick outside the deadzone. Stick up is
// world +Z.
func analogStick(gamepads []ebiten.GamepadID) dmath.Vec2 {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		z := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(x, z) <= deadzone {
			continue
		}
		return dmath.NewVec2(x, z)
	}
	return dmath.Vec2{}
}

// MoveVector combines the analog stick and the digital move actions into a
// ground-plane intent of length at most 1. The stick wins when it is used.
func MoveVector(input *components.PlayerInputData) dmath.Vec2 {
	if input.Analog.X != 0 || input.Analog.Y != 0 {
		if l := math.Hypot(input.Analog.X, input.Analog.Y); l > 1 {
			return dmath.NewVec2(input.Analog.X/l, input.Analog.Y/l)
		}
		return input.Analog
	}

	var x, z float64
	if input.CurrentInput[cfg.ActionMoveLeft] {
		x--
	}
	if input.CurrentInput[cfg.ActionMoveRight] {
		x++
	}
	if input.CurrentInput[cfg.ActionMoveForward] {
		z++
	}
	if input.CurrentInput[cfg.ActionMoveBack] {
		z--
	}
	if x != 0 && z != 0 {
		l := math.Hypot(x, z)
		x, z = x/l, z/l
	}
	return dmath.NewVec2(x, z)
}

// PublishInputEvents turns an input snapshot into controller events: a move
// change when the move vector differs from the last one sent, and jump/dash
// on the frame their button goes down.
func PublishInputEvents(w donburi.World, entry *donburi.Entry, input *components.PlayerInputData) {
	player := entry.Entity()

	if move := MoveVector(input); move != input.LastMove {
		input.LastMove = move
		components.MoveChanged.Publish(w, components.MoveChangedEvent{Player: player, X: move.X, Z: move.Y})
	}
	if input.Action(cfg.ActionJump).JustPressed {
		components.JumpPressed.Publish(w, components.JumpPressedEvent{Player: player})
	}
	if input.Action(cfg.ActionDash).JustPressed {
		components.DashPressed.Publish(w, components.DashPressedEvent{Player: player})
	}
}
