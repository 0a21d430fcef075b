package systems

import (
	"math"

	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the per-step controller: movement force, jump/fall
// shaping and the magnet pull. Must run BEFORE UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs.World, playerEntry)
	})
}

func updateSinglePlayer(w donburi.World, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	applyMovementForce(player, body)
	applyGravityShaping(body, jumpHeld(playerEntry))

	if magnet := components.Magnet.Get(playerEntry); magnet.Active {
		PullPickups(w, playerEntry)
	}

	updateFacing(player, body)
}

func applyMovementForce(player *components.PlayerData, body *components.BodyData) {
	intent := player.MovementIntent
	AddForce(body, gamemath.Vec3(intent.X*cfg.Player.Speed, 0, intent.Y*cfg.Player.Speed), components.ForceModeForce)
}

// applyGravityShaping makes falls faster than rises, and cuts a rise short
// once the jump input is released.
func applyGravityShaping(body *components.BodyData, jumpHeld bool) {
	g := cfg.Physics.GravityY
	vy := body.Velocity[1]

	if vy < 0 {
		AddForce(body, gamemath.Vec3(0, g*(cfg.Player.FallMultiplier-1), 0), components.ForceModeAcceleration)
	} else if vy > 0 && !jumpHeld {
		AddForce(body, gamemath.Vec3(0, g*(cfg.Player.LowJumpMultiplier-1), 0), components.ForceModeAcceleration)
	}
}

func updateFacing(player *components.PlayerData, body *components.BodyData) {
	vx, vz := body.Velocity[0], body.Velocity[2]
	if math.Hypot(vx, vz) < cfg.Player.FacingSpeedThreshold {
		return
	}
	if dir, ok := gamemath.GroundDirection(vx, vz); ok {
		player.Forward = dir
	}
}

func jumpHeld(playerEntry *donburi.Entry) bool {
	if !playerEntry.HasComponent(components.PlayerInput) {
		return false
	}
	return components.PlayerInput.Get(playerEntry).JumpHeld()
}

// SetMovementIntent stores a new movement intent. It persists until replaced.
func SetMovementIntent(playerEntry *donburi.Entry, x, z float64) {
	player := components.Player.Get(playerEntry)
	player.MovementIntent.X = x
	player.MovementIntent.Y = z
}

// Jump launches the player if grounded. Vertical velocity is zeroed first so
// every jump reaches the same height. Returns false when the jump is ignored.
func Jump(playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if !player.IsGrounded {
		return false
	}

	body := components.Body.Get(playerEntry)
	body.Velocity[1] = 0
	AddForce(body, gamemath.Vec3(0, cfg.Player.JumpForce, 0), components.ForceModeImpulse)
	player.IsGrounded = false
	return true
}

// Dash bursts along the movement intent, or along the facing direction when
// there is none, and starts the cooldown. Returns false while cooling down.
func Dash(playerEntry *donburi.Entry, now float64) bool {
	dash := components.Dash.Get(playerEntry)
	if !dash.CanDash {
		return false
	}

	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	dir, ok := gamemath.GroundDirection(player.MovementIntent.X, player.MovementIntent.Y)
	if !ok {
		dir, ok = gamemath.GroundDirection(player.Forward[0], player.Forward[2])
		if !ok {
			dir = gamemath.Vec3(0, 0, 1)
		}
	}

	body.Velocity[0] *= 0.5
	body.Velocity[2] *= 0.5
	AddForce(body, dir.Scale(cfg.Player.DashForce), components.ForceModeImpulse)

	dash.CanDash = false
	dash.Cooldown.Start(now, cfg.Player.DashCooldown)
	return true
}
