package systems

import (
	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/gamemath"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddForce applies f to body. Continuous modes accumulate until the next
// physics step; an impulse changes velocity immediately.
func AddForce(body *components.BodyData, f vector.Vector, mode components.ForceMode) {
	switch mode {
	case components.ForceModeForce:
		for i := 0; i < 3; i++ {
			body.Force[i] += f[i]
		}
	case components.ForceModeAcceleration:
		for i := 0; i < 3; i++ {
			body.Accel[i] += f[i]
		}
	case components.ForceModeImpulse:
		for i := 0; i < 3; i++ {
			body.Velocity[i] += f[i] / body.Mass
		}
	}
}

// MovePosition moves a body to target on the next physics step, keeping its
// velocity.
func MovePosition(body *components.BodyData, target vector.Vector) {
	body.PendingMove = target.Clone()
}

// UpdatePhysics integrates every rigid body one fixed step.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := clockDelta(ecs.World)
	gravity := gamemath.Vec3(cfg.Physics.GravityX, cfg.Physics.GravityY, cfg.Physics.GravityZ)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		stepBody(components.Body.Get(e), components.Transform.Get(e), gravity, dt)
		SyncObject(e)
	})
}

func stepBody(body *components.BodyData, transform *components.TransformData, gravity vector.Vector, dt float64) {
	defer clearAccumulators(body)

	if body.Kinematic {
		if body.PendingMove != nil {
			transform.Position = body.PendingMove
		}
		return
	}

	for i := 0; i < 3; i++ {
		accel := body.Force[i]/body.Mass + body.Accel[i]
		if body.UseGravity {
			accel += gravity[i]
		}
		body.Velocity[i] = gamemath.ClampSpeed(body.Velocity[i]+accel*dt, cfg.Physics.MaxSpeed)
	}

	if body.PendingMove != nil {
		transform.Position = body.PendingMove
		return
	}
	for i := 0; i < 3; i++ {
		transform.Position[i] += body.Velocity[i] * dt
	}
}

func clearAccumulators(body *components.BodyData) {
	for i := 0; i < 3; i++ {
		body.Force[i] = 0
		body.Accel[i] = 0
	}
	body.PendingMove = nil
}
