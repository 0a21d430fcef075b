package systems

import (
	"testing"

	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/gamemath"
	"github.com/automoto/rollaball/systems/factory"
	"github.com/yohamta/donburi"
)

func TestAddForceModes(t *testing.T) {
	cases := []struct {
		name     string
		mass     float64
		mode     components.ForceMode
		wantVelX float64 // after one physics step
	}{
		{"force_scales_by_mass", 2, components.ForceModeForce, 10.0 / 2 * testDelta},
		{"acceleration_ignores_mass", 2, components.ForceModeAcceleration, 10.0 * testDelta},
		{"impulse_is_immediate", 2, components.ForceModeImpulse, 10.0 / 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newBareWorld(t)
			pickup := factory.CreatePickUp(e, 5, 1, 5, false)
			body := components.Body.Get(pickup)
			body.Mass = c.mass

			AddForce(body, gamemath.Vec3(10, 0, 0), c.mode)
			if c.mode == components.ForceModeImpulse && !almostEqual(body.Velocity[0], c.wantVelX) {
				t.Fatalf("impulse not applied before the step: vx = %v", body.Velocity[0])
			}

			UpdatePhysics(e)
			if !almostEqual(body.Velocity[0], c.wantVelX) {
				t.Fatalf("vx = %v, want %v", body.Velocity[0], c.wantVelX)
			}
			if !almostEqual(position(pickup)[0], 5+c.wantVelX*testDelta) {
				t.Fatalf("x = %v", position(pickup)[0])
			}

			// Continuous forces last one step only.
			UpdatePhysics(e)
			if !almostEqual(body.Velocity[0], c.wantVelX) {
				t.Fatalf("force carried into the next step: vx = %v", body.Velocity[0])
			}
		})
	}
}

func TestGravity(t *testing.T) {
	e := newBareWorld(t)
	player := factory.CreatePlayer(e, 5, 3, 5)

	UpdatePhysics(e)

	if !almostEqual(velocity(player)[1], cfg.Physics.GravityY*testDelta) {
		t.Fatalf("vy = %v", velocity(player)[1])
	}
}

func TestKinematicBodyOnlyMovesByPosition(t *testing.T) {
	e := newBareWorld(t)
	pickup := factory.CreatePickUp(e, 5, 1, 5, true)
	body := components.Body.Get(pickup)

	AddForce(body, gamemath.Vec3(10, 10, 10), components.ForceModeForce)
	UpdatePhysics(e)
	if p := position(pickup); p[0] != 5 || p[1] != 1 || p[2] != 5 {
		t.Fatalf("kinematic body moved by force to %v", p)
	}

	MovePosition(body, gamemath.Vec3(6, 1, 7))
	UpdatePhysics(e)
	if p := position(pickup); p[0] != 6 || p[2] != 7 {
		t.Fatalf("position = %v, want (6, 1, 7)", p)
	}
	obj := components.Object.Get(pickup).Object
	if !almostEqual(obj.X+obj.W/2, 6) || !almostEqual(obj.Y+obj.H/2, 7) {
		t.Fatalf("footprint not synced: %v,%v", obj.X, obj.Y)
	}
}

func TestEntitiesWithin(t *testing.T) {
	e := newBareWorld(t)
	inside := factory.CreatePickUp(e, 10, 0.5, 12, true)
	edge := factory.CreatePickUp(e, 10, 0.5, 13.2, true)
	outside := factory.CreatePickUp(e, 16, 0.5, 10, true)
	factory.CreateMagnet(e, 11, 0.5, 10)

	found := EntitiesWithin(e.World, gamemath.Vec3(10, 0.5, 10), 3, "pickup")

	got := map[donburi.Entity]bool{}
	for _, f := range found {
		got[f.Entity()] = true
	}
	if !got[inside.Entity()] || !got[edge.Entity()] {
		t.Fatalf("missing pickups in range: %v", found)
	}
	if got[outside.Entity()] {
		t.Fatal("pickup out of range returned")
	}
	if len(found) != 2 {
		t.Fatalf("found %d entities, want 2", len(found))
	}
}
