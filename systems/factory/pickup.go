package factory

import (
	"github.com/automoto/rollaball/archetypes"
	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/gamemath"
	"github.com/automoto/rollaball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePickUp spawns a scoring pickup. A kinematic pickup is translated
// directly by the magnet; a dynamic one is moved through its body.
func CreatePickUp(ecs *ecs.ECS, x, y, z float64, kinematic bool) *donburi.Entry {
	pickup := archetypes.PickUp.Spawn(ecs)

	r := cfg.Pickup.Radius
	obj := footprint(x, z, r, tags.ResolvPickUp)
	obj.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Transform.SetValue(pickup, components.TransformData{
		Position: gamemath.Vec3(x, y, z),
	})
	components.Body.SetValue(pickup, components.BodyData{
		Velocity:  gamemath.Zero(),
		Mass:      cfg.Pickup.Mass,
		Radius:    r,
		Kinematic: kinematic,
		// Dynamic pickups float; only the magnet moves them.
		UseGravity: false,
		Force:      gamemath.Zero(),
		Accel:      gamemath.Zero(),
	})
	components.Pickup.SetValue(pickup, components.PickupData{Active: true})

	return pickup
}

// CreateMagnet spawns a magnet power-up.
func CreateMagnet(ecs *ecs.ECS, x, y, z float64) *donburi.Entry {
	magnet := archetypes.Magnet.Spawn(ecs)

	obj := footprint(x, z, cfg.Pickup.Radius, tags.ResolvMagnet)
	obj.Data = magnet
	components.Object.SetValue(magnet, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Transform.SetValue(magnet, components.TransformData{
		Position: gamemath.Vec3(x, y, z),
	})
	components.Pickup.SetValue(magnet, components.PickupData{Active: true})

	return magnet
}
