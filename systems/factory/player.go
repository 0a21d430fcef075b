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

// CreatePlayer spawns the ball at (x, y, z), grounded and with dash ready.
func CreatePlayer(ecs *ecs.ECS, x, y, z float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	r := cfg.Player.Radius
	obj := footprint(x, z, r, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Transform.SetValue(player, components.TransformData{
		Position: gamemath.Vec3(x, y, z),
	})
	components.Body.SetValue(player, components.BodyData{
		Velocity:   gamemath.Zero(),
		Mass:       cfg.Player.Mass,
		Radius:     r,
		UseGravity: true,
		Force:      gamemath.Zero(),
		Accel:      gamemath.Zero(),
	})
	components.Player.SetValue(player, components.PlayerData{
		IsGrounded: true,
		Forward:    gamemath.Vec3(0, 0, 1),
	})
	components.Dash.SetValue(player, components.DashData{
		CanDash: true,
	})
	components.Magnet.SetValue(player, components.MagnetData{})
	components.Score.SetValue(player, components.ScoreData{
		Dirty: true, // push the initial "Count: 0"
	})
	components.Contacts.SetValue(player, components.ContactsData{
		Ground:   map[donburi.Entity]struct{}{},
		Triggers: map[donburi.Entity]struct{}{},
	})

	return player
}
