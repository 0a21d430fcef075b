package archetypes

import (
	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Body,
		components.Object,
		components.PlayerInput,
		components.Dash,
		components.Magnet,
		components.Score,
		components.Contacts,
	)
	PickUp = newArchetype(
		tags.PickUp,
		components.Pickup,
		components.Transform,
		components.Body,
		components.Object,
	)
	Magnet = newArchetype(
		tags.Magnet,
		components.Pickup,
		components.Transform,
		components.Object,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Ground,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Scoreboard = newArchetype(
		components.ScoreboardSink,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
