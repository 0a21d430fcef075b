package factory

import (
	"github.com/automoto/rollaball/archetypes"
	"github.com/automoto/rollaball/components"
	"github.com/automoto/rollaball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates a walkable rectangle on the XZ plane with its top
// surface at height top.
func CreateGround(ecs *ecs.ECS, x, z, w, d, top float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := resolv.NewObject(x, z, w, d, tags.ResolvGround)
	obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	obj.Data = ground // Link for O(1) lookup

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	components.Ground.SetValue(ground, components.GroundData{Top: top})
	addToSpace(ecs, obj)

	return ground
}
