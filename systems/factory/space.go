package factory

import (
	"github.com/automoto/rollaball/archetypes"
	"github.com/automoto/rollaball/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the XZ spatial hash. Sizes are in world units.
func CreateSpace(ecs *ecs.ECS, width, depth, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, depth, cellSize, cellSize),
	})
	return space
}

// addToSpace registers obj with the world's space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// footprint builds the resolv object for a sphere of radius r centred on (x, z).
func footprint(x, z, r float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x-r, z-r, 2*r, 2*r, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	return obj
}
