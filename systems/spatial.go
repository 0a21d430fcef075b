package systems

import (
	"math"

	"github.com/automoto/rollaball/components"
	"github.com/automoto/rollaball/tags"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SyncObject moves an entity's resolv footprint to its transform.
func SyncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) || !e.HasComponent(components.Transform) {
		return
	}
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	pos := components.Transform.Get(e).Position
	obj.X = pos[0] - obj.W/2
	obj.Y = pos[2] - obj.H/2
	obj.Update()
}

// EntitiesWithin returns the entities whose bounds intersect the sphere at
// center with the given radius. Only footprints carrying one of resolvTags
// are considered.
func EntitiesWithin(w donburi.World, center vector.Vector, radius float64, resolvTags ...string) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry).Space

	query := resolv.NewObject(center[0]-radius, center[2]-radius, 2*radius, 2*radius, tags.ResolvQuery)
	space.Add(query)
	defer space.Remove(query)
	query.Update()

	check := query.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}

	seen := map[donburi.Entity]bool{}
	var found []*donburi.Entry
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() || seen[entry.Entity()] {
			continue
		}
		if !intersectsSphere(entry, obj, center, radius) {
			continue
		}
		seen[entry.Entity()] = true
		found = append(found, entry)
	}
	return found
}

// intersectsSphere treats entities with a transform as spheres of half their
// footprint width; anything else is tested as its XZ rectangle.
func intersectsSphere(entry *donburi.Entry, obj *resolv.Object, center vector.Vector, radius float64) bool {
	if entry.HasComponent(components.Transform) {
		pos := components.Transform.Get(entry).Position
		reach := radius + obj.W/2
		dx, dy, dz := pos[0]-center[0], pos[1]-center[1], pos[2]-center[2]
		return dx*dx+dy*dy+dz*dz <= reach*reach
	}
	cx := math.Max(obj.X, math.Min(center[0], obj.X+obj.W))
	cz := math.Max(obj.Y, math.Min(center[2], obj.Y+obj.H))
	dx, dz := cx-center[0], cz-center[2]
	return dx*dx+dz*dz <= radius*radius
}

// removeFromSpace takes an entity's footprint out of all queries.
func removeFromSpace(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e).Object
	if obj != nil && obj.Space != nil {
		obj.Space.Remove(obj)
	}
}
