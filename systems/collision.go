package systems

import (
	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions rests bodies on ground surfaces and reports the player's
// ground contacts and trigger overlaps as events.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Kinematic || !e.HasComponent(components.Transform) || !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e).Object
		if obj == nil {
			return
		}

		grounds := resolveGroundContacts(body, components.Transform.Get(e), obj)
		SyncObject(e)

		if !e.HasComponent(components.Contacts) {
			return
		}
		contacts := components.Contacts.Get(e)
		publishGroundContacts(ecs.World, e, contacts, grounds)
		publishTriggers(ecs.World, e, contacts, body)
	})
}

// resolveGroundContacts pushes a body resting on or slightly into a ground
// surface back on top of it and returns the surfaces it touches.
func resolveGroundContacts(body *components.BodyData, transform *components.TransformData, obj *resolv.Object) []*donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvGround)
	if check == nil {
		return nil
	}

	pos := transform.Position
	var touching []*donburi.Entry
	for _, groundObj := range check.ObjectsByTags(tags.ResolvGround) {
		groundEntry, ok := groundObj.Data.(*donburi.Entry)
		if !ok || groundEntry == nil || !groundEntry.Valid() {
			continue
		}
		if !footprintContains(groundObj, pos[0], pos[2]) {
			continue
		}

		top := components.Ground.Get(groundEntry).Top
		bottom := pos[1] - body.Radius
		if bottom > top+cfg.Physics.ContactSlop || bottom < top-cfg.Physics.MaxPenetration {
			continue
		}

		if bottom < top {
			pos[1] = top + body.Radius
		}
		if body.Velocity[1] < 0 {
			body.Velocity[1] = 0
		}
		touching = append(touching, groundEntry)
	}
	return touching
}

func footprintContains(obj *resolv.Object, x, z float64) bool {
	return x >= obj.X && x <= obj.X+obj.W && z >= obj.Y && z <= obj.Y+obj.H
}

func publishGroundContacts(w donburi.World, self *donburi.Entry, contacts *components.ContactsData, grounds []*donburi.Entry) {
	current := make(map[donburi.Entity]struct{}, len(grounds))
	for _, g := range grounds {
		ev := components.ContactEvent{Self: self.Entity(), Other: g.Entity()}
		if _, ok := contacts.Ground[g.Entity()]; ok {
			components.CollisionStay.Publish(w, ev)
		} else {
			components.CollisionEnter.Publish(w, ev)
		}
		current[g.Entity()] = struct{}{}
	}
	for prev := range contacts.Ground {
		if _, ok := current[prev]; !ok {
			components.CollisionExit.Publish(w, components.ContactEvent{Self: self.Entity(), Other: prev})
		}
	}
	contacts.Ground = current
}

func publishTriggers(w donburi.World, self *donburi.Entry, contacts *components.ContactsData, body *components.BodyData) {
	current := map[donburi.Entity]struct{}{}
	pos := components.Transform.Get(self).Position

	for _, other := range EntitiesWithin(w, pos, body.Radius, tags.ResolvPickUp, tags.ResolvMagnet) {
		if other.Entity() == self.Entity() {
			continue
		}
		current[other.Entity()] = struct{}{}
		if _, ok := contacts.Triggers[other.Entity()]; ok {
			continue
		}
		components.TriggerEnter.Publish(w, components.ContactEvent{Self: self.Entity(), Other: other.Entity()})
	}
	contacts.Triggers = current
}
