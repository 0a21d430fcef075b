package systems

import (
	"github.com/automoto/rollaball/components"
	"github.com/automoto/rollaball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterEventHandlers subscribes the controller to input and contact
// events. Call once per world, before the first update.
func RegisterEventHandlers(w donburi.World) {
	components.MoveChanged.Subscribe(w, onMoveChanged)
	components.JumpPressed.Subscribe(w, onJumpPressed)
	components.DashPressed.Subscribe(w, onDashPressed)

	components.CollisionEnter.Subscribe(w, onGroundContact)
	components.CollisionStay.Subscribe(w, onGroundContact)
	components.CollisionExit.Subscribe(w, onGroundExit)
	components.TriggerEnter.Subscribe(w, onTriggerEnter)
}

// ProcessInputEvents delivers queued input events.
func ProcessInputEvents(ecs *ecs.ECS) {
	components.MoveChanged.ProcessEvents(ecs.World)
	components.JumpPressed.ProcessEvents(ecs.World)
	components.DashPressed.ProcessEvents(ecs.World)
}

// ProcessContactEvents delivers queued collision and trigger events.
func ProcessContactEvents(ecs *ecs.ECS) {
	components.CollisionEnter.ProcessEvents(ecs.World)
	components.CollisionStay.ProcessEvents(ecs.World)
	components.CollisionExit.ProcessEvents(ecs.World)
	components.TriggerEnter.ProcessEvents(ecs.World)
}

// playerEntry resolves an event's player, or nil if it is gone or is not a
// player.
func playerEntry(w donburi.World, entity donburi.Entity) *donburi.Entry {
	if !w.Valid(entity) {
		return nil
	}
	e := w.Entry(entity)
	if !e.HasComponent(tags.Player) {
		return nil
	}
	return e
}

func onMoveChanged(w donburi.World, ev components.MoveChangedEvent) {
	if e := playerEntry(w, ev.Player); e != nil {
		SetMovementIntent(e, ev.X, ev.Z)
	}
}

func onJumpPressed(w donburi.World, ev components.JumpPressedEvent) {
	if e := playerEntry(w, ev.Player); e != nil {
		Jump(e)
	}
}

func onDashPressed(w donburi.World, ev components.DashPressedEvent) {
	if e := playerEntry(w, ev.Player); e != nil {
		Dash(e, clockNow(w))
	}
}

func isGround(w donburi.World, entity donburi.Entity) bool {
	return w.Valid(entity) && w.Entry(entity).HasComponent(tags.Ground)
}

func onGroundContact(w donburi.World, ev components.ContactEvent) {
	e := playerEntry(w, ev.Self)
	if e == nil || !isGround(w, ev.Other) {
		return
	}
	components.Player.Get(e).IsGrounded = true
}

// onGroundExit clears the grounded flag once the last ground contact ends.
func onGroundExit(w donburi.World, ev components.ContactEvent) {
	e := playerEntry(w, ev.Self)
	if e == nil || !isGround(w, ev.Other) {
		return
	}
	if contacts := components.Contacts.Get(e); len(contacts.Ground) > 0 {
		return
	}
	components.Player.Get(e).IsGrounded = false
}

func onTriggerEnter(w donburi.World, ev components.ContactEvent) {
	e := playerEntry(w, ev.Self)
	if e == nil || !w.Valid(ev.Other) {
		return
	}
	other := w.Entry(ev.Other)

	switch {
	case other.HasComponent(tags.Magnet):
		if deactivate(other) {
			ActivateMagnet(e, clockNow(w))
		}
	case other.HasComponent(tags.PickUp):
		CollectPickup(e, other)
	}
}
