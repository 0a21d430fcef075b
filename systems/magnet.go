package systems

import (
	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/gamemath"
	"github.com/automoto/rollaball/tags"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// ActivateMagnet opens a new magnet window. A window already running is
// superseded, so its deadline never fires.
func ActivateMagnet(playerEntry *donburi.Entry, now float64) {
	magnet := components.Magnet.Get(playerEntry)
	magnet.Window.Start(now, cfg.Player.MagnetDuration)
	magnet.Active = true
}

// PullPickups moves every active pickup within the magnet radius toward the
// player on the ground plane. The pickup's height is left alone.
func PullPickups(w donburi.World, playerEntry *donburi.Entry) {
	center := components.Transform.Get(playerEntry).Position
	step := cfg.Player.MagnetPullSpeed * clockDelta(w)

	for _, e := range EntitiesWithin(w, center, cfg.Player.MagnetRadius, tags.ResolvPickUp) {
		if !e.HasComponent(tags.PickUp) || !components.Pickup.Get(e).Active {
			continue
		}
		pullPickup(e, center, step)
	}
}

func pullPickup(e *donburi.Entry, center vector.Vector, step float64) {
	transform := components.Transform.Get(e)
	target := gamemath.Vec3(center[0], transform.Position[1], center[2])
	next := gamemath.MoveTowards(transform.Position, target, step)

	if e.HasComponent(components.Body) {
		if body := components.Body.Get(e); !body.Kinematic {
			MovePosition(body, next)
			return
		}
	}
	transform.Position = next
	SyncObject(e)
}
