package systems

import (
	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances the simulation clock one step and fires the dash
// cooldown and magnet deadlines that are due.
func UpdateTimers(ecs *ecs.ECS) {
	now := 0.0
	if clockEntry, ok := components.Clock.First(ecs.World); ok {
		clock := components.Clock.Get(clockEntry)
		clock.Advance()
		now = clock.Now
	}

	components.Dash.Each(ecs.World, func(e *donburi.Entry) {
		dash := components.Dash.Get(e)
		if dash.Cooldown.Expired(now) {
			dash.CanDash = true
		}
	})

	components.Magnet.Each(ecs.World, func(e *donburi.Entry) {
		magnet := components.Magnet.Get(e)
		if magnet.Window.Expired(now) {
			magnet.Active = false
		}
	})
}

func clockNow(w donburi.World) float64 {
	if clockEntry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(clockEntry).Now
	}
	return 0
}

func clockDelta(w donburi.World) float64 {
	if clockEntry, ok := components.Clock.First(w); ok {
		if d := components.Clock.Get(clockEntry).Delta; d > 0 {
			return d
		}
	}
	return cfg.FixedDelta()
}
