package systems

import (
	cfg "github.com/automoto/rollaball/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTuning returns a system that applies reloaded tuning values at the
// start of a tick. It never blocks on updates.
func NewUpdateTuning(updates <-chan *cfg.Tuning) ecs.System {
	return func(ecs *ecs.ECS) {
		select {
		case t, ok := <-updates:
			if ok && t != nil {
				t.Apply(&cfg.Player)
			}
		default:
		}
	}
}
