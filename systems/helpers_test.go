package systems

import (
	"math"
	"testing"

	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/systems/factory"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDelta = 0.02

type fakeScoreboard struct {
	texts   []string
	winSets []bool
}

func (f *fakeScoreboard) SetCountText(s string)      { f.texts = append(f.texts, s) }
func (f *fakeScoreboard) SetWinVisible(visible bool) { f.winSets = append(f.winSets, visible) }

func (f *fakeScoreboard) lastText() string {
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

func (f *fakeScoreboard) winShownCount() int {
	n := 0
	for _, v := range f.winSets {
		if v {
			n++
		}
	}
	return n
}

// newTestWorld builds a 20x20 arena with a flat floor at y=0 and a player
// resting at (x, z).
func newTestWorld(t *testing.T, x, z float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := newBareWorld(t)
	factory.CreateGround(e, 0, 0, 20, 20, 0)
	player := factory.CreatePlayer(e, x, cfg.Player.Radius, z)
	return e, player
}

// newBareWorld has a space and a clock but nothing in it.
func newBareWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	RegisterEventHandlers(e.World)
	factory.CreateSpace(e, 20, 20, 1)
	factory.CreateClock(e, testDelta)
	return e
}

// tick runs one step of the gameplay systems in scene order.
func tick(e *ecs.ECS) {
	ProcessInputEvents(e)
	UpdateTimers(e)
	UpdatePlayer(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	ProcessContactEvents(e)
	UpdateScoreboard(e)
	UpdateCamera(e)
}

// stepsFor is the number of fixed steps covering seconds.
func stepsFor(seconds float64) int {
	return int(math.Round(seconds / testDelta))
}

func ticks(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		tick(e)
	}
}

// advanceClock moves only the clock and timers forward n steps.
func advanceClock(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdateTimers(e)
	}
}

func position(e *donburi.Entry) vector.Vector {
	return components.Transform.Get(e).Position
}

func velocity(e *donburi.Entry) vector.Vector {
	return components.Body.Get(e).Velocity
}

func withPlayerConfig(t *testing.T, mutate func(p *cfg.PlayerConfig)) {
	t.Helper()
	saved := cfg.Player
	t.Cleanup(func() { cfg.Player = saved })
	mutate(&cfg.Player)
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
