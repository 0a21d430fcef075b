package scenes

import (
	"errors"
	"math"

	"github.com/automoto/rollaball/assets"
	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/systems"
	factory2 "github.com/automoto/rollaball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulation is an arena world with every gameplay system registered and no
// renderers. The windowed scene and the headless runner both drive one.
type Simulation struct {
	ECS    *ecs.ECS
	Player *donburi.Entry
	Camera *donburi.Entry
	Arena  *assets.Arena
}

// SimulationOptions selects the collaborators a simulation is wired to.
type SimulationOptions struct {
	// Input runs first each tick and publishes input events. Nil means no
	// input source; tests drive the controller directly.
	Input ecs.System
	// Tuning delivers reloaded player values. May be nil.
	Tuning <-chan *cfg.Tuning
	// Scoreboard receives count and win updates. May be nil.
	Scoreboard components.Scoreboard
}

// NewSimulation builds a world from arena.
func NewSimulation(arena *assets.Arena, opts SimulationOptions) (*Simulation, error) {
	if arena == nil {
		return nil, errors.New("new simulation: nil arena")
	}

	e := ecs.NewECS(donburi.NewWorld())
	systems.RegisterEventHandlers(e.World)

	if opts.Tuning != nil {
		e.AddSystem(systems.NewUpdateTuning(opts.Tuning))
	}
	if opts.Input != nil {
		e.AddSystem(opts.Input)
	}
	e.AddSystem(systems.ProcessInputEvents)
	e.AddSystem(systems.UpdateTimers)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.ProcessContactEvents)
	e.AddSystem(systems.UpdateScoreboard)
	e.AddSystem(systems.UpdateCamera)

	sim := &Simulation{ECS: e, Arena: arena}
	sim.populate(opts.Scoreboard)
	return sim, nil
}

func (s *Simulation) populate(sink components.Scoreboard) {
	cell := cfg.Arena.CellSize
	factory2.CreateSpace(s.ECS, int(math.Ceil(s.Arena.Width)), int(math.Ceil(s.Arena.Depth)), cell)
	factory2.CreateClock(s.ECS, cfg.FixedDelta())
	if sink != nil {
		factory2.CreateScoreboard(s.ECS, sink)
	}

	for _, g := range s.Arena.Grounds {
		factory2.CreateGround(s.ECS, g.X, g.Z, g.W, g.D, g.Top)
	}

	for _, p := range s.Arena.PickUps {
		top, _ := s.Arena.GroundTopAt(p.X, p.Z)
		factory2.CreatePickUp(s.ECS, p.X, top+cfg.Pickup.Height, p.Z, !p.Dynamic)
	}
	for _, m := range s.Arena.Magnets {
		top, _ := s.Arena.GroundTopAt(m.X, m.Z)
		factory2.CreateMagnet(s.ECS, m.X, top+cfg.Pickup.Height, m.Z)
	}

	spawn := s.Arena.Spawn
	top, _ := s.Arena.GroundTopAt(spawn.X, spawn.Z)
	s.Player = factory2.CreatePlayer(s.ECS, spawn.X, top+cfg.Player.Radius, spawn.Z)
	s.Camera = factory2.CreateCamera(s.ECS, s.Player)
}

// Step advances the world one fixed tick.
func (s *Simulation) Step() {
	s.ECS.Update()
}

// Now is the simulation time in seconds.
func (s *Simulation) Now() float64 {
	if clockEntry, ok := components.Clock.First(s.ECS.World); ok {
		return components.Clock.Get(clockEntry).Now
	}
	return 0
}
