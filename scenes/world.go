package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/rollaball/assets"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/systems"
	"github.com/automoto/rollaball/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ArenaScene is the playable roll-a-ball scene.
type ArenaScene struct {
	sim    *Simulation
	hud    *ui.ScoreboardUI
	arena  *assets.Arena
	tuning <-chan *cfg.Tuning
	once   sync.Once
}

// NewArenaScene creates the scene for arena. tuning may be nil.
func NewArenaScene(arena *assets.Arena, tuning <-chan *cfg.Tuning) *ArenaScene {
	return &ArenaScene{arena: arena, tuning: tuning}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.sim.Step()
	as.hud.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.sim == nil {
		return
	}
	as.sim.ECS.Draw(screen)
	as.hud.Draw(screen)
}

func (as *ArenaScene) configure() {
	hud, err := ui.NewScoreboardUI()
	if err != nil {
		panic("failed to build scoreboard: " + err.Error())
	}
	as.hud = hud

	sim, err := NewSimulation(as.arena, SimulationOptions{
		Input:      systems.UpdateInput,
		Tuning:     as.tuning,
		Scoreboard: hud,
	})
	if err != nil {
		panic("failed to build arena: " + err.Error())
	}

	sim.ECS.AddRenderer(cfg.Default, systems.DrawArena)
	sim.ECS.AddRenderer(cfg.Default, systems.DrawHUD)
	sim.ECS.AddRenderer(cfg.Default, systems.DrawDebug)

	as.sim = sim
	log.Printf("[scene] arena %s: %d pickups, %d magnets", as.arena.Name, len(as.arena.PickUps), len(as.arena.Magnets))
}
