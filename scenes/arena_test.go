package scenes

import (
	"testing"

	"github.com/automoto/rollaball/assets"
	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/systems"
	"github.com/automoto/rollaball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recordingScoreboard struct {
	text string
	win  bool
}

func (r *recordingScoreboard) SetCountText(s string) { r.text = s }
func (r *recordingScoreboard) SetWinVisible(v bool)  { r.win = v }

func TestNewSimulationRequiresArena(t *testing.T) {
	if _, err := NewSimulation(nil, SimulationOptions{}); err == nil {
		t.Fatal("expected error for nil arena")
	}
}

func TestNewSimulationPopulatesArena(t *testing.T) {
	arena, err := assets.LoadDefaultArena()
	if err != nil {
		t.Fatal(err)
	}
	board := &recordingScoreboard{win: true}

	sim, err := NewSimulation(arena, SimulationOptions{Scoreboard: board})
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}

	count := func(tag interface {
		Each(donburi.World, func(*donburi.Entry))
	}) int {
		n := 0
		tag.Each(sim.ECS.World, func(*donburi.Entry) { n++ })
		return n
	}
	if got := count(tags.PickUp); got != len(arena.PickUps) {
		t.Fatalf("pickups = %d, want %d", got, len(arena.PickUps))
	}
	if got := count(tags.Magnet); got != len(arena.Magnets) {
		t.Fatalf("magnets = %d, want %d", got, len(arena.Magnets))
	}
	if got := count(tags.Player); got != 1 {
		t.Fatalf("players = %d, want 1", got)
	}
	if board.win {
		t.Fatal("win display not hidden at start")
	}

	pos := components.Transform.Get(sim.Player).Position
	if pos[0] != arena.Spawn.X || pos[2] != arena.Spawn.Z || pos[1] != cfg.Player.Radius {
		t.Fatalf("player at %v, want spawn on the floor", pos)
	}
	if components.Camera.Get(sim.Camera).Target != sim.Player {
		t.Fatal("camera does not follow the player")
	}

	for i := 0; i < 25; i++ {
		sim.Step()
	}
	if !components.Player.Get(sim.Player).IsGrounded {
		t.Fatal("player not grounded after settling")
	}
	if board.text != "Count: 0" {
		t.Fatalf("count text = %q", board.text)
	}
	if got, want := sim.Now(), 25*cfg.FixedDelta(); got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("Now() = %v, want %v", got, want)
	}
	look := components.Camera.Get(sim.Camera).LookAt
	if look[0] != arena.Spawn.X || look[2] != arena.Spawn.Z {
		t.Fatalf("camera looks at %v", look)
	}
}

func TestSimulationRunsInputSystemFirst(t *testing.T) {
	arena, err := assets.LoadDefaultArena()
	if err != nil {
		t.Fatal(err)
	}

	sim, err := NewSimulation(arena, SimulationOptions{
		Input: func(e *ecs.ECS) {
			components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
				input := components.PlayerInput.Get(entry)
				input.PreviousInput = input.CurrentInput
				input.CurrentInput = [cfg.ActionCount]bool{}
				input.CurrentInput[cfg.ActionMoveRight] = true
				systems.PublishInputEvents(e.World, entry, input)
			})
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	sim.Step()
	if v := components.Body.Get(sim.Player).Velocity[0]; v <= 0 {
		t.Fatalf("vx = %v after one step of moving right", v)
	}
}
