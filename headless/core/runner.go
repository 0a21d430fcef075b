package core

import (
	"github.com/automoto/rollaball/assets"
	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/scenes"
	"github.com/automoto/rollaball/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Runner plays a script against an arena simulation.
type Runner struct {
	Sim        *scenes.Simulation
	Scoreboard *LogScoreboard

	script *Script
	next   int
	tick   int

	move     dmath.Vec2
	holdJump bool
}

// NewRunner builds the simulation. The script's tps must already be applied
// to cfg.C.TPS so the clock steps at the scripted rate.
func NewRunner(arena *assets.Arena, script *Script, tuning <-chan *cfg.Tuning) (*Runner, error) {
	r := &Runner{script: script, Scoreboard: &LogScoreboard{}}

	sim, err := scenes.NewSimulation(arena, scenes.SimulationOptions{
		Input:      r.scriptedInput,
		Tuning:     tuning,
		Scoreboard: r.Scoreboard,
	})
	if err != nil {
		return nil, err
	}
	r.Sim = sim
	return r, nil
}

// Tick advances one step. It returns false once the script has run out.
func (r *Runner) Tick() bool {
	if r.tick >= r.script.Ticks() {
		return false
	}
	r.Sim.Step()
	r.tick++
	return true
}

// scriptedInput stands in for device polling: it feeds due script steps into
// the player's input buffers and publishes the same events a keyboard would.
func (r *Runner) scriptedInput(ecs *ecs.ECS) {
	now := float64(r.tick) / float64(r.script.TPS)

	var jump, dash bool
	for r.next < len(r.script.Steps) && r.script.Steps[r.next].At <= now+1e-9 {
		st := r.script.Steps[r.next]
		if st.Move != nil {
			r.move = dmath.NewVec2(st.Move[0], st.Move[1])
		}
		if st.HoldJump != nil {
			r.holdJump = *st.HoldJump
		}
		jump = jump || st.Jump
		dash = dash || st.Dash
		r.next++
	}

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.PreviousInput = input.CurrentInput
		input.CurrentInput = [cfg.ActionCount]bool{}
		input.CurrentInput[cfg.ActionJump] = jump || r.holdJump
		input.CurrentInput[cfg.ActionDash] = dash
		// A press needs a released frame before it so it counts as new.
		if jump {
			input.PreviousInput[cfg.ActionJump] = false
		}
		if dash {
			input.PreviousInput[cfg.ActionDash] = false
		}
		input.Analog = r.move
		systems.PublishInputEvents(ecs.World, entry, input)
	})
}
