package systems

import (
	"testing"

	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/gamemath"
	"github.com/automoto/rollaball/systems/factory"
)

func TestMagnetPickupActivates(t *testing.T) {
	e, player := newTestWorld(t, 10, 10)
	magnet := factory.CreateMagnet(e, 3, cfg.Pickup.Height, 3)

	trigger(e, player, magnet)

	state := components.Magnet.Get(player)
	if !state.Active {
		t.Fatal("magnet not active after pickup")
	}
	if components.Pickup.Get(magnet).Active {
		t.Fatal("magnet pickup not deactivated")
	}
	if components.Score.Get(player).Count != 0 {
		t.Fatal("magnet counted as a scoring pickup")
	}

	gen := state.Window.Generation
	trigger(e, player, magnet)
	if state.Window.Generation != gen {
		t.Fatal("collected magnet restarted the window")
	}
}

func TestMagnetExpires(t *testing.T) {
	e, player := newTestWorld(t, 10, 10)
	ActivateMagnet(player, clockNow(e.World))

	steps := stepsFor(cfg.Player.MagnetDuration)
	advanceClock(e, steps-1)
	if !components.Magnet.Get(player).Active {
		t.Fatal("magnet ended early")
	}
	advanceClock(e, 1)
	if components.Magnet.Get(player).Active {
		t.Fatal("magnet still active after its duration")
	}
}

func TestSecondMagnetRestartsWindow(t *testing.T) {
	e, player := newTestWorld(t, 10, 10)
	first := factory.CreateMagnet(e, 3, cfg.Pickup.Height, 3)
	second := factory.CreateMagnet(e, 5, cfg.Pickup.Height, 5)

	trigger(e, player, first)
	advanceClock(e, stepsFor(1.5))
	trigger(e, player, second)

	// Past the first window's deadline.
	advanceClock(e, stepsFor(0.6))
	if !components.Magnet.Get(player).Active {
		t.Fatal("stale deadline from the first magnet cleared the second window")
	}

	// Just before the second deadline (1.5 + duration).
	advanceClock(e, stepsFor(cfg.Player.MagnetDuration-0.6)-1)
	if !components.Magnet.Get(player).Active {
		t.Fatalf("magnet ended early at t=%v", clockNow(e.World))
	}
	advanceClock(e, 1)
	if components.Magnet.Get(player).Active {
		t.Fatalf("magnet still active at t=%v", clockNow(e.World))
	}
}

func TestMagnetPull(t *testing.T) {
	cases := []struct {
		name      string
		kinematic bool
	}{
		{"kinematic", true},
		{"dynamic", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, player := newTestWorld(t, 10, 10)
			components.Body.Get(player).UseGravity = false
			ActivateMagnet(player, 0)

			const height = 1.7
			near := factory.CreatePickUp(e, 13, height, 10.5, c.kinematic)
			far := factory.CreatePickUp(e, 17, height, 10, c.kinematic)
			collected := factory.CreatePickUp(e, 12, height, 12, c.kinematic)
			components.Pickup.Get(collected).Active = false

			step := cfg.Player.MagnetPullSpeed * testDelta
			center := position(player)
			prev := gamemath.HorizontalDistance(position(near), center)

			for i := 0; i < 50; i++ {
				PullPickups(e.World, player)
				UpdatePhysics(e)

				pos := position(near)
				d := gamemath.HorizontalDistance(pos, center)
				if d > prev+1e-9 {
					t.Fatalf("step %d: distance grew from %v to %v", i, prev, d)
				}
				if prev-d > step+1e-9 {
					t.Fatalf("step %d: moved %v, more than %v", i, prev-d, step)
				}
				if pos[0] < center[0]-1e-9 || pos[2] < center[2]-1e-9 {
					t.Fatalf("step %d: overshot to %v", i, pos)
				}
				if pos[1] != height {
					t.Fatalf("step %d: height changed to %v", i, pos[1])
				}
				prev = d
			}

			if prev > 1e-9 {
				t.Fatalf("pickup did not reach the player: distance %v", prev)
			}
			if x := position(far)[0]; x != 17 {
				t.Fatalf("pickup outside radius moved to x=%v", x)
			}
			if x := position(collected)[0]; x != 12 {
				t.Fatalf("collected pickup moved to x=%v", x)
			}
		})
	}
}

func TestNoPullWhileMagnetInactive(t *testing.T) {
	e, player := newTestWorld(t, 10, 10)
	components.Body.Get(player).UseGravity = false
	pickup := factory.CreatePickUp(e, 12, cfg.Pickup.Height, 10, true)

	UpdatePlayer(e)
	UpdatePhysics(e)

	if x := position(pickup)[0]; x != 12 {
		t.Fatalf("pickup moved to x=%v without a magnet", x)
	}
}
