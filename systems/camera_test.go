package systems

import (
	"testing"

	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/gamemath"
	"github.com/automoto/rollaball/systems/factory"
	"github.com/yohamta/donburi"
)

func TestUpdateCamera(t *testing.T) {
	t.Run("follows_target", func(t *testing.T) {
		e, player := newTestWorld(t, 10, 10)
		camera := components.Camera.Get(factory.CreateCamera(e, player))

		UpdateCamera(e)

		want := gamemath.Vec3(10+cfg.Camera.OffsetX, cfg.Player.Radius+cfg.Camera.OffsetY, 10+cfg.Camera.OffsetZ)
		for i := range want {
			if !almostEqual(camera.Position[i], want[i]) {
				t.Fatalf("position = %v, want %v", camera.Position, want)
			}
		}
		if camera.LookAt[0] != 10 || camera.LookAt[2] != 10 {
			t.Fatalf("look-at = %v", camera.LookAt)
		}

		// LookAt is a copy, not an alias of the player position.
		position(player)[0] = 11
		if camera.LookAt[0] != 10 {
			t.Fatal("look-at aliases the target position")
		}
	})

	cases := []struct {
		name   string
		target func(w donburi.World, p *donburi.Entry) *donburi.Entry
	}{
		{"nil_target", func(donburi.World, *donburi.Entry) *donburi.Entry { return nil }},
		{"removed_target", func(w donburi.World, p *donburi.Entry) *donburi.Entry {
			w.Remove(p.Entity())
			return p
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, player := newTestWorld(t, 10, 10)
			camera := components.Camera.Get(factory.CreateCamera(e, c.target(e.World, player)))
			camera.Position = gamemath.Vec3(1, 2, 3)

			UpdateCamera(e)

			if camera.Position[0] != 1 || camera.Position[1] != 2 || camera.Position[2] != 3 {
				t.Fatalf("camera moved to %v without a target", camera.Position)
			}
		})
	}
}
