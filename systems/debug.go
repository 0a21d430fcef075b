package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/fonts"
	"github.com/automoto/rollaball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every footprint in the spatial hash and labels the
// player with its controller state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawLabels {
		return
	}
	v := newView(ecs, screen)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvGround) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvMagnet) {
				c = color.RGBA{255, 0, 255, 255}
			}
			x, y := v.project(obj.X, obj.Y+obj.H)
			vector.StrokeRect(screen, x, y, float32(obj.W*v.scale), float32(obj.H*v.scale), 1, c, false)
		}
	}

	face := fonts.Small.Get()
	now := clockNow(ecs.World)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		player := components.Player.Get(e)
		dash := components.Dash.Get(e)
		magnet := components.Magnet.Get(e)

		label := fmt.Sprintf("y=%.2f grounded=%t dash=%t magnet=%.1fs",
			pos[1], player.IsGrounded, dash.CanDash, magnet.Window.Remaining(now))
		x, y := v.project(pos[0], pos[2])
		text.Draw(screen, label, face, int(x)+12, int(y)-12, cfg.White)
	})
}
