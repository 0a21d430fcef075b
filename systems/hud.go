package systems

import (
	"image/color"

	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 6
	hudBarGap    = 4
)

var hudBarBackground = color.RGBA{40, 40, 40, 255}

// DrawHUD renders the dash and magnet meters in the bottom-left corner.
// Count and win text belong to the scoreboard UI.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	now := clockNow(ecs.World)
	margin := float32(cfg.HUD.Margin)
	y := float32(screen.Bounds().Dy()) - margin - hudBarHeight

	dash := components.Dash.Get(playerEntry)
	dashRatio := float32(1)
	if !dash.CanDash && cfg.Player.DashCooldown > 0 {
		dashRatio = 1 - float32(dash.Cooldown.Remaining(now)/cfg.Player.DashCooldown)
	}
	drawMeter(screen, margin, y, dashRatio, cfg.LightBlue)

	magnet := components.Magnet.Get(playerEntry)
	if magnet.Active && cfg.Player.MagnetDuration > 0 {
		ratio := float32(magnet.Window.Remaining(now) / cfg.Player.MagnetDuration)
		drawMeter(screen, margin, y-hudBarHeight-hudBarGap, ratio, cfg.Magenta)
	}
}

func drawMeter(screen *ebiten.Image, x, y, ratio float32, c color.Color) {
	vector.FillRect(screen, x, y, hudBarWidth, hudBarHeight, hudBarBackground, false)
	vector.FillRect(screen, x, y, hudBarWidth*ratio, hudBarHeight, c, false)
}
