package systems

import (
	"image/color"
	"math"

	"github.com/automoto/rollaball/components"
	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	shadowColor = color.RGBA{0, 0, 0, 90}
	// pickupPulse drives the idle bob of every active pickup.
	pickupPulse = gween.New(0, 1, 1, ease.InOutSine)
	pulseValue  float32
)

// view maps the XZ ground plane to the screen, looking straight down with
// world +Z pointing up the screen.
type view struct {
	cx, cz float64
	w, h   float64
	scale  float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) view {
	v := view{
		w:     float64(screen.Bounds().Dx()),
		h:     float64(screen.Bounds().Dy()),
		scale: cfg.Camera.Scale,
	}
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		if look := components.Camera.Get(cameraEntry).LookAt; len(look) == 3 {
			v.cx, v.cz = look[0], look[2]
		}
	}
	return v
}

func (v view) project(x, z float64) (float32, float32) {
	return float32(v.w/2 + (x-v.cx)*v.scale), float32(v.h/2 - (z-v.cz)*v.scale)
}

// lift raises a point on screen by its height so airborne balls separate
// from their shadow.
func (v view) lift(y float64) float32 {
	return float32(y * v.scale * 0.5)
}

// DrawArena renders the ground, pickups, magnets and player from above.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	v := newView(ecs, screen)

	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		x, y := v.project(obj.X, obj.Y+obj.H)
		vector.FillRect(screen, x, y, float32(obj.W*v.scale), float32(obj.H*v.scale), cfg.Ground, false)
	})

	if t, finished := pickupPulse.Update(float32(cfg.FixedDelta())); finished {
		pickupPulse.Reset()
	} else {
		pulseValue = t
	}
	bob := 1 + 0.15*math.Sin(math.Pi*float64(pulseValue))

	tags.PickUp.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Pickup.Get(e).Active {
			return
		}
		drawBall(screen, v, components.Transform.Get(e).Position, cfg.Pickup.Radius*bob, cfg.Yellow)
	})
	tags.Magnet.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Pickup.Get(e).Active {
			return
		}
		drawBall(screen, v, components.Transform.Get(e).Position, cfg.Pickup.Radius*bob, cfg.Magenta)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		body := components.Body.Get(e)

		if components.Magnet.Get(e).Active {
			x, y := v.project(pos[0], pos[2])
			vector.StrokeCircle(screen, x, y, float32(cfg.Player.MagnetRadius*v.scale), 1, cfg.Magenta, true)
		}

		c := cfg.LightBlue
		if !components.Dash.Get(e).CanDash {
			c = cfg.DarkBlue
		}
		drawBall(screen, v, pos, body.Radius, c)
	})
}

func drawBall(screen *ebiten.Image, v view, pos []float64, radius float64, c color.Color) {
	x, y := v.project(pos[0], pos[2])
	r := float32(radius * v.scale)
	vector.DrawFilledCircle(screen, x, y, r, shadowColor, true)
	vector.DrawFilledCircle(screen, x, y-v.lift(pos[1]-radius), r, c, true)
}
