package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	textv1 "github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// ScoreboardUI shows the pickup count and, once won, the win banner.
// It implements components.Scoreboard.
type ScoreboardUI struct {
	UI *ebitenui.UI

	countLabel *widget.Label
	countFace  text.Face

	winVisible bool
	winFade    *gween.Tween
	winAlpha   float32
}

// NewScoreboardUI builds the HUD layout. The win banner starts hidden.
func NewScoreboardUI() (*ScoreboardUI, error) {
	sui := &ScoreboardUI{}
	if err := sui.loadFonts(); err != nil {
		return nil, err
	}
	sui.buildUI()
	return sui, nil
}

func (sui *ScoreboardUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	sui.countFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.FontSize,
	}
	return nil
}

func (sui *ScoreboardUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(cfg.HUD.Margin)),
		)),
	)

	sui.countLabel = widget.NewLabel(
		widget.LabelOpts.Text(cfg.HUD.CountPrefix+"0", &sui.countFace, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: widget.AnchorLayoutPositionStart,
					VerticalPosition:   widget.AnchorLayoutPositionStart,
				}),
			),
		),
	)
	rootContainer.AddChild(sui.countLabel)

	sui.UI = &ebitenui.UI{Container: rootContainer}
}

// SetCountText replaces the count label text.
func (sui *ScoreboardUI) SetCountText(s string) {
	sui.countLabel.Label = s
}

// SetWinVisible shows or hides the win banner. Showing it starts the fade in.
func (sui *ScoreboardUI) SetWinVisible(visible bool) {
	if visible && !sui.winVisible {
		sui.winFade = gween.New(0, 1, cfg.HUD.WinFadeTime, ease.OutCubic)
		sui.winAlpha = 0
	}
	sui.winVisible = visible
}

// WinVisible reports whether the win banner is shown.
func (sui *ScoreboardUI) WinVisible() bool {
	return sui.winVisible
}

// CountText is the label text currently displayed.
func (sui *ScoreboardUI) CountText() string {
	return sui.countLabel.Label
}

// Update advances the widgets and the banner fade by one frame.
func (sui *ScoreboardUI) Update() {
	sui.UI.Update()
	if sui.winVisible && sui.winFade != nil {
		sui.winAlpha, _ = sui.winFade.Update(float32(cfg.FixedDelta()))
	}
}

// Draw renders the HUD on top of the arena.
func (sui *ScoreboardUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
	if !sui.winVisible {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	overlay := fade(cfg.BlackOverlay, sui.winAlpha)
	vector.FillRect(screen, 0, float32(h)/2-30, float32(w), 60, overlay, false)

	face := fonts.Title.Get()
	bounds := textv1.BoundString(face, cfg.HUD.WinMessage)
	x := (w - bounds.Dx()) / 2
	y := h/2 + bounds.Dy()/2
	textv1.Draw(screen, cfg.HUD.WinMessage, face, x, y, fade(cfg.HUD.WinColor, sui.winAlpha))
}

// fade scales a straight-alpha color to premultiplied form at alpha a.
func fade(c color.RGBA, a float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * a) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
