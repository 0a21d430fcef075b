package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/rollaball/assets"
	"github.com/automoto/rollaball/config"
	"github.com/automoto/rollaball/fonts"
	"github.com/automoto/rollaball/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(arena *assets.Arena, tuning <-chan *config.Tuning) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(arena, tuning),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding player tuning")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	level := flag.String("level", "", "TMX level on disk (default: embedded arena)")
	debug := flag.Bool("debug", false, "Draw footprints and controller state")
	flag.Parse()

	config.Debug.DrawLabels = *debug

	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.TitleFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	arena, err := loadArena(*level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	var updates <-chan *config.Tuning
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply(&config.Player)

		if *watch {
			w, err := config.WatchTuning(*tuningPath)
			if err != nil {
				log.Fatalf("Failed to watch tuning: %v", err)
			}
			defer w.Close()
			updates = w.Updates
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Roll-a-Ball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(arena, updates)); err != nil {
		log.Fatal(err)
	}
}

func loadArena(path string) (*assets.Arena, error) {
	if path == "" {
		return assets.LoadDefaultArena()
	}
	return assets.LoadArenaFile(path)
}
