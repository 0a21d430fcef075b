package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	cfg "github.com/automoto/rollaball/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Arena is a level converted to world units. X is world x, Z is world z;
// Tiled's y axis is flipped so that "up" on the map is +z.
type Arena struct {
	Name    string
	Width   float64
	Depth   float64
	Grounds []GroundRect
	PickUps []PickupSpawn
	Magnets []Point
	Spawn   Point
}

// GroundRect is a walkable rectangle with its top surface at Top.
type GroundRect struct {
	X, Z, W, D float64
	Top        float64
}

// PickupSpawn is a scoring pickup location.
type PickupSpawn struct {
	X, Z    float64
	Dynamic bool // moved through a rigid body instead of direct translation
}

type Point struct {
	X, Z float64
}

// LoadDefaultArena loads the embedded default level.
func LoadDefaultArena() (*Arena, error) {
	return LoadArena(assetFS, cfg.Arena.DefaultLevel)
}

// LoadArena parses a TMX file from fsys. It takes an fs.FS so callers can
// pass the embedded levels or os.DirFS for a level on disk.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppu := cfg.Arena.PixelsPerUnit
	mapHeightPx := float64(levelMap.Height * levelMap.TileHeight)

	arena := &Arena{
		Name:  tmxPath,
		Width: float64(levelMap.Width*levelMap.TileWidth) / ppu,
		Depth: mapHeightPx / ppu,
	}

	toZ := func(y float64) float64 {
		return (mapHeightPx - y) / ppu
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				arena.Grounds = append(arena.Grounds, GroundRect{
					X:   o.X / ppu,
					Z:   toZ(o.Y + o.Height),
					W:   o.Width / ppu,
					D:   o.Height / ppu,
					Top: o.Properties.GetFloat("height"),
				})
			}
		case "PickUps":
			for _, o := range og.Objects {
				arena.PickUps = append(arena.PickUps, PickupSpawn{
					X:       o.X / ppu,
					Z:       toZ(o.Y),
					Dynamic: o.Properties.GetBool("dynamic"),
				})
			}
		case "Magnets":
			for _, o := range og.Objects {
				arena.Magnets = append(arena.Magnets, Point{X: o.X / ppu, Z: toZ(o.Y)})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.Spawn = Point{X: o.X / ppu, Z: toZ(o.Y)}
				spawnFound = true
				break
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("level %s: no PlayerSpawn object", tmxPath)
	}
	if len(arena.Grounds) == 0 {
		return nil, fmt.Errorf("level %s: no Ground objects", tmxPath)
	}

	return arena, nil
}

// GroundTopAt returns the highest ground surface under (x, z).
func (a *Arena) GroundTopAt(x, z float64) (float64, bool) {
	top, found := 0.0, false
	for _, g := range a.Grounds {
		if x < g.X || x > g.X+g.W || z < g.Z || z > g.Z+g.D {
			continue
		}
		if !found || g.Top > top {
			top, found = g.Top, true
		}
	}
	return top, found
}

// LoadArenaFile loads a TMX level from disk.
func LoadArenaFile(path string) (*Arena, error) {
	return LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
