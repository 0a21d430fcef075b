package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; everything is drawn top-down in one pass.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related tuning values
type PlayerConfig struct {
	// Movement
	Speed float64 // Continuous force per unit of movement intent

	// Jump
	JumpForce         float64 // Upward impulse
	FallMultiplier    float64 // Extra gravity while falling
	LowJumpMultiplier float64 // Extra gravity while rising with jump released

	// Dash
	DashForce    float64 // Horizontal impulse
	DashCooldown float64 // Seconds before the next dash is allowed

	// Magnet power-up
	MagnetDuration  float64 // Seconds the magnet stays active
	MagnetRadius    float64 // Pull radius around the player
	MagnetPullSpeed float64 // Units per second a pickup moves toward the player

	// Score
	WinCount int // Pickups needed to win

	// Body
	Mass   float64
	Radius float64

	// Facing updates only above this horizontal speed
	FacingSpeedThreshold float64
}

// PhysicsConfig contains rigid-body integration values
type PhysicsConfig struct {
	GravityX, GravityY, GravityZ float64

	// ContactSlop is how far above a ground surface a body still counts as touching
	ContactSlop float64
	// MaxPenetration is how far below the surface a body is still pushed back up
	MaxPenetration float64
	// MaxSpeed clamps velocity magnitude per axis
	MaxSpeed float64
}

// PickupConfig contains pickup body values
type PickupConfig struct {
	Radius float64
	Mass   float64
	Height float64 // Resting y of spawned pickups
}

// ArenaConfig contains level layout values
type ArenaConfig struct {
	PixelsPerUnit float64 // Tiled pixels per world unit
	CellSize      int     // resolv cell size in world units
	DefaultLevel  string  // embedded TMX path
}

// CameraConfig contains camera follower values
type CameraConfig struct {
	OffsetX, OffsetY, OffsetZ float64
	// Scale is screen pixels per world unit for the top-down view
	Scale float64
}

// HUDConfig contains HUD text values
type HUDConfig struct {
	CountPrefix   string
	WinMessage    string
	FontSize      float64
	TitleFontSize float64
	Margin        int
	WinFadeTime   float32 // seconds
	TextColor     color.RGBA
	WinColor      color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // fixed simulation steps per second
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawLabels bool // footprints and controller state overlay
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Pickup PickupConfig
var Arena ArenaConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Ground       = color.RGBA{R: 70, G: 90, B: 110, A: 255}
	Background   = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// FixedDelta returns the simulation step length in seconds.
func FixedDelta() float64 {
	return 1 / float64(C.TPS)
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    50,
	}

	Player = PlayerConfig{
		Speed:                10.1,
		JumpForce:            2.5,
		FallMultiplier:       3,
		LowJumpMultiplier:    2,
		DashForce:            3,
		DashCooldown:         2,
		MagnetDuration:       2,
		MagnetRadius:         5,
		MagnetPullSpeed:      6,
		WinCount:             12,
		Mass:                 1,
		Radius:               0.5,
		FacingSpeedThreshold: 0.1,
	}

	Physics = PhysicsConfig{
		GravityY:       -9.81,
		ContactSlop:    0.01,
		MaxPenetration: 0.5,
		MaxSpeed:       50,
	}

	Pickup = PickupConfig{
		Radius: 0.35,
		Mass:   0.5,
		Height: 0.5,
	}

	Arena = ArenaConfig{
		PixelsPerUnit: 16,
		CellSize:      1,
		DefaultLevel:  "levels/arena.tmx",
	}

	Camera = CameraConfig{
		OffsetY: 10,
		OffsetZ: -10,
		Scale:   14,
	}

	HUD = HUDConfig{
		CountPrefix:   "Count: ",
		WinMessage:    "You Win!",
		FontSize:      14,
		TitleFontSize: 32,
		Margin:        10,
		WinFadeTime:   0.6,
		TextColor:     White,
		WinColor:      Yellow,
	}
}
