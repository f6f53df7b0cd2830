package config

import (
	"image/color"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general window configuration
type Config struct {
	Width      int
	Height     int
	Title      string
	AppName    string // gdata storage namespace
	Resizable  bool
	TPS        int
	ClearColor color.RGBA
}

// TimeConfig controls how real frame time is turned into game time
type TimeConfig struct {
	MaxDelta time.Duration // upper bound on a single frame's delta (stalls, window drags)
}

// CameraConfig contains the startup camera placement and lens
type CameraConfig struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32 // radians
	Near     float32
	Far      float32
}

// GroundConfig contains the ground plane
type GroundConfig struct {
	Size  float32
	Color color.RGBA
}

// TowerConfig contains the tower body and its shooting behavior
type TowerConfig struct {
	Position       mgl32.Vec3
	Size           float32
	Color          color.RGBA
	ShootPeriod    time.Duration
	BulletOffset   mgl32.Vec3 // spawn point in tower local space
	BulletRotation mgl32.Quat // spawn orientation in tower local space

	// Recoil pulse played on every shot
	RecoilScale    float32
	RecoilDuration float32 // seconds
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	ModelPath string
	Lifetime  time.Duration
	Speed     float32 // units per second along local -Z
}

// LightConfig contains the point light
type LightConfig struct {
	Position       mgl32.Vec3
	Intensity      float32 // lumens
	Range          float32
	ShadowsEnabled bool
}

// RenderConfig contains the software shading parameters
type RenderConfig struct {
	Ambient      float32 // minimum light factor for faces turned away from every light
	LumensToUnit float32 // converts intensity/(4*pi*d^2) into a 0..1 light factor
	ShadowColor  color.RGBA
	ShadowLift   float32 // height above the ground plane shadows are drawn at
}

// HUDConfig contains overlay text placement
type HUDConfig struct {
	TextColor  color.RGBA
	Margin     int
	LineHeight int
}

// PauseConfig contains the pause overlay
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay   bool // Show the debug overlay from the first frame
	NoPersist bool // Do not read or write saved settings
}

// Global configuration instances
var C *Config
var Time TimeConfig
var Camera CameraConfig
var Ground GroundConfig
var Tower TowerConfig
var Bullet BulletConfig
var Light LightConfig
var Render RenderConfig
var HUD HUDConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Beige        = color.RGBA{R: 245, G: 245, B: 220, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// RGB converts linear 0..1 channels to an opaque RGBA color.
func RGB(r, g, b float64) color.RGBA {
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func init() {
	C = &Config{
		Width:      1280,
		Height:     720,
		Title:      "Tower Defense",
		AppName:    "tower-defense",
		Resizable:  false,
		TPS:        60,
		ClearColor: Beige,
	}

	Time = TimeConfig{
		MaxDelta: 100 * time.Millisecond,
	}

	Camera = CameraConfig{
		Position: mgl32.Vec3{-2, 2.5, 5},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     math.Pi / 4,
		Near:     0.1,
		Far:      1000,
	}

	Ground = GroundConfig{
		Size:  5.0,
		Color: RGB(0.3, 0.5, 0.3),
	}

	Tower = TowerConfig{
		Position:       mgl32.Vec3{0, 0.5, 0},
		Size:           1.0,
		Color:          RGB(0.67, 0.84, 0.92),
		ShootPeriod:    time.Second,
		BulletOffset:   mgl32.Vec3{0, 0.7, 0.6},
		BulletRotation: mgl32.QuatRotate(-math.Pi/2, mgl32.Vec3{0, 1, 0}),
		RecoilScale:    0.9,
		RecoilDuration: 0.15,
	}

	Bullet = BulletConfig{
		ModelPath: "models/bullet.obj",
		Lifetime:  500 * time.Millisecond,
		Speed:     2.5,
	}

	Light = LightConfig{
		Position:       mgl32.Vec3{4, 8, 4},
		Intensity:      1500,
		Range:          20,
		ShadowsEnabled: true,
	}

	Render = RenderConfig{
		Ambient:      0.25,
		LumensToUnit: 1.2,
		ShadowColor:  color.RGBA{R: 0, G: 0, B: 0, A: 90},
		ShadowLift:   0.001,
	}

	HUD = HUDConfig{
		TextColor:  DarkGray,
		Margin:     12,
		LineHeight: 18,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    BrightOrange,
		Title:        "Paused",
		Hint:         "P: Resume   F3: Debug   F11: Fullscreen   M: Mute",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:   false,
		NoPersist: false,
	}
}
