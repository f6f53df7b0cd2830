package systems

import (
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var globalFullscreen bool

// UpdateSettings applies the debug, fullscreen and mute toggles and saves them.
// Runs even while paused.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	changed := false
	if input.JustPressed(cfg.ActionToggleDebug) {
		settings.DebugOverlay = !settings.DebugOverlay
		cfg.Debug.Overlay = settings.DebugOverlay
		changed = true
	}
	if input.JustPressed(cfg.ActionToggleMute) {
		settings.Muted = !settings.Muted
		SetMuted(settings.Muted)
		changed = true
	}
	if input.JustPressed(cfg.ActionToggleFullscreen) {
		settings.Fullscreen = !settings.Fullscreen
		setFullscreen(settings.Fullscreen)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

func setFullscreen(on bool) {
	globalFullscreen = on
	ebiten.SetFullscreen(on)
}

// GetOrCreateSettings returns the singleton Settings component, creating it from the
// current global state if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			DebugOverlay: cfg.Debug.Overlay,
			Muted:        IsMuted(),
			Fullscreen:   globalFullscreen,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
