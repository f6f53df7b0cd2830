package components

import "github.com/yohamta/donburi"

// SettingsData stores user toggles that survive restarts (singleton component)
type SettingsData struct {
	DebugOverlay bool
	Muted        bool
	Fullscreen   bool
}

var Settings = donburi.NewComponentType[SettingsData]()
