package systems

import (
	"testing"
	"time"

	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/automoto/tower-defense/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func press(input *components.InputData, action cfg.ActionID) {
	var pressed [cfg.ActionCount]bool
	pressed[action] = true
	SetInputState(input, pressed)
}

func release(input *components.InputData) {
	SetInputState(input, [cfg.ActionCount]bool{})
}

func TestUpdateSettingsToggles(t *testing.T) {
	overlay, muted := cfg.Debug.Overlay, IsMuted()
	t.Cleanup(func() {
		cfg.Debug.Overlay = overlay
		SetMuted(muted)
	})

	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	startDebug, startMuted := settings.DebugOverlay, settings.Muted

	press(input, cfg.ActionToggleDebug)
	UpdateSettings(e)
	if settings.DebugOverlay == startDebug || cfg.Debug.Overlay != settings.DebugOverlay {
		t.Errorf("Expected the debug overlay to toggle, got %+v", *settings)
	}

	release(input)
	press(input, cfg.ActionToggleMute)
	UpdateSettings(e)
	if settings.Muted == startMuted || IsMuted() != settings.Muted {
		t.Errorf("Expected mute to toggle, got %+v", *settings)
	}
}

func TestMutedShotsStillQueue(t *testing.T) {
	muted := IsMuted()
	t.Cleanup(func() { SetMuted(muted) })
	SetMuted(true)

	e := newTestECS(t)
	factory.CreateTower(e)
	for i := 0; i < 10; i++ {
		step(e, 100*time.Millisecond)
	}

	pending := GetOrCreateAudio(e).PendingSFX
	if len(pending) != 1 || pending[0] != cfg.SoundShot {
		t.Errorf("Expected one queued shot sound, got %v", pending)
	}
}

func TestPlaySFXDropsPastLimit(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	for i := 0; i < cfg.Audio.MaxPending+5; i++ {
		PlaySFX(e, cfg.SoundShot)
	}
	if got := len(GetOrCreateAudio(e).PendingSFX); got != cfg.Audio.MaxPending {
		t.Errorf("Expected the queue capped at %d, got %d", cfg.Audio.MaxPending, got)
	}
}

func TestDecodeSettings(t *testing.T) {
	got, err := decodeSettings([]byte(`{"debugOverlay":true,"muted":false,"fullscreen":true}`))
	if err != nil {
		t.Fatalf("decodeSettings failed: %v", err)
	}
	if want := (SavedSettings{DebugOverlay: true, Fullscreen: true}); *got != want {
		t.Errorf("Expected %+v, got %+v", want, *got)
	}

	if _, err := decodeSettings([]byte("{")); err == nil {
		t.Error("Expected an error for truncated settings")
	}
}

func TestSaveSettingsWithoutPersistence(t *testing.T) {
	if err := SaveSettings(&SavedSettings{Muted: true}); err != nil {
		t.Errorf("Expected saving to be a no-op without persistence, got %v", err)
	}
	if saved, err := LoadSettings(); saved != nil || err != nil {
		t.Errorf("Expected nothing loaded without persistence, got %v, %v", saved, err)
	}
}
