package headless

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/tower-defense/assets"
)

func TestTickAdvancesSimulation(t *testing.T) {
	loop, err := NewGameLoop(assets.NewModelLoader(nil), 20)
	if err != nil {
		t.Fatalf("NewGameLoop failed: %v", err)
	}

	for i := 0; i < 50; i++ {
		loop.Tick()
	}

	if got := loop.Elapsed(); got != 2500*time.Millisecond {
		t.Errorf("Expected 2.5s of game time, got %v", got)
	}
	stats := loop.Stats()
	if stats.ShotsFired != 2 || stats.BulletsDespawned != 2 {
		t.Errorf("Expected 2 shots and 2 despawns, got %+v", stats)
	}
}

func TestMinimumTickRateKeepsRealTime(t *testing.T) {
	rate := MinTickRate()
	if rate != 10 {
		t.Errorf("Expected minimum tick rate 10, got %d", rate)
	}

	loop, err := NewGameLoop(assets.NewModelLoader(nil), rate)
	if err != nil {
		t.Fatalf("NewGameLoop failed: %v", err)
	}

	for i := 0; i < 20; i++ {
		loop.Tick()
	}

	if got := loop.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected 20 ticks at %d/s to advance 2s, got %v", rate, got)
	}
	if got := loop.Stats().ShotsFired; got != 2 {
		t.Errorf("Expected 2 shots in 2s, got %d", got)
	}
}

func TestNewGameLoopErrors(t *testing.T) {
	tests := []struct {
		name     string
		loader   *assets.ModelLoader
		tickRate int
	}{
		{"Zero tick rate", assets.NewModelLoader(nil), 0},
		{"Negative tick rate", assets.NewModelLoader(nil), -1},
		{"Interval longer than max delta", assets.NewModelLoader(nil), 5},
		{"One below minimum", assets.NewModelLoader(nil), MinTickRate() - 1},
		{"Missing model", assets.NewModelLoader(fstest.MapFS{}), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGameLoop(tt.loader, tt.tickRate); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestRunStops(t *testing.T) {
	loop, err := NewGameLoop(assets.NewModelLoader(nil), 1000)
	if err != nil {
		t.Fatalf("NewGameLoop failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()

	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected Run to return after Stop")
	}
}

func TestRunHonorsContext(t *testing.T) {
	loop, err := NewGameLoop(assets.NewModelLoader(nil), 1000)
	if err != nil {
		t.Fatalf("NewGameLoop failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loop.Run(ctx)
}
