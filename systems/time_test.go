package systems

import (
	"testing"
	"time"

	cfg "github.com/automoto/tower-defense/config"
	"github.com/automoto/tower-defense/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestStepTime(t *testing.T) {
	tests := []struct {
		name string
		dt   time.Duration
		want time.Duration
	}{
		{"Normal frame", 16 * time.Millisecond, 16 * time.Millisecond},
		{"Long frame is clamped", 5 * time.Second, 100 * time.Millisecond},
		{"Negative frame", -time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			StepTime(e, tt.dt)
			clock := GetOrCreateTime(e)
			if clock.Delta != tt.want || clock.Elapsed != tt.want {
				t.Errorf("Expected delta and elapsed %v, got %v and %v", tt.want, clock.Delta, clock.Elapsed)
			}
			if clock.Frame != 1 {
				t.Errorf("Expected frame 1, got %d", clock.Frame)
			}
		})
	}
}

func TestTimeSystemMeasuresClock(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	system := NewTimeSystem(func() time.Time { return now })

	system(e)
	if got := GetOrCreateTime(e).Delta; got != 0 {
		t.Errorf("Expected zero delta on the first frame, got %v", got)
	}

	now = now.Add(40 * time.Millisecond)
	system(e)
	if got := GetOrCreateTime(e).Delta; got != 40*time.Millisecond {
		t.Errorf("Expected 40ms delta, got %v", got)
	}
}

func TestPauseFreezesGameplay(t *testing.T) {
	e := newTestECS(t)
	factory.CreateTower(e)

	SetPaused(e, true)
	for i := 0; i < 30; i++ {
		step(e, 100*time.Millisecond)
	}

	clock := GetOrCreateTime(e)
	if clock.Elapsed != 0 {
		t.Errorf("Expected no game time while paused, got %v", clock.Elapsed)
	}
	if clock.Frame != 30 {
		t.Errorf("Expected frames to keep counting, got %d", clock.Frame)
	}
	if n := bulletCount(e.World); n != 0 {
		t.Errorf("Expected no bullets while paused, got %d", n)
	}

	SetPaused(e, false)
	for i := 0; i < 10; i++ {
		step(e, 100*time.Millisecond)
	}
	if n := bulletCount(e.World); n != 1 {
		t.Errorf("Expected the first shot one period after resuming, got %d bullets", n)
	}
}

func TestWithPauseCheck(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	calls := 0
	system := WithPauseCheck(func(*ecs.ECS) { calls++ })

	system(e)
	SetPaused(e, true)
	system(e)

	if calls != 1 {
		t.Errorf("Expected the wrapped system to run once, ran %d times", calls)
	}
}

func TestUpdatePauseToggles(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)

	press(input, cfg.ActionPause)
	UpdatePause(e)
	if !IsPaused(e) {
		t.Fatal("Expected pause after pressing pause")
	}

	// Holding the key does not toggle again.
	press(input, cfg.ActionPause)
	UpdatePause(e)
	if !IsPaused(e) {
		t.Error("Expected pause to hold while the key stays down")
	}

	release(input)
	press(input, cfg.ActionPause)
	UpdatePause(e)
	if IsPaused(e) {
		t.Error("Expected a second press to resume")
	}
}
