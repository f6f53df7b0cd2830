package systems

import (
	"time"

	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/yohamta/donburi/ecs"
)

// NewTimeSystem returns a system that measures real time between frames with now and
// feeds it into the Time resource. It must run before every gameplay system.
func NewTimeSystem(now func() time.Time) ecs.System {
	var last time.Time
	return func(e *ecs.ECS) {
		current := now()
		var dt time.Duration
		if !last.IsZero() {
			dt = current.Sub(last)
		}
		last = current
		StepTime(e, dt)
	}
}

// StepTime advances the Time resource by one frame of dt. The delta is clamped to
// cfg.Time.MaxDelta and forced to zero while the game is paused.
func StepTime(e *ecs.ECS, dt time.Duration) {
	t := GetOrCreateTime(e)

	if dt < 0 {
		dt = 0
	}
	if dt > cfg.Time.MaxDelta {
		dt = cfg.Time.MaxDelta
	}
	if IsPaused(e) {
		dt = 0
	}

	t.Delta = dt
	t.Elapsed += dt
	t.Frame++
}

// GetOrCreateTime returns the singleton Time component, creating if needed.
func GetOrCreateTime(e *ecs.ECS) *components.TimeData {
	if _, ok := components.Time.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Time))
		components.Time.SetValue(ent, components.TimeData{})
	}

	ent, _ := components.Time.First(e.World)
	return components.Time.Get(ent)
}
