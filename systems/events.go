package systems

import (
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterEventHandlers subscribes the stat counters and shot sound to gameplay events.
// Call once per world.
func RegisterEventHandlers(e *ecs.ECS) {
	components.BulletFired.Subscribe(e.World, func(w donburi.World, ev components.BulletFiredEvent) {
		stats := getOrCreateStats(w)
		stats.ShotsFired++
		PlaySFX(e, cfg.SoundShot)
	})
	components.BulletDespawned.Subscribe(e.World, func(w donburi.World, ev components.BulletDespawnedEvent) {
		getOrCreateStats(w).BulletsDespawned++
	})
}

// UpdateEvents delivers events published since the last frame.
func UpdateEvents(e *ecs.ECS) {
	components.BulletFired.ProcessEvents(e.World)
	components.BulletDespawned.ProcessEvents(e.World)
}

// GetOrCreateStats returns the singleton Stats component, creating if needed.
func GetOrCreateStats(e *ecs.ECS) *components.StatsData {
	return getOrCreateStats(e.World)
}

func getOrCreateStats(w donburi.World) *components.StatsData {
	entry, ok := components.Stats.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Stats))
	}
	return components.Stats.Get(entry)
}
