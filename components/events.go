package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BulletFiredEvent is published when a tower spawns a bullet.
type BulletFiredEvent struct {
	Tower    donburi.Entity
	Bullet   donburi.Entity
	Position mgl32.Vec3
}

// BulletDespawnedEvent is published after a bullet and its children left the world.
type BulletDespawnedEvent struct {
	Bullet donburi.Entity
}

var (
	BulletFired     = events.NewEventType[BulletFiredEvent]()
	BulletDespawned = events.NewEventType[BulletDespawnedEvent]()
)
