package systems

import (
	"github.com/automoto/tower-defense/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets counts down bullet lifetimes and despawns expired bullets with
// everything attached to them. Bullets created this frame start counting next frame,
// so the result does not depend on whether this runs before or after UpdateTowers.
func UpdateBullets(ecs *ecs.ECS) {
	t := GetOrCreateTime(ecs)

	var expired []*donburi.Entry
	components.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		if bullet.SpawnFrame == t.Frame {
			return
		}
		bullet.Lifetime.Tick(t.Delta)
		if bullet.Lifetime.JustFinished() {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if !e.Valid() {
			continue
		}
		id := e.Entity()
		DespawnRecursive(ecs.World, e)
		components.BulletDespawned.Publish(ecs.World, components.BulletDespawnedEvent{Bullet: id})
	}
}

// MoveBullets advances every bullet along its forward axis.
func MoveBullets(ecs *ecs.ECS) {
	dt := GetOrCreateTime(ecs).DeltaSeconds()
	if dt == 0 {
		return
	}

	components.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		tr := components.Transform.Get(e)
		tr.Translation = tr.Translation.Add(tr.Forward().Mul(bullet.Speed * dt))
	})
}
