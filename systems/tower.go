package systems

import (
	"github.com/automoto/tower-defense/components"
	"github.com/automoto/tower-defense/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTowers ticks every tower's shooting timer and fires one bullet per completed
// period. A frame long enough to span several periods still fires once; the timer keeps
// the remainder so later shots stay on the period grid.
func UpdateTowers(ecs *ecs.ECS) {
	t := GetOrCreateTime(ecs)

	var toFire []*donburi.Entry
	components.Tower.Each(ecs.World, func(e *donburi.Entry) {
		tower := components.Tower.Get(e)
		tower.Shooting.Tick(t.Delta)
		if tower.Shooting.JustFinished() {
			toFire = append(toFire, e)
		}
	})

	// Spawning changes archetypes, so it happens outside the query.
	for _, e := range toFire {
		fire(ecs, e, t.Frame)
	}
}

func fire(ecs *ecs.ECS, tower *donburi.Entry, frame uint64) {
	bullet := factory.CreateBullet(ecs, tower, frame)

	components.BulletFired.Publish(ecs.World, components.BulletFiredEvent{
		Tower:    tower.Entity(),
		Bullet:   bullet.Entity(),
		Position: components.Transform.Get(bullet).Translation,
	})
	TriggerRecoil(tower)
}
