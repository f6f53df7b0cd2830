package systems

import (
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRecoil advances tower recoil tweens and writes the result into the tower scale.
func UpdateRecoil(ecs *ecs.ECS) {
	dt := GetOrCreateTime(ecs).DeltaSeconds()

	components.Recoil.Each(ecs.World, func(e *donburi.Entry) {
		recoil := components.Recoil.Get(e)
		if recoil.Tween == nil {
			return
		}

		factor, done := recoil.Tween.Update(dt)
		if done {
			recoil.Tween = nil
			factor = 1
		}

		s := recoil.BaseScale * factor
		components.Transform.Get(e).Scale = mgl32.Vec3{s, s, s}
	})
}

// TriggerRecoil restarts the recoil pulse on a tower. Entries without Recoil are ignored.
func TriggerRecoil(tower *donburi.Entry) {
	if !tower.HasComponent(components.Recoil) {
		return
	}
	recoil := components.Recoil.Get(tower)
	recoil.Tween = gween.New(cfg.Tower.RecoilScale, 1, cfg.Tower.RecoilDuration, ease.OutBack)
}
