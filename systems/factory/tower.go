package factory

import (
	"github.com/automoto/tower-defense/archetypes"
	"github.com/automoto/tower-defense/assets"
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTower spawns a cube tower with a repeating shooting countdown.
func CreateTower(ecs *ecs.ECS) *donburi.Entry {
	tower := archetypes.Tower.Spawn(ecs)

	p := cfg.Tower.Position
	components.Transform.SetValue(tower, components.NewTransform(p.X(), p.Y(), p.Z()))
	components.Mesh.SetValue(tower, components.MeshData{Mesh: assets.NewCube(cfg.Tower.Size)})
	components.Material.SetValue(tower, components.MaterialData{Color: cfg.Tower.Color})
	components.Tower.SetValue(tower, components.TowerData{
		Shooting:       components.NewTimer(cfg.Tower.ShootPeriod, components.TimerRepeating),
		BulletOffset:   cfg.Tower.BulletOffset,
		BulletRotation: cfg.Tower.BulletRotation,
	})
	components.Recoil.SetValue(tower, components.RecoilData{BaseScale: 1})
	return tower
}
