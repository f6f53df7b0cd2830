package factory

import (
	"github.com/automoto/tower-defense/archetypes"
	"github.com/automoto/tower-defense/assets"
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a bullet at the tower's muzzle. Each object of the bullet model
// becomes a child entity so the whole visual is despawned with the bullet.
func CreateBullet(ecs *ecs.ECS, tower *donburi.Entry, frame uint64) *donburi.Entry {
	towerTransform := components.Transform.Get(tower)
	towerData := components.Tower.Get(tower)

	muzzle := components.NewTransform(
		towerData.BulletOffset.X(),
		towerData.BulletOffset.Y(),
		towerData.BulletOffset.Z(),
	).WithRotation(towerData.BulletRotation)

	// Recoil scales the tower body; bullets spawn from the unscaled muzzle.
	base := *towerTransform
	base.Scale = mgl32.Vec3{1, 1, 1}

	b := archetypes.Bullet.Spawn(ecs)
	components.Transform.SetValue(b, base.Mul(muzzle))
	components.Bullet.SetValue(b, components.BulletData{
		Lifetime:   components.NewTimer(cfg.Bullet.Lifetime, components.TimerOnce),
		Speed:      cfg.Bullet.Speed,
		Owner:      tower.Entity(),
		SpawnFrame: frame,
	})
	components.Children.SetValue(b, components.ChildrenData{})

	if entry, ok := components.GameAssets.First(ecs.World); ok {
		if model := components.GameAssets.Get(entry).BulletModel; model != nil {
			SpawnModel(ecs, b, model)
		}
	}
	return b
}

// SpawnModel creates one child entity per mesh of model under parent.
func SpawnModel(ecs *ecs.ECS, parent *donburi.Entry, model *assets.Model) {
	for _, mesh := range model.Meshes {
		node := archetypes.MeshNode.Spawn(ecs)
		components.Transform.SetValue(node, components.NewTransform(0, 0, 0))
		components.Mesh.SetValue(node, components.MeshData{Mesh: mesh})
		components.Material.SetValue(node, components.MaterialData{Color: mesh.Color})
		AttachChild(parent, node)
	}
}

// AttachChild parents child to parent, adding the Children component if needed.
func AttachChild(parent, child *donburi.Entry) {
	if !child.HasComponent(components.Parent) {
		child.AddComponent(components.Parent)
	}
	components.Parent.SetValue(child, components.ParentData{Entity: parent.Entity()})

	if !parent.HasComponent(components.Children) {
		parent.AddComponent(components.Children)
	}
	children := components.Children.Get(parent)
	children.Entities = append(children.Entities, child.Entity())
}
