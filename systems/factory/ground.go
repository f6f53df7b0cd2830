package factory

import (
	"github.com/automoto/tower-defense/archetypes"
	"github.com/automoto/tower-defense/assets"
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround spawns the ground plane at the world origin.
func CreateGround(ecs *ecs.ECS) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	components.Transform.SetValue(ground, components.NewTransform(0, 0, 0))
	components.Mesh.SetValue(ground, components.MeshData{Mesh: assets.NewPlane(cfg.Ground.Size)})
	components.Material.SetValue(ground, components.MaterialData{Color: cfg.Ground.Color})
	return ground
}
