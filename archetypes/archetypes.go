package archetypes

import (
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/automoto/tower-defense/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Transform,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Transform,
		components.Mesh,
		components.Material,
	)
	Tower = newArchetype(
		tags.Tower,
		components.Tower,
		components.Recoil,
		components.Transform,
		components.Mesh,
		components.Material,
	)
	Light = newArchetype(
		tags.Light,
		components.PointLight,
		components.Transform,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Transform,
		components.Children,
	)
	// MeshNode is one object of a loaded model, parented to the entity the model was spawned for.
	MeshNode = newArchetype(
		components.Parent,
		components.Transform,
		components.Mesh,
		components.Material,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
