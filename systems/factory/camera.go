package factory

import (
	"github.com/automoto/tower-defense/archetypes"
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the perspective camera looking at its configured target.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	p := cfg.Camera.Position
	components.Transform.SetValue(camera,
		components.NewTransform(p.X(), p.Y(), p.Z()).LookingAt(cfg.Camera.Target, cfg.Camera.Up))
	components.Camera.SetValue(camera, components.Camera3DData{
		Target: cfg.Camera.Target,
		Up:     cfg.Camera.Up,
		FovY:   cfg.Camera.FovY,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
	})
	return camera
}
