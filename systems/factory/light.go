package factory

import (
	"github.com/automoto/tower-defense/archetypes"
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLight spawns the scene's point light.
func CreateLight(ecs *ecs.ECS) *donburi.Entry {
	light := archetypes.Light.Spawn(ecs)
	p := cfg.Light.Position
	components.Transform.SetValue(light, components.NewTransform(p.X(), p.Y(), p.Z()))
	components.PointLight.SetValue(light, components.PointLightData{
		Intensity:      cfg.Light.Intensity,
		Range:          cfg.Light.Range,
		ShadowsEnabled: cfg.Light.ShadowsEnabled,
	})
	return light
}
