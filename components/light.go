package components

import "github.com/yohamta/donburi"

// PointLightData is an omnidirectional light at the entity's position.
type PointLightData struct {
	Intensity      float32 // lumens
	Range          float32 // no contribution beyond this distance
	ShadowsEnabled bool
}

var PointLight = donburi.NewComponentType[PointLightData]()
