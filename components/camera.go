package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// Camera3DData is a perspective camera. Its position comes from the entity Transform.
type Camera3DData struct {
	Target mgl32.Vec3
	Up     mgl32.Vec3
	FovY   float32 // radians
	Near   float32
	Far    float32
}

var Camera = donburi.NewComponentType[Camera3DData]()
