package factory

import (
	"github.com/yohamta/donburi/ecs"
)

// SpawnCamera is the startup step creating the scene camera.
func SpawnCamera(ecs *ecs.ECS) {
	CreateCamera(ecs)
}

// SpawnBasicScene is the startup step creating the static world: ground, tower and light.
func SpawnBasicScene(ecs *ecs.ECS) {
	CreateGround(ecs)
	CreateTower(ecs)
	CreateLight(ecs)
}
