package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TowerData holds a tower's single shooting countdown. There is never more than one
// pending shot: the timer wraps instead of queueing.
type TowerData struct {
	Shooting       Timer
	BulletOffset   mgl32.Vec3 // spawn point in tower space
	BulletRotation mgl32.Quat // spawn orientation in tower space
}

var Tower = donburi.NewComponentType[TowerData]()

// RecoilData plays a short scale pulse on the tower after each shot
type RecoilData struct {
	Tween     *gween.Tween // nil when idle
	BaseScale float32
}

var Recoil = donburi.NewComponentType[RecoilData]()
