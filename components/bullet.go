package components

import "github.com/yohamta/donburi"

// BulletData is a short-lived projectile fired by a tower.
type BulletData struct {
	Lifetime   Timer
	Speed      float32 // units per second along forward
	Owner      donburi.Entity
	SpawnFrame uint64 // frame the bullet was created in; it starts ticking the frame after
}

var Bullet = donburi.NewComponentType[BulletData]()
