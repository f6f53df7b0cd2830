package tags

import "github.com/yohamta/donburi"

var (
	Camera = donburi.NewTag().SetName("Camera")
	Ground = donburi.NewTag().SetName("Ground")
	Tower  = donburi.NewTag().SetName("Tower")
	Light  = donburi.NewTag().SetName("Light")
	Bullet = donburi.NewTag().SetName("Bullet")
)
