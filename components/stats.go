package components

import "github.com/yohamta/donburi"

// StatsData counts gameplay events for the HUD (singleton component)
type StatsData struct {
	ShotsFired       int
	BulletsDespawned int
}

var Stats = donburi.NewComponentType[StatsData]()

// BulletsAlive returns bullets fired and not yet despawned.
func (s *StatsData) BulletsAlive() int {
	return s.ShotsFired - s.BulletsDespawned
}
