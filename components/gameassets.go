package components

import (
	"github.com/automoto/tower-defense/assets"
	"github.com/yohamta/donburi"
)

// GameAssetsData holds handles loaded once at startup (singleton component, read-only after).
type GameAssetsData struct {
	BulletModel *assets.Model
}

var GameAssets = donburi.NewComponentType[GameAssetsData]()
