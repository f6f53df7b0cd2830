package factory

import (
	"fmt"

	"github.com/automoto/tower-defense/assets"
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGameAssets loads the startup asset handles into the GameAssets singleton.
func CreateGameAssets(ecs *ecs.ECS, loader *assets.ModelLoader) (*donburi.Entry, error) {
	bullet, err := loader.Load(cfg.Bullet.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("loading bullet model: %w", err)
	}

	entry := ecs.World.Entry(ecs.World.Create(components.GameAssets))
	components.GameAssets.SetValue(entry, components.GameAssetsData{
		BulletModel: bullet,
	})
	return entry, nil
}
