package systems

import (
	"testing"
	"time"

	"github.com/automoto/tower-defense/assets"
	"github.com/automoto/tower-defense/components"
	"github.com/automoto/tower-defense/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const eps = 1e-4

// newTestECS returns a world with event handlers registered and the bullet model loaded.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	RegisterEventHandlers(e)
	if _, err := factory.CreateGameAssets(e, assets.NewModelLoader(nil)); err != nil {
		t.Fatalf("CreateGameAssets failed: %v", err)
	}
	return e
}

// step runs one frame of the gameplay pipeline with a fixed delta.
func step(e *ecs.ECS, dt time.Duration) {
	StepTime(e, dt)
	for _, system := range []ecs.System{UpdateTowers, UpdateBullets, MoveBullets, UpdateRecoil} {
		WithGameplayChecks(system)(e)
	}
	UpdateEvents(e)
}

func countWith(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func bulletCount(w donburi.World) int {
	return countWith(w, components.Bullet)
}
