package systems

import (
	"fmt"

	"github.com/automoto/tower-defense/components"
	"github.com/automoto/tower-defense/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.DebugOverlay {
		return
	}

	msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f\n%s", ebiten.ActualTPS(), ebiten.ActualFPS(), debugText(ecs))
	ebitenutil.DebugPrintAt(screen, msg, 0, screen.Bounds().Dy()-debugLineCount*debugLineHeight)
}

var (
	bulletQuery = donburi.NewQuery(filter.Contains(components.Bullet))
	towerQuery  = donburi.NewQuery(filter.Contains(tags.Tower))
)

const (
	debugLineCount  = 6
	debugLineHeight = 16
)

// debugText describes the world state for the overlay.
func debugText(ecs *ecs.ECS) string {
	t := GetOrCreateTime(ecs)
	bullets := bulletQuery.Count(ecs.World)
	towers := towerQuery.Count(ecs.World)

	return fmt.Sprintf(
		"Frame: %d  Elapsed: %.2fs  Delta: %s\nEntities: %d  Towers: %d  Bullets: %d\nTriangles: %d  Shadows: %d\nPaused: %v",
		t.Frame, t.Elapsed.Seconds(), t.Delta,
		ecs.World.Len(), towers, bullets,
		len(groundTris)+len(sceneTris), len(shadowTris),
		IsPaused(ecs),
	)
}
