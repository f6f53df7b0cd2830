package systems

import (
	"fmt"

	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/automoto/tower-defense/fonts"
	"github.com/automoto/tower-defense/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the shot counters and the tower reload progress in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Regular.Get()
	x := cfg.HUD.Margin
	y := cfg.HUD.Margin + cfg.HUD.LineHeight

	for _, line := range hudLines(ecs) {
		text.Draw(screen, line, face, x, y, cfg.HUD.TextColor)
		y += cfg.HUD.LineHeight
	}
}

func hudLines(ecs *ecs.ECS) []string {
	stats := GetOrCreateStats(ecs)
	lines := []string{
		fmt.Sprintf("Shots fired: %d", stats.ShotsFired),
		fmt.Sprintf("Bullets alive: %d", stats.BulletsAlive()),
	}

	if entry, ok := tags.Tower.First(ecs.World); ok {
		shooting := components.Tower.Get(entry).Shooting
		lines = append(lines, fmt.Sprintf("Next shot: %.2fs (%.0f%% loaded)",
			shooting.Remaining().Seconds(), shooting.Fraction()*100))
	}
	if IsMuted() {
		lines = append(lines, "Muted")
	}
	return lines
}
