package headless

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/tower-defense/assets"
	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/automoto/tower-defense/scenes"
	"github.com/automoto/tower-defense/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameLoop runs the tower defense simulation at a fixed tick rate with no window.
// Every tick advances game time by exactly one tick interval, so the rate may not
// drop below MinTickRate where the interval would exceed cfg.Time.MaxDelta.
type GameLoop struct {
	ecs      *ecs.ECS
	tickRate int
	ticks    uint64
	stopChan chan struct{}
	stopOnce sync.Once
}

// MinTickRate is the lowest tick rate whose interval fits in one time step.
func MinTickRate() int {
	return int((time.Second + cfg.Time.MaxDelta - 1) / cfg.Time.MaxDelta)
}

// NewGameLoop bootstraps a fresh world with models from loader.
func NewGameLoop(loader *assets.ModelLoader, tickRate int) (*GameLoop, error) {
	if minRate := MinTickRate(); tickRate < minRate {
		return nil, fmt.Errorf("invalid tick rate %d: must be at least %d", tickRate, minRate)
	}

	e := ecs.NewECS(donburi.NewWorld())
	if err := scenes.Bootstrap(e, loader); err != nil {
		return nil, err
	}

	return &GameLoop{
		ecs:      e,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}, nil
}

// LogEvents prints every shot and despawn as it is processed.
func (g *GameLoop) LogEvents() {
	components.BulletFired.Subscribe(g.ecs.World, func(w donburi.World, ev components.BulletFiredEvent) {
		log.Printf("Bullet %v fired at %v", ev.Bullet, ev.Position)
	})
	components.BulletDespawned.Subscribe(g.ecs.World, func(w donburi.World, ev components.BulletDespawnedEvent) {
		log.Printf("Bullet %v despawned", ev.Bullet)
	})
}

// Run ticks until ctx is done or Stop is called.
func (g *GameLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(g.interval())
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.Tick()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Tick advances the simulation by one tick interval.
func (g *GameLoop) Tick() {
	scenes.StepGameplay(g.ecs, g.interval())
	g.ticks++
}

// Ticks returns how many ticks ran so far.
func (g *GameLoop) Ticks() uint64 {
	return g.ticks
}

// Stats returns the shot counters of the simulated world.
func (g *GameLoop) Stats() components.StatsData {
	return *systems.GetOrCreateStats(g.ecs)
}

// Elapsed returns the simulated game time.
func (g *GameLoop) Elapsed() time.Duration {
	return systems.GetOrCreateTime(g.ecs).Elapsed
}

func (g *GameLoop) interval() time.Duration {
	return time.Second / time.Duration(g.tickRate)
}
