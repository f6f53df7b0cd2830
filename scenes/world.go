package scenes

import (
	"fmt"
	"sync"
	"time"

	"github.com/automoto/tower-defense/assets"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/automoto/tower-defense/systems"
	"github.com/automoto/tower-defense/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type TowerDefenseScene struct {
	ecs    *ecs.ECS
	loader *assets.ModelLoader
	once   sync.Once
}

// NewTowerDefenseScene creates the scene with models read from the embedded assets.
func NewTowerDefenseScene() *TowerDefenseScene {
	return &TowerDefenseScene{loader: assets.NewModelLoader(nil)}
}

func (s *TowerDefenseScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *TowerDefenseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.C.ClearColor)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *TowerDefenseScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())
	registerSystems(ecs, time.Now)

	s.ecs = ecs

	if err := Bootstrap(ecs, s.loader); err != nil {
		panic(err)
	}
}

// gameplaySystems advance the simulation and are skipped while paused.
var gameplaySystems = []ecs.System{
	systems.UpdateTowers,
	systems.UpdateBullets,
	systems.MoveBullets,
	systems.UpdateRecoil,
}

// StepGameplay advances the simulation by one frame of dt without input, audio or
// rendering. It is the fixed-step counterpart of the registered systems.
func StepGameplay(ecs *ecs.ECS, dt time.Duration) {
	systems.StepTime(ecs, dt)
	for _, system := range gameplaySystems {
		systems.WithGameplayChecks(system)(ecs)
	}
	systems.UpdateEvents(ecs)
}

// registerSystems installs the update systems and renderers in execution order.
func registerSystems(ecs *ecs.ECS, now func() time.Time) {
	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.NewTimeSystem(now))

	// Game systems wrapped with pause checks
	for _, system := range gameplaySystems {
		ecs.AddSystem(systems.WithGameplayChecks(system))
	}

	// Event delivery and audio run even when paused
	ecs.AddSystem(systems.UpdateEvents)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.Draw3D)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
}

// Bootstrap loads the startup assets and spawns the static scene into ecs.
func Bootstrap(ecs *ecs.ECS, loader *assets.ModelLoader) error {
	systems.RegisterEventHandlers(ecs)
	systems.GetOrCreateTime(ecs)
	systems.GetOrCreatePause(ecs)
	systems.GetOrCreateStats(ecs)
	systems.GetOrCreateSettings(ecs)

	if _, err := factory.CreateGameAssets(ecs, loader); err != nil {
		return fmt.Errorf("failed to load game assets: %w", err)
	}

	factory.SpawnCamera(ecs)
	factory.SpawnBasicScene(ecs)
	return nil
}
