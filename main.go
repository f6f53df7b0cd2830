package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tower-defense/config"
	"github.com/automoto/tower-defense/fonts"
	"github.com/automoto/tower-defense/scenes"
	"github.com/automoto/tower-defense/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewTowerDefenseScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "show the debug overlay")
	mute := flag.Bool("mute", false, "start with sound effects muted")
	noPersist := flag.Bool("no-persist", false, "do not load or save settings")
	flag.Parse()

	config.Debug.NoPersist = *noPersist

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	if config.C.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	}
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if !config.Debug.NoPersist {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettingsGlobal(saved)
		}
	}

	// Flags win over saved settings
	if *debug {
		config.Debug.Overlay = true
	}
	if *mute {
		systems.SetMuted(true)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
