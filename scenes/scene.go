package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is a self-contained ECS world driven by the game loop.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}
