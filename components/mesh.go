package components

import (
	"image/color"

	"github.com/automoto/tower-defense/assets"
	"github.com/yohamta/donburi"
)

// MeshData points at shared, read-only geometry.
type MeshData struct {
	*assets.Mesh
}

var Mesh = donburi.NewComponentType[MeshData]()

// MaterialData is a flat base color shaded by the scene lights.
type MaterialData struct {
	Color color.RGBA
}

var Material = donburi.NewComponentType[MaterialData]()
