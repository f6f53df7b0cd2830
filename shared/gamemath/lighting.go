package gamemath

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is a light source as seen by the shading functions.
type PointLight struct {
	Position  mgl32.Vec3
	Intensity float32 // lumens
	Range     float32
}

// LightFactor returns the diffuse contribution of l at point p with surface normal n,
// in [0, 1]. Intensity falls off with the inverse square of the distance and fades to
// zero at Range. lumensToUnit scales lumens per square unit into the 0..1 range.
func LightFactor(l PointLight, p, n mgl32.Vec3, lumensToUnit float32) float32 {
	toLight := l.Position.Sub(p)
	dist := toLight.Len()
	if dist == 0 || (l.Range > 0 && dist >= l.Range) {
		return 0
	}

	lambert := n.Dot(toLight) / dist
	if lambert <= 0 {
		return 0
	}

	irradiance := l.Intensity / (4 * math.Pi * dist * dist) * lumensToUnit
	if l.Range > 0 {
		r := dist / l.Range
		fade := 1 - r*r*r*r
		irradiance *= fade * fade
	}
	return mgl32.Clamp(lambert*irradiance, 0, 1)
}

// Shade combines ambient and diffuse light factors into a final surface color.
func Shade(base color.RGBA, ambient, diffuse float32) color.RGBA {
	f := mgl32.Clamp(ambient+(1-ambient)*diffuse, 0, 1)
	return color.RGBA{
		R: uint8(float32(base.R) * f),
		G: uint8(float32(base.G) * f),
		B: uint8(float32(base.B) * f),
		A: base.A,
	}
}
