package gamemath

import "github.com/go-gl/mathgl/mgl32"

// ShadowPoint projects p away from a point light onto the horizontal plane y = planeY.
// Points on or below the plane are their own shadow. ok is false when p is at or above
// the light, where no shadow reaches the plane.
func ShadowPoint(p, light mgl32.Vec3, planeY float32) (mgl32.Vec3, bool) {
	if p.Y() <= planeY {
		return mgl32.Vec3{p.X(), planeY, p.Z()}, true
	}
	height := light.Y() - p.Y()
	if height <= 0 {
		return mgl32.Vec3{}, false
	}
	t := (light.Y() - planeY) / height
	s := light.Add(p.Sub(light).Mul(t))
	s[1] = planeY
	return s, true
}
