package gamemath

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-3

func testCamera() mgl32.Mat4 {
	return ViewProjection(
		mgl32.Vec3{-2, 2.5, 5},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
		math.Pi/4, 1280.0/720.0, 0.1, 1000,
	)
}

func TestProjectPoint(t *testing.T) {
	vp := testCamera()

	center, depth, ok := ProjectPoint(vp, mgl32.Vec3{0, 0, 0}, 1280, 720)
	if !ok {
		t.Fatal("Expected the camera target to be visible")
	}
	if !center.ApproxEqualThreshold(mgl32.Vec2{640, 360}, eps) {
		t.Errorf("Expected target at screen center, got %v", center)
	}
	wantDepth := mgl32.Vec3{-2, 2.5, 5}.Len()
	if math.Abs(float64(depth-wantDepth)) > eps {
		t.Errorf("Expected depth %v, got %v", wantDepth, depth)
	}

	above, _, ok := ProjectPoint(vp, mgl32.Vec3{0, 1, 0}, 1280, 720)
	if !ok || above.Y() >= center.Y() {
		t.Errorf("Expected a higher point to land higher on screen, got %v", above)
	}

	if _, _, ok := ProjectPoint(vp, mgl32.Vec3{-4, 5, 10}, 1280, 720); ok {
		t.Error("Expected a point behind the camera to be rejected")
	}
}

func TestFacesCamera(t *testing.T) {
	a, b, c := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}
	if !FacesCamera(a, b, c, mgl32.Vec3{0, 5, 0}) {
		t.Error("Expected an upward triangle to face a camera above it")
	}
	if FacesCamera(a, b, c, mgl32.Vec3{0, -5, 0}) {
		t.Error("Expected an upward triangle to be culled from below")
	}
	if n := FaceNormal(a, b, c); !n.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, eps) {
		t.Errorf("Expected normal +Y, got %v", n)
	}
}

func TestLightFactor(t *testing.T) {
	l := PointLight{Position: mgl32.Vec3{0, 2, 0}, Intensity: 1500, Range: 20}
	up := mgl32.Vec3{0, 1, 0}

	tests := []struct {
		name string
		p, n mgl32.Vec3
		want func(float32) bool
	}{
		{"Facing light", mgl32.Vec3{}, up, func(f float32) bool { return f > 0.9 }},
		{"Facing away", mgl32.Vec3{}, up.Mul(-1), func(f float32) bool { return f == 0 }},
		{"Out of range", mgl32.Vec3{0, -30, 0}, up, func(f float32) bool { return f == 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LightFactor(l, tt.p, tt.n, 1.2); !tt.want(got) {
				t.Errorf("Unexpected light factor %v", got)
			}
		})
	}

	near := LightFactor(PointLight{Position: mgl32.Vec3{0, 3, 0}, Intensity: 100, Range: 20}, mgl32.Vec3{}, up, 1)
	far := LightFactor(PointLight{Position: mgl32.Vec3{0, 6, 0}, Intensity: 100, Range: 20}, mgl32.Vec3{}, up, 1)
	if far >= near {
		t.Errorf("Expected light to fall off with distance, near %v far %v", near, far)
	}
}

func TestShade(t *testing.T) {
	base := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got := Shade(base, 0.25, 1); got != base {
		t.Errorf("Expected fully lit color %v, got %v", base, got)
	}
	if got := Shade(base, 0.5, 0); got != (color.RGBA{R: 100, G: 50, B: 25, A: 255}) {
		t.Errorf("Expected half-ambient color, got %v", got)
	}
}

func TestShadowPoint(t *testing.T) {
	light := mgl32.Vec3{0, 10, 0}

	s, ok := ShadowPoint(mgl32.Vec3{1, 5, 0}, light, 0)
	if !ok || !s.ApproxEqualThreshold(mgl32.Vec3{2, 0, 0}, eps) {
		t.Errorf("Expected shadow at (2,0,0), got %v ok=%v", s, ok)
	}

	if _, ok := ShadowPoint(mgl32.Vec3{0, 12, 0}, light, 0); ok {
		t.Error("Expected no shadow for a point above the light")
	}

	s, ok = ShadowPoint(mgl32.Vec3{3, 0, 1}, light, 0.01)
	if !ok || !s.ApproxEqualThreshold(mgl32.Vec3{3, 0.01, 1}, eps) {
		t.Errorf("Expected a point below the plane to be lifted onto it, got %v ok=%v", s, ok)
	}
}
