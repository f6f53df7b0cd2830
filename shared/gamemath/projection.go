package gamemath

import "github.com/go-gl/mathgl/mgl32"

// minClipW rejects points on or behind the camera plane.
const minClipW = 1e-4

// ViewProjection returns the combined perspective and look-at matrix for a camera.
func ViewProjection(eye, target, up mgl32.Vec3, fovY, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovY, aspect, near, far).Mul4(mgl32.LookAtV(eye, target, up))
}

// ProjectPoint maps a world position to screen pixels. depth is the view-space distance
// along the camera axis; ok is false for points behind the camera.
func ProjectPoint(vp mgl32.Mat4, p mgl32.Vec3, width, height float32) (screen mgl32.Vec2, depth float32, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= minClipW {
		return mgl32.Vec2{}, 0, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	screen = mgl32.Vec2{
		(ndcX + 1) / 2 * width,
		(1 - ndcY) / 2 * height,
	}
	return screen, w, true
}

// FaceNormal returns the unit normal of a counter-clockwise triangle.
func FaceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}

// FacesCamera reports whether the front side of a triangle is visible from eye.
func FacesCamera(a, b, c, eye mgl32.Vec3) bool {
	n := b.Sub(a).Cross(c.Sub(a))
	return n.Dot(eye.Sub(a)) > 0
}
