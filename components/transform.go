package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's placement relative to its parent, or to the world when it
// has no Parent component.
type TransformData struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()

// NewTransform returns an unrotated, unscaled transform at (x, y, z).
func NewTransform(x, y, z float32) TransformData {
	return TransformData{
		Translation: mgl32.Vec3{x, y, z},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// LookingAt rotates the transform so that its forward (-Z) points at target and its local
// +Y lies in the plane of forward and up. The rotation is left unchanged when target is the
// current position or lies straight along up.
func (t TransformData) LookingAt(target, up mgl32.Vec3) TransformData {
	forward := target.Sub(t.Translation)
	if forward.Len() < 1e-6 {
		return t
	}
	back := forward.Normalize().Mul(-1)
	right := up.Cross(back)
	if right.Len() < 1e-6 {
		return t
	}
	right = right.Normalize()
	newUp := back.Cross(right)

	basis := mgl32.Mat4{
		right.X(), right.Y(), right.Z(), 0,
		newUp.X(), newUp.Y(), newUp.Z(), 0,
		back.X(), back.Y(), back.Z(), 0,
		0, 0, 0, 1,
	}
	t.Rotation = mgl32.Mat4ToQuat(basis).Normalize()
	return t
}

// WithRotation replaces the rotation.
func (t TransformData) WithRotation(q mgl32.Quat) TransformData {
	t.Rotation = q
	return t
}

// Matrix returns translation * rotation * scale.
func (t TransformData) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Forward returns the unit vector the transform faces (-Z rotated).
func (t TransformData) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Mul composes child into this transform's space, like a parent applied to a child.
func (t TransformData) Mul(child TransformData) TransformData {
	scaled := mgl32.Vec3{
		child.Translation.X() * t.Scale.X(),
		child.Translation.Y() * t.Scale.Y(),
		child.Translation.Z() * t.Scale.Z(),
	}
	return TransformData{
		Translation: t.Translation.Add(t.Rotation.Rotate(scaled)),
		Rotation:    t.Rotation.Mul(child.Rotation).Normalize(),
		Scale: mgl32.Vec3{
			t.Scale.X() * child.Scale.X(),
			t.Scale.Y() * child.Scale.Y(),
			t.Scale.Z() * child.Scale.Z(),
		},
	}
}
