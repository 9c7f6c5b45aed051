// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a position/rotation/scale triple expressing a node's placement.
// Composition and inversion assume per-node uniform scale (non-uniform scale
// under rotation introduces shear, which TRS form cannot represent).
type Transform struct {
	// Position is the translation component.
	Position mgl32.Vec3

	// Rotation is the orientation component as a unit quaternion.
	Rotation mgl32.Quat

	// Scale is the per-axis scale component.
	Scale mgl32.Vec3
}

// IdentityTransform returns a Transform with zero translation, identity
// rotation, and unit scale.
//
// Returns:
//   - Transform: the identity transform
func IdentityTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// TransformAt returns an identity-oriented, unit-scale Transform at the given
// position.
//
// Parameters:
//   - position: world-space translation
//
// Returns:
//   - Transform: the positioned transform
func TransformAt(position mgl32.Vec3) Transform {
	t := IdentityTransform()
	t.Position = position
	return t
}

// Mul composes this transform with a child transform: the result places the
// child relative to t. Equivalent to multiplying the corresponding matrices
// (t * child).
//
// Parameters:
//   - child: the transform expressed in t's local space
//
// Returns:
//   - Transform: the composed transform
func (t Transform) Mul(child Transform) Transform {
	return Transform{
		Position: t.Position.Add(t.Rotation.Rotate(hadamard(t.Scale, child.Position))),
		Rotation: t.Rotation.Mul(child.Rotation).Normalize(),
		Scale:    hadamard(t.Scale, child.Scale),
	}
}

// Inverse returns the transform that undoes t, so that t.Mul(t.Inverse()) is
// the identity. Zero scale components invert to zero rather than dividing by
// zero.
//
// Returns:
//   - Transform: the inverse transform
func (t Transform) Inverse() Transform {
	invScale := mgl32.Vec3{invComponent(t.Scale[0]), invComponent(t.Scale[1]), invComponent(t.Scale[2])}
	invRot := t.Rotation.Inverse()
	return Transform{
		Position: hadamard(invScale, invRot.Rotate(t.Position.Mul(-1))),
		Rotation: invRot,
		Scale:    invScale,
	}
}

// Lerp interpolates between t and to by s in [0, 1]: positions and scales
// linearly, rotations by spherical interpolation.
//
// Parameters:
//   - to: the destination transform
//   - s: interpolation amount (0 = t, 1 = to)
//
// Returns:
//   - Transform: the interpolated transform
func (t Transform) Lerp(to Transform, s float32) Transform {
	return Transform{
		Position: t.Position.Add(to.Position.Sub(t.Position).Mul(s)),
		Rotation: mgl32.QuatSlerp(t.Rotation, to.Rotation, s),
		Scale:    t.Scale.Add(to.Scale.Sub(t.Scale).Mul(s)),
	}
}

// Forward returns the transform's forward direction (-Z rotated into world
// space).
//
// Returns:
//   - mgl32.Vec3: unit forward vector
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right returns the transform's right direction (+X rotated into world space).
//
// Returns:
//   - mgl32.Vec3: unit right vector
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up returns the transform's up direction (+Y rotated into world space).
//
// Returns:
//   - mgl32.Vec3: unit up vector
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Mat4 expands the transform to a 4x4 column-major matrix (translate * rotate
// * scale).
//
// Returns:
//   - mgl32.Mat4: the equivalent matrix
func (t Transform) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// ApproxEqual reports whether two transforms are equal within epsilon on every
// component. Rotations are compared up to sign (q and -q express the same
// orientation).
//
// Parameters:
//   - o: the transform to compare against
//   - epsilon: per-component tolerance
//
// Returns:
//   - bool: true if the transforms match within epsilon
func (t Transform) ApproxEqual(o Transform, epsilon float32) bool {
	if !t.Position.ApproxEqualThreshold(o.Position, epsilon) {
		return false
	}
	if !t.Scale.ApproxEqualThreshold(o.Scale, epsilon) {
		return false
	}
	q, p := t.Rotation.Normalize(), o.Rotation.Normalize()
	if q.Dot(p) < 0 {
		p = p.Scale(-1)
	}
	return mgl32.FloatEqualThreshold(q.W, p.W, epsilon) && q.V.ApproxEqualThreshold(p.V, epsilon)
}

// BoundingBox is an axis-aligned extent in the actor's model space, used to
// derive collision shapes from visual bounds.
type BoundingBox struct {
	// Min is the minimum corner.
	Min mgl32.Vec3

	// Max is the maximum corner.
	Max mgl32.Vec3
}

// Width returns the X extent of the box.
//
// Returns:
//   - float32: max.X - min.X
func (b BoundingBox) Width() float32 {
	return b.Max[0] - b.Min[0]
}

// Height returns the Y extent of the box.
//
// Returns:
//   - float32: max.Y - min.Y
func (b BoundingBox) Height() float32 {
	return b.Max[1] - b.Min[1]
}

// Depth returns the Z extent of the box.
//
// Returns:
//   - float32: max.Z - min.Z
func (b BoundingBox) Depth() float32 {
	return b.Max[2] - b.Min[2]
}

// Center returns the midpoint of the box.
//
// Returns:
//   - mgl32.Vec3: the box center
func (b BoundingBox) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// hadamard multiplies two vectors component-wise.
func hadamard(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// invComponent returns 1/v, or 0 for a zero component.
func invComponent(v float32) float32 {
	if v == 0 {
		return 0
	}
	return 1 / v
}
