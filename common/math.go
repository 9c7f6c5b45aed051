package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// EaseInOut maps t in [0, 1] through a smoothstep curve: slow start, fast
// middle, slow finish. Values outside [0, 1] are clamped.
//
// Parameters:
//   - t: raw progress
//
// Returns:
//   - float32: eased progress in [0, 1]
func EaseInOut(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// MoveToward advances current toward target by at most maxDelta, never
// overshooting.
//
// Parameters:
//   - current: the current value
//   - target: the destination value
//   - maxDelta: maximum step size (negative values are treated as 0)
//
// Returns:
//   - float32: the stepped value
func MoveToward(current, target, maxDelta float32) float32 {
	if maxDelta < 0 {
		maxDelta = 0
	}
	diff := target - current
	if Abs(diff) <= maxDelta {
		return target
	}
	if diff > 0 {
		return current + maxDelta
	}
	return current - maxDelta
}

// Abs returns the absolute value of v.
//
// Parameters:
//   - v: input value
//
// Returns:
//   - float32: |v|
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// ProjectOnPlane removes from v its component along the plane normal, leaving
// the tangential part. A degenerate normal (near-zero length) returns v
// unchanged.
//
// Parameters:
//   - v: the vector to project
//   - normal: the plane normal (need not be unit length)
//
// Returns:
//   - mgl32.Vec3: v projected onto the plane
func ProjectOnPlane(v, normal mgl32.Vec3) mgl32.Vec3 {
	n, ok := SafeNormalize(normal)
	if !ok {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n)))
}

// SafeNormalize normalizes v, guarding against division by zero.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: the unit vector, or the zero vector when degenerate
//   - bool: false when v is too short to normalize
func SafeNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l < 1e-6 {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// SafeNormalize2 normalizes a 2D vector, guarding against division by zero.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec2: the unit vector, or the zero vector when degenerate
//   - bool: false when v is too short to normalize
func SafeNormalize2(v mgl32.Vec2) (mgl32.Vec2, bool) {
	l := v.Len()
	if l < 1e-6 {
		return mgl32.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// Horizontal returns v with its Y component zeroed.
//
// Parameters:
//   - v: input vector
//
// Returns:
//   - mgl32.Vec3: the horizontal part of v
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[2]}
}

// YawFor returns the yaw angle (radians around world up) that turns the -Z
// forward axis to face a horizontal direction, where x maps to world X and y
// maps to world Z.
//
// Parameters:
//   - dir: horizontal movement direction
//
// Returns:
//   - float32: yaw in radians
func YawFor(dir mgl32.Vec2) float32 {
	return float32(math.Atan2(float64(-dir[0]), float64(-dir[1])))
}
