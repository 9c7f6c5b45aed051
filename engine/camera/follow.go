package camera

import (
	"math"

	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

const (
	// lookAtHeight raises the follow point slightly above the actor's origin
	// so the framing centers on the torso rather than the feet.
	lookAtHeight float32 = 1

	// followDamping is the per-frame blend toward the desired position while
	// the limiter is fully engaged.
	followDamping float32 = 0.15

	// maxElevation keeps the orbit off the poles, where the look-at basis
	// degenerates.
	maxElevation = float32(math.Pi/2) - 0.1
)

// evaluateFollow runs one frame of the follow behavior: a fixed-radius orbit
// around a point slightly above the actor, altitude held at the actor's base
// altitude plus the anchor's authored offset. Player orbit input steers the
// orbit directly; the inertia limiter is dropped while input is active so it
// never fights the player, then ramps back in once input stops.
func (r *rig) evaluateFollow() {
	a := r.active
	lookAt := r.target.WorldPosition().Add(mgl32.Vec3{0, lookAtHeight, 0})

	if r.orbit.X() != 0 || r.orbit.Y() != 0 {
		r.applyOrbit()
		r.limiter = 0
	} else if r.limiter < 1 {
		r.limiter = common.Clamp(r.limiter+r.tuning.LimiterRamp, 0, 1)
	}

	sinA, cosA := math.Sincos(float64(r.azimuth))
	sinE, cosE := math.Sincos(float64(r.elevation))
	desired := mgl32.Vec3{
		lookAt.X() + a.radius*float32(cosE*sinA),
		r.target.BaseAltitude() + lookAtHeight + a.height + a.radius*float32(sinE),
		lookAt.Z() + a.radius*float32(cosE*cosA),
	}

	position := desired
	if r.havePrev && r.limiter > 0 {
		smoothed := r.prevCamPos.Add(desired.Sub(r.prevCamPos).Mul(followDamping))
		position = desired.Add(smoothed.Sub(desired).Mul(r.limiter))
	}
	r.prevCamPos = position
	r.havePrev = true

	r.placeAnchor(a, position, lookAt)
}

// applyOrbit folds the pending orbit input into the spherical coordinates by
// composing a yaw around world up with a pitch around the camera's local
// right axis, scaled by the orbit sensitivity.
func (r *rig) applyOrbit() {
	sinA, cosA := math.Sincos(float64(r.azimuth))
	sinE, cosE := math.Sincos(float64(r.elevation))
	offset := mgl32.Vec3{float32(cosE * sinA), float32(sinE), float32(cosE * cosA)}

	right, ok := common.SafeNormalize(worldUp.Cross(offset))
	if !ok {
		right = mgl32.Vec3{1, 0, 0}
	}
	yaw := mgl32.QuatRotate(-r.orbit.X()*r.tuning.OrbitSensitivity, worldUp)
	pitch := mgl32.QuatRotate(r.orbit.Y()*r.tuning.OrbitSensitivity, right)
	rotated := yaw.Mul(pitch).Rotate(offset)

	r.azimuth = float32(math.Atan2(float64(rotated.X()), float64(rotated.Z())))
	sinNew := common.Clamp(rotated.Y(), -1, 1)
	r.elevation = common.Clamp(float32(math.Asin(float64(sinNew))), -maxElevation, maxElevation)
}
