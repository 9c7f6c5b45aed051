package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// evaluateAxis runs one frame of the axis-aligned behavior: the camera holds
// a fixed viewing axis toward a point above the actor. When the reference
// forward direction opposes the canonical axis the axis mirrors (X and Z
// negate, Y stays), which keeps the camera outside the action as the
// character crosses to the other side. During a transition the reference is
// the outgoing anchor's recorded forward, so the new anchor picks the side
// the camera is arriving from; otherwise it is the anchor's own forward,
// which latches the last decision.
func (r *rig) evaluateAxis() {
	a := r.active
	lookAt := r.target.WorldPosition().Add(mgl32.Vec3{0, lookAtHeight, 0})

	reference := a.node.WorldTransform().Forward()
	if r.transitioning && r.previous != nil {
		reference = r.prevForward
	}

	axis := a.axis
	if axis.Dot(reference) < 0 {
		axis = mirrorAxis(axis)
	}

	r.placeAnchor(a, lookAt.Sub(axis.Mul(a.radius)), lookAt)
}

// mirrorAxis reflects a viewing axis to the opposite side of the action.
func mirrorAxis(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{-v[0], v[1], -v[2]}
}
