// package physics provides the collision-query primitives the gameplay core
// runs against: a segment hit-test and a convex sweep-test, both filtered by
// layer masks. A host engine can adapt its physics backend behind the World
// interface; StaticWorld is the in-memory implementation used by the demos
// and tests.
package physics

import (
	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
	"github.com/go-gl/mathgl/mgl32"
)

// Layer is a collision-layer bitmask. Colliders carry one or more layers;
// queries pass a mask and only colliders with an overlapping layer respond.
type Layer uint32

const (
	// LayerNone matches no colliders.
	LayerNone Layer = 0

	// LayerGround marks walkable ground surfaces.
	LayerGround Layer = 1 << 0

	// LayerWall marks blocking geometry that is not walkable.
	LayerWall Layer = 1 << 1

	// LayerProp marks movable or decorative colliders.
	LayerProp Layer = 1 << 2

	// LayerAll matches every collider.
	LayerAll Layer = ^Layer(0)
)

// ClosestHit is the nearest surface found by a segment hit-test.
type ClosestHit struct {
	// Position is the world-space hit point.
	Position mgl32.Vec3

	// Normal is the surface normal at the hit point.
	Normal mgl32.Vec3

	// Node is the scene node the hit collider is bound to (nil for unbound
	// colliders).
	Node scenegraph.Node
}

// ContactEvent is one contact produced by a convex sweep. Ephemeral: consumed
// within a single collision-slide resolution and never persisted.
type ContactEvent struct {
	// Point is the world-space contact point.
	Point mgl32.Vec3

	// Normal is the contact normal, facing out of the hit surface.
	Normal mgl32.Vec3

	// Fraction is the fraction of travel completed at impact, in [0, 1].
	Fraction float32

	// Node is the scene node the hit collider is bound to (nil for unbound
	// colliders).
	Node scenegraph.Node
}

// Capsule is the swept collision shape: a vertical capsule described by its
// radius, full height, and the offset of its center from the actor position.
type Capsule struct {
	// Radius is the capsule radius.
	Radius float32

	// Height is the full capsule height.
	Height float32

	// Offset is the capsule-center offset from the actor's position (the
	// model origin).
	Offset mgl32.Vec3
}

// capsuleRadiusFactor scales the visual bounding-box width into the capsule
// radius.
const capsuleRadiusFactor = 0.4

// NewCapsuleForBounds derives the collision capsule from an actor's visual
// bounding box: radius is 0.4 x the box width, height is the full box height,
// and the center sits half-height minus the collision margin above the model
// origin.
//
// Parameters:
//   - bounds: the actor's model-space bounding box
//   - margin: the collision margin to sink the capsule by
//
// Returns:
//   - Capsule: the derived collision shape
func NewCapsuleForBounds(bounds common.BoundingBox, margin float32) Capsule {
	height := bounds.Height()
	return Capsule{
		Radius: capsuleRadiusFactor * bounds.Width(),
		Height: height,
		Offset: mgl32.Vec3{0, height/2 - margin, 0},
	}
}

// HalfHeight returns half the capsule height.
//
// Returns:
//   - float32: height / 2
func (c Capsule) HalfHeight() float32 {
	return c.Height / 2
}

// World is the physics-query surface the gameplay core depends on.
type World interface {
	// SegmentHitTest casts a line segment through the world and returns the
	// closest surface hit on a matching layer.
	//
	// Parameters:
	//   - from: segment start in world space
	//   - to: segment end in world space
	//   - mask: collision layers to test against
	//
	// Returns:
	//   - ClosestHit: the nearest hit (zero value when none)
	//   - bool: true if any surface was hit
	SegmentHitTest(from, to mgl32.Vec3, mask Layer) (ClosestHit, bool)

	// ConvexSweepTest sweeps a capsule between two actor positions and
	// returns every contact on a matching layer, ordered closest-first by
	// fraction of travel.
	//
	// Parameters:
	//   - shape: the capsule to sweep
	//   - from: actor position at the start of travel
	//   - to: actor position at the end of travel
	//   - mask: collision layers to test against
	//
	// Returns:
	//   - []ContactEvent: contacts ordered by ascending fraction (nil when
	//     the path is clear)
	ConvexSweepTest(shape Capsule, from, to mgl32.Vec3, mask Layer) []ContactEvent
}
