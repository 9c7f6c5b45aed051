package camera

import (
	"math"
	"sort"
	"strings"

	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
	"github.com/go-gl/mathgl/mgl32"
)

// AnchorKind distinguishes the two constraint behaviors an anchor can carry.
type AnchorKind int

const (
	// KindFollow is a fixed-radius orbit around the target with player
	// azimuth/elevation input.
	KindFollow AnchorKind = iota

	// KindAxisAligned holds a fixed viewing axis toward the target, mirrored
	// when the reference forward crosses to the opposite side.
	KindAxisAligned
)

// String returns the kind's display name.
//
// Returns:
//   - string: the display name
func (k AnchorKind) String() string {
	switch k {
	case KindFollow:
		return "follow"
	case KindAxisAligned:
		return "axis"
	default:
		return "unknown"
	}
}

// defaultAxisRadius stands in for an axis anchor authored on top of the
// target, where no viewing distance can be derived.
const defaultAxisRadius float32 = 6

// anchor is one scanned camera anchor with the framing captured from its
// authored placement.
type anchor struct {
	name string
	node scenegraph.Node
	kind AnchorKind
	lens Lens

	// Follow framing: orbit radius, altitude offset above the target's base
	// altitude, and the authored starting azimuth.
	radius  float32
	height  float32
	azimuth float32

	// Axis framing: the canonical viewing axis, pointing from the camera
	// toward the target.
	axis mgl32.Vec3
}

// scanAnchors runs the one-time configuration pass: every node under the
// scene root whose name carries a follow or axis prefix becomes an anchor,
// with its framing derived from where the designer placed it relative to the
// target. The scene is never re-scanned after construction.
func (r *rig) scanAnchors() {
	matches := scenegraph.Enumerate(r.root, func(n scenegraph.Node) bool {
		return strings.HasPrefix(n.Name(), r.followPrefix) || strings.HasPrefix(n.Name(), r.axisPrefix)
	})

	targetPos := r.target.WorldPosition()
	for _, n := range matches {
		if _, dup := r.anchors[n.Name()]; dup {
			continue
		}

		a := &anchor{
			name: n.Name(),
			node: n,
			kind: KindFollow,
			lens: DefaultLens(),
		}
		if strings.HasPrefix(n.Name(), r.axisPrefix) {
			a.kind = KindAxisAligned
		}
		if override, ok := r.lensOverrides[a.name]; ok {
			a.lens = override
		}

		offset := n.WorldPosition().Sub(targetPos)
		switch a.kind {
		case KindFollow:
			horizontal := common.Horizontal(offset)
			a.radius = horizontal.Len()
			if a.radius < 1 {
				a.radius = 1
			}
			a.height = offset.Y()
			a.azimuth = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
		case KindAxisAligned:
			a.radius = offset.Len()
			if axis, ok := common.SafeNormalize(offset.Mul(-1)); ok {
				a.axis = axis
			} else {
				a.axis = mgl32.Vec3{0, 0, -1}
				a.radius = defaultAxisRadius
			}
		}

		r.anchors[a.name] = a
		r.names = append(r.names, a.name)
	}
	sort.Strings(r.names)
}

// placeAnchor writes an anchor's computed framing to its node: positioned at
// position, facing lookAt.
func (r *rig) placeAnchor(a *anchor, position, lookAt mgl32.Vec3) {
	world := a.node.WorldTransform()
	world.Position = position
	world.Rotation = mgl32.QuatLookAtV(position, lookAt, worldUp)
	a.node.SetWorldTransform(world)
}
