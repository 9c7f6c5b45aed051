// package camera owns the shared camera node: which anchor it hangs under,
// the constraint behavior that positions the active anchor every frame, and
// the eased re-parenting glide between anchors. Anchors are discovered once
// from the scene graph by name prefix; the rig never re-scans.
//
// The rig observes the actor only through the Target capability handle, so
// it carries no reference to the character controller itself.
package camera

import (
	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/Carmen-Shannon/strider-go/config"
	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
	"github.com/go-gl/mathgl/mgl32"
)

// Lens carries the lens and post-processing parameters copied from an
// anchor's template onto the live camera at activation.
type Lens struct {
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float32
	// DepthOfField is the focus distance (0 disables the effect).
	DepthOfField float32
	// Bloom is the bloom intensity in [0, 1].
	Bloom float32
	// Vignette is the vignette strength in [0, 1].
	Vignette float32
	// Exposure is the exposure multiplier.
	Exposure float32
}

// DefaultLens returns the lens settings used by anchors without a template
// override.
//
// Returns:
//   - Lens: the default lens parameters
func DefaultLens() Lens {
	return Lens{
		FieldOfView: 60,
		Bloom:       0.2,
		Vignette:    0.15,
		Exposure:    1,
	}
}

// Target is the capability handle through which the rig observes the actor
// it frames. The character controller satisfies it directly.
type Target interface {
	// WorldPosition returns the actor's world position.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space position
	WorldPosition() mgl32.Vec3

	// BaseAltitude returns the smoothed ground height under the actor.
	//
	// Returns:
	//   - float32: the smoothed ground altitude
	BaseAltitude() float32
}

// Rig drives the shared camera node. All methods must be called from the
// simulation goroutine.
type Rig interface {
	// SetActiveCamera hands the camera to the named anchor. A missing name
	// or the already-active anchor is a silent no-op. The camera keeps its
	// instantaneous world transform through the re-parent, then its local
	// transform eases back to identity over the transition so the new
	// framing glides in instead of cutting. The anchor's lens template is
	// copied onto the live camera.
	//
	// Parameters:
	//   - name: the anchor node's name
	//   - transitionDuration: the glide length in seconds (0 snaps)
	SetActiveCamera(name string, transitionDuration float32)

	// ActivateIndex activates the nth anchor in sorted name order, counting
	// from 1.
	//
	// Parameters:
	//   - index: the 1-based anchor index
	//
	// Returns:
	//   - bool: true if this call switched the active anchor
	ActivateIndex(index int) bool

	// AddOrbitInput accumulates player orbit input for the next Evaluate.
	//
	// Parameters:
	//   - delta: orbit movement in device units (x = azimuth, y = elevation)
	AddOrbitInput(delta mgl32.Vec2)

	// Evaluate runs one frame of the active anchor's constraint behavior
	// and advances any re-parenting transition.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous evaluation
	Evaluate(deltaTime float32)

	// ActiveCamera returns the active anchor's name, or "" when the rig has
	// no anchors.
	//
	// Returns:
	//   - string: the active anchor name
	ActiveCamera() string

	// AnchorNames returns every anchor name in sorted order.
	//
	// Returns:
	//   - []string: the sorted anchor names
	AnchorNames() []string

	// CameraNode returns the shared camera node.
	//
	// Returns:
	//   - scenegraph.Node: the live camera node
	CameraNode() scenegraph.Node

	// Lens returns the live camera's current lens parameters.
	//
	// Returns:
	//   - Lens: the active lens parameters
	Lens() Lens

	// Transitioning reports whether a re-parenting glide is in progress.
	//
	// Returns:
	//   - bool: true while a transition runs
	Transitioning() bool
}

type rig struct {
	root       scenegraph.Node
	cameraNode scenegraph.Node
	target     Target
	tuning     config.Tuning

	followPrefix string
	axisPrefix   string

	anchors map[string]*anchor
	names   []string

	active      *anchor
	previous    *anchor
	prevForward mgl32.Vec3

	lens Lens

	transitioning  bool
	transitionFrom common.Transform
	transitionAt   float32
	transitionFor  float32

	// Follow-behavior state for the active anchor.
	orbit      mgl32.Vec2
	azimuth    float32
	elevation  float32
	limiter    float32
	prevCamPos mgl32.Vec3
	havePrev   bool

	initialAnchor string
	lensOverrides map[string]Lens
}

var _ Rig = &rig{}

// NewRig creates a camera rig, scans the scene for anchors, and activates
// the initial one (the first in sorted order unless overridden). Panics if
// no scene root, camera node, or target is supplied.
//
// Parameters:
//   - options: optional functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigBuilderOption) Rig {
	r := &rig{
		tuning:        config.Default(),
		followPrefix:  "camera_follow_",
		axisPrefix:    "camera_axis_",
		anchors:       make(map[string]*anchor),
		lens:          DefaultLens(),
		lensOverrides: make(map[string]Lens),
	}

	for _, opt := range options {
		opt(r)
	}

	if r.root == nil {
		panic("camera rig requires a scene root")
	}
	if r.cameraNode == nil {
		panic("camera rig requires a camera node")
	}
	if r.target == nil {
		panic("camera rig requires a target")
	}

	r.scanAnchors()

	if len(r.names) > 0 {
		first := r.initialAnchor
		if _, ok := r.anchors[first]; !ok {
			first = r.names[0]
		}
		r.SetActiveCamera(first, 0)
	}
	return r
}

func (r *rig) SetActiveCamera(name string, transitionDuration float32) {
	next, ok := r.anchors[name]
	if !ok || next == r.active {
		return
	}

	if r.active != nil {
		r.previous = r.active
		r.prevForward = r.active.node.WorldTransform().Forward()
	}

	// Re-parent while preserving the instantaneous world transform, then
	// glide the local transform back to identity.
	world := r.cameraNode.WorldTransform()
	next.node.AddChild(r.cameraNode)
	r.cameraNode.SetWorldTransform(world)

	r.active = next
	r.lens = next.lens

	if transitionDuration <= 0 {
		r.transitioning = false
		r.cameraNode.SetLocalTransform(common.IdentityTransform())
	} else {
		r.transitioning = true
		r.transitionFrom = r.cameraNode.LocalTransform()
		r.transitionAt = 0
		r.transitionFor = transitionDuration
	}

	if next.kind == KindFollow {
		r.azimuth = next.azimuth
		r.elevation = 0
		r.limiter = 1
		r.havePrev = false
	}
}

func (r *rig) ActivateIndex(index int) bool {
	if index < 1 || index > len(r.names) {
		return false
	}
	name := r.names[index-1]
	if r.active != nil && r.active.name == name {
		return false
	}
	r.SetActiveCamera(name, r.tuning.TransitionDuration)
	return r.active != nil && r.active.name == name
}

func (r *rig) AddOrbitInput(delta mgl32.Vec2) {
	r.orbit = r.orbit.Add(delta)
}

func (r *rig) Evaluate(deltaTime float32) {
	if r.active != nil {
		switch r.active.kind {
		case KindFollow:
			r.evaluateFollow()
		case KindAxisAligned:
			r.evaluateAxis()
		}
	}
	r.orbit = mgl32.Vec2{}
	r.advanceTransition(deltaTime)
}

func (r *rig) ActiveCamera() string {
	if r.active == nil {
		return ""
	}
	return r.active.name
}

func (r *rig) AnchorNames() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *rig) CameraNode() scenegraph.Node {
	return r.cameraNode
}

func (r *rig) Lens() Lens {
	return r.lens
}

func (r *rig) Transitioning() bool {
	return r.transitioning
}

// advanceTransition eases the camera's local transform toward identity and
// ends the glide once the duration elapses.
func (r *rig) advanceTransition(deltaTime float32) {
	if !r.transitioning {
		return
	}
	r.transitionAt += deltaTime
	if r.transitionFor <= 0 || r.transitionAt >= r.transitionFor {
		r.transitioning = false
		r.cameraNode.SetLocalTransform(common.IdentityTransform())
		return
	}
	eased := common.EaseInOut(r.transitionAt / r.transitionFor)
	r.cameraNode.SetLocalTransform(r.transitionFrom.Lerp(common.IdentityTransform(), eased))
}
