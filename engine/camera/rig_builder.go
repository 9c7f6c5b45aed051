package camera

import (
	"github.com/Carmen-Shannon/strider-go/config"
	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
)

type RigBuilderOption func(*rig)

// WithSceneRoot sets the scene graph root scanned for camera anchors.
// Required.
//
// Parameters:
//   - root: the scene root node
//
// Returns:
//   - RigBuilderOption: a function that sets the scene root
func WithSceneRoot(root scenegraph.Node) RigBuilderOption {
	return func(r *rig) {
		r.root = root
	}
}

// WithCameraNode sets the shared live camera node the rig re-parents between
// anchors. Required.
//
// Parameters:
//   - node: the live camera node
//
// Returns:
//   - RigBuilderOption: a function that sets the camera node
func WithCameraNode(node scenegraph.Node) RigBuilderOption {
	return func(r *rig) {
		r.cameraNode = node
	}
}

// WithTarget sets the actor capability the rig frames. Required.
//
// Parameters:
//   - target: the framed actor's read-only handle
//
// Returns:
//   - RigBuilderOption: a function that sets the target
func WithTarget(target Target) RigBuilderOption {
	return func(r *rig) {
		r.target = target
	}
}

// WithTuning overrides the gameplay constants.
//
// Parameters:
//   - tuning: the constants to use
//
// Returns:
//   - RigBuilderOption: a function that sets the tuning
func WithTuning(tuning config.Tuning) RigBuilderOption {
	return func(r *rig) {
		r.tuning = tuning
	}
}

// WithAnchorPrefixes overrides the node-name prefixes that tag follow and
// axis-aligned anchors during the scan. Empty strings keep the defaults.
//
// Parameters:
//   - follow: the follow-anchor name prefix
//   - axis: the axis-aligned-anchor name prefix
//
// Returns:
//   - RigBuilderOption: a function that sets the prefixes
func WithAnchorPrefixes(follow, axis string) RigBuilderOption {
	return func(r *rig) {
		if follow != "" {
			r.followPrefix = follow
		}
		if axis != "" {
			r.axisPrefix = axis
		}
	}
}

// WithInitialAnchor names the anchor activated at construction instead of the
// first in sorted order. An unknown name falls back to the default.
//
// Parameters:
//   - name: the anchor node's name
//
// Returns:
//   - RigBuilderOption: a function that sets the initial anchor
func WithInitialAnchor(name string) RigBuilderOption {
	return func(r *rig) {
		r.initialAnchor = name
	}
}

// WithLensOverride replaces the named anchor's lens template. May be given
// once per anchor.
//
// Parameters:
//   - anchorName: the anchor node's name
//   - lens: the lens template to copy on activation
//
// Returns:
//   - RigBuilderOption: a function that sets the lens override
func WithLensOverride(anchorName string, lens Lens) RigBuilderOption {
	return func(r *rig) {
		r.lensOverrides[anchorName] = lens
	}
}
