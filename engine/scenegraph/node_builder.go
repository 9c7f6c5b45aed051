package scenegraph

import (
	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/go-gl/mathgl/mgl32"
)

// NodeBuilderOption is a functional option for configuring a Node.
// Use the With* functions to create options applied during NewNode.
type NodeBuilderOption func(*node)

// WithPosition sets the node's local translation.
//
// Parameters:
//   - position: local-space translation
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithPosition(position mgl32.Vec3) NodeBuilderOption {
	return func(n *node) {
		n.local.Position = position
	}
}

// WithRotation sets the node's local orientation.
//
// Parameters:
//   - rotation: local-space rotation quaternion
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithRotation(rotation mgl32.Quat) NodeBuilderOption {
	return func(n *node) {
		n.local.Rotation = rotation
	}
}

// WithScale sets the node's local scale.
//
// Parameters:
//   - scale: per-axis scale factors
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithScale(scale mgl32.Vec3) NodeBuilderOption {
	return func(n *node) {
		n.local.Scale = scale
	}
}

// WithTransform sets the node's full local transform.
//
// Parameters:
//   - t: the local transform
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithTransform(t common.Transform) NodeBuilderOption {
	return func(n *node) {
		n.local = t
	}
}

// WithParent attaches the node under parent at creation time.
//
// Parameters:
//   - parent: the parent node (nil leaves the node as a root)
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithParent(parent Node) NodeBuilderOption {
	return func(n *node) {
		if parent != nil {
			parent.AddChild(n)
		}
	}
}
