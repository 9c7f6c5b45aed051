package character

import (
	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/Carmen-Shannon/strider-go/config"
	"github.com/Carmen-Shannon/strider-go/engine/animation"
	"github.com/Carmen-Shannon/strider-go/engine/audio"
	"github.com/Carmen-Shannon/strider-go/engine/physics"
	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
	"github.com/go-gl/mathgl/mgl32"
)

type ControllerBuilderOption func(*controller)

// WithNode binds the controller to the scene node it writes the actor
// transform to. Required.
//
// Parameters:
//   - node: the actor's scene node
//
// Returns:
//   - ControllerBuilderOption: a function that sets the actor node
func WithNode(node scenegraph.Node) ControllerBuilderOption {
	return func(c *controller) {
		c.node = node
	}
}

// WithPhysicsWorld binds the controller to the collision world it probes and
// sweeps against. Required.
//
// Parameters:
//   - world: the collision world
//
// Returns:
//   - ControllerBuilderOption: a function that sets the physics world
func WithPhysicsWorld(world physics.World) ControllerBuilderOption {
	return func(c *controller) {
		c.world = world
	}
}

// WithAnimation attaches the animation collaborator that receives clip
// signals. Defaults to an in-memory registry when omitted.
//
// Parameters:
//   - collaborator: the animation collaborator
//
// Returns:
//   - ControllerBuilderOption: a function that sets the animation collaborator
func WithAnimation(collaborator animation.Collaborator) ControllerBuilderOption {
	return func(c *controller) {
		if collaborator != nil {
			c.anim = collaborator
		}
	}
}

// WithAudio attaches the sound player that receives gameplay cues. Defaults
// to a silent player when omitted.
//
// Parameters:
//   - player: the sound player
//
// Returns:
//   - ControllerBuilderOption: a function that sets the sound player
func WithAudio(player audio.Player) ControllerBuilderOption {
	return func(c *controller) {
		if player != nil {
			c.sound = player
		}
	}
}

// WithTuning overrides the gameplay constants.
//
// Parameters:
//   - tuning: the constants to use
//
// Returns:
//   - ControllerBuilderOption: a function that sets the tuning
func WithTuning(tuning config.Tuning) ControllerBuilderOption {
	return func(c *controller) {
		c.tuning = tuning
	}
}

// WithLayerMask restricts which collision layers the controller probes and
// sweeps against. Defaults to all layers.
//
// Parameters:
//   - mask: the collision layer mask
//
// Returns:
//   - ControllerBuilderOption: a function that sets the layer mask
func WithLayerMask(mask physics.Layer) ControllerBuilderOption {
	return func(c *controller) {
		c.layers = mask
	}
}

// WithBounds sets the actor's visual bounding box, from which the collision
// capsule is derived.
//
// Parameters:
//   - bounds: the model-space bounding box
//
// Returns:
//   - ControllerBuilderOption: a function that sets the bounds
func WithBounds(bounds common.BoundingBox) ControllerBuilderOption {
	return func(c *controller) {
		c.bounds = bounds
	}
}

// WithSpawnPoint sets the respawn position. Defaults to the node's world
// position at construction when omitted.
//
// Parameters:
//   - position: the world-space spawn position
//
// Returns:
//   - ControllerBuilderOption: a function that sets the spawn point
func WithSpawnPoint(position mgl32.Vec3) ControllerBuilderOption {
	return func(c *controller) {
		c.spawn = position
		c.spawnSet = true
	}
}
