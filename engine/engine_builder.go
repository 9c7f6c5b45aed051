package engine

import (
	"time"

	"github.com/Carmen-Shannon/strider-go/engine/camera"
	"github.com/Carmen-Shannon/strider-go/engine/character"
	"github.com/Carmen-Shannon/strider-go/engine/input"
	"github.com/Carmen-Shannon/strider-go/engine/triggers"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the
// engine instance.
type EngineBuilderOption func(*engine)

// WithCharacter binds the character controller the loop drives. Required.
//
// Parameters:
//   - controller: the character controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCharacter(controller character.Controller) EngineBuilderOption {
	return func(e *engine) {
		e.controller = controller
	}
}

// WithCameraRig attaches the camera rig whose constraints evaluate every
// step.
//
// Parameters:
//   - rig: the camera rig
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCameraRig(rig camera.Rig) EngineBuilderOption {
	return func(e *engine) {
		e.rig = rig
	}
}

// WithInputSource attaches the input source sampled at the start of every
// step. Without a source the loop simulates on whatever the controller was
// last told.
//
// Parameters:
//   - source: the input source
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInputSource(source input.Source) EngineBuilderOption {
	return func(e *engine) {
		e.source = source
	}
}

// WithTriggers attaches the trigger manager stepped after the character
// simulation.
//
// Parameters:
//   - manager: the trigger manager
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTriggers(manager *triggers.Manager) EngineBuilderOption {
	return func(e *engine) {
		e.triggers = manager
	}
}

// WithProfiling enables or disables frame-timing output.
//
// Parameters:
//   - enabled: if true, enables profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the self-driving pump rate in steps per second. Values
// <= 0 keep the default (60 Hz). Hosts calling Step directly can ignore
// this.
//
// Parameters:
//   - fps: target steps per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithTickCallback registers the function called at the end of every Step.
//
// Parameters:
//   - callback: the per-step callback
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}
