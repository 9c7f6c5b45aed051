// package input defines the device-neutral input contract. Frontends (a
// glfw window, a terminal view, a scripted driver) implement Source and the
// game loop samples one State per step; the core never talks to a device
// directly.
package input

import "github.com/go-gl/mathgl/mgl32"

// State is one step's worth of sampled input. Held fields report the level
// at sample time; edge fields report an event since the previous sample and
// are cleared by the frontend once consumed.
type State struct {
	// Direction is the camera-relative movement intent on the horizontal
	// plane (x = strafe, y = forward). Callers need not normalize it.
	Direction mgl32.Vec2
	// JumpHeld is the level of the jump control.
	JumpHeld bool
	// Attack is set when the attack control was pressed since the last
	// sample.
	Attack bool
	// OrbitDelta is the camera orbit movement since the last sample, in
	// device units (x = azimuth, y = elevation).
	OrbitDelta mgl32.Vec2
	// Reset is set when the respawn control was pressed since the last
	// sample.
	Reset bool
	// CameraSelect is the 1-based index of a camera anchor chosen since
	// the last sample, or 0 when none was.
	CameraSelect int
	// CinematicToggle is set when the cinematic control was pressed since
	// the last sample.
	CinematicToggle bool
}

// Source produces input states for the game loop.
type Source interface {
	// Sample returns the input state accumulated since the previous call.
	//
	// Returns:
	//   - State: the sampled input state
	Sample() State
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() State

var _ Source = SourceFunc(nil)

func (f SourceFunc) Sample() State {
	if f == nil {
		return State{}
	}
	return f()
}

// EdgeDetector turns a held level into press events. Frontends that only
// see key levels use one detector per edge-style control.
type EdgeDetector struct {
	last bool
}

// Rising reports whether the level transitioned from released to held since
// the previous call.
//
// Parameters:
//   - held: the current level
//
// Returns:
//   - bool: true on a released-to-held transition
func (e *EdgeDetector) Rising(held bool) bool {
	rose := held && !e.last
	e.last = held
	return rose
}
