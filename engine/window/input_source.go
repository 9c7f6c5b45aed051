package window

import (
	"sync"

	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/Carmen-Shannon/strider-go/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// orbitStep is the orbit input emitted per sample for each held arrow key,
// in device units.
const orbitStep float32 = 4

// keyboardSource adapts the window's keyboard state to the input contract:
// WASD moves, space jumps, F attacks, R respawns, C toggles the cinematic,
// the digit keys select cameras, and the arrow keys orbit. Held controls
// report their level at sample time; edge controls accumulate between
// samples and clear on Sample.
//
// GLFW callbacks run on the window's OS thread while the game loop samples
// from its own goroutine, so state is guarded by a mutex.
type keyboardSource struct {
	mu   sync.Mutex
	held map[uint32]bool

	attack       bool
	reset        bool
	cinematic    bool
	cameraSelect int
}

var _ input.Source = &keyboardSource{}

// newKeyboardSource registers key callbacks on the window and returns the
// source fed by them.
func newKeyboardSource(w *engineWindow) *keyboardSource {
	s := &keyboardSource{held: make(map[uint32]bool)}
	w.SetKeyDownCallback(s.keyDown)
	w.SetKeyUpCallback(s.keyUp)
	return s
}

func (s *keyboardSource) keyDown(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.held[keyCode] = true
	switch keyCode {
	case common.KeyF:
		s.attack = true
	case common.KeyR:
		s.reset = true
	case common.KeyC:
		s.cinematic = true
	}
	if keyCode >= common.Key1 && keyCode <= common.Key9 {
		s.cameraSelect = int(keyCode - common.Key0)
	}
}

func (s *keyboardSource) keyUp(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.held, keyCode)
}

func (s *keyboardSource) Sample() input.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := input.State{
		Direction:       s.direction(),
		JumpHeld:        s.held[common.KeySpace],
		OrbitDelta:      s.orbit(),
		Attack:          s.attack,
		Reset:           s.reset,
		CinematicToggle: s.cinematic,
		CameraSelect:    s.cameraSelect,
	}

	s.attack = false
	s.reset = false
	s.cinematic = false
	s.cameraSelect = 0
	return st
}

// direction maps the held WASD keys to the movement plane: x toward world X,
// y toward world Z, forward being -Z.
func (s *keyboardSource) direction() mgl32.Vec2 {
	var d mgl32.Vec2
	if s.held[common.KeyA] {
		d[0] -= 1
	}
	if s.held[common.KeyD] {
		d[0] += 1
	}
	if s.held[common.KeyW] {
		d[1] -= 1
	}
	if s.held[common.KeyS] {
		d[1] += 1
	}
	return d
}

// orbit maps the held arrow keys to an orbit delta for this sample.
func (s *keyboardSource) orbit() mgl32.Vec2 {
	var o mgl32.Vec2
	if s.held[common.KeyLeft] {
		o[0] -= orbitStep
	}
	if s.held[common.KeyRight] {
		o[0] += orbitStep
	}
	if s.held[common.KeyUp] {
		o[1] += orbitStep
	}
	if s.held[common.KeyDown] {
		o[1] -= orbitStep
	}
	return o
}
