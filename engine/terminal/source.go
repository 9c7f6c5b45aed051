package terminal

import (
	"sync"

	"github.com/Carmen-Shannon/strider-go/engine/input"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// holdSamples is how many samples a movement or jump key press stays
	// active, standing in for key-up events terminals cannot deliver.
	holdSamples = 8

	// orbitImpulse is the orbit delta one arrow-key press contributes, in
	// device units.
	orbitImpulse float32 = 12
)

// Source adapts tcell key events to the input contract. Terminals report
// presses but never releases, so held controls (movement, jump) decay after
// a few samples instead of tracking a level. WASD moves, space jumps, f
// attacks, r respawns, c toggles the cinematic, digits select cameras, the
// arrow keys orbit, and Esc or Ctrl+C quits.
type Source struct {
	mu sync.Mutex

	direction  mgl32.Vec2
	moveHold   int
	jumpHold   int
	orbit      mgl32.Vec2
	attack     bool
	reset      bool
	cinematic  bool
	cameraPick int

	done     chan struct{}
	doneOnce sync.Once
}

var _ input.Source = &Source{}

// NewSource creates a source fed by the screen's event stream. The event
// loop runs in its own goroutine until the screen is finalized or the player
// quits.
//
// Parameters:
//   - screen: the initialized screen to poll events from
//
// Returns:
//   - *Source: the newly created source
func NewSource(screen tcell.Screen) *Source {
	s := &Source{done: make(chan struct{})}
	go s.poll(screen)
	return s
}

// Done returns a channel closed when the player quits.
//
// Returns:
//   - <-chan struct{}: the quit channel
func (s *Source) Done() <-chan struct{} {
	return s.done
}

func (s *Source) Sample() input.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := input.State{
		JumpHeld:        s.jumpHold > 0,
		OrbitDelta:      s.orbit,
		Attack:          s.attack,
		Reset:           s.reset,
		CinematicToggle: s.cinematic,
		CameraSelect:    s.cameraPick,
	}
	if s.moveHold > 0 {
		st.Direction = s.direction
		s.moveHold--
	}
	if s.jumpHold > 0 {
		s.jumpHold--
	}

	s.orbit = mgl32.Vec2{}
	s.attack = false
	s.reset = false
	s.cinematic = false
	s.cameraPick = 0
	return st
}

// poll drains the screen's event stream until it closes.
func (s *Source) poll(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			s.quit()
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
			s.quit()
			return
		}
		s.handleKey(key)
	}
}

func (s *Source) quit() {
	s.doneOnce.Do(func() { close(s.done) })
}

func (s *Source) handleKey(key *tcell.EventKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key.Key() {
	case tcell.KeyLeft:
		s.orbit[0] -= orbitImpulse
		return
	case tcell.KeyRight:
		s.orbit[0] += orbitImpulse
		return
	case tcell.KeyUp:
		s.orbit[1] += orbitImpulse
		return
	case tcell.KeyDown:
		s.orbit[1] -= orbitImpulse
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r := key.Rune(); r {
	case 'w', 'W':
		s.move(mgl32.Vec2{0, -1})
	case 's', 'S':
		s.move(mgl32.Vec2{0, 1})
	case 'a', 'A':
		s.move(mgl32.Vec2{-1, 0})
	case 'd', 'D':
		s.move(mgl32.Vec2{1, 0})
	case ' ':
		s.jumpHold = holdSamples
	case 'f', 'F':
		s.attack = true
	case 'r', 'R':
		s.reset = true
	case 'c', 'C':
		s.cinematic = true
	default:
		if r >= '1' && r <= '9' {
			s.cameraPick = int(r - '0')
		}
	}
}

func (s *Source) move(dir mgl32.Vec2) {
	s.direction = dir
	s.moveHold = holdSamples
}
