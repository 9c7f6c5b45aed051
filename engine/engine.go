// package engine drives the per-frame orchestration of the gameplay core:
// sample input, advance the character simulation, step the trigger volumes,
// and evaluate the camera constraints. Step is the single per-frame entry
// point; an external renderer calls it once per rendered frame, or the
// optional Run pump self-drives it at a fixed rate for headless use.
package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/Carmen-Shannon/strider-go/engine/camera"
	"github.com/Carmen-Shannon/strider-go/engine/character"
	"github.com/Carmen-Shannon/strider-go/engine/input"
	"github.com/Carmen-Shannon/strider-go/engine/profiler"
	"github.com/Carmen-Shannon/strider-go/engine/triggers"
	"github.com/go-gl/mathgl/mgl32"
)

// engine implements the Engine interface.
type engine struct {
	tickRateChannel chan time.Duration

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once

	source     input.Source
	controller character.Controller
	rig        camera.Rig
	triggers   *triggers.Manager

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	cinematic   bool
	lastStep    time.Time
	baselineSet bool
}

// Engine is the per-frame orchestrator tying input, simulation, triggers,
// and camera constraints together.
type Engine interface {
	// Step advances the game by one frame at the given time. The first call
	// contributes a zero delta. Input is sampled and routed, the character
	// simulation and trigger volumes advance unless a cinematic is running,
	// and the camera constraints always evaluate afterward.
	//
	// Parameters:
	//   - now: the current frame time
	Step(now time.Time)

	// StartCinematic raises the cinematic flag: character simulation stops,
	// controller-driven animations freeze, and player camera control is
	// suppressed. Camera constraints keep evaluating.
	StartCinematic()

	// StopCinematic clears the cinematic flag and resumes simulation and
	// animation.
	StopCinematic()

	// Cinematic reports whether a cinematic is running.
	//
	// Returns:
	//   - bool: true while the cinematic flag is set
	Cinematic() bool

	// Run starts the self-driving fixed-rate pump and blocks until Quit.
	// Hosts with their own frame loop skip Run and call Step directly.
	Run()

	// Quit stops the pump. Safe to call multiple times; subsequent calls are
	// no-ops.
	Quit()

	// SetTickRate sets the pump rate in steps per second. If the pump is
	// running, the change takes effect immediately.
	//
	// Parameters:
	//   - fps: target steps per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called at the end of every Step,
	// receiving the frame delta in seconds.
	//
	// Parameters:
	//   - callback: the per-step callback (nil to disable)
	SetTickCallback(callback func(deltaTime float32))

	// EnableProfiler enables frame-timing output to the log.
	EnableProfiler()

	// DisableProfiler disables frame-timing output.
	DisableProfiler()

	// Character returns the character controller the loop drives.
	//
	// Returns:
	//   - character.Controller: the character controller
	Character() character.Controller

	// Cameras returns the camera rig, or nil when none is attached.
	//
	// Returns:
	//   - camera.Rig: the camera rig
	Cameras() camera.Rig

	// Triggers returns the trigger manager, or nil when none is attached.
	//
	// Returns:
	//   - *triggers.Manager: the trigger manager
	Triggers() *triggers.Manager
}

var _ Engine = &engine{}

// NewEngine creates the game loop with the provided options. A character
// controller is required; input source, camera rig, and trigger manager are
// optional. Panics if no controller is supplied.
//
// Parameters:
//   - options: functional options for loop configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.controller == nil {
		panic("engine requires a character controller")
	}
	e.engineTickRate = common.Coalesce(e.engineTickRate, time.Second/60)

	return e
}

func (e *engine) Step(now time.Time) {
	start := time.Now()

	var dt float32
	if e.baselineSet {
		dt = float32(now.Sub(e.lastStep).Seconds())
		if dt < 0 {
			dt = 0
		}
	}
	e.lastStep = now
	e.baselineSet = true

	if e.source != nil {
		e.route(e.source.Sample())
	}

	if !e.cinematic {
		e.controller.Update(now)
		if e.triggers != nil {
			e.triggers.Step(e.controller.WorldPosition())
		}
	}

	// Camera constraints run regardless of the cinematic flag; cutscenes
	// still frame the action.
	if e.rig != nil {
		e.rig.Evaluate(dt)
	}

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Observe(time.Since(start))
		e.profiler.Tick()
	}
}

// route feeds one sampled input state into the simulation. During a
// cinematic only the cinematic toggle is honored; movement, jumping,
// attacking, and player camera control are suppressed.
func (e *engine) route(st input.State) {
	if st.CinematicToggle {
		if e.cinematic {
			e.StopCinematic()
		} else {
			e.StartCinematic()
		}
	}
	if e.cinematic {
		return
	}

	e.controller.SetMoveDirection(st.Direction)
	e.controller.SetJumpHeld(st.JumpHeld)
	if st.Attack {
		e.controller.Attack()
	}
	if st.Reset {
		e.controller.QueueResetPosition()
	}

	if e.rig != nil {
		if st.OrbitDelta != (mgl32.Vec2{}) {
			e.rig.AddOrbitInput(st.OrbitDelta)
		}
		if st.CameraSelect > 0 {
			e.rig.ActivateIndex(st.CameraSelect)
		}
	}
}

func (e *engine) StartCinematic() {
	if e.cinematic {
		return
	}
	e.cinematic = true
	e.controller.SetMoveDirection(mgl32.Vec2{})
	e.controller.PauseAnimations()
}

func (e *engine) StopCinematic() {
	if !e.cinematic {
		return
	}
	e.cinematic = false
	e.controller.ResumeAnimations()
}

func (e *engine) Cinematic() bool {
	return e.cinematic
}

func (e *engine) Run() {
	e.running = true
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()
	e.wg.Wait()
}

// Quit signals the pump to stop. Safe to call multiple times; subsequent
// calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel so the pump goroutines exit.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate step loop in its own goroutine, listening
// for dynamic rate changes via tickRateChannel. Recovers from panics so a
// misbehaving collaborator quits the pump instead of crashing the process.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] step goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	for {
		select {
		case <-e.quitChannel:
			return
		case now := <-ticker.C:
			e.Step(now)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit blocks until the quit channel is closed.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables frame-timing output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables frame-timing output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the pump rate in steps per second. If the pump is
// running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Non-blocking send; replace any pending value.
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called at the end of every Step.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) Character() character.Controller {
	return e.controller
}

func (e *engine) Cameras() camera.Rig {
	return e.rig
}

func (e *engine) Triggers() *triggers.Manager {
	return e.triggers
}
