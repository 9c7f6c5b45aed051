package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// SynthPlayer renders cues as short synthesized tones through the system
// speaker. Until Initialize succeeds every cue is dropped, so the player is
// safe to use on machines without an audio device.
type SynthPlayer struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

var _ Player = &SynthPlayer{}

// NewSynthPlayer creates a SynthPlayer. Call Initialize before expecting
// sound.
//
// Returns:
//   - *SynthPlayer: the newly created player
func NewSynthPlayer() *SynthPlayer {
	return &SynthPlayer{}
}

// Initialize opens the system speaker. Calling it again after a success is a
// no-op.
//
// Returns:
//   - error: an error if the speaker could not be opened
func (p *SynthPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Cleanup silences any playing cues. The speaker itself stays open; beep
// does not expose a close.
func (p *SynthPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// SetMuted toggles cue playback without touching the speaker.
//
// Parameters:
//   - muted: true to drop cues
func (p *SynthPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether cues are currently dropped.
//
// Returns:
//   - bool: true if muted
func (p *SynthPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *SynthPlayer) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	tone := toneFor(cue)
	speaker.Play(beep.Take(sampleRate.N(tone.length()), tone))
}

// toneFor maps a cue to its tone parameters.
func toneFor(cue Cue) *toneGenerator {
	switch cue {
	case CueJump:
		return newToneGenerator(300, 550, 0.12, 0.2, 10)
	case CueLand:
		return newToneGenerator(140, 70, 0.1, 0.3, 22)
	case CueAttack:
		return newToneGenerator(220, 180, 0.09, 0.25, 28)
	case CueCollect:
		return newToneGenerator(660, 880, 0.15, 0.18, 14)
	case CueCameraSwitch:
		return newToneGenerator(440, 440, 0.06, 0.12, 30)
	default:
		return newToneGenerator(440, 440, 0.05, 0.1, 30)
	}
}

// toneGenerator streams a sine tone that sweeps between two frequencies and
// decays exponentially.
type toneGenerator struct {
	sr        beep.SampleRate
	startHz   float64
	endHz     float64
	duration  float64
	amplitude float64
	decay     float64
	pos       int
}

func newToneGenerator(startHz, endHz, duration, amplitude, decay float64) *toneGenerator {
	return &toneGenerator{
		sr:        sampleRate,
		startHz:   startHz,
		endHz:     endHz,
		duration:  duration,
		amplitude: amplitude,
		decay:     decay,
	}
}

func (g *toneGenerator) length() time.Duration {
	return time.Duration(g.duration * float64(time.Second))
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(t/g.duration, 1)
		freq := g.startHz + (g.endHz-g.startHz)*progress
		envelope := math.Exp(-t * g.decay)
		sample := g.amplitude * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
