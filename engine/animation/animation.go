// package animation provides the clip-playback surface the gameplay core
// fires into. The core only emits fire-and-forget signals (play, stop, set
// speed); a host engine adapts its animation system behind the Collaborator
// interface. Registry is the in-memory implementation: it tracks clip state
// so demos can display it and tests can assert on it.
package animation

// Collaborator receives animation signals from the gameplay core. A missing
// clip key is never an error; implementations skip it silently.
type Collaborator interface {
	// Play starts (or restarts) the named clip.
	//
	// Parameters:
	//   - clip: the clip key
	//   - loop: whether the clip repeats until stopped
	Play(clip string, loop bool)

	// Stop halts the named clip.
	//
	// Parameters:
	//   - clip: the clip key
	//   - blendOut: seconds to blend the clip out over (0 = immediate)
	Stop(clip string, blendOut float32)

	// SetSpeed scales the named clip's playback rate.
	//
	// Parameters:
	//   - clip: the clip key
	//   - factor: playback-rate multiplier (1 = authored speed, 0 = paused)
	SetSpeed(clip string, factor float32)
}

// clipState is the tracked state of one clip.
type clipState struct {
	playing bool
	loop    bool
	speed   float32
}

// Registry is the reference Collaborator: pure book-keeping over clip keys.
type Registry struct {
	clips map[string]*clipState
}

var _ Collaborator = &Registry{}

// NewRegistry creates an empty Registry.
//
// Returns:
//   - *Registry: the newly created registry
func NewRegistry() *Registry {
	return &Registry{clips: make(map[string]*clipState)}
}

func (r *Registry) clip(key string) *clipState {
	c, ok := r.clips[key]
	if !ok {
		c = &clipState{speed: 1}
		r.clips[key] = c
	}
	return c
}

func (r *Registry) Play(clip string, loop bool) {
	c := r.clip(clip)
	c.playing = true
	c.loop = loop
}

func (r *Registry) Stop(clip string, blendOut float32) {
	r.clip(clip).playing = false
}

func (r *Registry) SetSpeed(clip string, factor float32) {
	r.clip(clip).speed = factor
}

// Playing reports whether the named clip is currently playing.
//
// Parameters:
//   - clip: the clip key
//
// Returns:
//   - bool: true if the clip is playing
func (r *Registry) Playing(clip string) bool {
	c, ok := r.clips[clip]
	return ok && c.playing
}

// Looping reports whether the named clip was started as a loop.
//
// Parameters:
//   - clip: the clip key
//
// Returns:
//   - bool: true if the clip loops
func (r *Registry) Looping(clip string) bool {
	c, ok := r.clips[clip]
	return ok && c.loop
}

// Speed returns the named clip's playback-rate multiplier (1 when the clip
// has never been touched).
//
// Parameters:
//   - clip: the clip key
//
// Returns:
//   - float32: the playback-rate multiplier
func (r *Registry) Speed(clip string) float32 {
	c, ok := r.clips[clip]
	if !ok {
		return 1
	}
	return c.speed
}
