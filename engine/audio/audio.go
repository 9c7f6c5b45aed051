// package audio provides the sound surface the gameplay core fires into.
// The core emits named cues (jump, land, attack) and never touches a device;
// hosts pick an implementation: NullPlayer for headless runs and tests, or
// SynthPlayer for a real speaker.
package audio

// Cue identifies one gameplay sound effect.
type Cue int

const (
	CueJump Cue = iota
	CueLand
	CueAttack
	CueCollect
	CueCameraSwitch
)

// String returns the cue's display name.
//
// Returns:
//   - string: the display name
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueLand:
		return "land"
	case CueAttack:
		return "attack"
	case CueCollect:
		return "collect"
	case CueCameraSwitch:
		return "camera_switch"
	default:
		return "unknown"
	}
}

// Player receives sound cues from the gameplay core. Implementations must
// never block; a cue that cannot be played is dropped silently.
type Player interface {
	// Play triggers the named cue.
	//
	// Parameters:
	//   - cue: the cue to play
	Play(cue Cue)
}

// NullPlayer discards every cue. The zero value is ready to use.
type NullPlayer struct{}

var _ Player = NullPlayer{}

func (NullPlayer) Play(cue Cue) {}
