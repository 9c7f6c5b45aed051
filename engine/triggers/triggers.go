// package triggers provides the trigger-volume bookkeeping around the
// gameplay core: spherical volumes that fire a callback when the actor
// enters them, plus the collectibles counter the pickup volumes feed.
// Volumes are stepped once per simulation tick with the actor's position;
// callbacks fire on the enter edge only.
package triggers

import (
	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
	"github.com/go-gl/mathgl/mgl32"
)

// Volume is one trigger region: a sphere around a scene node (or a fixed
// point when no node is bound) that invokes OnEnter when the actor crosses
// into it.
type Volume struct {
	// Name identifies the volume in logs and lookups.
	Name string

	// Node is the scene node the volume follows (optional).
	Node scenegraph.Node

	// Position is the volume center when no node is bound.
	Position mgl32.Vec3

	// Radius is the trigger radius.
	Radius float32

	// OneShot volumes fire OnEnter at most once, ever.
	OneShot bool

	// OnEnter is invoked on the tick the actor enters the volume. A nil
	// callback is allowed; the volume then only tracks containment.
	OnEnter func()
}

// center resolves the volume's current world-space center.
func (v *Volume) center() mgl32.Vec3 {
	if v.Node != nil {
		return v.Node.WorldPosition()
	}
	return v.Position
}

// volumeState pairs a volume with its containment edge state.
type volumeState struct {
	Volume
	inside bool
	spent  bool
}

// Manager steps a set of trigger volumes against the actor's position each
// tick. Owned by the simulation thread; no locking.
type Manager struct {
	volumes []*volumeState
}

// NewManager creates an empty Manager.
//
// Returns:
//   - *Manager: the newly created manager
func NewManager() *Manager {
	return &Manager{}
}

// Add registers a volume. Volumes with a non-positive radius are skipped.
//
// Parameters:
//   - v: the volume to register
func (m *Manager) Add(v Volume) {
	if v.Radius <= 0 {
		return
	}
	m.volumes = append(m.volumes, &volumeState{Volume: v})
}

// Len reports the number of registered volumes.
//
// Returns:
//   - int: the registered volume count
func (m *Manager) Len() int {
	return len(m.volumes)
}

// Step tests every volume against the actor position and fires OnEnter for
// each volume the actor entered this tick. Leaving a volume re-arms it unless
// it is one-shot.
//
// Parameters:
//   - actorPos: the actor's world position after this tick's simulation
func (m *Manager) Step(actorPos mgl32.Vec3) {
	for _, s := range m.volumes {
		inside := actorPos.Sub(s.center()).LenSqr() <= s.Radius*s.Radius
		entered := inside && !s.inside
		s.inside = inside

		if !entered || s.spent {
			continue
		}
		if s.OneShot {
			s.spent = true
		}
		if s.OnEnter != nil {
			s.OnEnter()
		}
	}
}
