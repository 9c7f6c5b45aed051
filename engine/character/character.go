// package character implements the controllable actor: ground-following
// locomotion, gravity and jump handling, collision sliding along walls, and
// the fire-and-forget animation and sound signals those movements produce.
// The controller owns its actor's transform exclusively; collaborators only
// read it after Update returns.
package character

import (
	"time"

	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/Carmen-Shannon/strider-go/config"
	"github.com/Carmen-Shannon/strider-go/engine/animation"
	"github.com/Carmen-Shannon/strider-go/engine/audio"
	"github.com/Carmen-Shannon/strider-go/engine/clock"
	"github.com/Carmen-Shannon/strider-go/engine/physics"
	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
	"github.com/go-gl/mathgl/mgl32"
)

// Animation clip keys the controller drives on its collaborator.
const (
	ClipWalk   = "walk"
	ClipJump   = "jump"
	ClipAttack = "attack"
)

// animationBlendOut is the blend-out window, in seconds, handed to the
// animation collaborator when a clip stops.
const animationBlendOut float32 = 0.05

// virtualFrameRate is the fixed simulation rate: wall-clock deltas are
// converted into whole 1/60s virtual frames before integration.
const virtualFrameRate = 60

// JumpPhase is the jump state machine's current state.
type JumpPhase int

const (
	// PhaseGrounded covers standing, walking, and falling without a jump.
	PhaseGrounded JumpPhase = iota
	// PhaseAscending is a jump with the jump control still held.
	PhaseAscending
	// PhaseDescending is a jump after the jump control was released.
	PhaseDescending
)

// String returns the phase's display name.
//
// Returns:
//   - string: the display name
func (p JumpPhase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseAscending:
		return "ascending"
	case PhaseDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// Controller drives one controllable actor. All methods must be called from
// the simulation goroutine; the controller does no locking.
type Controller interface {
	// Update advances the simulation to the given time. The first call only
	// establishes the timing baseline and performs no motion. Subsequent
	// calls drain due cooldown timers, consume a pending reset, integrate
	// gravity and movement over fixed virtual frames, resolve collisions,
	// and write the actor's new world transform to its node.
	//
	// Parameters:
	//   - now: the current frame time
	Update(now time.Time)

	// SetMoveDirection records the desired horizontal movement direction,
	// where x maps to world X and y maps to world Z. Directions longer than
	// unit length are rescaled to exactly unit length; shorter ones are
	// stored unchanged.
	//
	// Parameters:
	//   - direction: the desired movement direction
	SetMoveDirection(direction mgl32.Vec2)

	// SetJumpHeld feeds the level of the jump control. A rising edge while
	// touching ground starts a jump and applies the upward impulse
	// immediately; a falling edge while ascending commits the jump to its
	// descent without touching the accumulated pull.
	//
	// Parameters:
	//   - held: the current level of the jump control
	SetJumpHeld(held bool)

	// Attack registers one attack. Every call increments the active-attack
	// counter and schedules its own decrement one cooldown later on the
	// frame clock; the attack animation plays only when the counter rises
	// from zero and stops once it returns to zero.
	Attack()

	// QueueResetPosition marks the actor for a respawn at the start of the
	// next Update. Queuing it repeatedly before consumption is idempotent.
	QueueResetPosition()

	// SetSpawnPoint moves the respawn point.
	//
	// Parameters:
	//   - position: the new world-space spawn position
	SetSpawnPoint(position mgl32.Vec3)

	// PauseAnimations freezes all controller-driven clips in place.
	PauseAnimations()

	// ResumeAnimations restores controller-driven clips to authored speed.
	ResumeAnimations()

	// WorldPosition returns the actor's current world position.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space position
	WorldPosition() mgl32.Vec3

	// BaseAltitude returns the smoothed ground height under the actor. It
	// glides over steps and slopes rather than snapping, so cameras and
	// foot placement can track it directly.
	//
	// Returns:
	//   - float32: the smoothed ground altitude
	BaseAltitude() float32

	// Facing returns the actor's horizontal forward direction.
	//
	// Returns:
	//   - mgl32.Vec3: the unit facing direction
	Facing() mgl32.Vec3

	// MoveDirection returns the stored movement direction.
	//
	// Returns:
	//   - mgl32.Vec2: the movement direction as last set
	MoveDirection() mgl32.Vec2

	// Phase returns the jump state machine's current state.
	//
	// Returns:
	//   - JumpPhase: the current jump phase
	Phase() JumpPhase

	// Grounded reports whether the last ground probe found support.
	//
	// Returns:
	//   - bool: true when the actor is touching ground
	Grounded() bool

	// GroundNode returns the node currently supporting the actor, or nil
	// when airborne or standing on an unbound collider.
	//
	// Returns:
	//   - scenegraph.Node: the supporting node
	GroundNode() scenegraph.Node

	// Walking reports whether the walk animation state is active.
	//
	// Returns:
	//   - bool: true while grounded with non-zero movement input
	Walking() bool

	// ActiveAttacks returns the number of attacks inside their cooldown
	// window. Zero means not attacking.
	//
	// Returns:
	//   - int: the active-attack counter
	ActiveAttacks() int

	// Node returns the scene node the controller writes its transform to.
	//
	// Returns:
	//   - scenegraph.Node: the actor's node
	Node() scenegraph.Node
}

type controller struct {
	node    scenegraph.Node
	world   physics.World
	anim    animation.Collaborator
	sound   audio.Player
	tuning  config.Tuning
	layers  physics.Layer
	bounds  common.BoundingBox
	capsule physics.Capsule
	timers  *clock.Scheduler

	spawn    mgl32.Vec3
	spawnSet bool

	position mgl32.Vec3
	yaw      float32
	moveDir  mgl32.Vec2

	// pull is the per-virtual-frame downward pull; negative while rising.
	pull     float32
	phase    JumpPhase
	jumpHeld bool

	grounded     bool
	groundNode   scenegraph.Node
	groundAnchor mgl32.Vec3
	baseAltitude float32

	walking            bool
	attackCount        int
	preBaselineAttacks int
	pendingReset       bool

	lastTime    time.Time
	baselineSet bool
	frameAccum  float32
}

var _ Controller = &controller{}

// NewController creates a character controller bound to a scene node and a
// physics world, applying any options provided. Panics if no node or no
// physics world is supplied.
//
// Parameters:
//   - options: optional functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controller{
		anim:   animation.NewRegistry(),
		sound:  audio.NullPlayer{},
		tuning: config.Default(),
		layers: physics.LayerAll,
		bounds: common.BoundingBox{
			Min: mgl32.Vec3{-0.5, 0, -0.5},
			Max: mgl32.Vec3{0.5, 1.8, 0.5},
		},
		timers: clock.NewScheduler(),
	}

	for _, opt := range options {
		opt(c)
	}

	if c.node == nil {
		panic("character controller requires a scene node")
	}
	if c.world == nil {
		panic("character controller requires a physics world")
	}

	c.capsule = physics.NewCapsuleForBounds(c.bounds, c.tuning.CapsuleMargin)
	c.position = c.node.WorldPosition()
	if !c.spawnSet {
		c.spawn = c.position
	}
	c.baseAltitude = c.position.Y()
	return c
}

func (c *controller) Update(now time.Time) {
	if !c.baselineSet {
		c.lastTime = now
		c.baselineSet = true
		for ; c.preBaselineAttacks > 0; c.preBaselineAttacks-- {
			c.scheduleAttackDecay(now)
		}
		return
	}
	delta := float32(now.Sub(c.lastTime).Seconds())
	c.lastTime = now
	if delta < 0 {
		delta = 0
	}

	c.timers.Advance(now)

	if c.pendingReset {
		c.consumeReset()
	}

	c.applyGroundDrift()

	frames := c.consumeVirtualFrames(delta)
	move := c.integrate(frames)

	c.position = c.slide(c.position, move)
	c.probeGround()

	c.updateWalkState()
	c.updateFacing()
	c.writeTransform()
}

func (c *controller) SetMoveDirection(direction mgl32.Vec2) {
	if direction.Len() > 1 {
		direction = direction.Normalize()
	}
	c.moveDir = direction
}

func (c *controller) SetJumpHeld(held bool) {
	was := c.jumpHeld
	c.jumpHeld = held

	switch {
	case held && !was && c.grounded:
		c.phase = PhaseAscending
		c.pull -= c.tuning.JumpImpulse
		c.grounded = false
		c.groundNode = nil
		c.anim.Play(ClipJump, false)
		c.sound.Play(audio.CueJump)
	case !held && was && c.phase == PhaseAscending:
		c.phase = PhaseDescending
	}
}

func (c *controller) Attack() {
	c.attackCount++
	if c.attackCount == 1 {
		c.anim.Play(ClipAttack, false)
	}
	c.sound.Play(audio.CueAttack)

	// Before the first Update there is no frame clock to schedule against;
	// the decrement is deferred until the baseline tick establishes one.
	if !c.baselineSet {
		c.preBaselineAttacks++
		return
	}
	c.scheduleAttackDecay(c.lastTime)
}

// scheduleAttackDecay queues one attack-counter decrement a cooldown after
// the given frame-clock time.
func (c *controller) scheduleAttackDecay(base time.Time) {
	c.timers.ScheduleAt(base.Add(c.tuning.AttackCooldown), func() {
		c.attackCount--
		if c.attackCount == 0 {
			c.anim.Stop(ClipAttack, animationBlendOut)
		}
	})
}

func (c *controller) QueueResetPosition() {
	c.pendingReset = true
}

func (c *controller) SetSpawnPoint(position mgl32.Vec3) {
	c.spawn = position
	c.spawnSet = true
}

func (c *controller) PauseAnimations() {
	for _, clip := range []string{ClipWalk, ClipJump, ClipAttack} {
		c.anim.SetSpeed(clip, 0)
	}
}

func (c *controller) ResumeAnimations() {
	for _, clip := range []string{ClipWalk, ClipJump, ClipAttack} {
		c.anim.SetSpeed(clip, 1)
	}
}

func (c *controller) WorldPosition() mgl32.Vec3 {
	return c.position
}

func (c *controller) BaseAltitude() float32 {
	return c.baseAltitude
}

func (c *controller) Facing() mgl32.Vec3 {
	return mgl32.QuatRotate(c.yaw, mgl32.Vec3{0, 1, 0}).Rotate(mgl32.Vec3{0, 0, -1})
}

func (c *controller) MoveDirection() mgl32.Vec2 {
	return c.moveDir
}

func (c *controller) Phase() JumpPhase {
	return c.phase
}

func (c *controller) Grounded() bool {
	return c.grounded
}

func (c *controller) GroundNode() scenegraph.Node {
	return c.groundNode
}

func (c *controller) Walking() bool {
	return c.walking
}

func (c *controller) ActiveAttacks() int {
	return c.attackCount
}

func (c *controller) Node() scenegraph.Node {
	return c.node
}

// consumeReset applies a queued respawn: position returns to the spawn point
// and all vertical state clears.
func (c *controller) consumeReset() {
	c.pendingReset = false
	c.position = c.spawn
	c.pull = 0
	c.phase = PhaseGrounded
	c.grounded = false
	c.groundNode = nil
	c.baseAltitude = c.spawn.Y()
}

// applyGroundDrift carries the actor along with its supporting node by the
// distance that node moved since the last probe.
func (c *controller) applyGroundDrift() {
	if c.groundNode == nil {
		return
	}
	current := c.groundNode.WorldPosition()
	drift := current.Sub(c.groundAnchor)
	if drift.Len() > 0 {
		c.position = c.position.Add(drift)
	}
	c.groundAnchor = current
}

// consumeVirtualFrames converts a wall-clock delta into whole virtual frames,
// keeping the fractional remainder for the next tick. The count is capped so
// a stall (debugger, window drag) cannot burst-apply hundreds of frames of
// decay in one tick; capped whole frames are discarded.
func (c *controller) consumeVirtualFrames(delta float32) int {
	c.frameAccum += delta * virtualFrameRate
	frames := int(c.frameAccum)
	c.frameAccum -= float32(frames)
	if frames > c.tuning.MaxVirtualFrames {
		frames = c.tuning.MaxVirtualFrames
	}
	return frames
}

// integrate advances the pull accumulator over the given virtual frames and
// returns the total movement vector for this tick. While airborne the upward
// part of the pull decays asymmetrically: slowly while ascending for a floaty
// apex, sharply once descending for a fast commit to the fall.
func (c *controller) integrate(frames int) mgl32.Vec3 {
	var move mgl32.Vec3
	dir := mgl32.Vec3{c.moveDir.X(), 0, c.moveDir.Y()}

	for i := 0; i < frames; i++ {
		if c.pull < 0 {
			switch c.phase {
			case PhaseAscending:
				c.pull *= c.tuning.AscendDamping
			case PhaseDescending:
				c.pull *= c.tuning.DescendDamping
			}
		}
		c.pull += c.tuning.Gravity

		move[1] -= c.pull
		move = move.Add(dir.Mul(c.tuning.WalkSpeed))
	}
	return move
}

// updateWalkState compares the walk condition against the previous tick and
// emits the animation signal only on a transition.
func (c *controller) updateWalkState() {
	walking := c.grounded && (c.moveDir.X() != 0 || c.moveDir.Y() != 0)
	if walking == c.walking {
		return
	}
	c.walking = walking
	if walking {
		c.anim.Play(ClipWalk, true)
	} else {
		c.anim.Stop(ClipWalk, animationBlendOut)
	}
}

// updateFacing turns the actor toward its movement direction, keeping the
// last facing when input stops.
func (c *controller) updateFacing() {
	if dir, ok := common.SafeNormalize2(c.moveDir); ok {
		c.yaw = common.YawFor(dir)
	}
}

// writeTransform publishes the tracked position and yaw to the actor's node,
// preserving the node's scale.
func (c *controller) writeTransform() {
	world := c.node.WorldTransform()
	world.Position = c.position
	world.Rotation = mgl32.QuatRotate(c.yaw, mgl32.Vec3{0, 1, 0})
	c.node.SetWorldTransform(world)
}
