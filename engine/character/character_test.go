package character

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/strider-go/engine/animation"
	"github.com/Carmen-Shannon/strider-go/engine/physics"
	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
	"github.com/go-gl/mathgl/mgl32"
)

// tick is slightly over one virtual frame so every Update consumes exactly
// one whole frame instead of rounding down to zero.
const (
	epsilon = 1e-4
	tick    = 17 * time.Millisecond
)

// fakeWorld scripts physics query results and counts calls.
type fakeWorld struct {
	hits         func(from, to mgl32.Vec3) (physics.ClosestHit, bool)
	sweeps       func(call int, from, to mgl32.Vec3) []physics.ContactEvent
	segmentCalls int
	sweepCalls   int
}

var _ physics.World = &fakeWorld{}

func (w *fakeWorld) SegmentHitTest(from, to mgl32.Vec3, mask physics.Layer) (physics.ClosestHit, bool) {
	w.segmentCalls++
	if w.hits == nil {
		return physics.ClosestHit{}, false
	}
	return w.hits(from, to)
}

func (w *fakeWorld) ConvexSweepTest(shape physics.Capsule, from, to mgl32.Vec3, mask physics.Layer) []physics.ContactEvent {
	w.sweepCalls++
	if w.sweeps == nil {
		return nil
	}
	return w.sweeps(w.sweepCalls, from, to)
}

// flatFloorAt returns a segment-hit func for an infinite floor at the given
// height, optionally reporting a supporting node.
func flatFloorAt(height float32, node scenegraph.Node) func(from, to mgl32.Vec3) (physics.ClosestHit, bool) {
	return func(from, to mgl32.Vec3) (physics.ClosestHit, bool) {
		if from.Y() < height || to.Y() > height {
			return physics.ClosestHit{}, false
		}
		return physics.ClosestHit{
			Position: mgl32.Vec3{from.X(), height, from.Z()},
			Normal:   mgl32.Vec3{0, 1, 0},
			Node:     node,
		}, true
	}
}

func newTestController(t *testing.T, world physics.World, options ...ControllerBuilderOption) (*controller, *animation.Registry) {
	t.Helper()
	registry := animation.NewRegistry()
	opts := append([]ControllerBuilderOption{
		WithNode(scenegraph.NewNode("actor")),
		WithPhysicsWorld(world),
		WithAnimation(registry),
	}, options...)
	return NewController(opts...).(*controller), registry
}

// settle runs the baseline tick plus one simulation tick so the controller
// knows whether it is grounded.
func settle(c Controller, start time.Time) time.Time {
	c.Update(start)
	now := start.Add(tick)
	c.Update(now)
	return now
}

func stepTicks(c Controller, now time.Time, n int) time.Time {
	for i := 0; i < n; i++ {
		now = now.Add(tick)
		c.Update(now)
	}
	return now
}

func TestSetMoveDirectionNormalization(t *testing.T) {
	c, _ := newTestController(t, &fakeWorld{})

	c.SetMoveDirection(mgl32.Vec2{0.3, 0.4})
	if got := c.MoveDirection(); got != (mgl32.Vec2{0.3, 0.4}) {
		t.Fatalf("short direction altered: got %v", got)
	}

	c.SetMoveDirection(mgl32.Vec2{3, 4})
	got := c.MoveDirection()
	if !got.ApproxEqualThreshold(mgl32.Vec2{0.6, 0.8}, epsilon) {
		t.Fatalf("long direction not rescaled to unit: got %v", got)
	}
	if !mgl32.FloatEqualThreshold(got.Len(), 1, epsilon) {
		t.Fatalf("rescaled direction length %v, want 1", got.Len())
	}
}

func TestFirstUpdatePerformsNoMotion(t *testing.T) {
	c, _ := newTestController(t, &fakeWorld{})
	before := c.WorldPosition()
	c.Update(time.Unix(100, 0))
	if c.WorldPosition() != before {
		t.Fatalf("baseline update moved the actor: %v -> %v", before, c.WorldPosition())
	}
}

func TestJumpImpulseAppliedImmediately(t *testing.T) {
	world := &fakeWorld{hits: flatFloorAt(0, nil)}
	c, registry := newTestController(t, world)
	settle(c, time.Unix(0, 0))
	if !c.Grounded() {
		t.Fatalf("expected actor grounded before jump")
	}

	before := c.pull
	c.SetJumpHeld(true)
	if c.Phase() != PhaseAscending {
		t.Fatalf("expected ascending phase, got %v", c.Phase())
	}
	if got := c.pull - before; got != -c.tuning.JumpImpulse {
		t.Fatalf("pull changed by %v, want exactly %v", got, -c.tuning.JumpImpulse)
	}
	if !registry.Playing(ClipJump) {
		t.Fatalf("expected jump clip to play on jump start")
	}
}

func TestJumpRequiresGround(t *testing.T) {
	c, _ := newTestController(t, &fakeWorld{})
	settle(c, time.Unix(0, 0))
	if c.Grounded() {
		t.Fatalf("expected airborne actor with no floor")
	}

	before := c.pull
	c.SetJumpHeld(true)
	if c.Phase() != PhaseGrounded {
		t.Fatalf("airborne jump press changed phase to %v", c.Phase())
	}
	if c.pull != before {
		t.Fatalf("airborne jump press changed pull: %v -> %v", before, c.pull)
	}
}

func TestReleaseCommitsDescentWithoutTouchingPull(t *testing.T) {
	world := &fakeWorld{hits: flatFloorAt(0, nil)}
	c, _ := newTestController(t, world)
	now := settle(c, time.Unix(0, 0))

	c.SetJumpHeld(true)
	now = stepTicks(c, now, 3)

	before := c.pull
	c.SetJumpHeld(false)
	if c.Phase() != PhaseDescending {
		t.Fatalf("expected descending phase, got %v", c.Phase())
	}
	if c.pull != before {
		t.Fatalf("release altered pull: %v -> %v", before, c.pull)
	}
}

func TestGravityAccumulatesMonotonically(t *testing.T) {
	c, _ := newTestController(t, &fakeWorld{})
	now := time.Unix(0, 0)
	c.Update(now)

	previous := c.pull
	for i := 0; i < 10; i++ {
		now = now.Add(tick)
		c.Update(now)
		delta := c.pull - previous
		if !mgl32.FloatEqualThreshold(delta, c.tuning.Gravity, 1e-6) {
			t.Fatalf("tick %d: pull delta %v, want %v", i, delta, c.tuning.Gravity)
		}
		previous = c.pull
	}
}

func TestSlideZeroVelocityIsIdempotent(t *testing.T) {
	world := &fakeWorld{}
	c, _ := newTestController(t, world)

	start := mgl32.Vec3{1, 2, 3}
	got := c.slide(start, mgl32.Vec3{})
	if got != start {
		t.Fatalf("zero-velocity slide moved: %v -> %v", start, got)
	}
	if world.sweepCalls != 0 {
		t.Fatalf("zero-velocity slide ran %d sweeps, want 0", world.sweepCalls)
	}
}

func TestSlideTerminatesAgainstOpposingPlanes(t *testing.T) {
	// Contacts that stop all travel and alternate between two opposing
	// perpendicular planes never converge; the iteration budget must end
	// the resolution anyway.
	world := &fakeWorld{
		sweeps: func(call int, from, to mgl32.Vec3) []physics.ContactEvent {
			normal := mgl32.Vec3{0, 0, -1}
			if call%2 == 0 {
				normal = mgl32.Vec3{0, 0, 1}
			}
			return []physics.ContactEvent{{Point: from, Normal: normal, Fraction: 0}}
		},
	}
	c, _ := newTestController(t, world)

	start := mgl32.Vec3{0, 1, 0}
	got := c.slide(start, mgl32.Vec3{0.5, 0, 0})
	if world.sweepCalls != c.tuning.SlideIterations {
		t.Fatalf("slide ran %d sweeps, want exactly %d", world.sweepCalls, c.tuning.SlideIterations)
	}
	if !got.ApproxEqualThreshold(start, epsilon) {
		t.Fatalf("fully blocked slide moved: %v -> %v", start, got)
	}
}

func TestSlideRedirectsAlongWall(t *testing.T) {
	// One wall contact halfway through a diagonal move: travel should stop
	// against the wall's axis but continue along it.
	world := &fakeWorld{
		sweeps: func(call int, from, to mgl32.Vec3) []physics.ContactEvent {
			if call > 1 {
				return nil
			}
			return []physics.ContactEvent{{Point: to, Normal: mgl32.Vec3{-1, 0, 0}, Fraction: 0.5}}
		},
	}
	c, _ := newTestController(t, world)

	got := c.slide(mgl32.Vec3{}, mgl32.Vec3{0.2, 0, 0.2})
	if got.X() > 0.1+epsilon {
		t.Fatalf("slide penetrated wall axis: x = %v", got.X())
	}
	if got.Z() <= 0.1+epsilon {
		t.Fatalf("slide lost motion along wall: z = %v, want > 0.1", got.Z())
	}
}

func TestHeadOnContactSlowsSlide(t *testing.T) {
	// A head-on wall with a slight downward drift: the redirected remainder
	// takes the blocking friction instead of full speed.
	world := &fakeWorld{
		sweeps: func(call int, from, to mgl32.Vec3) []physics.ContactEvent {
			if call > 1 {
				return nil
			}
			return []physics.ContactEvent{{Point: to, Normal: mgl32.Vec3{-1, 0, 0}, Fraction: 0}}
		},
	}
	c, _ := newTestController(t, world)

	got := c.slide(mgl32.Vec3{}, mgl32.Vec3{0.5, -0.2, 0})
	wantY := float32(-0.2) * c.tuning.HeadOnFriction
	if !mgl32.FloatEqualThreshold(got.Y(), wantY, epsilon) {
		t.Fatalf("head-on slide y = %v, want %v", got.Y(), wantY)
	}
}

func TestAttackCooldownCounter(t *testing.T) {
	world := &fakeWorld{hits: flatFloorAt(0, nil)}
	c, registry := newTestController(t, world)
	now := settle(c, time.Unix(0, 0))

	c.Attack()
	if got := c.ActiveAttacks(); got != 1 {
		t.Fatalf("counter after first attack = %d, want 1", got)
	}
	if !registry.Playing(ClipAttack) {
		t.Fatalf("expected attack clip to play on first attack")
	}

	// Second attack inside the window stacks its own cooldown.
	now = stepTicks(c, now, 6) // ~100ms
	c.Attack()
	if got := c.ActiveAttacks(); got != 2 {
		t.Fatalf("counter after overlapping attack = %d, want 2", got)
	}

	// Past the first cooldown only the first decrement has fired.
	now = stepTicks(c, now, 27) // ~550ms total since first attack
	if got := c.ActiveAttacks(); got != 1 {
		t.Fatalf("counter after first cooldown = %d, want 1", got)
	}
	if !registry.Playing(ClipAttack) {
		t.Fatalf("attack clip stopped while attacks remain active")
	}

	// Past both cooldowns the counter returns to zero and the clip stops.
	stepTicks(c, now, 12)
	if got := c.ActiveAttacks(); got != 0 {
		t.Fatalf("counter after both cooldowns = %d, want 0", got)
	}
	if registry.Playing(ClipAttack) {
		t.Fatalf("attack clip still playing after cooldowns")
	}
}

func TestStallCapsVirtualFrames(t *testing.T) {
	c, _ := newTestController(t, &fakeWorld{})
	now := time.Unix(0, 0)
	c.Update(now)

	// A multi-second stall (debugger, window drag) must apply at most the
	// capped number of frames of gravity, not the whole backlog.
	c.Update(now.Add(10 * time.Second))

	want := float32(c.tuning.MaxVirtualFrames) * c.tuning.Gravity
	if !mgl32.FloatEqualThreshold(c.pull, want, 1e-6) {
		t.Fatalf("pull after stall = %v, want cap at %v", c.pull, want)
	}

	// The discarded backlog must not leak into the next tick.
	c.Update(now.Add(10*time.Second + tick))
	want += c.tuning.Gravity
	if !mgl32.FloatEqualThreshold(c.pull, want, 1e-6) {
		t.Fatalf("pull one tick after stall = %v, want %v", c.pull, want)
	}
}

func TestBaseAltitudeBlendsTowardGround(t *testing.T) {
	world := &fakeWorld{hits: flatFloorAt(0, nil)}
	c, _ := newTestController(t, world)
	now := settle(c, time.Unix(0, 0))

	c.baseAltitude = 2
	stepTicks(c, now, 1)

	want := (1 - c.tuning.AltitudeBlend) * 2
	if !mgl32.FloatEqualThreshold(c.BaseAltitude(), want, epsilon) {
		t.Fatalf("base altitude after one grounded tick = %v, want %v", c.BaseAltitude(), want)
	}
}

func TestAttackBeforeFirstUpdateKeepsFullCooldown(t *testing.T) {
	world := &fakeWorld{hits: flatFloorAt(0, nil)}
	c, _ := newTestController(t, world)

	c.Attack()
	if got := c.ActiveAttacks(); got != 1 {
		t.Fatalf("counter after pre-baseline attack = %d, want 1", got)
	}

	// The cooldown starts at the baseline tick, not at the zero time.
	now := settle(c, time.Unix(0, 0))
	if got := c.ActiveAttacks(); got != 1 {
		t.Fatalf("counter expired on the baseline tick: %d, want 1", got)
	}

	now = stepTicks(c, now, 6) // ~120ms in
	if got := c.ActiveAttacks(); got != 1 {
		t.Fatalf("counter expired inside the cooldown: %d, want 1", got)
	}

	stepTicks(c, now, 25) // past 500ms since the baseline
	if got := c.ActiveAttacks(); got != 0 {
		t.Fatalf("counter after full cooldown = %d, want 0", got)
	}
}

func TestAltitudeFloorClampsAndQueuesReset(t *testing.T) {
	c, _ := newTestController(t, &fakeWorld{}, WithSpawnPoint(mgl32.Vec3{0, 5, 0}))
	now := time.Unix(0, 0)
	c.Update(now)

	c.position = mgl32.Vec3{0, c.tuning.AltitudeFloor - 0.5, 0}
	now = now.Add(tick)
	c.Update(now)

	if got := c.WorldPosition().Y(); got != c.tuning.AltitudeFloor {
		t.Fatalf("altitude after floor tick = %v, want clamp at %v", got, c.tuning.AltitudeFloor)
	}
	if !c.pendingReset {
		t.Fatalf("expected queued reset after falling past the floor")
	}

	// The reset is consumed at the start of the following tick.
	c.Update(now.Add(tick))
	if got := c.WorldPosition(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 5, 0}, 0.1) {
		t.Fatalf("position after reset = %v, want near spawn", got)
	}
}

func TestQueueResetIsIdempotent(t *testing.T) {
	c, _ := newTestController(t, &fakeWorld{}, WithSpawnPoint(mgl32.Vec3{7, 1, 7}))
	now := time.Unix(0, 0)
	c.Update(now)

	c.QueueResetPosition()
	c.QueueResetPosition()
	c.Update(now.Add(tick))

	if got := c.WorldPosition(); !got.ApproxEqualThreshold(mgl32.Vec3{7, 1, 7}, 0.1) {
		t.Fatalf("position after reset = %v, want near spawn", got)
	}
	if c.pendingReset {
		t.Fatalf("reset flag not cleared after consumption")
	}
}

func TestWalkStateDrivesWalkClip(t *testing.T) {
	world := &fakeWorld{hits: flatFloorAt(0, nil)}
	c, registry := newTestController(t, world)
	now := settle(c, time.Unix(0, 0))

	c.SetMoveDirection(mgl32.Vec2{0, 1})
	now = stepTicks(c, now, 1)
	if !c.Walking() || !registry.Playing(ClipWalk) {
		t.Fatalf("expected walk state and clip while moving on ground")
	}

	c.SetMoveDirection(mgl32.Vec2{})
	stepTicks(c, now, 1)
	if c.Walking() || registry.Playing(ClipWalk) {
		t.Fatalf("expected walk state and clip to stop with no input")
	}
}

func TestJumpArcLandsAndStopsJumpClip(t *testing.T) {
	world := physics.NewStaticWorld(
		physics.WithCollider(physics.BoxCollider{
			Center:      mgl32.Vec3{0, -0.5, 0},
			HalfExtents: mgl32.Vec3{50, 0.5, 50},
			Layer:       physics.LayerGround,
		}),
	)
	c, registry := newTestController(t, world)
	now := settle(c, time.Unix(0, 0))
	if !c.Grounded() {
		t.Fatalf("expected actor to start grounded on static floor")
	}
	startY := c.WorldPosition().Y()

	c.SetJumpHeld(true)
	now = stepTicks(c, now, 10)
	if c.WorldPosition().Y() <= startY {
		t.Fatalf("actor did not rise during jump: y = %v", c.WorldPosition().Y())
	}
	c.SetJumpHeld(false)

	landed := false
	for i := 0; i < 300; i++ {
		now = stepTicks(c, now, 1)
		if c.Grounded() {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatalf("actor never landed after jump")
	}
	if c.Phase() != PhaseGrounded {
		t.Fatalf("phase after landing = %v, want grounded", c.Phase())
	}
	if c.pull != 0 {
		t.Fatalf("pull after landing = %v, want 0", c.pull)
	}
	if registry.Playing(ClipJump) {
		t.Fatalf("jump clip still playing after landing")
	}
}

func TestGroundDriftFollowsPlatform(t *testing.T) {
	platform := scenegraph.NewNode("platform")
	world := &fakeWorld{hits: flatFloorAt(0, platform)}
	c, _ := newTestController(t, world)
	now := settle(c, time.Unix(0, 0))
	if c.GroundNode() != platform {
		t.Fatalf("expected platform as ground node")
	}

	transform := platform.WorldTransform()
	transform.Position = transform.Position.Add(mgl32.Vec3{0.5, 0, 0})
	platform.SetWorldTransform(transform)

	stepTicks(c, now, 1)
	if got := c.WorldPosition().X(); !mgl32.FloatEqualThreshold(got, 0.5, epsilon) {
		t.Fatalf("actor x after platform drift = %v, want 0.5", got)
	}
}

func TestFacingTracksMovement(t *testing.T) {
	world := &fakeWorld{hits: flatFloorAt(0, nil)}
	c, _ := newTestController(t, world)
	now := settle(c, time.Unix(0, 0))

	c.SetMoveDirection(mgl32.Vec2{1, 0})
	now = stepTicks(c, now, 1)
	if got := c.Facing(); !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, epsilon) {
		t.Fatalf("facing after +x movement = %v, want +x", got)
	}

	// Facing persists when input stops.
	c.SetMoveDirection(mgl32.Vec2{})
	stepTicks(c, now, 1)
	if got := c.Facing(); !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, epsilon) {
		t.Fatalf("facing drifted without input: %v", got)
	}
}

func TestPauseAnimationsFreezesClipSpeeds(t *testing.T) {
	world := &fakeWorld{hits: flatFloorAt(0, nil)}
	c, registry := newTestController(t, world)

	c.PauseAnimations()
	for _, clip := range []string{ClipWalk, ClipJump, ClipAttack} {
		if got := registry.Speed(clip); got != 0 {
			t.Fatalf("clip %q speed after pause = %v, want 0", clip, got)
		}
	}
	c.ResumeAnimations()
	for _, clip := range []string{ClipWalk, ClipJump, ClipAttack} {
		if got := registry.Speed(clip); got != 1 {
			t.Fatalf("clip %q speed after resume = %v, want 1", clip, got)
		}
	}
}

func TestNewControllerRequiresNode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic without a node")
		}
	}()
	NewController(WithPhysicsWorld(&fakeWorld{}))
}

func TestNewControllerRequiresWorld(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic without a physics world")
		}
	}()
	NewController(WithNode(scenegraph.NewNode("actor")))
}
