package character

import (
	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/Carmen-Shannon/strider-go/engine/audio"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// slideGlancingThreshold is the |approach| below which a contact counts
	// as near-glancing and gets nudged off its plane to avoid sticking.
	slideGlancingThreshold float32 = 0.1
	// slideGlancingNudge is the off-plane push applied to near-glancing
	// contacts, in world units.
	slideGlancingNudge float32 = 0.01
	// slideBlockingThreshold is the -approach above which a contact counts
	// as steep enough to take the blocking friction.
	slideBlockingThreshold float32 = 0.7
)

// slide resolves one tick of movement against the collision world: sweep the
// capsule along the remaining motion, and on contact advance to the impact
// point and redirect the unswept remainder along the contact plane. Gives
// sliding-along-walls instead of stopping dead. If the iteration budget runs
// out before the motion settles, the last computed position stands.
func (c *controller) slide(from mgl32.Vec3, velocity mgl32.Vec3) mgl32.Vec3 {
	position := from
	remaining := velocity

	for i := 0; i < c.tuning.SlideIterations; i++ {
		if remaining.LenSqr() <= c.tuning.SlideEpsilon {
			break
		}

		target := position.Add(remaining)
		contacts := c.world.ConvexSweepTest(c.capsule, position, target, c.layers)
		if len(contacts) == 0 {
			position = target
			break
		}
		contact := contacts[0]

		position = position.Add(remaining.Mul(contact.Fraction))

		dir, ok := common.SafeNormalize(remaining)
		if !ok {
			break
		}
		normal, ok := common.SafeNormalize(contact.Normal)
		if !ok {
			break
		}

		// approach is negative when moving into the surface.
		approach := dir.Dot(normal)

		leftover := remaining.Mul(1 - contact.Fraction)
		slid := common.ProjectOnPlane(leftover, normal)
		if common.Abs(approach) < slideGlancingThreshold {
			slid = slid.Add(normal.Mul(slideGlancingNudge))
		}

		friction := float32(1)
		if approach < -slideBlockingThreshold {
			friction = c.tuning.HeadOnFriction
		}
		remaining = slid.Mul(friction)
	}
	return position
}

// probeGround casts a short vertical segment around the actor's feet. On a
// hit the actor snaps to the surface and the pull accumulator clears; on a
// miss the actor is airborne, and falling past the altitude floor clamps the
// position and queues a respawn. Skipped entirely while the pull is negative
// so a fresh jump is not cancelled by the ground it just left.
func (c *controller) probeGround() {
	if c.pull < 0 {
		c.grounded = false
		c.groundNode = nil
		return
	}

	probe := mgl32.Vec3{0, c.tuning.GroundProbe, 0}
	hit, ok := c.world.SegmentHitTest(c.position.Add(probe), c.position.Sub(probe), c.layers)
	if !ok {
		c.grounded = false
		c.groundNode = nil
		if c.position.Y() < c.tuning.AltitudeFloor {
			c.position[1] = c.tuning.AltitudeFloor
			c.QueueResetPosition()
		}
		return
	}

	groundHeight := hit.Position.Y()
	c.position[1] = groundHeight + c.tuning.CapsuleMargin
	c.pull = 0

	landed := !c.grounded
	c.grounded = true
	c.groundNode = hit.Node
	if hit.Node != nil {
		c.groundAnchor = hit.Node.WorldPosition()
	}

	if landed && c.phase != PhaseGrounded {
		c.phase = PhaseGrounded
		c.anim.Stop(ClipJump, animationBlendOut)
		c.sound.Play(audio.CueLand)
	}

	c.baseAltitude = c.tuning.AltitudeBlend*groundHeight + (1-c.tuning.AltitudeBlend)*c.baseAltitude
}
