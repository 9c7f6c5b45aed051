// package config carries the tunable gameplay constants. Every knob has a
// compiled-in default matching the shipped feel; FromEnv lets a host override
// any of them through STRIDER_* environment variables without a rebuild.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Tuning is the full set of gameplay constants consumed by the character
// controller and camera rig. Units are world units per virtual frame unless
// stated otherwise.
type Tuning struct {
	// Gravity is the per-virtual-frame increase of the downward pull.
	Gravity float32 `env:"STRIDER_GRAVITY" envDefault:"0.004"`
	// JumpImpulse is the instantaneous upward kick applied when a jump
	// starts.
	JumpImpulse float32 `env:"STRIDER_JUMP_IMPULSE" envDefault:"0.1"`
	// AscendDamping scales the upward pull each virtual frame while
	// ascending.
	AscendDamping float32 `env:"STRIDER_ASCEND_DAMPING" envDefault:"0.99"`
	// DescendDamping scales any remaining upward pull each virtual frame
	// after the jump control is released.
	DescendDamping float32 `env:"STRIDER_DESCEND_DAMPING" envDefault:"0.2"`
	// WalkSpeed is the horizontal speed at full stick deflection.
	WalkSpeed float32 `env:"STRIDER_WALK_SPEED" envDefault:"0.05"`
	// GroundProbe is the half-length of the vertical ground probe cast
	// around the character's feet.
	GroundProbe float32 `env:"STRIDER_GROUND_PROBE" envDefault:"0.2"`
	// CapsuleMargin shrinks the collision capsule below the visual bounds
	// so the sweep keeps a skin against surfaces.
	CapsuleMargin float32 `env:"STRIDER_CAPSULE_MARGIN" envDefault:"0.05"`
	// AltitudeFloor is the world altitude below which the character is
	// treated as lost and respawned.
	AltitudeFloor float32 `env:"STRIDER_ALTITUDE_FLOOR" envDefault:"-10"`
	// AltitudeBlend is the per-step blend factor easing the reported base
	// altitude toward the current ground height.
	AltitudeBlend float32 `env:"STRIDER_ALTITUDE_BLEND" envDefault:"0.05"`
	// SlideIterations caps how many contact planes one step may slide
	// along before accepting the position.
	SlideIterations int `env:"STRIDER_SLIDE_ITERATIONS" envDefault:"4"`
	// SlideEpsilon is the squared-length floor below which residual slide
	// motion is discarded.
	SlideEpsilon float32 `env:"STRIDER_SLIDE_EPSILON" envDefault:"0.0001"`
	// HeadOnFriction scales slide motion when the character pushes almost
	// straight into a surface.
	HeadOnFriction float32 `env:"STRIDER_HEAD_ON_FRICTION" envDefault:"0.3"`
	// AttackCooldown is how long each attack contributes to the active
	// counter.
	AttackCooldown time.Duration `env:"STRIDER_ATTACK_COOLDOWN" envDefault:"500ms"`
	// MaxVirtualFrames caps how many fixed-step frames a single step may
	// consume after a stall.
	MaxVirtualFrames int `env:"STRIDER_MAX_VIRTUAL_FRAMES" envDefault:"15"`
	// OrbitSensitivity converts orbit input device units to radians.
	OrbitSensitivity float32 `env:"STRIDER_ORBIT_SENSITIVITY" envDefault:"0.005"`
	// LimiterRamp is the per-frame recovery rate of the follow camera's
	// damping weight after orbit input stops.
	LimiterRamp float32 `env:"STRIDER_LIMITER_RAMP" envDefault:"0.01"`
	// TransitionDuration is how long a camera switch eases before the new
	// anchor takes over cleanly, in seconds.
	TransitionDuration float32 `env:"STRIDER_TRANSITION_DURATION" envDefault:"0.6"`
}

// Default returns the compiled-in tuning values.
//
// Returns:
//   - Tuning: the default gameplay constants
func Default() Tuning {
	return Tuning{
		Gravity:            0.004,
		JumpImpulse:        0.1,
		AscendDamping:      0.99,
		DescendDamping:     0.2,
		WalkSpeed:          0.05,
		GroundProbe:        0.2,
		CapsuleMargin:      0.05,
		AltitudeFloor:      -10,
		AltitudeBlend:      0.05,
		SlideIterations:    4,
		SlideEpsilon:       0.0001,
		HeadOnFriction:     0.3,
		AttackCooldown:     500 * time.Millisecond,
		MaxVirtualFrames:   15,
		OrbitSensitivity:   0.005,
		LimiterRamp:        0.01,
		TransitionDuration: 0.6,
	}
}

// FromEnv returns the tuning values with any STRIDER_* environment overrides
// applied. On a parse failure the compiled-in defaults are returned alongside
// the error so callers can keep running.
//
// Returns:
//   - Tuning: the resolved gameplay constants
//   - error: an error if an override failed to parse
func FromEnv() (Tuning, error) {
	var cfg Tuning
	if err := env.Parse(&cfg); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
