package config

import (
	"testing"
	"time"
)

func TestDefaultMatchesEnvDefaults(t *testing.T) {
	fromEnv, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fromEnv != Default() {
		t.Fatalf("env defaults diverge from compiled defaults:\n got %+v\nwant %+v", fromEnv, Default())
	}
}

func TestFromEnvOverride(t *testing.T) {
	t.Setenv("STRIDER_GRAVITY", "0.01")
	t.Setenv("STRIDER_ATTACK_COOLDOWN", "250ms")
	t.Setenv("STRIDER_SLIDE_ITERATIONS", "8")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gravity != 0.01 {
		t.Fatalf("expected gravity override 0.01, got %v", cfg.Gravity)
	}
	if cfg.AttackCooldown != 250*time.Millisecond {
		t.Fatalf("expected cooldown override 250ms, got %v", cfg.AttackCooldown)
	}
	if cfg.SlideIterations != 8 {
		t.Fatalf("expected slide iteration override 8, got %v", cfg.SlideIterations)
	}
	if cfg.JumpImpulse != 0.1 {
		t.Fatalf("expected untouched jump impulse 0.1, got %v", cfg.JumpImpulse)
	}
}

func TestFromEnvBadValue(t *testing.T) {
	t.Setenv("STRIDER_WALK_SPEED", "fast")

	cfg, err := FromEnv()
	if err == nil {
		t.Fatalf("expected parse error for non-numeric walk speed")
	}
	if cfg != Default() {
		t.Fatalf("expected defaults on parse failure, got %+v", cfg)
	}
}
