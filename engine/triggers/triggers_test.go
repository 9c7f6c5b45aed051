package triggers

import (
	"testing"

	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
	"github.com/go-gl/mathgl/mgl32"
)

func TestEnterFiresExactlyOncePerEntry(t *testing.T) {
	fired := 0
	m := NewManager()
	m.Add(Volume{
		Name:    "door",
		Radius:  1,
		OnEnter: func() { fired++ },
	})

	inside := mgl32.Vec3{0.5, 0, 0}
	outside := mgl32.Vec3{5, 0, 0}

	m.Step(inside)
	m.Step(inside)
	if fired != 1 {
		t.Fatalf("fired %d times while staying inside, want 1", fired)
	}

	m.Step(outside)
	m.Step(inside)
	if fired != 2 {
		t.Fatalf("fired %d times after re-entry, want 2", fired)
	}
}

func TestOneShotNeverRearms(t *testing.T) {
	fired := 0
	m := NewManager()
	m.Add(Volume{
		Name:    "pickup",
		Radius:  1,
		OneShot: true,
		OnEnter: func() { fired++ },
	})

	inside := mgl32.Vec3{0, 0, 0}
	outside := mgl32.Vec3{5, 0, 0}
	for i := 0; i < 3; i++ {
		m.Step(inside)
		m.Step(outside)
	}
	if fired != 1 {
		t.Fatalf("one-shot volume fired %d times, want 1", fired)
	}
}

func TestVolumeFollowsBoundNode(t *testing.T) {
	node := scenegraph.NewNode("mover", scenegraph.WithPosition(mgl32.Vec3{10, 0, 0}))
	fired := 0
	m := NewManager()
	m.Add(Volume{
		Name:    "mover",
		Node:    node,
		Radius:  1,
		OnEnter: func() { fired++ },
	})

	m.Step(mgl32.Vec3{0, 0, 0})
	if fired != 0 {
		t.Fatalf("volume fired before the node arrived")
	}

	local := node.LocalTransform()
	local.Position = mgl32.Vec3{0.5, 0, 0}
	node.SetLocalTransform(local)

	m.Step(mgl32.Vec3{0, 0, 0})
	if fired != 1 {
		t.Fatalf("volume did not follow its node: fired %d, want 1", fired)
	}
}

func TestNonPositiveRadiusSkipped(t *testing.T) {
	m := NewManager()
	m.Add(Volume{Name: "broken", Radius: 0})
	if m.Len() != 0 {
		t.Fatalf("zero-radius volume registered")
	}
}

func TestCollectiblesCount(t *testing.T) {
	c := NewCollectibles(2, nil)
	if c.Complete() {
		t.Fatalf("empty counter reports complete")
	}

	node := scenegraph.NewNode("coin_1", scenegraph.WithPosition(mgl32.Vec3{2, 0, 0}))
	m := NewManager()
	m.Add(NewPickupVolume(node, 0.5, c))

	m.Step(mgl32.Vec3{2, 0, 0})
	if got := c.Collected(); got != 1 {
		t.Fatalf("collected %d, want 1", got)
	}

	// Walking back over a spent pickup collects nothing.
	m.Step(mgl32.Vec3{10, 0, 0})
	m.Step(mgl32.Vec3{2, 0, 0})
	if got := c.Collected(); got != 1 {
		t.Fatalf("spent pickup collected again: %d", got)
	}

	c.Collect()
	if !c.Complete() {
		t.Fatalf("counter not complete at %d/%d", c.Collected(), c.Total())
	}
}
