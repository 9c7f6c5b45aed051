package physics

import (
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/Carmen-Shannon/strider-go/engine/scenegraph"
	"github.com/go-gl/mathgl/mgl32"
)

// BoxCollider is one axis-aligned box in the static collision world. When a
// Node is set, the box center follows the node's world position at Build
// time (node rotation is ignored; colliders stay axis-aligned).
type BoxCollider struct {
	// Node is the scene node the collider is bound to (optional).
	Node scenegraph.Node

	// Center is the box center: relative to the node's world position when
	// Node is set, absolute world space otherwise.
	Center mgl32.Vec3

	// HalfExtents are the box half-sizes along each axis.
	HalfExtents mgl32.Vec3

	// Layer is the collision-layer bitmask the collider responds on.
	Layer Layer
}

// aabb is a world-space axis-aligned bounding box.
type aabb struct {
	min, max mgl32.Vec3
}

// cellKey addresses one XZ cell of the broad-phase grid.
type cellKey struct {
	x, z int32
}

// StaticWorld is the reference World implementation: a set of axis-aligned
// box colliders with a uniform XZ grid broad phase. Build precomputes world
// bounds and grid cells; queries afterward are read-only and allocation-light.
type StaticWorld struct {
	colliders []BoxCollider

	// Derived at Build time.
	bounds []aabb
	grid   map[cellKey][]int
	built  bool

	cellSize float32
	workers  int
}

var _ World = &StaticWorld{}

// NewStaticWorld creates a StaticWorld with the provided options. Colliders
// may also be added afterward with AddCollider; Build (or the first query)
// finalizes the world.
//
// Parameters:
//   - options: functional options to configure the world
//
// Returns:
//   - *StaticWorld: the newly created world
func NewStaticWorld(options ...StaticWorldBuilderOption) *StaticWorld {
	w := &StaticWorld{
		cellSize: 4,
		workers:  max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// AddCollider registers a collider. Invalidates any previous Build.
//
// Parameters:
//   - c: the collider to add
func (w *StaticWorld) AddCollider(c BoxCollider) {
	w.colliders = append(w.colliders, c)
	w.built = false
}

// Colliders returns the registered colliders, for debug frontends that plot
// the collision world. The returned slice is shared; callers must not mutate
// it.
//
// Returns:
//   - []BoxCollider: the registered colliders
func (w *StaticWorld) Colliders() []BoxCollider {
	return w.colliders
}

// Build resolves every collider to its world-space bounds and fills the
// broad-phase grid. Bound computation runs on a dynamic worker pool (each
// task writes a distinct index, so no locking is needed); grid fill is
// serial. Safe to call again after adding colliders.
func (w *StaticWorld) Build() {
	w.bounds = make([]aabb, len(w.colliders))

	pool := worker.NewDynamicWorkerPool(w.workers, 256, 1*time.Second)
	var wg sync.WaitGroup
	for i := range w.colliders {
		wg.Add(1)
		idx := i
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				c := w.colliders[idx]
				center := c.Center
				if c.Node != nil {
					center = c.Node.WorldPosition().Add(c.Center)
				}
				w.bounds[idx] = aabb{
					min: center.Sub(c.HalfExtents),
					max: center.Add(c.HalfExtents),
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	w.grid = make(map[cellKey][]int)
	for i, b := range w.bounds {
		minX, minZ := w.cellOf(b.min[0]), w.cellOf(b.min[2])
		maxX, maxZ := w.cellOf(b.max[0]), w.cellOf(b.max[2])
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				key := cellKey{x, z}
				w.grid[key] = append(w.grid[key], i)
			}
		}
	}
	w.built = true
}

// ensureBuilt finalizes the world if a query arrives before Build.
func (w *StaticWorld) ensureBuilt() {
	if !w.built {
		w.Build()
	}
}

// cellOf maps a world coordinate to a grid cell index.
func (w *StaticWorld) cellOf(v float32) int32 {
	return int32(math.Floor(float64(v / w.cellSize)))
}

// candidates collects the collider indices whose grid cells overlap the XZ
// rectangle spanned by lo..hi, expanded by inflate on each side. Indices are
// deduplicated.
func (w *StaticWorld) candidates(lo, hi mgl32.Vec3, inflate float32) []int {
	minX := w.cellOf(min(lo[0], hi[0]) - inflate)
	maxX := w.cellOf(max(lo[0], hi[0]) + inflate)
	minZ := w.cellOf(min(lo[2], hi[2]) - inflate)
	maxZ := w.cellOf(max(lo[2], hi[2]) + inflate)

	var out []int
	seen := make(map[int]struct{})
	for x := minX; x <= maxX; x++ {
		for z := minZ; z <= maxZ; z++ {
			for _, idx := range w.grid[cellKey{x, z}] {
				if _, dup := seen[idx]; dup {
					continue
				}
				seen[idx] = struct{}{}
				out = append(out, idx)
			}
		}
	}
	return out
}

func (w *StaticWorld) SegmentHitTest(from, to mgl32.Vec3, mask Layer) (ClosestHit, bool) {
	w.ensureBuilt()

	best := ClosestHit{}
	bestT := float32(math.MaxFloat32)
	found := false

	for _, idx := range w.candidates(from, to, 0) {
		c := w.colliders[idx]
		if c.Layer&mask == 0 {
			continue
		}
		t, n, ok := segmentVsAABB(from, to, w.bounds[idx])
		if !ok || t >= bestT {
			continue
		}
		bestT = t
		dir := to.Sub(from)
		best = ClosestHit{
			Position: from.Add(dir.Mul(t)),
			Normal:   n,
			Node:     c.Node,
		}
		found = true
	}
	return best, found
}

func (w *StaticWorld) ConvexSweepTest(shape Capsule, from, to mgl32.Vec3, mask Layer) []ContactEvent {
	w.ensureBuilt()

	c0 := from.Add(shape.Offset)
	c1 := to.Add(shape.Offset)

	var contacts []ContactEvent
	for _, idx := range w.candidates(c0, c1, shape.Radius) {
		c := w.colliders[idx]
		if c.Layer&mask == 0 {
			continue
		}

		// Minkowski inflation: sweeping the capsule against the box is the
		// center segment against the box grown by the capsule extents.
		grown := aabb{
			min: w.bounds[idx].min.Sub(mgl32.Vec3{shape.Radius, shape.HalfHeight(), shape.Radius}),
			max: w.bounds[idx].max.Add(mgl32.Vec3{shape.Radius, shape.HalfHeight(), shape.Radius}),
		}

		if inside(c0, grown) {
			// Already overlapping at the start of travel: report a zero-
			// fraction contact with a push-out normal.
			n := pushOutNormal(c0, grown)
			contacts = append(contacts, ContactEvent{
				Point:    c0.Sub(n.Mul(shape.extentAlong(n))),
				Normal:   n,
				Fraction: 0,
				Node:     c.Node,
			})
			continue
		}

		t, n, ok := segmentVsAABB(c0, c1, grown)
		if !ok {
			continue
		}
		at := c0.Add(c1.Sub(c0).Mul(t))
		contacts = append(contacts, ContactEvent{
			Point:    at.Sub(n.Mul(shape.extentAlong(n))),
			Normal:   n,
			Fraction: t,
			Node:     c.Node,
		})
	}

	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].Fraction < contacts[j].Fraction
	})
	return contacts
}

// extentAlong returns the capsule's reach along a face normal, used to place
// the contact point on the real surface after Minkowski inflation.
func (c Capsule) extentAlong(n mgl32.Vec3) float32 {
	if common.Abs(n[1]) > 0.5 {
		return c.HalfHeight()
	}
	return c.Radius
}

// segmentVsAABB runs the slab test for a segment against a box. Returns the
// entry fraction in [0, 1] and the entry-face normal. Degenerate axes
// (segment parallel to the slab) miss when the origin lies outside the slab.
func segmentVsAABB(from, to mgl32.Vec3, box aabb) (float32, mgl32.Vec3, bool) {
	d := to.Sub(from)
	tmin := float32(0)
	tmax := float32(1)
	normal := mgl32.Vec3{}

	for axis := 0; axis < 3; axis++ {
		if common.Abs(d[axis]) < 1e-8 {
			if from[axis] < box.min[axis] || from[axis] > box.max[axis] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}

		inv := 1 / d[axis]
		t1 := (box.min[axis] - from[axis]) * inv
		t2 := (box.max[axis] - from[axis]) * inv
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			normal = mgl32.Vec3{}
			normal[axis] = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl32.Vec3{}, false
		}
	}

	// Entry at t=0 with a zero normal means the segment starts inside; the
	// caller handles initial overlap separately.
	if normal == (mgl32.Vec3{}) {
		return 0, mgl32.Vec3{}, false
	}
	return tmin, normal, true
}

// inside reports whether p lies strictly inside the box.
func inside(p mgl32.Vec3, box aabb) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] <= box.min[axis] || p[axis] >= box.max[axis] {
			return false
		}
	}
	return true
}

// pushOutNormal picks the face normal with the smallest penetration depth for
// a point inside the box.
func pushOutNormal(p mgl32.Vec3, box aabb) mgl32.Vec3 {
	bestDepth := float32(math.MaxFloat32)
	normal := mgl32.Vec3{0, 1, 0}
	for axis := 0; axis < 3; axis++ {
		if d := p[axis] - box.min[axis]; d < bestDepth {
			bestDepth = d
			normal = mgl32.Vec3{}
			normal[axis] = -1
		}
		if d := box.max[axis] - p[axis]; d < bestDepth {
			bestDepth = d
			normal = mgl32.Vec3{}
			normal[axis] = 1
		}
	}
	return normal
}
