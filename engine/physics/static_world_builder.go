package physics

// StaticWorldBuilderOption is a functional option for configuring a
// StaticWorld. Use the With* functions to create options applied during
// NewStaticWorld.
type StaticWorldBuilderOption func(*StaticWorld)

// WithCollider registers a collider during construction.
//
// Parameters:
//   - c: the collider to add
//
// Returns:
//   - StaticWorldBuilderOption: option function to apply
func WithCollider(c BoxCollider) StaticWorldBuilderOption {
	return func(w *StaticWorld) {
		w.colliders = append(w.colliders, c)
	}
}

// WithColliders registers a batch of colliders during construction.
//
// Parameters:
//   - cs: the colliders to add
//
// Returns:
//   - StaticWorldBuilderOption: option function to apply
func WithColliders(cs ...BoxCollider) StaticWorldBuilderOption {
	return func(w *StaticWorld) {
		w.colliders = append(w.colliders, cs...)
	}
}

// WithCellSize sets the broad-phase grid cell size in world units. Values
// <= 0 are treated as the default (4).
//
// Parameters:
//   - size: cell edge length
//
// Returns:
//   - StaticWorldBuilderOption: option function to apply
func WithCellSize(size float32) StaticWorldBuilderOption {
	return func(w *StaticWorld) {
		if size <= 0 {
			size = 4
		}
		w.cellSize = size
	}
}

// WithWorkers sets the worker count for the parallel Build phase. Values
// <= 0 are treated as the default (CPU count - 1, minimum 1).
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - StaticWorldBuilderOption: option function to apply
func WithWorkers(n int) StaticWorldBuilderOption {
	return func(w *StaticWorld) {
		if n > 0 {
			w.workers = n
		}
	}
}
