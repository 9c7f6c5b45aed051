package terminal

import "github.com/gdamore/tcell/v2"

type ViewOption func(*View)

// WithScreen supplies an existing tcell screen instead of allocating a real
// terminal, which is how tests drive the view with a simulation screen.
//
// Parameters:
//   - screen: the screen to draw on (not yet initialized)
//
// Returns:
//   - ViewOption: a function that sets the screen
func WithScreen(screen tcell.Screen) ViewOption {
	return func(v *View) {
		v.screen = screen
	}
}

// WithScale sets the world units covered by one cell. Non-positive values
// keep the default.
//
// Parameters:
//   - scale: world units per cell along X
//
// Returns:
//   - ViewOption: a function that sets the scale
func WithScale(scale float32) ViewOption {
	return func(v *View) {
		if scale > 0 {
			v.scale = scale
		}
	}
}
