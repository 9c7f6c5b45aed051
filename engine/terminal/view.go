// package terminal provides a tcell frontend for headless machines: a
// top-down view of the collision world with the actor, camera, and trigger
// volumes plotted on the XZ plane, plus an event-driven input source. It is
// a debugging aid, not a renderer; the gameplay core never depends on it.
package terminal

import (
	"fmt"

	"github.com/Carmen-Shannon/strider-go/engine/physics"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is one rendered snapshot of the simulation, assembled by the host
// each tick.
type Frame struct {
	// Actor is the character's world position.
	Actor mgl32.Vec3

	// Camera is the live camera's world position.
	Camera mgl32.Vec3

	// Colliders are the static collision boxes to plot.
	Colliders []physics.BoxCollider

	// Triggers are the trigger-volume centers to plot.
	Triggers []mgl32.Vec3

	// HUD is the status line drawn across the top row.
	HUD string
}

// View draws frames onto a tcell screen, centered on the actor.
type View struct {
	screen tcell.Screen

	// scale is the world units covered by one cell along X. Cells are about
	// twice as tall as wide, so Z uses double the scale.
	scale float32

	ownsScreen bool
}

// NewView creates a view with the provided options and initializes its
// screen. Without WithScreen a real terminal screen is allocated.
//
// Parameters:
//   - options: functional options to configure the view
//
// Returns:
//   - *View: the newly created view
//   - error: an error if the screen could not be initialized
func NewView(options ...ViewOption) (*View, error) {
	v := &View{scale: 0.5}
	for _, opt := range options {
		opt(v)
	}

	if v.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("allocate screen: %w", err)
		}
		v.screen = screen
		v.ownsScreen = true
	}
	if err := v.screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	v.screen.HideCursor()
	return v, nil
}

// Screen returns the underlying tcell screen, for wiring an input source.
//
// Returns:
//   - tcell.Screen: the view's screen
func (v *View) Screen() tcell.Screen {
	return v.screen
}

// Close restores the terminal. Safe to call once rendering is done.
func (v *View) Close() {
	v.screen.Fini()
}

// Render draws one frame: colliders as blocks, triggers, the camera, the
// actor in the center region, and the HUD line on top.
//
// Parameters:
//   - f: the frame to draw
func (v *View) Render(f Frame) {
	v.screen.Clear()
	width, height := v.screen.Size()

	for _, c := range f.Colliders {
		v.drawCollider(f, c, width, height)
	}

	triggerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, pos := range f.Triggers {
		if x, y, ok := v.cell(f, pos, width, height); ok {
			v.screen.SetContent(x, y, 'o', nil, triggerStyle)
		}
	}

	if x, y, ok := v.cell(f, f.Camera, width, height); ok {
		v.screen.SetContent(x, y, 'C', nil, tcell.StyleDefault.Foreground(tcell.ColorAqua))
	}
	if x, y, ok := v.cell(f, f.Actor, width, height); ok {
		v.screen.SetContent(x, y, '@', nil, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}

	hudStyle := tcell.StyleDefault.Reverse(true)
	for i, r := range f.HUD {
		if i >= width {
			break
		}
		v.screen.SetContent(i, 0, r, nil, hudStyle)
	}

	v.screen.Show()
}

// drawCollider fills the collider's XZ footprint with block glyphs.
func (v *View) drawCollider(f Frame, c physics.BoxCollider, width, height int) {
	center := c.Center
	if c.Node != nil {
		center = c.Node.WorldPosition().Add(c.Center)
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for dx := -c.HalfExtents.X(); dx <= c.HalfExtents.X(); dx += v.scale {
		for dz := -c.HalfExtents.Z(); dz <= c.HalfExtents.Z(); dz += v.scale * 2 {
			p := center.Add(mgl32.Vec3{dx, 0, dz})
			if x, y, ok := v.cell(f, p, width, height); ok {
				v.screen.SetContent(x, y, '#', nil, style)
			}
		}
	}
}

// cell projects a world position onto the screen, centered on the actor.
// Row 0 is reserved for the HUD.
func (v *View) cell(f Frame, p mgl32.Vec3, width, height int) (int, int, bool) {
	dx := (p.X() - f.Actor.X()) / v.scale
	dz := (p.Z() - f.Actor.Z()) / (v.scale * 2)
	x := width/2 + int(dx)
	y := height/2 + int(dz)
	if x < 0 || x >= width || y < 1 || y >= height {
		return 0, 0, false
	}
	return x, y, true
}
