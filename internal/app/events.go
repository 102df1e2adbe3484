package app

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-moon/internal/engine/input"
)

// Bind registers the state's listeners on d. quit is called for the window
// close event and the Escape key.
func (s *State) Bind(d *input.Dispatcher, quit func()) {
	d.Resize.AddListener(func(_ context.Context, e input.Event) {
		s.Resize(e.Width, e.Height)
	})

	d.PointerDown.AddListener(func(_ context.Context, e input.Event) {
		s.Tint.PointerDown()
		switch e.Button {
		case sdl.BUTTON_LEFT:
			s.Controls.BeginDrag()
		case sdl.BUTTON_RIGHT:
			s.Controls.BeginPan()
		}
	})

	d.PointerUp.AddListener(func(_ context.Context, e input.Event) {
		s.Tint.PointerUp()
		switch e.Button {
		case sdl.BUTTON_LEFT:
			s.Controls.EndDrag()
		case sdl.BUTTON_RIGHT:
			s.Controls.EndPan()
		}
	})

	d.PointerMove.AddListener(func(_ context.Context, e input.Event) {
		s.Controls.HandleDrag(float32(e.XRel), float32(e.YRel))
		if s.Controls.Panning() {
			s.Controls.HandlePan(float32(e.XRel), float32(e.YRel))
		}
		s.Tint.PointerMove(e.X, e.Y, s.Viewport.Width, s.Viewport.Height)
	})

	d.Wheel.AddListener(func(_ context.Context, e input.Event) {
		s.Controls.HandleZoom(float32(e.Wheel))
	})

	d.Key.AddListener(func(_ context.Context, e input.Event) {
		if e.Type == input.EventKeyDown && e.Key == sdl.SCANCODE_ESCAPE {
			quit()
		}
	})

	d.Quit.AddListener(func(_ context.Context, _ input.Event) {
		quit()
	})
}
