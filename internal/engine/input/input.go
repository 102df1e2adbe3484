// Package input translates SDL2 events into pointer, keyboard and window
// events and fans them out to listeners.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKeyDown
	EventKeyUp
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventWheel
)

// Event is a processed input event. Coordinates are window pixels with the
// origin at the top-left corner.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	X, Y   int
	// XRel and YRel carry the pointer motion since the previous move event.
	XRel, YRel int
	// Wheel is the vertical scroll amount, positive away from the user.
	Wheel  int
	Button uint8
}

// Translate converts one SDL event. The second result is false for events
// the application does not care about.
func Translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
			return Event{Type: EventResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		switch e.Type {
		case sdl.KEYDOWN:
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		case sdl.KEYUP:
			return Event{Type: EventKeyUp, Key: e.Keysym.Scancode}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type: EventPointerMove,
			X:    int(e.X), Y: int(e.Y),
			XRel: int(e.XRel), YRel: int(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		ev := Event{X: int(e.X), Y: int(e.Y), Button: e.Button}
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			ev.Type = EventPointerDown
			return ev, true
		case sdl.MOUSEBUTTONUP:
			ev.Type = EventPointerUp
			return ev, true
		}

	case *sdl.MouseWheelEvent:
		y := int(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		if y != 0 {
			return Event{Type: EventWheel, Wheel: y}, true
		}
	}

	return Event{}, false
}
