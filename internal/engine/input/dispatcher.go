package input

import (
	"context"

	"github.com/maniartech/signals"
	"github.com/veandco/go-sdl2/sdl"
)

// Dispatcher routes translated events to per-type signals. Listeners run
// synchronously on the goroutine that calls Dispatch, which is the OS thread
// holding the GL context.
type Dispatcher struct {
	Quit        signals.Signal[Event]
	Resize      signals.Signal[Event]
	Key         signals.Signal[Event]
	PointerDown signals.Signal[Event]
	PointerUp   signals.Signal[Event]
	PointerMove signals.Signal[Event]
	Wheel       signals.Signal[Event]

	events []Event
}

// NewDispatcher creates a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		Quit:        signals.NewSync[Event](),
		Resize:      signals.NewSync[Event](),
		Key:         signals.NewSync[Event](),
		PointerDown: signals.NewSync[Event](),
		PointerUp:   signals.NewSync[Event](),
		PointerMove: signals.NewSync[Event](),
		Wheel:       signals.NewSync[Event](),
		events:      make([]Event, 0, 16),
	}
}

// Dispatch emits e on the signal for its type.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event) {
	var s signals.Signal[Event]
	switch e.Type {
	case EventQuit:
		s = d.Quit
	case EventResize:
		s = d.Resize
	case EventKeyDown, EventKeyUp:
		s = d.Key
	case EventPointerDown:
		s = d.PointerDown
	case EventPointerUp:
		s = d.PointerUp
	case EventPointerMove:
		s = d.PointerMove
	case EventWheel:
		s = d.Wheel
	default:
		return
	}
	d.events = append(d.events, e)
	s.Emit(ctx, e)
}

// Poll drains the SDL event queue, dispatching every event it understands.
// Must be called from the main thread.
func (d *Dispatcher) Poll(ctx context.Context) {
	d.events = d.events[:0]
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := Translate(event); ok {
			d.Dispatch(ctx, e)
		}
	}
}

// IsKeyPressed checks if a specific key went down since the last Poll.
func (d *Dispatcher) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range d.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
