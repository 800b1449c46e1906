package touch

import (
	"github.com/lixenwraith/touchtrack/core"
)

// Handler receives the position and region size of a single event
type Handler func(pos core.Point, region core.Size)

// Dispatcher routes tracker events to registered handlers
//
// Architecture:
//   - Synchronous dispatch during Emit
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Registration is additive; later handlers never replace earlier ones
type Dispatcher struct {
	handlers map[EventType][]Handler
}

// NewDispatcher creates a dispatcher with no handlers
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[EventType][]Handler),
	}
}

// On adds a handler for the given event type
// Nil handlers are ignored
func (d *Dispatcher) On(t EventType, h Handler) {
	if h == nil {
		return
	}
	d.handlers[t] = append(d.handlers[t], h)
}

// Bind registers every non-nil callback in b
// Binding the same set twice attaches each callback twice
func (d *Dispatcher) Bind(b Bindings) {
	d.On(EventTouchDown, b.TouchDown)
	d.On(EventDragInside, b.DragInside)
	d.On(EventDragOutside, b.DragOutside)
	d.On(EventDragEnter, b.DragEnter)
	d.On(EventDragExit, b.DragExit)
	d.On(EventDragging, b.Dragging)
	d.On(EventTouchUp, b.TouchUp)
	d.On(EventConfirm, b.Confirm)
	d.On(EventCancel, b.Cancel)
}

// Emit dispatches ev to all handlers registered for its type
func (d *Dispatcher) Emit(ev Event) {
	for _, h := range d.handlers[ev.Type] {
		h(ev.Position, ev.Region)
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (d *Dispatcher) HasHandlers(t EventType) bool {
	return len(d.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (d *Dispatcher) HandlerCount(t EventType) int {
	return len(d.handlers[t])
}

// Bindings is one attachment's set of optional per-tag callbacks
// Nil fields default to no-op
type Bindings struct {
	TouchDown   Handler
	DragInside  Handler
	DragOutside Handler
	DragEnter   Handler
	DragExit    Handler
	Dragging    Handler
	TouchUp     Handler
	Confirm     Handler
	Cancel      Handler
}
