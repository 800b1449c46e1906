package touch

import (
	"github.com/lixenwraith/touchtrack/core"
)

// Event is a single touch-state event with the geometry in effect at
// the instant it was derived
type Event struct {
	Type     EventType
	Position core.Point
	Region   core.Size
}

// Sink receives tracker events synchronously during sample processing
// Implementations must return before the next tracker call is made;
// the tracker never retains the event after Emit returns
type Sink interface {
	Emit(Event)
}
