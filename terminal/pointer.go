// Package terminal binds a tcell mouse event stream to a touch tracker.
//
// The adapter owns the two host responsibilities the tracker's contract
// leaves open: pushing region geometry (SetBounds -> OnRegionMeasured)
// and translating the primary-button press/drag/release lifecycle into
// the OnSample*/OnEnd call sequence, with coordinates converted from
// absolute screen cells to region-local space.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/touchtrack/core"
	"github.com/lixenwraith/touchtrack/touch"
)

// PointerAdapter drives one tracker from tcell mouse events
// One adapter per tracked region; tcell serializes the event stream,
// which satisfies the tracker's single-caller contract
type PointerAdapter struct {
	tracker *touch.Tracker
	bounds  core.Area
	pressed bool
}

// NewPointerAdapter creates an adapter driving tracker
// The region has no extent until SetBounds is called; until then the
// tracker drops all samples
func NewPointerAdapter(tracker *touch.Tracker) *PointerAdapter {
	return &PointerAdapter{tracker: tracker}
}

// SetBounds places the hit region on screen and reports its extent to
// the tracker. Call again whenever layout or terminal size changes
func (a *PointerAdapter) SetBounds(area core.Area) {
	a.bounds = area
	a.tracker.OnRegionMeasured(core.Size{
		Width:  float64(area.Width),
		Height: float64(area.Height),
	})
}

// Bounds returns the current screen placement of the hit region
func (a *PointerAdapter) Bounds() core.Area {
	return a.bounds
}

// Pressed reports whether the primary button is currently held
func (a *PointerAdapter) Pressed() bool {
	return a.pressed
}

// HandleEvent consumes mouse events; all other event types are ignored
// Press and drag of the primary button forward a sample, release ends
// the interaction. Returns true if the event reached the tracker
func (a *PointerAdapter) HandleEvent(ev tcell.Event) bool {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}

	x, y := mouse.Position()
	pos := a.localize(x, y)
	down := mouse.Buttons()&tcell.Button1 != 0

	switch {
	case down:
		a.pressed = true
		a.tracker.OnSample(pos)
	case a.pressed:
		a.pressed = false
		a.tracker.OnEnd(pos)
	default:
		// Motion with no button held is not part of an interaction
		return false
	}
	return true
}

// localize converts absolute screen cells to region-local coordinates
func (a *PointerAdapter) localize(x, y int) core.Point {
	return core.Point{
		X: float64(x - a.bounds.X),
		Y: float64(y - a.bounds.Y),
	}
}
