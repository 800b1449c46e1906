package touch

import (
	"github.com/lixenwraith/touchtrack/core"
)

// Tracker derives discrete touch events from a stream of pointer
// samples over a rectangular hit region anchored at the origin
//
// Call contract (serialized by the host, not the tracker):
//   - OnRegionMeasured whenever the region extent changes, including
//     before the first sample
//   - OnSample for every raw movement sample, initial contact included
//   - OnEnd exactly once, terminating the interaction
//
// Samples arriving before the first OnRegionMeasured are dropped
// silently; the tracker degrades to inert rather than enforcing call
// order on the host
//
// All methods are synchronous. A single tracker must not be called
// concurrently; independent trackers need no coordination
type Tracker struct {
	sink Sink

	active     bool
	lastPos    core.Point
	lastInside bool
	region     core.Size
	hasRegion  bool
	sampled    bool
}

// NewTracker creates a tracker emitting into sink
// A nil sink discards all events
func NewTracker(sink Sink) *Tracker {
	return &Tracker{sink: sink}
}

// OnRegionMeasured records the current hit region extent
// Idempotent; emits nothing
func (t *Tracker) OnRegionMeasured(size core.Size) {
	t.region = size
	t.hasRegion = true
}

// OnSample processes one raw pointer position
//
// While inactive, samples outside the region are dropped without
// touching state; the first inside sample activates the interaction
// and emits TouchDown. Per-sample emission order:
//
//	[TouchDown]? [DragInside|DragOutside] [DragEnter|DragExit]? Dragging
func (t *Tracker) OnSample(pos core.Point) {
	if !t.hasRegion {
		return
	}

	inside := core.Contains(t.region, pos)

	if !t.active {
		if !inside {
			return
		}
		t.active = true
		// Activation establishes the containment baseline, so the
		// activating sample never reads as an enter crossing
		t.lastInside = true
		t.emit(EventTouchDown, pos)
	}

	if inside {
		t.emit(EventDragInside, pos)
		if !t.lastInside {
			t.emit(EventDragEnter, pos)
		}
	} else {
		t.emit(EventDragOutside, pos)
		if t.lastInside {
			t.emit(EventDragExit, pos)
		}
	}
	t.emit(EventDragging, pos)

	t.lastPos = pos
	t.lastInside = inside
	t.sampled = true
}

// OnEnd processes the pointer release
//
// TouchUp reports the last recorded sample position (the release
// position itself when no sample was ever recorded), while
// Confirm/Cancel is decided by containment of the raw release
// position. The asymmetry is intentional: late movement samples may
// have been dropped while the release point is always authoritative
// for confirmation
func (t *Tracker) OnEnd(pos core.Point) {
	if !t.hasRegion {
		return
	}

	t.active = false

	up := t.lastPos
	if !t.sampled {
		up = pos
	}
	t.emit(EventTouchUp, up)

	if core.Contains(t.region, pos) {
		t.emit(EventConfirm, pos)
	} else {
		t.emit(EventCancel, pos)
	}

	t.lastPos = pos
	t.sampled = true
}

// Active reports whether an interaction is in progress
func (t *Tracker) Active() bool {
	return t.active
}

func (t *Tracker) emit(et EventType, pos core.Point) {
	if t.sink == nil {
		return
	}
	t.sink.Emit(Event{Type: et, Position: pos, Region: t.region})
}
