package touch

// EventType identifies a discrete touch-state event derived from the
// pointer sample stream
type EventType uint8

const (
	// EventTouchDown marks the start of an interaction
	// Trigger: first sample inside the region while inactive
	// At most once per interaction
	EventTouchDown EventType = iota

	// EventDragInside reports a sample landing inside the region
	// Trigger: every contained sample of an active interaction
	EventDragInside

	// EventDragOutside reports a sample landing outside the region
	// Trigger: every non-contained sample of an active interaction
	EventDragOutside

	// EventDragEnter reports a containment crossing from outside to inside
	// Trigger: contained sample whose predecessor was not contained
	// Never fires on the activating sample (the baseline is inside)
	EventDragEnter

	// EventDragExit reports a containment crossing from inside to outside
	// Trigger: non-contained sample whose predecessor was contained
	EventDragExit

	// EventDragging reports every processed sample regardless of containment
	// Always the last event of a sample's batch
	EventDragging

	// EventTouchUp marks the end of an interaction
	// Trigger: pointer release
	// Position is the last recorded sample, not the raw release point
	EventTouchUp

	// EventConfirm reports a release inside the region
	// Trigger: pointer release with the raw end position contained
	// Exactly one of Confirm/Cancel follows every TouchUp
	EventConfirm

	// EventCancel reports a release outside the region
	// Trigger: pointer release with the raw end position not contained
	EventCancel
)

// String returns human-readable event name
func (t EventType) String() string {
	switch t {
	case EventTouchDown:
		return "TouchDown"
	case EventDragInside:
		return "DragInside"
	case EventDragOutside:
		return "DragOutside"
	case EventDragEnter:
		return "DragEnter"
	case EventDragExit:
		return "DragExit"
	case EventDragging:
		return "Dragging"
	case EventTouchUp:
		return "TouchUp"
	case EventConfirm:
		return "Confirm"
	case EventCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}
