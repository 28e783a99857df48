// Package input defines the abstract pointer-event contract between an
// event pump and the divider widgets. The pump delivers each event exactly
// once, in device order; widgets report back whether they captured it so
// uncaptured events can fall through to whatever sits underneath.
package input

import "github.com/go-drift/dividers/pkg/graphics"

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	// PointerPhaseDown is a press (mouse button or finger down).
	PointerPhaseDown PointerPhase = iota

	// PointerPhaseMove is pointer movement, pressed or not.
	PointerPhaseMove

	// PointerPhaseUp is a release.
	PointerPhaseUp

	// PointerPhaseCancel means the pointer was lost mid-gesture
	// (device disconnect, window grab broken). Widgets treat it as a
	// release: any drag in progress terminates.
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is one discrete pointer occurrence.
type PointerEvent struct {
	// Phase is the interaction stage.
	Phase PointerPhase

	// Position is the cursor location in the same coordinate space as
	// the widget bounds supplied alongside the event. Up and Cancel
	// events may carry the last known position.
	Position graphics.Offset

	// PointerID distinguishes concurrent pointers. Dividers track a
	// single gesture at a time and ignore the ID beyond bookkeeping.
	PointerID int64
}

// EventStatus reports whether a widget consumed an event.
type EventStatus int

const (
	// EventIgnored means the event passed through untouched and may be
	// delivered to widgets beneath this one.
	EventIgnored EventStatus = iota

	// EventCaptured means the widget consumed the event.
	EventCaptured
)

// String returns a human-readable representation of the status.
func (s EventStatus) String() string {
	if s == EventCaptured {
		return "captured"
	}
	return "ignored"
}
