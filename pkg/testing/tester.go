package testing

import (
	"testing"

	"github.com/go-drift/dividers/pkg/graphics"
	"github.com/go-drift/dividers/pkg/input"
	"github.com/go-drift/dividers/pkg/theme"
	"github.com/go-drift/dividers/pkg/widgets"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// Widget is the surface shared by both divider variants.
type Widget interface {
	HandlePointer(ev input.PointerEvent, bounds graphics.Rect, state *widgets.DragState) input.EventStatus
	Draw(canvas graphics.Canvas, t *theme.ThemeData, bounds graphics.Rect, state *widgets.DragState, cursor graphics.Offset)
	Cursor(bounds graphics.Rect, state *widgets.DragState, cursor graphics.Offset) input.Cursor
}

// Change is one recorded value-change notification.
type Change struct {
	Index int
	Value float64
}

// testerKey is the identity the tester assigns its single mounted widget.
type testerKey struct{}

// nextPointerID is incremented for each new gesture to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Tester drives a divider widget through synthetic pointer gestures and
// records everything it emits.
type Tester struct {
	t        *testing.T
	widget   Widget
	bounds   graphics.Rect
	theme    *theme.ThemeData
	store    *widgets.StateStore
	recorder *graphics.Recorder
	cursor   graphics.Offset
	pointer  int64
	pressed  bool
	changes  []Change
	releases int
}

// NewTester creates a tester with a light theme and an empty state store.
func NewTester(t *testing.T) *Tester {
	t.Helper()
	return &Tester{
		t:        t,
		bounds:   graphics.RectFromLTWH(0, 0, DefaultTestWidth, DefaultTestHeight),
		theme:    theme.DefaultLightTheme(),
		store:    widgets.NewStateStore(),
		recorder: &graphics.Recorder{},
	}
}

// Mount attaches a widget and its bounds for the coming gestures.
// Construct the widget with [Tester.RecordChange] (and optionally
// [Tester.RecordRelease]) before mounting so notifications are captured.
func (t *Tester) Mount(w Widget, bounds graphics.Rect) {
	t.widget = w
	t.bounds = bounds
}

// RecordChange is the OnChange callback: it appends to the change log.
func (t *Tester) RecordChange(index int, value float64) {
	t.changes = append(t.changes, Change{Index: index, Value: value})
}

// RecordRelease is the OnRelease callback: it counts completed gestures.
func (t *Tester) RecordRelease() {
	t.releases++
}

// State returns the retained drag state of the mounted widget.
func (t *Tester) State() *widgets.DragState {
	return t.store.Of(testerKey{})
}

// Unmount drops the widget's retained state, as a host does when the
// widget leaves its tree.
func (t *Tester) Unmount() {
	t.store.Remove(testerKey{})
	t.widget = nil
}

// PressAt sends a pointer-down at pos and starts tracking a gesture.
func (t *Tester) PressAt(pos graphics.Offset) input.EventStatus {
	t.pointer = allocPointerID()
	t.pressed = true
	return t.send(input.PointerPhaseDown, pos)
}

// MoveTo sends a pointer-move to pos.
func (t *Tester) MoveTo(pos graphics.Offset) input.EventStatus {
	return t.send(input.PointerPhaseMove, pos)
}

// Release sends a pointer-up at the last cursor position.
func (t *Tester) Release() input.EventStatus {
	t.pressed = false
	return t.send(input.PointerPhaseUp, t.cursor)
}

// CancelPointer reports the pointer as lost at its last position.
func (t *Tester) CancelPointer() input.EventStatus {
	t.pressed = false
	return t.send(input.PointerPhaseCancel, t.cursor)
}

// Drag presses at start, moves through each position, then releases.
func (t *Tester) Drag(start graphics.Offset, positions ...graphics.Offset) {
	t.PressAt(start)
	for _, pos := range positions {
		t.MoveTo(pos)
	}
	t.Release()
}

// Draw paints the current frame into a fresh recording and returns the
// recorded operations in draw order.
func (t *Tester) Draw() []graphics.DrawOp {
	t.requireMounted("Draw")
	t.recorder.Reset()
	t.widget.Draw(t.recorder, t.theme, t.bounds, t.State(), t.cursor)
	ops := make([]graphics.DrawOp, len(t.recorder.Ops()))
	copy(ops, t.recorder.Ops())
	return ops
}

// Cursor returns the widget's cursor hint at the current pointer position.
func (t *Tester) Cursor() input.Cursor {
	t.requireMounted("Cursor")
	return t.widget.Cursor(t.bounds, t.State(), t.cursor)
}

// Changes returns the recorded change notifications in emission order.
func (t *Tester) Changes() []Change {
	return t.changes
}

// LastChange returns the most recent change notification.
func (t *Tester) LastChange() Change {
	if len(t.changes) == 0 {
		t.t.Fatal("LastChange: no change notifications recorded")
	}
	return t.changes[len(t.changes)-1]
}

// Releases returns how many release notifications were recorded.
func (t *Tester) Releases() int {
	return t.releases
}

// ResetLog clears the recorded notifications, keeping widget and state.
func (t *Tester) ResetLog() {
	t.changes = nil
	t.releases = 0
}

func (t *Tester) send(phase input.PointerPhase, pos graphics.Offset) input.EventStatus {
	t.requireMounted(phase.String())
	t.cursor = pos
	ev := input.PointerEvent{
		Phase:     phase,
		Position:  pos,
		PointerID: t.pointer,
	}
	return t.widget.HandlePointer(ev, t.bounds, t.State())
}

func (t *Tester) requireMounted(op string) {
	if t.widget == nil {
		t.t.Fatalf("%s: no widget mounted", op)
	}
}
