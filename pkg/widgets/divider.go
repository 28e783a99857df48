package widgets

import (
	"math"

	"github.com/go-drift/dividers/pkg/graphics"
	"github.com/go-drift/dividers/pkg/input"
	"github.com/go-drift/dividers/pkg/theme"
)

// DefaultHandleCrossExtent is the default handle size perpendicular to
// the drag axis.
const DefaultHandleCrossExtent = 21.0

// changeEpsilon suppresses change notifications for sub-epsilon value
// jitter so hosts aren't flooded while the pointer sits still.
const changeEpsilon = 1e-9

// Orientation selects the drag axis of a divider.
type Orientation int

const (
	// OrientationHorizontal drags along X; the cross axis is Y.
	OrientationHorizontal Orientation = iota

	// OrientationVertical drags along Y; the cross axis is X.
	OrientationVertical
)

// String returns a human-readable representation of the orientation.
func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// Range is the inclusive interval of values a divider can take.
type Range struct {
	Start float64
	End   float64
}

// Clamp returns value limited to the range. For a degenerate range
// (Start > End) the result is Start: the end bound is applied first,
// then the start bound, so Start wins.
func (r Range) Clamp(value float64) float64 {
	if value > r.End {
		value = r.End
	}
	if value < r.Start {
		value = r.Start
	}
	return value
}

// Extent returns the span of the range. Negative when degenerate.
func (r Range) Extent() float64 {
	return r.End - r.Start
}

// Divider is a single draggable cut point within a bounded track.
//
// The zero value is not useful; construct with [New] and configure with
// the WithX chain. A Divider is rebuilt by the host on every layout pass
// from the host's own retained value; pair it with a [DragState] from a
// [StateStore] for the press/drag/release lifecycle.
type Divider struct {
	index             int
	value             float64
	rng               Range
	step              float64
	handleExtent      float64
	handleCrossExtent float64
	width             float64
	height            float64
	orientation       Orientation
	styleFn           StyleFn
	onChange          func(index int, value float64)
	onRelease         func()
}

// New creates a Divider.
//
// It expects:
//   - index: a stable identifier echoed back in change notifications
//   - value: the current cut point, clamped into rng immediately
//   - rng: the inclusive range of possible values
//   - handleExtent: handle thickness along the drag axis
//   - handleCrossExtent: handle size along the perpendicular axis
//   - onChange: called with (index, newValue) whenever a drag moves the
//     value; may be nil for a display-only divider
func New(index int, value float64, rng Range, handleExtent, handleCrossExtent float64, onChange func(index int, value float64)) *Divider {
	return &Divider{
		index:             index,
		value:             rng.Clamp(value),
		rng:               rng,
		step:              1,
		handleExtent:      handleExtent,
		handleCrossExtent: handleCrossExtent,
		orientation:       OrientationHorizontal,
		styleFn:           Primary,
		onChange:          onChange,
	}
}

// OnRelease sets a callback fired once when a drag gesture completes
// (pointer up or pointer lost). Useful to kick off work that would be
// too expensive to run per change notification.
func (d *Divider) OnRelease(fn func()) *Divider {
	d.onRelease = fn
	return d
}

// WithWidth sets the layout width hint. Zero means fill available.
func (d *Divider) WithWidth(width float64) *Divider {
	d.width = width
	return d
}

// WithHeight sets the layout height hint. Zero means fill available.
func (d *Divider) WithHeight(height float64) *Divider {
	d.height = height
	return d
}

// WithStep sets the quantization step. Non-positive steps are ignored
// and the current step is kept, so the locate mapping can never divide
// by zero.
func (d *Divider) WithStep(step float64) *Divider {
	if step > 0 {
		d.step = step
	}
	return d
}

// WithOrientation sets the drag axis.
func (d *Divider) WithOrientation(orientation Orientation) *Divider {
	d.orientation = orientation
	return d
}

// WithStyle sets the style resolver. Nil resolvers are ignored.
func (d *Divider) WithStyle(fn StyleFn) *Divider {
	if fn != nil {
		d.styleFn = fn
	}
	return d
}

// Index returns the identifier echoed in change notifications.
func (d *Divider) Index() int {
	return d.index
}

// Value returns the current cut point. It reflects changes made by the
// events handled so far on this instance.
func (d *Divider) Value() float64 {
	return d.value
}

// Step returns the quantization step.
func (d *Divider) Step() float64 {
	return d.step
}

// SizeHint returns the configured layout size hints. A zero dimension
// means the divider should fill the available extent on that axis.
func (d *Divider) SizeHint() graphics.Size {
	return graphics.Size{Width: d.width, Height: d.height}
}

// HandleRect returns the handle's rectangle within bounds. The same
// rectangle is used for hit-testing and drawing.
func (d *Divider) HandleRect(bounds graphics.Rect) graphics.Rect {
	if d.orientation == OrientationVertical {
		offset := offsetWithin(d.value, d.rng, bounds.Height())
		return graphics.RectFromLTWH(bounds.Left, bounds.Top+offset, d.handleCrossExtent, d.handleExtent)
	}
	offset := offsetWithin(d.value, d.rng, bounds.Width())
	return graphics.RectFromLTWH(bounds.Left+offset, bounds.Top, d.handleExtent, d.handleCrossExtent)
}

// HandlePointer feeds one pointer event through the press/drag/release
// state machine.
//
// A press over the handle snaps the value toward the press point, marks
// the state dragging and captures the event; presses elsewhere are
// ignored so content underneath can receive them. Moves while dragging
// remap the pointer to a value and are always captured, whether or not
// the value changed. Up and cancel both terminate a drag and fire the
// release callback if one is configured.
func (d *Divider) HandlePointer(ev input.PointerEvent, bounds graphics.Rect, state *DragState) input.EventStatus {
	switch ev.Phase {
	case input.PointerPhaseDown:
		if d.HandleRect(bounds).Contains(ev.Position) {
			d.change(d.locate(ev.Position, bounds))
			state.Dragging = true
			state.ActiveHandle = 0
			return input.EventCaptured
		}

	case input.PointerPhaseMove:
		if state.Dragging {
			d.change(d.locate(ev.Position, bounds))
			return input.EventCaptured
		}

	case input.PointerPhaseUp, input.PointerPhaseCancel:
		if state.Dragging {
			if d.onRelease != nil {
				d.onRelease()
			}
			state.Dragging = false
			return input.EventCaptured
		}
	}

	return input.EventIgnored
}

// Draw paints the handle into canvas. The status is Dragged while a drag
// is in progress, Hovered while the cursor is over the widget bounds,
// and Active otherwise.
func (d *Divider) Draw(canvas graphics.Canvas, t *theme.ThemeData, bounds graphics.Rect, state *DragState, cursor graphics.Offset) {
	status := StatusActive
	if state.Dragging {
		status = StatusDragged
	} else if bounds.Contains(cursor) {
		status = StatusHovered
	}
	drawHandle(canvas, d.HandleRect(bounds), d.styleFn(t, status))
}

// Cursor returns the pointer-shape hint: a resize cursor matching the
// orientation while dragging or hovering the handle, default otherwise.
func (d *Divider) Cursor(bounds graphics.Rect, state *DragState, cursor graphics.Offset) input.Cursor {
	if state.Dragging || d.HandleRect(bounds).Contains(cursor) {
		return resizeCursor(d.orientation)
	}
	return input.CursorDefault
}

// locate maps a pointer position to a domain value.
func (d *Divider) locate(position graphics.Offset, bounds graphics.Rect) float64 {
	return locateValue(position, bounds, d.orientation, d.rng, d.step)
}

// locateValue maps a pointer position to a domain value. Positions at or
// before the track's near edge map to rng.Start, at or beyond the far
// edge to rng.End; in between the value is quantized to the step grid
// anchored at rng.Start and capped at rng.End. Pure function of its
// inputs; both divider variants share it.
func locateValue(position graphics.Offset, bounds graphics.Rect, orientation Orientation, rng Range, step float64) float64 {
	coord, origin, extent := position.X, bounds.Left, bounds.Width()
	if orientation == OrientationVertical {
		coord, origin, extent = position.Y, bounds.Top, bounds.Height()
	}

	if coord <= origin {
		return rng.Start
	}
	if coord >= origin+extent {
		return rng.End
	}

	percent := (coord - origin) / extent
	steps := math.Round(percent * rng.Extent() / step)
	return math.Min(steps*step+rng.Start, rng.End)
}

// change publishes a new value if it differs from the current one by
// more than the suppression epsilon.
func (d *Divider) change(newValue float64) {
	if math.Abs(d.value-newValue) <= changeEpsilon {
		return
	}
	if d.onChange != nil {
		d.onChange(d.index, newValue)
	}
	d.value = newValue
}

// offsetWithin converts a value to a drag-axis pixel offset within a
// track. Degenerate ranges collapse to a fixed zero offset rather than
// dividing by zero.
func offsetWithin(value float64, rng Range, trackExtent float64) float64 {
	if rng.Start >= rng.End {
		return 0
	}
	return trackExtent * (value - rng.Start) / rng.Extent()
}

// resizeCursor returns the resize affordance for an orientation.
func resizeCursor(orientation Orientation) input.Cursor {
	if orientation == OrientationVertical {
		return input.CursorResizeVertical
	}
	return input.CursorResizeHorizontal
}

// drawHandle fills the handle rectangle and strokes its border when the
// style asks for one.
func drawHandle(canvas graphics.Canvas, rect graphics.Rect, style DividerStyle) {
	fill := graphics.Paint{Color: style.Background, Style: graphics.PaintStyleFill}
	if style.BorderRadius > 0 {
		canvas.DrawRRect(graphics.RRect{Rect: rect, Radius: style.BorderRadius}, fill)
	} else {
		canvas.DrawRect(rect, fill)
	}

	if style.BorderWidth <= 0 || style.BorderColor.IsTransparent() {
		return
	}
	stroke := graphics.Paint{
		Color:       style.BorderColor,
		Style:       graphics.PaintStyleStroke,
		StrokeWidth: style.BorderWidth,
	}
	if style.BorderRadius > 0 {
		canvas.DrawRRect(graphics.RRect{Rect: rect, Radius: style.BorderRadius}, stroke)
	} else {
		canvas.DrawRect(rect, stroke)
	}
}
