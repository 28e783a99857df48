package widgets

import (
	"math"

	"github.com/go-drift/dividers/pkg/graphics"
	"github.com/go-drift/dividers/pkg/input"
	"github.com/go-drift/dividers/pkg/theme"
)

// MultiDivider manages N ordered handles sharing one track, one range
// and one drag state. Each handle is an independent cut point; only one
// can be mid-drag at a time. Change notifications carry the handle index
// so the host can keep its per-handle values.
//
// Handle thickness comes from a per-handle extent sequence: a single
// element broadcasts to every handle, a sequence of HandleCount elements
// gives each handle its own thickness.
type MultiDivider struct {
	values            []float64
	rng               Range
	step              float64
	handleExtents     []float64
	handleCrossExtent float64
	width             float64
	height            float64
	orientation       Orientation
	excludeLast       bool
	styleFn           StyleFn
	onChange          func(index int, value float64)
	onRelease         func()
}

// NewMulti creates a MultiDivider with one handle per element of values.
// Every value is clamped into rng immediately. handleExtents must have
// one element (broadcast) or len(values) elements; an empty sequence
// falls back to a 1px thickness. Both slices are copied, never aliased.
func NewMulti(values []float64, rng Range, handleExtents []float64, handleCrossExtent float64, onChange func(index int, value float64)) *MultiDivider {
	clamped := make([]float64, len(values))
	for i, v := range values {
		clamped[i] = rng.Clamp(v)
	}

	extents := make([]float64, 0, len(handleExtents))
	for _, e := range handleExtents {
		extents = append(extents, e)
	}
	if len(extents) == 0 {
		extents = []float64{1}
	}

	return &MultiDivider{
		values:            clamped,
		rng:               rng,
		step:              1,
		handleExtents:     extents,
		handleCrossExtent: handleCrossExtent,
		orientation:       OrientationHorizontal,
		styleFn:           Primary,
		onChange:          onChange,
	}
}

// OnRelease sets a callback fired once when a drag gesture completes.
func (m *MultiDivider) OnRelease(fn func()) *MultiDivider {
	m.onRelease = fn
	return m
}

// WithWidth sets the layout width hint. Zero means fill available.
func (m *MultiDivider) WithWidth(width float64) *MultiDivider {
	m.width = width
	return m
}

// WithHeight sets the layout height hint. Zero means fill available.
func (m *MultiDivider) WithHeight(height float64) *MultiDivider {
	m.height = height
	return m
}

// WithStep sets the quantization step. Non-positive steps are ignored.
func (m *MultiDivider) WithStep(step float64) *MultiDivider {
	if step > 0 {
		m.step = step
	}
	return m
}

// WithOrientation sets the drag axis.
func (m *MultiDivider) WithOrientation(orientation Orientation) *MultiDivider {
	m.orientation = orientation
	return m
}

// WithStyle sets the style resolver. Nil resolvers are ignored.
func (m *MultiDivider) WithStyle(fn StyleFn) *MultiDivider {
	if fn != nil {
		m.styleFn = fn
	}
	return m
}

// ExcludeLastHandle removes the trailing handle from hit-testing,
// drawing and cursor hints. Used when the far edge must stay pinned so
// the total extent is preserved.
func (m *MultiDivider) ExcludeLastHandle() *MultiDivider {
	m.excludeLast = true
	return m
}

// HandleCount returns the number of handles, including an excluded
// trailing handle.
func (m *MultiDivider) HandleCount() int {
	return len(m.values)
}

// Value returns the current cut point of handle i.
func (m *MultiDivider) Value(i int) float64 {
	return m.values[i]
}

// SizeHint returns the configured layout size hints. A zero dimension
// means the divider should fill the available extent on that axis.
func (m *MultiDivider) SizeHint() graphics.Size {
	return graphics.Size{Width: m.width, Height: m.height}
}

// HandleRectAt returns handle i's rectangle within bounds, using the
// handle's own thickness and value.
func (m *MultiDivider) HandleRectAt(i int, bounds graphics.Rect) graphics.Rect {
	if m.orientation == OrientationVertical {
		offset := offsetWithin(m.values[i], m.rng, bounds.Height())
		return graphics.RectFromLTWH(bounds.Left, bounds.Top+offset, m.handleCrossExtent, m.extentFor(i))
	}
	offset := offsetWithin(m.values[i], m.rng, bounds.Width())
	return graphics.RectFromLTWH(bounds.Left+offset, bounds.Top, m.extentFor(i), m.handleCrossExtent)
}

// HandlePointer feeds one pointer event through the shared state
// machine. A press is matched against each interactive handle in order;
// the first hit becomes the active handle. Presses while another handle
// is mid-drag are ignored, as are presses on an excluded trailing
// handle. Moves and releases address only the active handle.
func (m *MultiDivider) HandlePointer(ev input.PointerEvent, bounds graphics.Rect, state *DragState) input.EventStatus {
	switch ev.Phase {
	case input.PointerPhaseDown:
		if state.Dragging {
			return input.EventIgnored
		}
		for i := 0; i < m.interactiveCount(); i++ {
			if !m.HandleRectAt(i, bounds).Contains(ev.Position) {
				continue
			}
			m.change(i, m.locate(ev.Position, bounds))
			state.Dragging = true
			state.ActiveHandle = i
			return input.EventCaptured
		}

	case input.PointerPhaseMove:
		if state.Dragging {
			m.change(state.ActiveHandle, m.locate(ev.Position, bounds))
			return input.EventCaptured
		}

	case input.PointerPhaseUp, input.PointerPhaseCancel:
		if state.Dragging {
			if m.onRelease != nil {
				m.onRelease()
			}
			state.Dragging = false
			return input.EventCaptured
		}
	}

	return input.EventIgnored
}

// Draw paints every interactive handle. The active handle shows the
// Dragged style; an idle handle under the cursor shows Hovered.
func (m *MultiDivider) Draw(canvas graphics.Canvas, t *theme.ThemeData, bounds graphics.Rect, state *DragState, cursor graphics.Offset) {
	for i := 0; i < m.interactiveCount(); i++ {
		rect := m.HandleRectAt(i, bounds)
		status := StatusActive
		if state.Dragging && state.ActiveHandle == i {
			status = StatusDragged
		} else if !state.Dragging && rect.Contains(cursor) {
			status = StatusHovered
		}
		drawHandle(canvas, rect, m.styleFn(t, status))
	}
}

// Cursor returns a resize hint while dragging or while the cursor is
// over any interactive handle.
func (m *MultiDivider) Cursor(bounds graphics.Rect, state *DragState, cursor graphics.Offset) input.Cursor {
	if state.Dragging {
		return resizeCursor(m.orientation)
	}
	for i := 0; i < m.interactiveCount(); i++ {
		if m.HandleRectAt(i, bounds).Contains(cursor) {
			return resizeCursor(m.orientation)
		}
	}
	return input.CursorDefault
}

// locate maps a pointer position to a domain value.
func (m *MultiDivider) locate(position graphics.Offset, bounds graphics.Rect) float64 {
	return locateValue(position, bounds, m.orientation, m.rng, m.step)
}

// change publishes a new value for handle i if it moved by more than
// the suppression epsilon.
func (m *MultiDivider) change(i int, newValue float64) {
	if math.Abs(m.values[i]-newValue) <= changeEpsilon {
		return
	}
	if m.onChange != nil {
		m.onChange(i, newValue)
	}
	m.values[i] = newValue
}

// interactiveCount returns how many leading handles take part in
// hit-testing and drawing.
func (m *MultiDivider) interactiveCount() int {
	if m.excludeLast && len(m.values) > 0 {
		return len(m.values) - 1
	}
	return len(m.values)
}

// extentFor returns handle i's thickness, broadcasting a single-element
// sequence and padding a short one with its last element.
func (m *MultiDivider) extentFor(i int) float64 {
	if i < len(m.handleExtents) {
		return m.handleExtents[i]
	}
	return m.handleExtents[len(m.handleExtents)-1]
}
