package graphics

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// Paint describes how a shape is drawn.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64 // Width of stroke in pixels
}

// DefaultPaint returns an opaque black fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorBlack,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
	}
}

// Canvas is the renderer sink a divider draws into. A backend only needs
// to rasterize filled and stroked rectangles; everything else a divider
// shows is built from those.
type Canvas interface {
	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)
}

// DrawOp is one recorded canvas operation.
type DrawOp struct {
	Rect   Rect
	Radius float64
	Paint  Paint
}

// Recorder is a Canvas that records operations instead of rasterizing.
// Tests and headless tools replay or inspect the recorded ops.
type Recorder struct {
	ops []DrawOp
}

// DrawRect records a rectangle operation.
func (r *Recorder) DrawRect(rect Rect, paint Paint) {
	r.ops = append(r.ops, DrawOp{Rect: rect, Paint: paint})
}

// DrawRRect records a rounded rectangle operation.
func (r *Recorder) DrawRRect(rrect RRect, paint Paint) {
	r.ops = append(r.ops, DrawOp{Rect: rrect.Rect, Radius: rrect.Radius, Paint: paint})
}

// Ops returns the recorded operations in draw order.
func (r *Recorder) Ops() []DrawOp {
	return r.ops
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Replay plays the recorded operations onto another canvas.
func (r *Recorder) Replay(canvas Canvas) {
	for _, op := range r.ops {
		if op.Radius > 0 {
			canvas.DrawRRect(RRect{Rect: op.Rect, Radius: op.Radius}, op.Paint)
			continue
		}
		canvas.DrawRect(op.Rect, op.Paint)
	}
}
