package input

// Cursor is the pointer-shape hint a widget reports so the host windowing
// layer can show an appropriate cursor.
type Cursor int

const (
	// CursorDefault requests no particular cursor.
	CursorDefault Cursor = iota

	// CursorResizeHorizontal requests a left-right resize cursor.
	CursorResizeHorizontal

	// CursorResizeVertical requests an up-down resize cursor.
	CursorResizeVertical
)

// String returns a human-readable representation of the cursor hint.
func (c Cursor) String() string {
	switch c {
	case CursorResizeHorizontal:
		return "resize_horizontal"
	case CursorResizeVertical:
		return "resize_vertical"
	default:
		return "default"
	}
}
