// Package termui hosts divider widgets on a tcell terminal screen. It
// adapts the screen to the graphics.Canvas sink, decodes terminal mouse
// input into pointer events, and runs the resize interaction loop.
package termui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/dividers/pkg/graphics"
)

// cellCanvas rasterizes rectangle paints into terminal cells. One logical
// unit equals one cell, so fractional rectangle edges are rounded to the
// covered cell range. Rounded corners collapse to square cells.
type cellCanvas struct {
	screen tcell.Screen
}

func (c *cellCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	if paint.Color.IsTransparent() {
		return
	}
	left, top, right, bottom := cellRange(rect)
	style := tcell.StyleDefault.Background(cellColor(paint.Color))

	if paint.Style == graphics.PaintStyleStroke {
		for x := left; x <= right; x++ {
			c.screen.SetContent(x, top, ' ', nil, style)
			c.screen.SetContent(x, bottom, ' ', nil, style)
		}
		for y := top; y <= bottom; y++ {
			c.screen.SetContent(left, y, ' ', nil, style)
			c.screen.SetContent(right, y, ' ', nil, style)
		}
		return
	}

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (c *cellCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.DrawRect(rrect.Rect, paint)
}

// cellRange returns the inclusive cell span covered by rect. A rect
// thinner than one cell still occupies the cell under its origin.
func cellRange(rect graphics.Rect) (left, top, right, bottom int) {
	left = int(math.Floor(rect.Left))
	top = int(math.Floor(rect.Top))
	right = int(math.Ceil(rect.Right)) - 1
	bottom = int(math.Ceil(rect.Bottom)) - 1
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return left, top, right, bottom
}

func cellColor(c graphics.Color) tcell.Color {
	r, g, b := c.RGB8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
