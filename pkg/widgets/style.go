package widgets

import (
	"github.com/go-drift/dividers/pkg/graphics"
	"github.com/go-drift/dividers/pkg/theme"
)

// Status is the interaction classification used to select a style.
type Status int

const (
	// StatusActive means the divider can be interacted with.
	StatusActive Status = iota

	// StatusHovered means the pointer is over the divider.
	StatusHovered

	// StatusDragged means the divider is being dragged.
	StatusDragged
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusHovered:
		return "hovered"
	case StatusDragged:
		return "dragged"
	default:
		return "active"
	}
}

// DividerStyle is the resolved appearance of a divider handle.
type DividerStyle struct {
	// Background fills the handle rectangle.
	Background graphics.Color
	// BorderWidth is the stroke width of the handle border. Zero or
	// negative means no border.
	BorderWidth float64
	// BorderColor strokes the handle border.
	BorderColor graphics.Color
	// BorderRadius rounds the handle corners.
	BorderRadius float64
}

// StyleFn resolves the appearance of a divider for an interaction status.
// Hosts supply their own or start from [Primary] and [Transparent].
type StyleFn func(t *theme.ThemeData, status Status) DividerStyle

// Primary is the default divider style: an opaque accent-tinted handle
// with no border, softened while hovered.
func Primary(t *theme.ThemeData, status Status) DividerStyle {
	colors := t.ColorScheme

	background := colors.Primary
	if status == StatusHovered {
		background = colors.PrimaryContainer
	}

	return DividerStyle{
		Background:  background,
		BorderWidth: 0,
		BorderColor: graphics.ColorTransparent,
	}
}

// Transparent is [Primary] with the background forced fully transparent.
// Useful when the divider line itself is drawn by the surrounding layout
// and only the grab region is needed.
func Transparent(t *theme.ThemeData, status Status) DividerStyle {
	style := Primary(t, status)
	style.Background = graphics.ColorTransparent
	return style
}
