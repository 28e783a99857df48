package theme

import "github.com/go-drift/dividers/pkg/graphics"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is a light theme.
	BrightnessLight Brightness = iota

	// BrightnessDark is a dark theme.
	BrightnessDark
)

// ColorScheme defines the color palette widgets resolve styles from.
// The role names follow the Material naming so schemes can be filled
// from existing design tokens.
type ColorScheme struct {
	// Primary is the main accent color.
	Primary graphics.Color
	// PrimaryContainer is a softer tint of the accent, used for
	// hover states.
	PrimaryContainer graphics.Color
	// OnPrimary is the content color drawn on Primary.
	OnPrimary graphics.Color
	// Surface is the default background.
	Surface graphics.Color
	// OnSurface is the content color drawn on Surface.
	OnSurface graphics.Color
	// SurfaceVariant is an alternate background for emphasized regions.
	SurfaceVariant graphics.Color
	// Outline is the default border color.
	Outline graphics.Color
	// OutlineVariant is a subtler border/divider color.
	OutlineVariant graphics.Color
	// Error indicates failure states.
	Error graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0x42, 0x5E, 0x91),
		PrimaryContainer: graphics.RGB(0xD7, 0xE3, 0xFF),
		OnPrimary:        graphics.ColorWhite,
		Surface:          graphics.RGB(0xF9, 0xF9, 0xFF),
		OnSurface:        graphics.RGB(0x19, 0x1C, 0x20),
		SurfaceVariant:   graphics.RGB(0xE0, 0xE2, 0xEC),
		Outline:          graphics.RGB(0x74, 0x77, 0x7F),
		OutlineVariant:   graphics.RGB(0xC4, 0xC6, 0xD0),
		Error:            graphics.RGB(0xBA, 0x1A, 0x1A),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0xAA, 0xC7, 0xFF),
		PrimaryContainer: graphics.RGB(0x28, 0x44, 0x77),
		OnPrimary:        graphics.RGB(0x0F, 0x2F, 0x5F),
		Surface:          graphics.RGB(0x11, 0x13, 0x18),
		OnSurface:        graphics.RGB(0xE2, 0xE2, 0xE9),
		SurfaceVariant:   graphics.RGB(0x44, 0x47, 0x4E),
		Outline:          graphics.RGB(0x8E, 0x90, 0x99),
		OutlineVariant:   graphics.RGB(0x44, 0x47, 0x4E),
		Error:            graphics.RGB(0xFF, 0xB4, 0xAB),
	}
}
