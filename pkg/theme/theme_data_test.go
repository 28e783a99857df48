package theme_test

import (
	"testing"

	"github.com/go-drift/dividers/pkg/theme"
)

func TestDefaultThemes(t *testing.T) {
	light := theme.DefaultLightTheme()
	if light.Brightness != theme.BrightnessLight {
		t.Errorf("light theme brightness = %v", light.Brightness)
	}
	dark := theme.DefaultDarkTheme()
	if dark.Brightness != theme.BrightnessDark {
		t.Errorf("dark theme brightness = %v", dark.Brightness)
	}
	if light.ColorScheme.Primary == dark.ColorScheme.Primary {
		t.Error("light and dark schemes share a primary color")
	}
}

func TestCopyWith(t *testing.T) {
	base := theme.DefaultLightTheme()

	scheme := theme.DarkColorScheme()
	out := base.CopyWith(&scheme, nil)
	if out.ColorScheme.Primary != scheme.Primary {
		t.Error("CopyWith did not replace color scheme")
	}
	if out.Brightness != base.Brightness {
		t.Error("CopyWith changed brightness when nil was passed")
	}

	b := theme.BrightnessDark
	out = base.CopyWith(nil, &b)
	if out.Brightness != theme.BrightnessDark {
		t.Error("CopyWith did not replace brightness")
	}
	if out.ColorScheme != base.ColorScheme {
		t.Error("CopyWith changed scheme when nil was passed")
	}

	if base.Brightness != theme.BrightnessLight {
		t.Error("CopyWith mutated the receiver")
	}
}
