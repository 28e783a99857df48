package widgets_test

import (
	"testing"

	"github.com/go-drift/dividers/pkg/theme"
	"github.com/go-drift/dividers/pkg/widgets"
)

func TestPrimaryStyle(t *testing.T) {
	th := theme.DefaultLightTheme()

	active := widgets.Primary(th, widgets.StatusActive)
	if active.Background != th.ColorScheme.Primary {
		t.Errorf("active background = %#x, want primary %#x", active.Background, th.ColorScheme.Primary)
	}
	if active.BorderWidth != 0 {
		t.Errorf("active border width = %v, want 0", active.BorderWidth)
	}

	hovered := widgets.Primary(th, widgets.StatusHovered)
	if hovered.Background != th.ColorScheme.PrimaryContainer {
		t.Errorf("hovered background = %#x, want primary container %#x", hovered.Background, th.ColorScheme.PrimaryContainer)
	}

	dragged := widgets.Primary(th, widgets.StatusDragged)
	if dragged.Background != th.ColorScheme.Primary {
		t.Errorf("dragged background = %#x, want primary %#x", dragged.Background, th.ColorScheme.Primary)
	}
}

func TestTransparentStyle(t *testing.T) {
	th := theme.DefaultDarkTheme()

	for _, status := range []widgets.Status{widgets.StatusActive, widgets.StatusHovered, widgets.StatusDragged} {
		style := widgets.Transparent(th, status)
		if !style.Background.IsTransparent() {
			t.Errorf("%v background = %#x, want transparent", status, style.Background)
		}
	}
}

func TestStatusString(t *testing.T) {
	cases := map[widgets.Status]string{
		widgets.StatusActive:  "active",
		widgets.StatusHovered: "hovered",
		widgets.StatusDragged: "dragged",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", status, got, want)
		}
	}
}

var _ widgets.StyleFn = widgets.Primary
