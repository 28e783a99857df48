package termui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/dividers/pkg/graphics"
	"github.com/go-drift/dividers/pkg/input"
)

func TestCellRange(t *testing.T) {
	cases := []struct {
		name                     string
		rect                     graphics.Rect
		left, top, right, bottom int
	}{
		{"unit cell", graphics.RectFromLTWH(3, 2, 1, 1), 3, 2, 3, 2},
		{"fractional edges round outward", graphics.RectFromLTWH(1.2, 0.4, 2.0, 1.0), 1, 0, 3, 1},
		{"thinner than a cell still lands", graphics.RectFromLTWH(5.5, 0, 0.2, 1), 5, 0, 5, 0},
		{"empty rect collapses to origin cell", graphics.RectFromLTWH(4, 4, 0, 0), 4, 4, 4, 4},
	}
	for _, tc := range cases {
		l, tp, r, b := cellRange(tc.rect)
		if l != tc.left || tp != tc.top || r != tc.right || b != tc.bottom {
			t.Errorf("%s: got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				tc.name, l, tp, r, b, tc.left, tc.top, tc.right, tc.bottom)
		}
	}
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, 0)
}

func TestTranslatorButtonEdges(t *testing.T) {
	var tr pointerTranslator

	ev, ok := tr.translate(mouse(10, 5, tcell.Button1))
	if !ok || ev.Phase != input.PointerPhaseDown {
		t.Fatalf("first press = %v %v, want down", ev.Phase, ok)
	}
	firstID := ev.PointerID

	ev, _ = tr.translate(mouse(12, 5, tcell.Button1))
	if ev.Phase != input.PointerPhaseMove {
		t.Errorf("held motion = %v, want move", ev.Phase)
	}
	if ev.PointerID != firstID {
		t.Errorf("pointer id changed mid-gesture: %d vs %d", ev.PointerID, firstID)
	}

	ev, _ = tr.translate(mouse(12, 5, tcell.ButtonNone))
	if ev.Phase != input.PointerPhaseUp {
		t.Errorf("button drop = %v, want up", ev.Phase)
	}

	ev, _ = tr.translate(mouse(14, 5, tcell.ButtonNone))
	if ev.Phase != input.PointerPhaseMove {
		t.Errorf("idle hover = %v, want move", ev.Phase)
	}

	ev, _ = tr.translate(mouse(14, 5, tcell.Button1))
	if ev.Phase != input.PointerPhaseDown {
		t.Fatalf("second press = %v, want down", ev.Phase)
	}
	if ev.PointerID == firstID {
		t.Error("new gesture must get a fresh pointer id")
	}
}

func TestTranslatorLost(t *testing.T) {
	var tr pointerTranslator

	if _, ok := tr.lost(graphics.Offset{}); ok {
		t.Fatal("lost with no gesture must report nothing")
	}

	tr.translate(mouse(3, 3, tcell.Button1))
	ev, ok := tr.lost(graphics.Offset{X: 3, Y: 3})
	if !ok || ev.Phase != input.PointerPhaseCancel {
		t.Fatalf("lost mid-gesture = %v %v, want cancel", ev.Phase, ok)
	}
	if _, ok := tr.lost(graphics.Offset{}); ok {
		t.Error("lost must be one-shot")
	}
}

func TestNewValidatesBoundaries(t *testing.T) {
	if _, err := New(Options{Boundaries: []float64{0.6, 0.3}}); err == nil {
		t.Error("descending boundaries must be rejected")
	}
	if _, err := New(Options{Boundaries: []float64{0.5, 1.2}}); err == nil {
		t.Error("boundary outside (0,1) must be rejected")
	}
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if app.opts.Step != 1 || app.opts.MinPane != 2 {
		t.Errorf("defaults = step %v minPane %v", app.opts.Step, app.opts.MinPane)
	}
}
