// Package testing provides a harness for exercising divider widgets
// without a real event source or renderer.
//
// A [Tester] plays the host's roles: it owns the widget bounds, the
// theme, the retained [widgets.StateStore], and a recording canvas. Its
// gesture methods synthesize pointer events in device order, and its
// Record callbacks capture the notifications a widget emits:
//
//	tester := dividertest.NewTester(t)
//	d := widgets.New(0, 100, widgets.Range{End: 400}, 8, 21, tester.RecordChange).
//	    OnRelease(tester.RecordRelease)
//	tester.Mount(d, graphics.RectFromLTWH(0, 0, 400, 21))
//
//	tester.PressAt(graphics.Offset{X: 100, Y: 10})
//	tester.MoveTo(graphics.Offset{X: 150, Y: 10})
//	tester.Release()
//
// Import it under a distinct name (the convention is dividertest) to
// avoid clashing with the standard library's testing package.
package testing
