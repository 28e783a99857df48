// Package widgets provides the draggable divider controls.
//
// A divider is a thin handle the user drags along a track to move a cut
// point between two adjacent layout segments (resizable table columns,
// panel splits). The package contains two controls:
//
//   - [Divider]: a single cut point within an inclusive range.
//   - [MultiDivider]: N ordered, independent handles sharing one track.
//
// # Construction Model
//
// Widgets are cheap value objects the host reconstructs on every layout
// pass from its own retained values:
//
//	d := widgets.New(i, values[i], widgets.Range{End: 400}, 8, 21, onChange).
//	    WithStep(1).
//	    OnRelease(onDone)
//
// Only the transient drag status survives between passes, and it lives
// outside the widget in a [StateStore] keyed by whatever identity the
// host's retained tree assigns:
//
//	state := store.Of(dividerKey{row: 3})
//	status := d.HandlePointer(ev, bounds, state)
//
// # Event Model
//
// The host pump delivers pointer events one at a time, in device order,
// together with the widget's current bounds. HandlePointer runs the full
// press/drag/release state machine synchronously and returns whether the
// event was captured; ignored presses fall through to content underneath
// the divider. Value changes are reported through the OnChange callback
// before HandlePointer returns, never deferred.
//
// # Drawing
//
// Draw computes the handle rectangle from the current value and fills it
// into a [graphics.Canvas] using the style resolved for the interaction
// status (Dragged > Hovered > Active). The same rectangle is used for
// hit-testing, so the visible handle and the interactive region can never
// drift apart.
package widgets
