package termui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/dividers/pkg/graphics"
	"github.com/go-drift/dividers/pkg/input"
)

// pointerTranslator turns the absolute button state tcell reports into
// the edge-triggered pointer phases widgets consume. Terminal mice have
// no hover-out, so a dropped button always maps to an up, never a cancel.
type pointerTranslator struct {
	held      bool
	pointerID int64
}

// translate decodes a mouse event. ok is false for events that carry no
// pointer meaning, such as wheel motion and idle hover with no prior press.
func (p *pointerTranslator) translate(ev *tcell.EventMouse) (input.PointerEvent, bool) {
	x, y := ev.Position()
	pos := graphics.Offset{X: float64(x), Y: float64(y)}
	pressed := ev.Buttons()&tcell.Button1 != 0

	var phase input.PointerPhase
	switch {
	case pressed && !p.held:
		p.held = true
		p.pointerID++
		phase = input.PointerPhaseDown
	case pressed:
		phase = input.PointerPhaseMove
	case p.held:
		p.held = false
		phase = input.PointerPhaseUp
	default:
		// Hover with no button down still moves the cursor for styling.
		phase = input.PointerPhaseMove
	}

	return input.PointerEvent{
		Phase:     phase,
		Position:  pos,
		PointerID: p.pointerID,
	}, true
}

// lost synthesizes a cancel at pos, used when the screen is torn down
// mid-gesture.
func (p *pointerTranslator) lost(pos graphics.Offset) (input.PointerEvent, bool) {
	if !p.held {
		return input.PointerEvent{}, false
	}
	p.held = false
	return input.PointerEvent{
		Phase:     input.PointerPhaseCancel,
		Position:  pos,
		PointerID: p.pointerID,
	}, true
}
