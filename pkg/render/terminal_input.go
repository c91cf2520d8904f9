// pkg/render/terminal_input.go
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-okay/pkg/engine"
)

// TerminalInput turns tcell events into game gestures. A gesture begins on
// the transition to the primary button held and ends on its release.
// It is used by the event polling goroutine only.
type TerminalInput struct {
	viewport Viewport
	pressed  bool
}

// NewTerminalInput creates an input translator for the given viewport
func NewTerminalInput(v Viewport) *TerminalInput {
	return &TerminalInput{viewport: v}
}

// Viewport returns the mapping used for mouse positions
func (in *TerminalInput) Viewport() Viewport {
	return in.viewport
}

// Translate converts one event. It returns the gestures the event produces
// and whether it asks to quit.
func (in *TerminalInput) Translate(ev tcell.Event) ([]engine.Gesture, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return nil, isQuitKey(ev)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		in.viewport = NewViewport(in.viewport.WorldWidth, in.viewport.WorldHeight, cols, rows)

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down == in.pressed {
			return nil, false
		}
		in.pressed = down

		x, y := ev.Position()
		gesture := engine.Gesture{Kind: engine.GestureEnd, Point: in.viewport.ToWorld(x, y)}
		if down {
			gesture.Kind = engine.GestureBegin
		}
		return []engine.Gesture{gesture}, false
	}
	return nil, false
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
