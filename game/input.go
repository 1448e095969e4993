package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ring-tower/parameter"
	"github.com/lixenwraith/ring-tower/pointer"
)

const (
	wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight
	clickMask = tcell.Button1 | tcell.Button2 | tcell.Button3
)

// HandleEvent processes one terminal event, returns false to quit
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)

	case *tcell.EventMouse:
		g.handleMouse(ev)

	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.picker.SetViewport(g.renderer.Viewport())

	case *tcell.EventFocus:
		if !ev.Focused {
			g.Cancel()
		}
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		g.camera.Orbit(-parameter.CameraKeyStep, 0)
	case tcell.KeyRight:
		g.camera.Orbit(parameter.CameraKeyStep, 0)
	case tcell.KeyUp:
		g.camera.Orbit(0, parameter.CameraKeyStep)
	case tcell.KeyDown:
		g.camera.Orbit(0, -parameter.CameraKeyStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'p', ' ':
			g.TogglePause()
		case 'r':
			g.Reset()
		case 'm':
			g.ToggleMute()
		case 'd':
			// Axis overlay is only available in debug runs
			if g.cfg.Debug {
				g.debug = !g.debug
			}
		case '+', '=':
			g.camera.Zoom(-parameter.CameraZoomStep)
		case '-', '_':
			g.camera.Zoom(parameter.CameraZoomStep)
		}
	}
	return true
}

// handleMouse turns tcell button mask snapshots into pointer down, move and up transitions
func (g *Game) handleMouse(ev *tcell.EventMouse) {
	sx, sy := ev.Position()
	x, y := g.renderer.ToViewport(sx, sy)
	buttons := ev.Buttons()

	// Wheel notches arrive without the held buttons and never change them
	if buttons&wheelMask != 0 {
		if g.paused {
			return
		}
		if buttons&tcell.WheelUp != 0 {
			g.camera.Wheel(1)
		}
		if buttons&tcell.WheelDown != 0 {
			g.camera.Wheel(-1)
		}
		return
	}

	prev := g.buttons
	// A second button pressed mid-drag is reported alone, Button1 is still down
	if prev&tcell.Button1 != 0 && buttons&(tcell.Button2|tcell.Button3) != 0 {
		buttons |= tcell.Button1
	}
	g.buttons = buttons & clickMask

	if g.paused {
		return
	}

	drag := g.session.Pointer
	for _, b := range []struct {
		mask   tcell.ButtonMask
		button pointer.Button
	}{
		{tcell.Button2, pointer.ButtonSecondary},
		{tcell.Button3, pointer.ButtonMiddle},
	} {
		if buttons&b.mask != 0 && prev&b.mask == 0 {
			drag.OnPointerDown(pointer.Event{X: x, Y: y, Button: b.button})
		}
	}

	pressed := buttons&tcell.Button1 != 0
	held := prev&tcell.Button1 != 0
	switch {
	case pressed && !held:
		drag.OnPointerDown(pointer.Event{X: x, Y: y, Button: pointer.ButtonPrimary})
		if _, dragging := drag.Dragging(); !dragging {
			g.camera.BeginDrag(x, y)
		}
	case pressed && held:
		drag.OnPointerMove(pointer.Event{X: x, Y: y, Button: pointer.ButtonPrimary})
		g.camera.DragTo(x, y)
	case !pressed && held:
		drag.OnPointerUp(pointer.Event{X: x, Y: y, Button: pointer.ButtonPrimary})
		g.camera.EndDrag()
	}
}
