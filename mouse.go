package vtcore

import "fmt"

// MouseButton identifies which button a press/release event concerns.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// MouseEventKind discriminates the four shapes of mouse input the
// engine accepts, matching the spec's handle_mouse(event) variants.
type MouseEventKind uint8

const (
	MouseMove MouseEventKind = iota
	MousePress
	MouseRelease
	MouseScroll
)

// MouseInput is one mouse event, in 0-based cell coordinates.
type MouseInput struct {
	Kind      MouseEventKind
	Button    MouseButton
	X, Y      int
	Modifiers Modifier
	// ScrollLines is only meaningful for MouseScroll: negative scrolls
	// toward history (wheel up), positive scrolls toward live (wheel
	// down), in wheel notches before SetScrollSpeed is applied.
	ScrollLines int
}

// HandleMouse applies a host-reported mouse event. Scroll events either
// move the scrollback viewport (primary screen) or, in the alternate
// screen, are translated to arrow-key presses since full-screen
// applications read the keyboard, not xterm mouse reports, for
// navigation. Everything else is encoded and forwarded to the PTY
// writer if a mouse-reporting mode is active.
func (e *Engine) HandleMouse(ev MouseInput) {
	if e.buf == nil {
		return
	}
	if ev.Kind == MouseScroll {
		e.handleScroll(ev)
		return
	}
	if e.mouseMode == MouseReportOff {
		return
	}
	if e.mouseMode == MouseReportX10 {
		if ev.Kind != MousePress {
			return
		}
		ev.Modifiers = 0
	}
	if ev.Kind == MouseMove && e.mouseMode != MouseReportAnyEvent && e.mouseMode != MouseReportButtonEvent {
		return
	}
	e.writePty(e.encodeMouse(ev))
}

func (e *Engine) handleScroll(ev MouseInput) {
	notches := ev.ScrollLines
	if notches == 0 {
		return
	}
	up := notches < 0
	if notches < 0 {
		notches = -notches
	}
	lines := notches * e.scrollSpeed

	if e.buf.InAlternate() {
		letter := byte('B')
		if up {
			letter = 'A'
		}
		seq := []byte{0x1B, '[', letter}
		if e.modes.has(ModeAppCursorKeys) {
			seq = []byte{0x1B, 'O', letter}
		}
		for i := 0; i < lines; i++ {
			e.writePty(seq)
		}
		return
	}

	if up {
		e.buf.SetViewOffset(e.buf.ViewOffset() + lines)
		return
	}
	off := e.buf.ViewOffset() - lines
	if off < 0 {
		off = 0
	}
	e.buf.SetViewOffset(off)
}

// encodeMouse builds the wire report for a press/release/move event in
// whichever encoding is currently active.
func (e *Engine) encodeMouse(ev MouseInput) []byte {
	if e.mouseEncoding == MouseEncodingSGR {
		return e.encodeMouseSGR(ev)
	}
	return e.encodeMouseX10(ev)
}

func mouseButtonBits(ev MouseInput) int {
	switch ev.Kind {
	case MouseMove:
		return 32 + int(ev.Button)
	default:
		return int(ev.Button)
	}
}

func mouseModifierBits(mod Modifier) int {
	bits := 0
	if mod&ModShift != 0 {
		bits |= 4
	}
	if mod&ModAlt != 0 {
		bits |= 8
	}
	if mod&ModCtrl != 0 {
		bits |= 16
	}
	return bits
}

// encodeMouseSGR implements xterm's 1006 extension: CSI < btn ; x ; y M
// for press/move, lowercase 'm' for release.
func (e *Engine) encodeMouseSGR(ev MouseInput) []byte {
	btn := mouseButtonBits(ev) | mouseModifierBits(ev.Modifiers)
	final := byte('M')
	if ev.Kind == MouseRelease {
		final = 'm'
	}
	return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", btn, ev.X+1, ev.Y+1, final))
}

// encodeMouseX10 implements the legacy byte encoding: CSI M followed by
// three bytes biased by 32 (and, for release, button bits forced to 3).
func (e *Engine) encodeMouseX10(ev MouseInput) []byte {
	btn := mouseButtonBits(ev) | mouseModifierBits(ev.Modifiers)
	if ev.Kind == MouseRelease {
		btn = 3
	}
	cx, cy := ev.X+1+32, ev.Y+1+32
	if cx > 255 {
		cx = 255
	}
	if cy > 255 {
		cy = 255
	}
	return []byte{0x1B, '[', 'M', byte(btn + 32), byte(cx), byte(cy)}
}
