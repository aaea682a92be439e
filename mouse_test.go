package vtcore

import "testing"

func TestHandleMouseSGREncoding(t *testing.T) {
	e, w := newInputEngine()
	e.Process([]byte("\x1b[?1000h\x1b[?1006h"))
	e.HandleMouse(MouseInput{Kind: MousePress, Button: MouseButtonLeft, X: 4, Y: 2})
	if string(w.out) != "\x1b[<0;5;3M" {
		t.Fatalf("output = %q, want CSI < 0;5;3 M", w.out)
	}
}

func TestHandleMouseX10Encoding(t *testing.T) {
	e, w := newInputEngine()
	e.Process([]byte("\x1b[?1000h"))
	e.HandleMouse(MouseInput{Kind: MouseRelease, Button: MouseButtonLeft, X: 0, Y: 0})
	want := []byte{0x1B, '[', 'M', byte(3 + 32), byte(1 + 32), byte(1 + 32)}
	if string(w.out) != string(want) {
		t.Fatalf("output = %v, want %v", w.out, want)
	}
}

func TestHandleMouseIgnoredWhenReportingOff(t *testing.T) {
	e, w := newInputEngine()
	e.HandleMouse(MouseInput{Kind: MousePress, Button: MouseButtonLeft, X: 1, Y: 1})
	if len(w.out) != 0 {
		t.Fatalf("output = %q, want nothing: mouse reporting is off by default", w.out)
	}
}

func TestHandleMouseScrollMovesScrollbackOnPrimaryScreen(t *testing.T) {
	e, w := newInputEngine()
	e.SetScrollSpeed(2)
	e.HandleMouse(MouseInput{Kind: MouseScroll, ScrollLines: -1})
	if e.buf.ViewOffset() != 2 {
		t.Errorf("ViewOffset() = %d, want 2 (1 notch * speed 2)", e.buf.ViewOffset())
	}
	if len(w.out) != 0 {
		t.Errorf("scroll on primary screen wrote %q to the PTY, want nothing", w.out)
	}
}

func TestHandleMouseScrollTranslatesToArrowOnAlternateScreen(t *testing.T) {
	e, w := newInputEngine()
	e.Process([]byte("\x1b[?1049h"))
	e.SetScrollSpeed(1)
	e.HandleMouse(MouseInput{Kind: MouseScroll, ScrollLines: -1})
	if string(w.out) != "\x1b[A" {
		t.Fatalf("output = %q, want CSI A (Up) on the alternate screen", w.out)
	}
}
