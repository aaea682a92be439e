package vtcore

import "testing"

func newInputEngine() (*Engine, *capturingWriter) {
	e, _ := newTestEngine(10, 3)
	w := &capturingWriter{}
	e.SetPtyWriter(w)
	return e, w
}

type capturingWriter struct {
	out []byte
}

func (w *capturingWriter) WritePty(data []byte) (int, error) {
	w.out = append(w.out, data...)
	return len(data), nil
}

func TestHandleKeyboardCtrlC(t *testing.T) {
	e, w := newInputEngine()
	// Ctrl make (0x1D), 'C' make (0x2E), 'C' break (0xAE), Ctrl break (0x9D)
	e.HandleKeyboard(0x1D)
	e.HandleKeyboard(0x2E)
	e.HandleKeyboard(0xAE)
	e.HandleKeyboard(0x9D)
	if string(w.out) != "\x03" {
		t.Fatalf("output = %q, want \\x03", w.out)
	}
}

func TestHandleKeyboardPlainLetter(t *testing.T) {
	e, w := newInputEngine()
	e.HandleKeyboard(0x1E) // 'A' scancode, make
	e.HandleKeyboard(0x9E) // break
	if string(w.out) != "a" {
		t.Fatalf("output = %q, want %q", w.out, "a")
	}
}

func TestHandleKeyboardShiftedLetterIsUppercase(t *testing.T) {
	e, w := newInputEngine()
	e.HandleKeyboard(0x2A) // left shift make
	e.HandleKeyboard(0x1E) // 'A' make
	e.HandleKeyboard(0x9E) // 'A' break
	e.HandleKeyboard(0xAA) // left shift break
	if string(w.out) != "A" {
		t.Fatalf("output = %q, want %q", w.out, "A")
	}
}

func TestHandleKeyboardExtendedArrowDefaultEncoding(t *testing.T) {
	e, w := newInputEngine()
	e.HandleKeyboard(0xE0) // extended prefix
	e.HandleKeyboard(0x48) // Up, make
	if string(w.out) != "\x1b[A" {
		t.Fatalf("output = %q, want CSI A", w.out)
	}
}

func TestHandleKeyboardArrowHonorsApplicationCursorKeys(t *testing.T) {
	e, w := newInputEngine()
	e.Process([]byte("\x1b[?1h")) // DECCKM on
	e.HandleKeyboard(0xE0)
	e.HandleKeyboard(0x48) // Up, make
	if string(w.out) != "\x1bOA" {
		t.Fatalf("output = %q, want SS3 A", w.out)
	}
}

func TestHandleKeyboardCtrlShiftScrollbackShortcutDoesNotReachPty(t *testing.T) {
	e, w := newInputEngine()
	e.HandleKeyboard(0x1D) // Ctrl make
	e.HandleKeyboard(0x2A) // Shift make
	e.HandleKeyboard(0xE0)
	e.HandleKeyboard(0x48) // extended Up, make -> scrollback shortcut, not PTY
	if len(w.out) != 0 {
		t.Fatalf("output = %q, want no PTY bytes for a scrollback shortcut", w.out)
	}
	if e.buf.ViewOffset() != 1 {
		t.Errorf("ViewOffset() = %d, want 1 after Ctrl+Shift+Up", e.buf.ViewOffset())
	}
}
