package vtcore

import "testing"

// countingTarget is a DrawTarget that only counts how many pixels were
// written, wide enough to size a small grid against a trivial font.
type countingTarget struct {
	w, h  int
	calls int
}

func (t *countingTarget) Size() (int, int)        { return t.w, t.h }
func (t *countingTarget) DrawPixel(x, y int, c RGB) { t.calls++ }

// blockFont is a trivial FontManager: every glyph is a solid block, so
// tests don't need real rasterization to exercise Flush.
type blockFont struct {
	advance, lineHeight int
}

func (f blockFont) Size() (int, int) { return f.advance, f.lineHeight }
func (f blockFont) Rasterize(r rune, bold, italic bool) Glyph {
	alpha := make([][]uint8, f.lineHeight)
	for y := range alpha {
		alpha[y] = make([]uint8, f.advance)
		for x := range alpha[y] {
			alpha[y][x] = 255
		}
	}
	return Glyph{Alpha: alpha, WidthCells: 1}
}

func newTestEngine(cols, rows int) (*Engine, *countingTarget) {
	target := &countingTarget{w: cols * 4, h: rows * 6}
	e := New(target)
	_ = e.SetFontManager(blockFont{advance: 4, lineHeight: 6})
	return e, target
}

func TestEngineColoredTextViaSGR(t *testing.T) {
	e, _ := newTestEngine(10, 3)
	e.Process([]byte("\x1b[31mX"))
	cell := e.buf.Read(0, 0)
	if cell.Codepoint != 'X' {
		t.Fatalf("cell codepoint = %q, want 'X'", cell.Codepoint)
	}
	if cell.Foreground != StandardColor(1) {
		t.Errorf("cell foreground = %v, want StandardColor(1) (red)", cell.Foreground)
	}
}

func TestEngineEraseLineAfterCarriageReturn(t *testing.T) {
	e, _ := newTestEngine(10, 3)
	e.Process([]byte("hello\r\x1b[K"))
	for c := 0; c < 5; c++ {
		if cell := e.buf.Read(0, c); cell.Codepoint != 0 {
			t.Errorf("col %d = %q after CR+EL, want blank", c, cell.Codepoint)
		}
	}
}

func TestEngineAutowrapAtLastColumn(t *testing.T) {
	e, _ := newTestEngine(3, 3)
	e.Process([]byte("abcd"))
	if got := e.buf.Read(0, 2).Codepoint; got != 'c' {
		t.Fatalf("row0 col2 = %q, want 'c'", got)
	}
	if got := e.buf.Read(1, 0).Codepoint; got != 'd' {
		t.Fatalf("row1 col0 = %q after wrap, want 'd'", got)
	}
	if e.cursor.Row != 1 || e.cursor.Col != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", e.cursor.Row, e.cursor.Col)
	}
}

func TestEngineClearScreenThenCursorPosition(t *testing.T) {
	e, _ := newTestEngine(10, 5)
	e.Process([]byte("junk\x1b[2J\x1b[3;4Hz"))
	if got := e.buf.Read(0, 0).Codepoint; got != 0 {
		t.Errorf("row0 col0 = %q after ED2, want blank", got)
	}
	if got := e.buf.Read(2, 3).Codepoint; got != 'z' {
		t.Fatalf("row2 col3 = %q, want 'z' (CUP 3;4 is 0-indexed row2,col3)", got)
	}
}

func TestEngineAlternateScreenRoundTrip(t *testing.T) {
	e, _ := newTestEngine(10, 3)
	e.Process([]byte("primary"))
	e.Process([]byte("\x1b[?1049h"))
	if !e.buf.InAlternate() {
		t.Fatal("InAlternate() = false after CSI ?1049h")
	}
	e.Process([]byte("alt text"))
	e.Process([]byte("\x1b[?1049l"))
	if e.buf.InAlternate() {
		t.Fatal("InAlternate() = true after CSI ?1049l")
	}
	if got := e.buf.Read(0, 0).Codepoint; got != 'p' {
		t.Errorf("row0 col0 = %q after alt-screen round trip, want 'p'", got)
	}
}

func TestEngineCursorStaysInBounds(t *testing.T) {
	e, _ := newTestEngine(5, 4)
	e.Process([]byte("\x1b[100;100H"))
	if e.cursor.Row < 0 || e.cursor.Row >= e.buf.Rows() || e.cursor.Col < 0 || e.cursor.Col >= e.buf.Cols() {
		t.Fatalf("cursor = (%d,%d) out of bounds for a %dx%d grid", e.cursor.Row, e.cursor.Col, e.buf.Cols(), e.buf.Rows())
	}
	e.Process([]byte("\x1b[500A"))
	if e.cursor.Row < 0 {
		t.Errorf("cursor.Row = %d after excessive CUU, want clamped at 0", e.cursor.Row)
	}
}

func TestEngineWideCharacterLeadTrailInvariant(t *testing.T) {
	e, _ := newTestEngine(10, 2)
	e.Process([]byte("中文")) // two CJK wide characters
	lead := e.buf.Read(0, 0)
	trail := e.buf.Read(0, 1)
	if !lead.Flags.has(FlagWideLead) {
		t.Error("first cell missing FlagWideLead")
	}
	if !trail.Flags.has(FlagWideTrail) {
		t.Error("second cell missing FlagWideTrail")
	}
	lead2 := e.buf.Read(0, 2)
	if !lead2.Flags.has(FlagWideLead) {
		t.Error("third cell missing FlagWideLead for the second wide character")
	}
}

func TestEngineFlushIsIdempotentWhenUnchanged(t *testing.T) {
	e, target := newTestEngine(4, 2)
	e.Process([]byte("hi"))
	e.Flush()
	if target.calls == 0 {
		t.Fatal("first Flush issued zero draw calls")
	}
	target.calls = 0
	e.Flush()
	if target.calls != 0 {
		t.Errorf("second Flush with no mutation issued %d draw calls, want 0", target.calls)
	}
}

func TestEnginePaletteSetThenQueryRoundTrips(t *testing.T) {
	e, _ := newTestEngine(4, 2)
	var replies []byte
	e.SetPtyWriter(writerFunc(func(b []byte) (int, error) {
		replies = append(replies, b...)
		return len(b), nil
	}))
	e.Process([]byte("\x1b]4;1;rgb:aa/bb/cc\x07"))
	if got := e.palette.ANSI[1]; got != (RGB{0xaa, 0xbb, 0xcc}) {
		t.Fatalf("palette.ANSI[1] = %v, want {aa bb cc}", got)
	}
	e.Process([]byte("\x1b]4;1;?\x07"))
	want := "\x1b]4;1;rgb:aa/bb/cc\x07"
	if string(replies) != want {
		t.Errorf("query reply = %q, want %q", replies, want)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) WritePty(data []byte) (int, error) { return f(data) }
