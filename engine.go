package vtcore

import (
	"fmt"
	"log/slog"
)

const defaultHistorySize = 2000

// Engine is the terminal core: parser, buffer, cursor, modes and
// renderer bound together behind a single-owner API. Nothing here is
// safe for concurrent use; callers that need to share an Engine across
// goroutines must serialize access themselves.
type Engine struct {
	target DrawTarget
	font   FontManager

	buf          *Buffer
	cursor       Cursor
	savedCursor  [2]SavedCursor // 0 = primary, 1 = alternate
	modes        Modes
	scrollRegion Region
	charsets     [4]charsetID // designations for G0-G3
	glSlot       charsetIndex // which of G0/G1 is invoked into GL (SI/SO)
	tabStops     []bool

	palette  Palette
	resolved *resolved

	glyphs *glyphCache
	parser *parser

	historySize int
	autoFlush   bool
	scrollSpeed int
	dirtyBatch  bool // at least one mutating command since the last flush

	selection   Selection
	ptyWriter   PtyWriter
	bellHandler BellHandler
	clipboard   ClipboardHandler

	mouseMode     MouseReportMode
	mouseEncoding MouseEncoding
	appKeypad     bool
	title         string

	pendingExtended bool
	modShift        bool
	modCtrl         bool
	modAlt          bool
	modMeta         bool
}

// New creates an Engine bound to target. The grid has zero size until
// SetFontManager is called: cell dimensions are only knowable once a
// font's advance and line-height are divided into the target's pixel
// size, per the engine's lifecycle contract.
func New(target DrawTarget) *Engine {
	e := &Engine{
		target:      target,
		modes:       defaultModes(),
		scrollSpeed: 3,
		historySize: defaultHistorySize,
		palette:     BuiltinPalette(PaletteDark),
		autoFlush:   true,
	}
	e.resolved = resolvePalette(e.palette)
	e.glyphs = newGlyphCache(defaultGlyphCacheCap)
	e.cursor = newCursor()
	e.parser = newParser(e.apply)
	return e
}

// SetFontManager installs the glyph rasterizer and, on first call,
// derives the grid's column/row count from the draw target's pixel size.
// Resize after the first call is not supported: a font manager whose
// metrics would change the already-established grid size is rejected.
func (e *Engine) SetFontManager(fm FontManager) error {
	advance, lineHeight := fm.Size()
	if advance <= 0 || lineHeight <= 0 {
		return fmt.Errorf("vtcore: font manager reports non-positive metrics (%d,%d)", advance, lineHeight)
	}
	widthPx, heightPx := e.target.Size()
	cols, rows := widthPx/advance, heightPx/lineHeight
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	if e.buf == nil {
		e.buf = NewBuffer(cols, rows, e.historySize)
		e.scrollRegion = Region{Top: 0, Bottom: rows - 1}
		e.tabStops = defaultTabStops(cols)
	} else if cols != e.buf.Cols() || rows != e.buf.Rows() {
		return fmt.Errorf("vtcore: font manager metrics imply a %dx%d grid, but the engine was already sized %dx%d; construct a new Engine instead", cols, rows, e.buf.Cols(), e.buf.Rows())
	}

	e.font = fm
	e.glyphs.setFont(fm)
	e.FullFlush()
	return nil
}

func defaultTabStops(cols int) []bool {
	stops := make([]bool, cols)
	for i := 8; i < cols; i += 8 {
		stops[i] = true
	}
	return stops
}

// SetAutoFlush controls whether Process triggers a Flush once all bytes
// from a single call have been consumed and at least one command
// touched the grid. Hosts driving their own render loop typically
// disable this and call Flush explicitly.
func (e *Engine) SetAutoFlush(on bool) { e.autoFlush = on }

// SetColorScheme selects one of the built-in palettes by index.
func (e *Engine) SetColorScheme(idx int) {
	e.palette = BuiltinPalette(idx)
	e.resolved = resolvePalette(e.palette)
	e.FullFlush()
}

// SetCustomColorScheme installs a caller-provided palette.
func (e *Engine) SetCustomColorScheme(p Palette) {
	e.palette = p
	e.resolved = resolvePalette(e.palette)
	e.FullFlush()
}

// SetHistorySize changes scrollback capacity, retaining the most recent
// rows already captured.
func (e *Engine) SetHistorySize(n int) {
	e.historySize = n
	if e.buf != nil {
		e.buf.ResizeHistory(n)
	}
}

// SetScrollSpeed sets how many lines a single mouse wheel notch scrolls
// the viewport by.
func (e *Engine) SetScrollSpeed(n int) {
	if n < 1 {
		n = 1
	}
	e.scrollSpeed = n
}

// SetAutoCRNL toggles LNM (linefeed also performs carriage return). The
// executor does not handle the ANSI set/reset-mode sequences, so this is
// the only way to change it.
func (e *Engine) SetAutoCRNL(on bool) {
	if on {
		e.modes |= ModeAutoCRLF
	} else {
		e.modes &^= ModeAutoCRLF
	}
}

func (e *Engine) SetPtyWriter(w PtyWriter)             { e.ptyWriter = w }
func (e *Engine) SetBellHandler(h BellHandler)         { e.bellHandler = h }
func (e *Engine) SetClipboardHandler(c ClipboardHandler) { e.clipboard = c }

// SetLogger installs the process-wide logger. It is a thin forward to
// the package-level SetLogger: the installed logger is shared by every
// Engine in the process, the last caller wins.
func (e *Engine) SetLogger(l *slog.Logger) {
	SetLogger(l)
}

// Process feeds bytes from the PTY through the parser, which lowers them
// into Commands applied immediately to the grid/cursor/modes. If
// auto-flush is enabled and at least one command mutated the grid, a
// Flush runs once all of data has been consumed.
func (e *Engine) Process(data []byte) {
	if e.buf == nil {
		return
	}
	e.dirtyBatch = false
	e.parser.feed(data)
	if e.autoFlush && e.dirtyBatch {
		e.Flush()
	}
}

// writePty forwards bytes to the installed PtyWriter, silently dropping
// them if none is installed (matches the "no error surfaced" design).
func (e *Engine) writePty(data []byte) {
	if e.ptyWriter == nil {
		return
	}
	_, _ = e.ptyWriter.WritePty(data)
}

func (e *Engine) logf(format string, args ...any) {
	logger().Debug(fmt.Sprintf(format, args...))
}

// Cols and Rows report the current grid size, or 0 before a font manager
// has been installed.
func (e *Engine) Cols() int {
	if e.buf == nil {
		return 0
	}
	return e.buf.Cols()
}

func (e *Engine) Rows() int {
	if e.buf == nil {
		return 0
	}
	return e.buf.Rows()
}

// CurrentSelection returns the current mouse selection, materializable to text
// via Selection.Text.
func (e *Engine) CurrentSelection() Selection { return e.selection }

// SetSelection replaces the active selection, e.g. from host-driven
// mouse drag tracking.
func (e *Engine) SetSelection(s Selection) { e.selection = s }
