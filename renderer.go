package vtcore

// DrawTarget is the host-supplied pixel-writing surface. Coordinates are
// top-left origin; the engine guarantees in-bounds writes.
type DrawTarget interface {
	Size() (widthPx, heightPx int)
	DrawPixel(x, y int, c RGB)
}

// colorBlend precomputes a 256-step linear interpolation between a
// background and foreground color, so compositing an alpha-antialiased
// glyph pixel is a single slice index instead of per-pixel float math.
// Mirrors the ColorCache trick in the bare-metal reference renderer.
type colorBlend [256]RGB

func newColorBlend(fg, bg RGB) colorBlend {
	var c colorBlend
	dr := int(fg.R) - int(bg.R)
	dg := int(fg.G) - int(bg.G)
	db := int(fg.B) - int(bg.B)
	for i := range c {
		c[i] = RGB{
			R: clampByte(int(bg.R) + dr*i/255),
			G: clampByte(int(bg.G) + dg*i/255),
			B: clampByte(int(bg.B) + db*i/255),
		}
	}
	return c
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// resolveCellColors computes the effective foreground/background for a
// cell: inverse swaps them, hidden collapses foreground onto background.
func resolveCellColors(cell Cell, pal *resolved) (fg, bg RGB) {
	fg = pal.lookup(cell.Foreground, cell.Flags.has(FlagBold))
	bg = pal.lookupBg(cell.Background)
	if cell.Flags.has(FlagInverse) || cell.Flags.has(FlagCursorBlock) {
		fg, bg = bg, fg
	}
	if cell.Flags.has(FlagHidden) {
		fg = bg
	}
	return fg, bg
}

// Flush walks every dirty row, composites background, glyph and cursor,
// and issues pixel writes through the installed DrawTarget. It is a
// no-op if no font manager or draw target is installed. Flushing twice
// with no intervening mutation issues zero draw calls on the second
// flush, since dirty flags are cleared after a successful pass.
func (e *Engine) Flush() {
	if e.font == nil || e.target == nil {
		return
	}
	advance, lineHeight := e.font.Size()
	if advance <= 0 || lineHeight <= 0 {
		return
	}

	cursorVisible := e.cursor.Visible && e.modes.has(ModeCursorVisible) && e.buf.ViewOffset() == 0

	for row := 0; row < e.buf.Rows(); row++ {
		if !e.buf.IsRowDirty(row) {
			continue
		}
		for col := 0; col < e.buf.Cols(); col++ {
			cell := e.buf.Read(row, col)
			if cell.Flags.has(FlagWideTrail) {
				continue
			}
			e.drawCell(row, col, cell, advance, lineHeight, cursorVisible)
		}
		e.buf.ClearRowDirty(row)
	}
}

// FullFlush marks every row dirty and flushes, used after a palette or
// font change invalidates the whole screen. Like Flush, it is a no-op
// before a font manager has been installed.
func (e *Engine) FullFlush() {
	if e.buf == nil {
		return
	}
	e.buf.markAllDirty()
	e.Flush()
}

func (e *Engine) drawCell(row, col int, cell Cell, advance, lineHeight int, cursorVisible bool) {
	isCursor := cursorVisible && row == e.cursor.Row && col == e.cursor.Col
	if isCursor {
		switch e.cursor.Shape {
		case CursorBlock:
			cell.Flags |= FlagCursorBlock
		case CursorUnderline:
			cell.Flags |= FlagCursorUnder
		case CursorBar:
			cell.Flags |= FlagCursorBeam
		}
	}

	fg, bg := resolveCellColors(cell, e.resolved)
	blend := newColorBlend(fg, bg)

	widthCells := 1
	if cell.Flags.has(FlagWideLead) {
		widthCells = 2
	}
	xStart, yStart := col*advance, row*lineHeight
	pixelWidth := advance * widthCells

	for y := 0; y < lineHeight; y++ {
		for x := 0; x < pixelWidth; x++ {
			e.target.DrawPixel(xStart+x, yStart+y, bg)
		}
	}

	if cell.Codepoint != 0 && cell.Codepoint != ' ' {
		glyph := e.glyphs.get(GlyphKey{Codepoint: cell.Codepoint, Bold: cell.Flags.has(FlagBold), Italic: cell.Flags.has(FlagItalic)})
		for y, line := range glyph.Alpha {
			if y >= lineHeight {
				break
			}
			for x, alpha := range line {
				if x >= pixelWidth {
					break
				}
				e.target.DrawPixel(xStart+x, yStart+y, blend[alpha])
			}
		}
	}

	if cell.Flags.has(FlagUnderline) || cell.Flags.has(FlagCursorUnder) {
		y := yStart + lineHeight - 1
		for x := 0; x < pixelWidth; x++ {
			e.target.DrawPixel(xStart+x, y, fg)
		}
	}
	if cell.Flags.has(FlagStrikethrough) {
		y := yStart + lineHeight/2
		for x := 0; x < pixelWidth; x++ {
			e.target.DrawPixel(xStart+x, y, fg)
		}
	}
	if cell.Flags.has(FlagCursorBeam) {
		for y := 0; y < lineHeight; y++ {
			e.target.DrawPixel(xStart, yStart+y, fg)
		}
	}
}
