package vtcore

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// apply is the parser's callback: every Command it lowers from the byte
// stream is dispatched here, mutating Buffer/Cursor/Modes in place.
func (e *Engine) apply(cmd Command) {
	if e.buf == nil {
		return
	}
	switch cmd.Kind {
	case CmdPrint:
		e.putChar(cmd.Rune)
	case CmdControl:
		e.control(cmd.Byte)
	case CmdEscape:
		e.escape(cmd.Byte)
	case CmdCSI:
		e.csi(cmd)
	case CmdOSC:
		e.osc(cmd.OSCParams)
	case CmdDCS:
		e.logf("unhandled DCS sequence (%d bytes)", len(cmd.DCSData))
	case CmdCharset:
		if int(cmd.CharsetTarget) < len(e.charsets) {
			e.charsets[cmd.CharsetTarget] = charsetFromFinal(cmd.Final)
		}
	}
}

func charsetFromFinal(b byte) charsetID {
	if b == '0' {
		return charsetDECSpecialGraphics
	}
	return charsetASCII
}

// blankStyle is the current pen reduced to a blank (codepoint 0) cell,
// the fill value for clear/scroll/insert operations.
func (e *Engine) blankStyle() Cell { return e.cursor.Style.asCell(0) }

// putChar writes one printable codepoint at the cursor, handling
// charset mapping, double-width glyphs and autowrap per §4.3: a write at
// the last column sets wrap-pending instead of advancing immediately.
func (e *Engine) putChar(r rune) {
	mapped := mapCharset(e.charsets[e.glSlot], r)
	cols := e.buf.Cols()

	if e.cursor.WrapPending {
		if e.modes.has(ModeAutowrap) {
			e.buf.SetRowWrapped(e.cursor.Row, true)
			e.lineFeedRow()
			e.cursor.Col = 0
		}
		e.cursor.WrapPending = false
	}

	width := runeWidth(mapped)
	if width == 2 && e.cursor.Col == cols-1 {
		e.buf.Write(e.cursor.Row, e.cursor.Col, e.blank())
		if !e.modes.has(ModeAutowrap) {
			e.dirtyBatch = true
			return
		}
		e.buf.SetRowWrapped(e.cursor.Row, true)
		e.lineFeedRow()
		e.cursor.Col = 0
	}

	cell := e.cursor.Style.asCell(mapped)
	if width == 2 {
		cell.Flags |= FlagWideLead
		trail := e.blank()
		trail.Flags |= FlagWideTrail
		e.buf.Write(e.cursor.Row, e.cursor.Col, cell)
		e.buf.Write(e.cursor.Row, e.cursor.Col+1, trail)
		e.cursor.Col += 2
	} else {
		e.buf.Write(e.cursor.Row, e.cursor.Col, cell)
		e.cursor.Col++
	}

	if e.cursor.Col >= cols {
		e.cursor.Col = cols - 1
		e.cursor.WrapPending = true
	}
	e.dirtyBatch = true
}

// blank is a throwaway Cell carrying the current pen's colors, for
// single-cell writes that bypass Buffer's own blank-filling helpers.
func (e *Engine) blank() Cell { return blankCell(e.blankStyle()) }

// lineFeedRow advances the cursor one row within the scroll region,
// scrolling the region up when already at its bottom. It never touches
// the column, matching LF/IND semantics (CR is a separate control).
func (e *Engine) lineFeedRow() {
	if e.cursor.Row == e.scrollRegion.Bottom {
		e.buf.ScrollUp(e.scrollRegion, 1, e.blankStyle())
	} else if e.cursor.Row < e.buf.Rows()-1 {
		e.cursor.Row++
	}
	e.dirtyBatch = true
}

func (e *Engine) reverseIndex() {
	if e.cursor.Row == e.scrollRegion.Top {
		e.buf.ScrollDown(e.scrollRegion, 1, e.blankStyle())
	} else if e.cursor.Row > 0 {
		e.cursor.Row--
	}
	e.dirtyBatch = true
}

func (e *Engine) control(b byte) {
	e.cursor.WrapPending = false
	switch b {
	case 0x08: // BS
		if e.cursor.Col > 0 {
			e.cursor.Col--
		}
	case 0x09: // HT
		e.tabForward()
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		e.lineFeedRow()
		if e.modes.has(ModeAutoCRLF) {
			e.cursor.Col = 0
		}
	case 0x0D: // CR
		e.cursor.Col = 0
	case 0x07: // BEL
		if e.bellHandler != nil {
			e.bellHandler.Bell()
		}
	case 0x0E: // SO: invoke G1 into GL
		e.glSlot = g1
	case 0x0F: // SI: invoke G0 into GL
		e.glSlot = g0
	}
	e.dirtyBatch = true
}

func (e *Engine) tabForward() {
	cols := e.buf.Cols()
	for c := e.cursor.Col + 1; c < cols; c++ {
		if c < len(e.tabStops) && e.tabStops[c] {
			e.cursor.Col = c
			return
		}
	}
	e.cursor.Col = cols - 1
}

func (e *Engine) escape(b byte) {
	switch b {
	case '7':
		e.saveCursor()
	case '8':
		e.restoreCursor()
	case 'c':
		e.fullReset()
	case 'D':
		e.lineFeedRow()
	case 'M':
		e.reverseIndex()
	case 'E':
		e.lineFeedRow()
		e.cursor.Col = 0
	case '=':
		e.appKeypad = true
	case '>':
		e.appKeypad = false
	default:
		e.logf("unhandled escape sequence ESC %q", b)
	}
	e.dirtyBatch = true
}

func (e *Engine) slotIndex() int {
	if e.buf.InAlternate() {
		return 1
	}
	return 0
}

func (e *Engine) saveCursor() {
	e.savedCursor[e.slotIndex()] = e.cursor.save(e.glSlot, e.modes.has(ModeOriginMode))
}

func (e *Engine) restoreCursor() {
	s := e.savedCursor[e.slotIndex()]
	e.cursor.Row, e.cursor.Col = s.Row, s.Col
	e.cursor.Style = s.Style
	e.glSlot = s.Charset
	if s.OriginMode {
		e.modes |= ModeOriginMode
	} else {
		e.modes &^= ModeOriginMode
	}
	e.cursor.WrapPending = false
}

func (e *Engine) fullReset() {
	style := e.blankStyle()
	e.buf.FullReset(style)
	e.modes = defaultModes()
	e.cursor = newCursor()
	e.scrollRegion = Region{Top: 0, Bottom: e.buf.Rows() - 1}
	e.charsets = [4]charsetID{}
	e.glSlot = g0
	e.savedCursor = [2]SavedCursor{}
	e.tabStops = defaultTabStops(e.buf.Cols())
	e.title = ""
	e.mouseMode = MouseReportOff
	e.mouseEncoding = MouseEncodingDefault
}

// csi dispatches a completed CSI Command to the right handler. ANSI and
// DEC-private (`?`) finals share a namespace of letters but different
// meanings, so private sequences are routed separately.
func (e *Engine) csi(cmd Command) {
	e.cursor.WrapPending = false
	if cmd.Private == '?' {
		e.csiPrivate(cmd)
		e.dirtyBatch = true
		return
	}
	switch cmd.Final {
	case 'A':
		e.moveCursor(-cmd.Param(0, 1), 0)
	case 'B':
		e.moveCursor(cmd.Param(0, 1), 0)
	case 'C':
		e.moveCursor(0, cmd.Param(0, 1))
	case 'D':
		e.moveCursor(0, -cmd.Param(0, 1))
	case 'H', 'f':
		e.cursorPosition(cmd.Param(0, 1), cmd.Param(1, 1))
	case 'G', '`':
		e.cursorColumn(cmd.Param(0, 1))
	case 'd':
		e.cursorRow(cmd.Param(0, 1))
	case 'J':
		e.eraseDisplay(cmd.Param(0, 0))
	case 'K':
		e.eraseLine(cmd.Param(0, 0))
	case 'L':
		e.insertLines(cmd.Param(0, 1))
	case 'M':
		e.deleteLines(cmd.Param(0, 1))
	case '@':
		e.insertChars(cmd.Param(0, 1))
	case 'P':
		e.deleteChars(cmd.Param(0, 1))
	case 'X':
		e.eraseChars(cmd.Param(0, 1))
	case 'S':
		e.buf.ScrollUp(e.scrollRegion, cmd.Param(0, 1), e.blankStyle())
	case 'T':
		e.buf.ScrollDown(e.scrollRegion, cmd.Param(0, 1), e.blankStyle())
	case 'r':
		e.setScrollRegion(cmd)
	case 'm':
		e.sgr(cmd.Params)
	case 'n':
		e.deviceStatusReport(cmd.Param(0, 0))
	case 'q':
		if cmd.Intermediate == ' ' {
			e.setCursorShape(cmd.Param(0, 0))
		}
	case 'c':
		e.deviceAttributes(cmd)
	default:
		e.logf("unhandled CSI final %q params=%v", cmd.Final, cmd.Params)
	}
	e.dirtyBatch = true
}

func (e *Engine) csiPrivate(cmd Command) {
	switch cmd.Final {
	case 'h':
		for _, p := range cmd.Params {
			e.setDecMode(p, true)
		}
	case 'l':
		for _, p := range cmd.Params {
			e.setDecMode(p, false)
		}
	default:
		e.logf("unhandled private CSI final %q", cmd.Final)
	}
}

func (e *Engine) setDecMode(p int, set bool) {
	switch p {
	case 1:
		e.setMode(ModeAppCursorKeys, set)
	case 7:
		e.setMode(ModeAutowrap, set)
	case 9:
		if set {
			e.mouseMode = MouseReportX10
		} else if e.mouseMode == MouseReportX10 {
			e.mouseMode = MouseReportOff
		}
	case 25:
		e.setMode(ModeCursorVisible, set)
	case 1000:
		if set {
			e.mouseMode = MouseReportNormal
		} else if e.mouseMode == MouseReportNormal {
			e.mouseMode = MouseReportOff
		}
	case 1002:
		if set {
			e.mouseMode = MouseReportButtonEvent
		} else if e.mouseMode == MouseReportButtonEvent {
			e.mouseMode = MouseReportOff
		}
	case 1003:
		if set {
			e.mouseMode = MouseReportAnyEvent
		} else if e.mouseMode == MouseReportAnyEvent {
			e.mouseMode = MouseReportOff
		}
	case 1006:
		if set {
			e.mouseEncoding = MouseEncodingSGR
		} else {
			e.mouseEncoding = MouseEncodingDefault
		}
	case 1049:
		e.altScreenWithSave(set)
	case 2004:
		e.setMode(ModeBracketedPaste, set)
	default:
		e.logf("unhandled DEC private mode %d (%v)", p, set)
	}
}

func (e *Engine) setMode(bit Modes, on bool) {
	if on {
		e.modes |= bit
	} else {
		e.modes &^= bit
	}
}

func (e *Engine) altScreenWithSave(enter bool) {
	if enter {
		if e.buf.InAlternate() {
			return
		}
		e.saveCursor()
		e.buf.SwitchToAlternate(e.blankStyle())
		e.cursor.Row, e.cursor.Col = 0, 0
		e.cursor.WrapPending = false
		e.modes |= ModeAlternateScreen
		return
	}
	if !e.buf.InAlternate() {
		return
	}
	e.buf.SwitchToPrimary()
	e.restoreCursor()
	e.modes &^= ModeAlternateScreen
}

func (e *Engine) regionBounds() (top, bottom int) {
	if e.modes.has(ModeOriginMode) {
		return e.scrollRegion.Top, e.scrollRegion.Bottom
	}
	return 0, e.buf.Rows() - 1
}

func (e *Engine) moveCursor(dRow, dCol int) {
	top, bottom := e.regionBounds()
	row := clampInt(e.cursor.Row+dRow, top, bottom)
	col := clampInt(e.cursor.Col+dCol, 0, e.buf.Cols()-1)
	e.cursor.Row, e.cursor.Col = row, col
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (e *Engine) cursorPosition(row, col int) {
	top, bottom := e.regionBounds()
	r := clampInt(top+row-1, top, bottom)
	c := clampInt(col-1, 0, e.buf.Cols()-1)
	e.cursor.Row, e.cursor.Col = r, c
	e.cursor.WrapPending = false
}

func (e *Engine) cursorColumn(col int) {
	e.cursor.Col = clampInt(col-1, 0, e.buf.Cols()-1)
}

func (e *Engine) cursorRow(row int) {
	top, bottom := e.regionBounds()
	e.cursor.Row = clampInt(top+row-1, top, bottom)
}

func (e *Engine) eraseDisplay(mode int) {
	style := e.blankStyle()
	lastRow, lastCol := e.buf.Rows()-1, e.buf.Cols()-1
	switch mode {
	case 0:
		e.buf.ClearRegion(e.cursor.Row, e.cursor.Col, e.cursor.Row, lastCol, style)
		if e.cursor.Row < lastRow {
			e.buf.ClearRegion(e.cursor.Row+1, 0, lastRow, lastCol, style)
		}
	case 1:
		if e.cursor.Row > 0 {
			e.buf.ClearRegion(0, 0, e.cursor.Row-1, lastCol, style)
		}
		e.buf.ClearRegion(e.cursor.Row, 0, e.cursor.Row, e.cursor.Col, style)
	case 2:
		e.buf.ClearRegion(0, 0, lastRow, lastCol, style)
	case 3:
		e.buf.ClearRegion(0, 0, lastRow, lastCol, style)
		e.buf.ClearHistory()
	}
}

func (e *Engine) eraseLine(mode int) {
	style := e.blankStyle()
	lastCol := e.buf.Cols() - 1
	switch mode {
	case 0:
		e.buf.ClearRegion(e.cursor.Row, e.cursor.Col, e.cursor.Row, lastCol, style)
	case 1:
		e.buf.ClearRegion(e.cursor.Row, 0, e.cursor.Row, e.cursor.Col, style)
	case 2:
		e.buf.ClearRegion(e.cursor.Row, 0, e.cursor.Row, lastCol, style)
	}
}

func (e *Engine) insertLines(n int) {
	if e.cursor.Row < e.scrollRegion.Top || e.cursor.Row > e.scrollRegion.Bottom {
		return
	}
	e.buf.ScrollDown(Region{Top: e.cursor.Row, Bottom: e.scrollRegion.Bottom}, n, e.blankStyle())
}

func (e *Engine) deleteLines(n int) {
	if e.cursor.Row < e.scrollRegion.Top || e.cursor.Row > e.scrollRegion.Bottom {
		return
	}
	e.buf.ScrollUpDiscard(Region{Top: e.cursor.Row, Bottom: e.scrollRegion.Bottom}, n, e.blankStyle())
}

func (e *Engine) insertChars(n int) {
	cols := e.buf.Cols()
	row := e.cursor.Row
	if n > cols-e.cursor.Col {
		n = cols - e.cursor.Col
	}
	for c := cols - 1; c >= e.cursor.Col+n; c-- {
		e.buf.Write(row, c, e.buf.Read(row, c-n))
	}
	blank := e.blank()
	for c := e.cursor.Col; c < e.cursor.Col+n && c < cols; c++ {
		e.buf.Write(row, c, blank)
	}
}

func (e *Engine) deleteChars(n int) {
	cols := e.buf.Cols()
	row := e.cursor.Row
	if n > cols-e.cursor.Col {
		n = cols - e.cursor.Col
	}
	for c := e.cursor.Col; c < cols-n; c++ {
		e.buf.Write(row, c, e.buf.Read(row, c+n))
	}
	blank := e.blank()
	for c := cols - n; c < cols; c++ {
		e.buf.Write(row, c, blank)
	}
}

func (e *Engine) eraseChars(n int) {
	cols := e.buf.Cols()
	end := e.cursor.Col + n
	if end > cols {
		end = cols
	}
	blank := e.blank()
	for c := e.cursor.Col; c < end; c++ {
		e.buf.Write(e.cursor.Row, c, blank)
	}
}

func (e *Engine) setScrollRegion(cmd Command) {
	rows := e.buf.Rows()
	top := cmd.Param(0, 1) - 1
	bottom := cmd.Param(1, rows) - 1
	if top < 0 {
		top = 0
	}
	if bottom >= rows {
		bottom = rows - 1
	}
	if top >= bottom {
		top, bottom = 0, rows-1
	}
	e.scrollRegion = Region{Top: top, Bottom: bottom}
	if e.modes.has(ModeOriginMode) {
		e.cursor.Row, e.cursor.Col = top, 0
	} else {
		e.cursor.Row, e.cursor.Col = 0, 0
	}
	e.cursor.WrapPending = false
}

// sgr applies Select Graphic Rendition parameters in order; 38/48
// consume the following 2 or 4 parameters for indexed/true-color.
func (e *Engine) sgr(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	st := &e.cursor.Style
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			*st = defaultStyle()
		case p == 1:
			st.Flags |= FlagBold
		case p == 3:
			st.Flags |= FlagItalic
		case p == 4:
			st.Flags |= FlagUnderline
		case p == 7:
			st.Flags |= FlagInverse
		case p == 8:
			st.Flags |= FlagHidden
		case p == 9:
			st.Flags |= FlagStrikethrough
		case p == 22:
			st.Flags &^= FlagBold
		case p == 23:
			st.Flags &^= FlagItalic
		case p == 24:
			st.Flags &^= FlagUnderline
		case p == 27:
			st.Flags &^= FlagInverse
		case p == 28:
			st.Flags &^= FlagHidden
		case p == 29:
			st.Flags &^= FlagStrikethrough
		case p >= 30 && p <= 37:
			st.Foreground = StandardColor(p - 30)
		case p == 38:
			color, consumed := parseExtendedColor(params[i+1:])
			st.Foreground = color
			i += consumed
		case p == 39:
			st.Foreground = DefaultFg
		case p >= 40 && p <= 47:
			st.Background = StandardColor(p - 40)
		case p == 48:
			color, consumed := parseExtendedColor(params[i+1:])
			st.Background = color
			i += consumed
		case p == 49:
			st.Background = DefaultBg
		case p >= 90 && p <= 97:
			st.Foreground = StandardColor(p - 90 + 8)
		case p >= 100 && p <= 107:
			st.Background = StandardColor(p - 100 + 8)
		default:
			// unknown SGR parameter: skipped, matching xterm's tolerance
		}
	}
}

func parseExtendedColor(rest []int) (Color, int) {
	if len(rest) == 0 {
		return DefaultFg, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) >= 2 {
			return IndexedColor(rest[1]), 2
		}
		return DefaultFg, 1
	case 2:
		if len(rest) >= 4 {
			return TrueColorRGB(uint8(rest[1]), uint8(rest[2]), uint8(rest[3])), 4
		}
		return DefaultFg, 1
	default:
		return DefaultFg, 1
	}
}

func (e *Engine) deviceStatusReport(n int) {
	switch n {
	case 5:
		e.writePty([]byte("\x1b[0n"))
	case 6:
		row, col := e.cursor.Row+1, e.cursor.Col+1
		if e.modes.has(ModeOriginMode) {
			row -= e.scrollRegion.Top
		}
		e.writePty([]byte(fmt.Sprintf("\x1b[%d;%dR", row, col)))
	}
}

func (e *Engine) setCursorShape(n int) {
	switch n {
	case 0, 1:
		e.cursor.Shape, e.cursor.Blinking = CursorBlock, true
	case 2:
		e.cursor.Shape, e.cursor.Blinking = CursorBlock, false
	case 3:
		e.cursor.Shape, e.cursor.Blinking = CursorUnderline, true
	case 4:
		e.cursor.Shape, e.cursor.Blinking = CursorUnderline, false
	case 5:
		e.cursor.Shape, e.cursor.Blinking = CursorBar, true
	case 6:
		e.cursor.Shape, e.cursor.Blinking = CursorBar, false
	}
}

func (e *Engine) deviceAttributes(cmd Command) {
	if cmd.Private == '>' {
		e.writePty([]byte("\x1b[>0;10;1c"))
		return
	}
	e.writePty([]byte("\x1b[?1;2c"))
}

func (e *Engine) osc(params []string) {
	if len(params) == 0 {
		return
	}
	switch params[0] {
	case "0", "2":
		if len(params) > 1 {
			e.title = params[1]
			logger().Info("terminal title changed", "title", e.title)
		}
	case "4":
		e.oscPalette(params[1:])
	case "10", "11":
		if len(params) < 2 {
			break
		}
		dst := &e.palette.Foreground
		if params[0] == "11" {
			dst = &e.palette.Background
		}
		if params[1] == "?" {
			e.writePty([]byte(fmt.Sprintf("\x1b]%s;rgb:%02x/%02x/%02x\x07", params[0], dst.R, dst.G, dst.B)))
			break
		}
		e.oscSetColor(dst, params[1])
	case "52":
		e.oscClipboard(params[1:])
	default:
		e.logf("unhandled OSC %s", params[0])
	}
}

func (e *Engine) oscPalette(rest []string) {
	for i := 0; i+1 < len(rest); i += 2 {
		idx, err := strconv.Atoi(rest[i])
		if err != nil || idx < 0 || idx > 255 {
			continue
		}
		if rest[i+1] == "?" {
			rgb := e.resolved.cube[idx]
			e.writePty([]byte(fmt.Sprintf("\x1b]4;%d;rgb:%02x/%02x/%02x\x07", idx, rgb.R, rgb.G, rgb.B)))
			continue
		}
		rgb, ok := parseXColorSpec(rest[i+1])
		if !ok {
			continue
		}
		if idx < 16 {
			e.palette.ANSI[idx] = rgb
			e.resolved = resolvePalette(e.palette)
			e.FullFlush()
		}
	}
}

func (e *Engine) oscSetColor(dst *RGB, spec string) {
	rgb, ok := parseXColorSpec(spec)
	if !ok {
		return
	}
	*dst = rgb
	e.resolved = resolvePalette(e.palette)
	e.FullFlush()
}

// parseXColorSpec understands "rgb:rr/gg/bb" (X11 color spec, the form
// terminals reply and accept for OSC 4/10/11) and "#rrggbb".
func parseXColorSpec(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "rgb:")
	s = strings.TrimPrefix(s, "#")
	parts := strings.Split(s, "/")
	if len(parts) == 3 {
		r, err1 := strconv.ParseUint(clampHex(parts[0]), 16, 8)
		g, err2 := strconv.ParseUint(clampHex(parts[1]), 16, 8)
		b, err3 := strconv.ParseUint(clampHex(parts[2]), 16, 8)
		if err1 == nil && err2 == nil && err3 == nil {
			return RGB{uint8(r), uint8(g), uint8(b)}, true
		}
		return RGB{}, false
	}
	if len(s) == 6 {
		r, err1 := strconv.ParseUint(s[0:2], 16, 8)
		g, err2 := strconv.ParseUint(s[2:4], 16, 8)
		b, err3 := strconv.ParseUint(s[4:6], 16, 8)
		if err1 == nil && err2 == nil && err3 == nil {
			return RGB{uint8(r), uint8(g), uint8(b)}, true
		}
	}
	return RGB{}, false
}

// clampHex truncates X11's occasional 4-digit-per-channel spec ("ffff")
// down to the 2 hex digits we resolve colors to.
func clampHex(h string) string {
	if len(h) > 2 {
		return h[:2]
	}
	return h
}

func (e *Engine) oscClipboard(rest []string) {
	if len(rest) < 2 {
		return
	}
	if e.clipboard == nil {
		e.logf("OSC 52 clipboard request dropped: no clipboard handler installed")
		return
	}
	payload := rest[1]
	if payload == "?" {
		text, err := e.clipboard.ClipboardRead()
		if err != nil {
			return
		}
		encoded := base64.StdEncoding.EncodeToString([]byte(text))
		e.writePty([]byte(fmt.Sprintf("\x1b]52;c;%s\x07", encoded)))
		return
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return
	}
	_ = e.clipboard.ClipboardWrite(string(data))
}
