package vtcore

import "fmt"

// Modifier is a bitmask of held modifier keys, tracked from Scan Code
// Set 1 make/break codes.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

func (e *Engine) modifiers() Modifier {
	var m Modifier
	if e.modShift {
		m |= ModShift
	}
	if e.modCtrl {
		m |= ModCtrl
	}
	if e.modAlt {
		m |= ModAlt
	}
	if e.modMeta {
		m |= ModMeta
	}
	return m
}

// scancodeKey names the logical key a Set 1 code maps to, independent
// of modifier state; modifierKey values never reach emitKey.
type scancodeKey struct {
	name      string
	modifier  Modifier // 0 if this key is not itself a modifier
	modifierKey bool
}

var scancodeTable = buildScancodeTable()

func buildScancodeTable() map[uint16]scancodeKey {
	t := map[uint16]scancodeKey{}
	add := func(code byte, extended bool, name string) {
		t[scancodeIndex(code, extended)] = scancodeKey{name: name}
	}
	addMod := func(code byte, extended bool, mod Modifier) {
		t[scancodeIndex(code, extended)] = scancodeKey{modifier: mod, modifierKey: true}
	}

	row1codes, row1 := []byte{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19}, "QWERTYUIOP"
	for i, c := range row1codes {
		add(c, false, string(row1[i]))
	}
	row2codes, row2 := []byte{0x1E, 0x1F, 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26}, "ASDFGHJKL"
	for i, c := range row2codes {
		add(c, false, string(row2[i]))
	}
	row3codes, row3 := []byte{0x2C, 0x2D, 0x2E, 0x2F, 0x30, 0x31, 0x32}, "ZXCVBNM"
	for i, c := range row3codes {
		add(c, false, string(row3[i]))
	}
	digitCodes := []byte{0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B}
	digits := "1234567890"
	for i, c := range digitCodes {
		add(c, false, string(digits[i]))
	}

	add(0x01, false, "Escape")
	add(0x0C, false, "Minus")
	add(0x0D, false, "Equal")
	add(0x0E, false, "Backspace")
	add(0x0F, false, "Tab")
	add(0x1A, false, "LeftBracket")
	add(0x1B, false, "RightBracket")
	add(0x1C, false, "Enter")
	add(0x27, false, "Semicolon")
	add(0x28, false, "Quote")
	add(0x29, false, "Grave")
	add(0x2B, false, "Backslash")
	add(0x33, false, "Comma")
	add(0x34, false, "Period")
	add(0x35, false, "Slash")
	add(0x39, false, "Space")

	for i := 0; i < 10; i++ {
		add(byte(0x3B+i), false, fmt.Sprintf("F%d", i+1))
	}
	add(0x57, false, "F11")
	add(0x58, false, "F12")

	addMod(0x1D, false, ModCtrl)
	addMod(0x2A, false, ModShift)
	addMod(0x36, false, ModShift)
	addMod(0x38, false, ModAlt)

	addMod(0x1D, true, ModCtrl)
	addMod(0x38, true, ModAlt)
	addMod(0x5B, true, ModMeta)
	addMod(0x5C, true, ModMeta)

	add(0x1C, true, "KPEnter")
	add(0x47, true, "Home")
	add(0x48, true, "Up")
	add(0x49, true, "PageUp")
	add(0x4B, true, "Left")
	add(0x4D, true, "Right")
	add(0x4F, true, "End")
	add(0x50, true, "Down")
	add(0x51, true, "PageDown")
	add(0x52, true, "Insert")
	add(0x53, true, "Delete")

	return t
}

func scancodeIndex(code byte, extended bool) uint16 {
	idx := uint16(code)
	if extended {
		idx |= 0x100
	}
	return idx
}

// HandleKeyboard feeds one raw Scan Code Set 1 byte through the
// modifier/key state machine. Side effects (shortcuts, PTY writes) land
// through the installed PtyWriter; nothing is returned to the caller.
func (e *Engine) HandleKeyboard(scancode byte) {
	if scancode == 0xE0 {
		e.pendingExtended = true
		return
	}
	extended := e.pendingExtended
	e.pendingExtended = false

	release := scancode&0x80 != 0
	code := scancode &^ 0x80
	key, ok := scancodeTable[scancodeIndex(code, extended)]
	if !ok {
		return
	}

	if key.modifierKey {
		e.setModifier(key.modifier, !release)
		return
	}
	if release {
		return
	}
	e.emitKey(key.name)
}

func (e *Engine) setModifier(mod Modifier, down bool) {
	switch mod {
	case ModShift:
		e.modShift = down
	case ModCtrl:
		e.modCtrl = down
	case ModAlt:
		e.modAlt = down
	case ModMeta:
		e.modMeta = down
	}
}

func (e *Engine) emitKey(name string) {
	mod := e.modifiers()

	if mod&ModCtrl != 0 && mod&ModShift != 0 {
		if e.tryShortcut(name) {
			return
		}
	}
	if mod&ModCtrl != 0 && len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		e.writePty([]byte{name[0] - 'A' + 1})
		return
	}

	if seq := e.encodeKey(name, mod); seq != nil {
		e.writePty(seq)
	}
}

// tryShortcut intercepts Ctrl+Shift combinations the engine handles
// itself rather than forwarding to the PTY: theme switching, scrollback
// navigation, and clipboard copy/paste.
func (e *Engine) tryShortcut(name string) bool {
	switch name {
	case "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8":
		idx := int(name[1] - '1')
		if idx < PaletteCount() {
			e.SetColorScheme(idx)
		}
		return true
	case "Up":
		e.buf.SetViewOffset(e.buf.ViewOffset() + 1)
		return true
	case "Down":
		if off := e.buf.ViewOffset(); off > 0 {
			e.buf.SetViewOffset(off - 1)
		}
		return true
	case "PageUp":
		e.buf.SetViewOffset(e.buf.ViewOffset() + e.buf.Rows())
		return true
	case "PageDown":
		off := e.buf.ViewOffset() - e.buf.Rows()
		if off < 0 {
			off = 0
		}
		e.buf.SetViewOffset(off)
		return true
	case "C":
		if e.clipboard != nil {
			_ = e.clipboard.ClipboardWrite(e.selection.Text(e.buf))
		}
		return true
	case "V":
		if e.clipboard != nil {
			if text, err := e.clipboard.ClipboardRead(); err == nil {
				e.pasteText(text)
			}
		}
		return true
	}
	return false
}

func (e *Engine) pasteText(text string) {
	if e.modes.has(ModeBracketedPaste) {
		e.writePty([]byte("\x1b[200~"))
		e.writePty([]byte(text))
		e.writePty([]byte("\x1b[201~"))
		return
	}
	e.writePty([]byte(text))
}

var usShifted = map[byte]byte{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
}

var usSymbolShifted = map[string][2]byte{
	"Minus": {'-', '_'}, "Equal": {'=', '+'},
	"LeftBracket": {'[', '{'}, "RightBracket": {']', '}'},
	"Semicolon": {';', ':'}, "Quote": {'\'', '"'},
	"Grave": {'`', '~'}, "Backslash": {'\\', '|'},
	"Comma": {',', '<'}, "Period": {'.', '>'}, "Slash": {'/', '?'},
}

// encodeKey returns the bytes a key press writes to the PTY, or nil for
// keys with no output (bare modifiers are filtered before this is
// called). Arrow keys honor DECCKM; navigation keys use xterm's CSI ~
// encoding with a trailing ";mod" when any modifier, plain Shift
// included, is held.
func (e *Engine) encodeKey(name string, mod Modifier) []byte {
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		c := name[0]
		if mod&ModShift == 0 {
			c = c - 'A' + 'a'
		}
		if mod&ModAlt != 0 {
			return []byte{0x1B, c}
		}
		return []byte{c}
	}
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		c := name[0]
		if mod&ModShift != 0 {
			c = usShifted[c]
		}
		return []byte{c}
	}
	if pair, ok := usSymbolShifted[name]; ok {
		c := pair[0]
		if mod&ModShift != 0 {
			c = pair[1]
		}
		return []byte{c}
	}

	switch name {
	case "Space":
		return []byte{' '}
	case "Enter", "KPEnter":
		return []byte{'\r'}
	case "Backspace":
		return []byte{0x7F}
	case "Tab":
		if mod&ModShift != 0 {
			return []byte("\x1b[Z")
		}
		return []byte{'\t'}
	case "Escape":
		return []byte{0x1B}
	case "Up", "Down", "Right", "Left":
		return e.encodeArrow(name, mod)
	case "Home":
		return e.encodeNav("1", mod)
	case "Insert":
		return e.encodeNav("2", mod)
	case "Delete":
		return e.encodeNav("3", mod)
	case "End":
		return e.encodeNav("4", mod)
	case "PageUp":
		return e.encodeNav("5", mod)
	case "PageDown":
		return e.encodeNav("6", mod)
	case "F1", "F2", "F3", "F4":
		letter := byte('P' + (name[1] - '1'))
		return []byte{0x1B, 'O', letter}
	case "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12":
		codes := map[string]string{"F5": "15", "F6": "17", "F7": "18", "F8": "19", "F9": "20", "F10": "21", "F11": "23", "F12": "24"}
		return e.encodeNav(codes[name], mod)
	}
	return nil
}

func (e *Engine) encodeArrow(name string, mod Modifier) []byte {
	letter := map[string]byte{"Up": 'A', "Down": 'B', "Right": 'C', "Left": 'D'}[name]
	if mod != 0 {
		return []byte(fmt.Sprintf("\x1b[1;%d%c", modifierParam(mod), letter))
	}
	if e.modes.has(ModeAppCursorKeys) {
		return []byte{0x1B, 'O', letter}
	}
	return []byte{0x1B, '[', letter}
}

func (e *Engine) encodeNav(code string, mod Modifier) []byte {
	if mod != 0 {
		return []byte(fmt.Sprintf("\x1b[%s;%d~", code, modifierParam(mod)))
	}
	return []byte(fmt.Sprintf("\x1b[%s~", code))
}

// modifierParam encodes a modifier bitmask into xterm's 1+bitmask
// convention (2=Shift, 3=Alt, 5=Ctrl, combinations add).
func modifierParam(mod Modifier) int {
	p := 1
	if mod&ModShift != 0 {
		p += 1
	}
	if mod&ModAlt != 0 {
		p += 2
	}
	if mod&ModCtrl != 0 {
		p += 4
	}
	return p
}
