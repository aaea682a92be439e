package vtcore

// Modes is a bitset of terminal modes toggled by DECSET/DECRST and by
// Engine setters such as SetAutoCRNL. ANSI (non-private) set/reset-mode
// sequences are not handled.
type Modes uint32

const (
	ModeOriginMode   Modes = 1 << iota // DECOM: cursor addressing relative to scroll region
	ModeAutowrap                       // DECAWM: printing past last column wraps
	ModeCursorVisible                  // DECTCEM
	ModeInsert                        // IRM: insert vs replace
	ModeAutoCRLF                       // LNM: linefeed also performs carriage return
	ModeBracketedPaste                 // 2004
	ModeAlternateScreen                // 1049 (tracked here for quick queries; Buffer.InAlternate is authoritative)
	ModeAppCursorKeys                  // DECCKM: application vs normal cursor-key encoding
)

// defaultModes matches xterm's power-on defaults: autowrap and cursor
// visibility on, everything else off.
func defaultModes() Modes {
	return ModeAutowrap | ModeCursorVisible
}

func (m Modes) has(bit Modes) bool { return m&bit != 0 }

// MouseReportMode selects which mouse events get reported at all.
type MouseReportMode uint8

const (
	MouseReportOff MouseReportMode = iota
	MouseReportX10                 // 9: press-only, no modifiers
	MouseReportNormal              // 1000: press+release
	MouseReportButtonEvent         // 1002: press+release+motion; every motion event is reported, held button or not
	MouseReportAnyEvent            // 1003: all motion, even with no button held
)

// MouseEncoding selects the wire format of mouse reports.
type MouseEncoding uint8

const (
	MouseEncodingDefault MouseEncoding = iota // legacy X10 byte encoding
	MouseEncodingSGR                          // 1006: CSI < ... M/m
)
