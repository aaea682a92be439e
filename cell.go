package vtcore

import "github.com/mattn/go-runewidth"

// CellFlags is a bitfield of per-cell rendering attributes.
type CellFlags uint16

const (
	FlagBold CellFlags = 1 << iota
	FlagItalic
	FlagUnderline
	FlagStrikethrough
	FlagInverse
	FlagHidden
	FlagWideLead      // this cell holds the first column of a double-width glyph
	FlagWideTrail     // this cell is the blank continuation of a wide-lead
	FlagCursorBlock   // cursor is drawn here as a filled block
	FlagCursorUnder   // cursor is drawn here as an underline
	FlagCursorBeam    // cursor is drawn here as a vertical bar
)

func (f CellFlags) has(bit CellFlags) bool { return f&bit != 0 }

// cursorFlags isolates the three cursor-shape bits, which are cleared
// and reapplied every render pass rather than persisted with the cell.
const cursorFlags = FlagCursorBlock | FlagCursorUnder | FlagCursorBeam

// Cell is one glyph position in the grid: a codepoint plus its style.
// A zero-value Cell is a blank with codepoint 0.
type Cell struct {
	Codepoint  rune
	Foreground Color
	Background Color
	Flags      CellFlags
}

// blankCell returns a Cell carrying no glyph but the given style, used
// to fill rows on clear/scroll/insert so the new space takes on the
// cursor's current background (matches xterm's "erase with current
// attributes" behavior).
func blankCell(style Cell) Cell {
	return Cell{Foreground: style.Foreground, Background: style.Background}
}

// runeWidth returns 1 or 2: the number of grid columns a printable
// codepoint occupies. Combining marks and most control/format
// characters report 0 from go-runewidth; runeWidth reports those as 1,
// so they take a cell of their own rather than being dropped, since
// full grapheme clustering is out of scope.
func runeWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}
