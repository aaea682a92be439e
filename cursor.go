package vtcore

// CursorShape selects how the renderer draws the cursor cell.
type CursorShape uint8

const (
	CursorBlock CursorShape = iota
	CursorUnderline
	CursorBar
)

// Style is the pen applied to newly written cells: the SGR state.
type Style struct {
	Foreground Color
	Background Color
	Flags      CellFlags
}

// defaultStyle is the SGR-reset pen.
func defaultStyle() Style {
	return Style{Foreground: DefaultFg, Background: DefaultBg}
}

// asCell turns the current pen plus a codepoint into a storable Cell.
func (s Style) asCell(r rune) Cell {
	return Cell{Codepoint: r, Foreground: s.Foreground, Background: s.Background, Flags: s.Flags &^ cursorFlags}
}

// Cursor is the engine's notion of where the next character goes and
// how it will look, plus presentation state (shape/visibility).
type Cursor struct {
	Row, Col    int
	Style       Style
	Shape       CursorShape
	Blinking    bool
	Visible     bool
	WrapPending bool // cursor is past the last column but hasn't wrapped yet
}

func newCursor() Cursor {
	return Cursor{Style: defaultStyle(), Visible: true}
}

// SavedCursor is a DECSC/DECRC snapshot, kept one per screen buffer.
type SavedCursor struct {
	Row, Col   int
	Style      Style
	Charset    charsetIndex
	OriginMode bool
}

func (c Cursor) save(charset charsetIndex, origin bool) SavedCursor {
	return SavedCursor{Row: c.Row, Col: c.Col, Style: c.Style, Charset: charset, OriginMode: origin}
}
