package vtcore

import "strings"

// SelectionMode distinguishes how a mouse drag's endpoints bound the
// selected text.
type SelectionMode uint8

const (
	SelectionNone SelectionMode = iota
	SelectionNormal                // runs start-to-end across wrapped lines
	SelectionLine                  // whole lines between start and end
	SelectionBlock                 // rectangular column range on each row
)

// Selection is a mouse-drag text selection. Anchor and End are absolute
// row coordinates (see Buffer.AbsoluteRowCount), not screen-relative, so
// the selection stays put as the user scrolls the viewport.
type Selection struct {
	Mode               SelectionMode
	AnchorRow, AnchorCol int
	EndRow, EndCol       int
}

// Active reports whether a selection is in progress or completed.
func (s Selection) Active() bool { return s.Mode != SelectionNone }

// ordered returns the anchor/end pair with the earlier point first.
func (s Selection) ordered() (startRow, startCol, endRow, endCol int) {
	if s.AnchorRow < s.EndRow || (s.AnchorRow == s.EndRow && s.AnchorCol <= s.EndCol) {
		return s.AnchorRow, s.AnchorCol, s.EndRow, s.EndCol
	}
	return s.EndRow, s.EndCol, s.AnchorRow, s.AnchorCol
}

// Text materializes the selection against buf into a plain string,
// trimming trailing blanks from each line. In normal mode wrapped rows
// are joined without an inserted newline; line and block modes put a
// newline between every pair of rows.
func (s Selection) Text(buf *Buffer) string {
	if !s.Active() {
		return ""
	}
	startRow, startCol, endRow, endCol := s.ordered()
	var b strings.Builder

	switch s.Mode {
	case SelectionBlock:
		left, right := startCol, endCol
		if left > right {
			left, right = right, left
		}
		for row := startRow; row <= endRow; row++ {
			if row > startRow {
				b.WriteByte('\n')
			}
			b.WriteString(rowText(buf, row, left, right))
		}
	case SelectionLine:
		for row := startRow; row <= endRow; row++ {
			if row > startRow {
				b.WriteByte('\n')
			}
			b.WriteString(rowText(buf, row, 0, buf.Cols()-1))
		}
	default: // SelectionNormal
		for row := startRow; row <= endRow; row++ {
			left, right := 0, buf.Cols()-1
			if row == startRow {
				left = startCol
			}
			if row == endRow {
				right = endCol
			}
			b.WriteString(rowText(buf, row, left, right))
			if row < endRow && !buf.RowWrappedAbsolute(row) {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func rowText(buf *Buffer, row, left, right int) string {
	var b strings.Builder
	for col := left; col <= right && col < buf.Cols(); col++ {
		c := buf.ReadAbsolute(row, col)
		if c.Flags.has(FlagWideTrail) {
			continue
		}
		if c.Codepoint == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(c.Codepoint)
	}
	return strings.TrimRight(b.String(), " ")
}
