// Package hostfont provides a minimal built-in FontManager for vtcore,
// the kind of compact placeholder bitmap font a kernel or firmware
// console ships before (or instead of) linking a real rasterizer.
// Nothing in the example corpus does pixel-level glyph rasterization,
// so unlike every other host adapter package this one has no
// third-party library to build on; it is deliberately small.
package hostfont

import "github.com/kernelterm/vtcore"

// Bitmap is a fixed-size monospace FontManager. Digits render as
// seven-segment strokes; everything else renders as a simple outline
// box so every printable codepoint produces a visibly distinct,
// legible-enough glyph without requiring font data tables.
type Bitmap struct {
	advance    int
	lineHeight int
}

// New creates a Bitmap font with the given cell pixel size. Typical
// bare-metal consoles use something in the 8x16 range.
func New(advance, lineHeight int) *Bitmap {
	if advance < 4 {
		advance = 8
	}
	if lineHeight < 6 {
		lineHeight = 16
	}
	return &Bitmap{advance: advance, lineHeight: lineHeight}
}

func (b *Bitmap) Size() (advance, lineHeight int) { return b.advance, b.lineHeight }

func (b *Bitmap) Rasterize(codepoint rune, bold, italic bool) vtcore.Glyph {
	if codepoint == 0 || codepoint == ' ' {
		return vtcore.Glyph{WidthCells: 1}
	}

	width := b.advance
	widthCells := 1
	wide := isWide(codepoint)
	if wide {
		width *= 2
		widthCells = 2
	}
	alpha := make([][]uint8, b.lineHeight)
	for y := range alpha {
		alpha[y] = make([]uint8, width)
	}

	weight := uint8(170)
	if bold {
		weight = 255
	}

	if codepoint >= '0' && codepoint <= '9' {
		drawSevenSegment(alpha, width, b.lineHeight, int(codepoint-'0'), weight)
	} else {
		drawOutline(alpha, width, b.lineHeight, weight, italic)
	}

	return vtcore.Glyph{Alpha: alpha, WidthCells: widthCells}
}

// isWide is a coarse east-asian-width heuristic good enough for a
// placeholder font: the real width decision lives in vtcore's own
// go-runewidth-backed runeWidth, this only affects how big a box to
// draw for the fallback glyph.
func isWide(r rune) bool {
	return r >= 0x1100 && r <= 0x115F ||
		r >= 0x2E80 && r <= 0xA4CF ||
		r >= 0xAC00 && r <= 0xD7A3 ||
		r >= 0xF900 && r <= 0xFAFF ||
		r >= 0xFF00 && r <= 0xFF60
}

// segmentTable[d] is which of the 7 segments (a..g, clockwise from top)
// are lit for digit d, in the classic seven-segment layout.
var segmentTable = [10][7]bool{
	0: {true, true, true, true, true, true, false},
	1: {false, true, true, false, false, false, false},
	2: {true, true, false, true, true, false, true},
	3: {true, true, true, true, false, false, true},
	4: {false, true, true, false, false, true, true},
	5: {true, false, true, true, false, true, true},
	6: {true, false, true, true, true, true, true},
	7: {true, true, true, false, false, false, false},
	8: {true, true, true, true, true, true, true},
	9: {true, true, true, true, false, true, true},
}

func drawSevenSegment(alpha [][]uint8, width, height int, digit int, weight uint8) {
	segs := segmentTable[digit]
	left, right := width/6, width-width/6
	top, mid, bottom := height/8, height/2, height-height/8
	thickness := max(1, height/10)

	hLine := func(y, x0, x1 int) {
		for dy := -thickness / 2; dy <= thickness/2; dy++ {
			if y+dy < 0 || y+dy >= height {
				continue
			}
			for x := x0; x <= x1 && x < width; x++ {
				if x >= 0 {
					alpha[y+dy][x] = weight
				}
			}
		}
	}
	vLine := func(x, y0, y1 int) {
		for dx := -thickness / 2; dx <= thickness/2; dx++ {
			if x+dx < 0 || x+dx >= width {
				continue
			}
			for y := y0; y <= y1 && y < height; y++ {
				if y >= 0 {
					alpha[y][x+dx] = weight
				}
			}
		}
	}

	if segs[0] {
		hLine(top, left, right)
	} // a: top
	if segs[1] {
		vLine(right, top, mid)
	} // b: top-right
	if segs[2] {
		vLine(right, mid, bottom)
	} // c: bottom-right
	if segs[3] {
		hLine(bottom, left, right)
	} // d: bottom
	if segs[4] {
		vLine(left, mid, bottom)
	} // e: bottom-left
	if segs[5] {
		vLine(left, top, mid)
	} // f: top-left
	if segs[6] {
		hLine(mid, left, right)
	} // g: middle
}

func drawOutline(alpha [][]uint8, width, height int, weight uint8, slant bool) {
	margin := max(1, width/8)
	top, bottom := height/8, height-height/8
	left, right := margin, width-1-margin
	for x := left; x <= right; x++ {
		shift := 0
		if slant {
			shift = (height - top) / 4
		}
		alpha[top][clampX(x, width)] = weight
		alpha[bottom][clampX(x-shift, width)] = weight
	}
	for y := top; y <= bottom; y++ {
		shift := 0
		if slant {
			shift = (bottom - y) / 4
		}
		alpha[y][clampX(left+shift, width)] = weight
		alpha[y][clampX(right+shift, width)] = weight
	}
}

func clampX(x, width int) int {
	if x < 0 {
		return 0
	}
	if x >= width {
		return width - 1
	}
	return x
}

var _ vtcore.FontManager = (*Bitmap)(nil)
