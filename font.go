package vtcore

// Glyph is a rasterized character: a per-pixel alpha grid (0 = fully
// background, 255 = fully foreground) plus how many grid columns it
// occupies (1 or 2, for double-width CJK glyphs).
type Glyph struct {
	Alpha      [][]uint8 // Alpha[y][x], up to line-height rows of WidthCells*advance columns; nil for a blank glyph
	WidthCells int
}

// FontManager is the host-supplied glyph rasterizer. It is the only
// source of pixel dimensions: the engine computes its grid size in
// cells by dividing the draw target's pixel size by (Advance,
// LineHeight) once a FontManager is installed.
type FontManager interface {
	// Size returns the pixel advance of one cell column and the pixel
	// height of one row.
	Size() (advance, lineHeight int)
	// Rasterize returns the alpha bitmap for a codepoint in the given
	// style. Implementations should fall back to a replacement glyph for
	// codepoints they can't render rather than returning nil.
	Rasterize(codepoint rune, bold, italic bool) Glyph
}
