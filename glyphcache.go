package vtcore

import "container/list"

// GlyphKey identifies a cached rasterization.
type GlyphKey struct {
	Codepoint rune
	Bold      bool
	Italic    bool
}

const defaultGlyphCacheCap = 4096

// glyphCache is an LRU cache of rasterized glyphs, bounded by a soft
// entry cap and cleared whole whenever the font manager changes.
type glyphCache struct {
	cap     int
	entries map[GlyphKey]*list.Element
	order   *list.List // front = most recently used
	font    FontManager
}

type glyphCacheEntry struct {
	key   GlyphKey
	glyph Glyph
}

func newGlyphCache(cap int) *glyphCache {
	if cap <= 0 {
		cap = defaultGlyphCacheCap
	}
	return &glyphCache{cap: cap, entries: make(map[GlyphKey]*list.Element), order: list.New()}
}

// setFont installs a font manager and drops every cached entry, since
// glyph bitmaps from a different font (or size) are meaningless.
func (c *glyphCache) setFont(f FontManager) {
	c.font = f
	c.entries = make(map[GlyphKey]*list.Element)
	c.order.Init()
}

// get rasterizes (and caches) the glyph for key, or the zero Glyph if no
// font manager is installed.
func (c *glyphCache) get(key GlyphKey) Glyph {
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*glyphCacheEntry).glyph
	}
	if c.font == nil {
		return Glyph{}
	}
	g := c.font.Rasterize(key.Codepoint, key.Bold, key.Italic)
	el := c.order.PushFront(&glyphCacheEntry{key: key, glyph: g})
	c.entries[key] = el
	if c.order.Len() > c.cap {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*glyphCacheEntry).key)
		}
	}
	return g
}
