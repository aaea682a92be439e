package vtcore

import "testing"

func TestResolvePaletteCubeCornersMatchXterm(t *testing.T) {
	r := resolvePalette(BuiltinPalette(PaletteVGA))
	if got := r.cube[16]; got != (RGB{0, 0, 0}) {
		t.Errorf("cube[16] (0,0,0 corner) = %v, want black", got)
	}
	if got := r.cube[231]; got != (RGB{255, 255, 255}) {
		t.Errorf("cube[231] (5,5,5 corner) = %v, want {255 255 255}", got)
	}
}

func TestResolvePaletteGreyscaleRamp(t *testing.T) {
	r := resolvePalette(BuiltinPalette(PaletteDark))
	if got := r.cube[232]; got != (RGB{8, 8, 8}) {
		t.Errorf("cube[232] = %v, want {8 8 8}", got)
	}
	if got := r.cube[255]; got != (RGB{238, 238, 238}) {
		t.Errorf("cube[255] = %v, want {238 238 238}", got)
	}
}

func TestLookupBoldSelectsBrightSibling(t *testing.T) {
	r := resolvePalette(BuiltinPalette(PaletteVGA))
	plain := r.lookup(StandardColor(1), false)
	bright := r.lookup(StandardColor(1), true)
	if plain != r.ansi[1] {
		t.Errorf("lookup(red, false) = %v, want ansi[1]", plain)
	}
	if bright != r.ansi[9] {
		t.Errorf("lookup(red, true) = %v, want ansi[9] (bright red)", bright)
	}
}

func TestLookupBoldHasNoEffectOnAlreadyBrightColors(t *testing.T) {
	r := resolvePalette(BuiltinPalette(PaletteVGA))
	got := r.lookup(StandardColor(9), true)
	if got != r.ansi[9] {
		t.Errorf("lookup(bright red, true) = %v, want ansi[9] unchanged", got)
	}
}

func TestLookupIndexedIgnoresBold(t *testing.T) {
	r := resolvePalette(BuiltinPalette(PaletteDark))
	plain := r.lookup(IndexedColor(200), false)
	bold := r.lookup(IndexedColor(200), true)
	if plain != bold {
		t.Errorf("indexed color lookup differs with bold: %v vs %v", plain, bold)
	}
}

func TestLookupBgDefaultUsesPaletteBackground(t *testing.T) {
	p := BuiltinPalette(PaletteTango)
	r := resolvePalette(p)
	if got := r.lookupBg(DefaultBg); got != p.Background {
		t.Errorf("lookupBg(default) = %v, want palette background %v", got, p.Background)
	}
}

func TestBuiltinPaletteOutOfRangeFallsBackToDark(t *testing.T) {
	got := BuiltinPalette(999)
	want := BuiltinPalette(PaletteDark)
	if got.Name != want.Name {
		t.Errorf("BuiltinPalette(999).Name = %q, want %q", got.Name, want.Name)
	}
}

func TestPaletteCountMatchesBuiltinSet(t *testing.T) {
	if PaletteCount() != 8 {
		t.Errorf("PaletteCount() = %d, want 8", PaletteCount())
	}
}
