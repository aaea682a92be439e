package vtcore

import "testing"

func TestBufferScrollbackEvictionBound(t *testing.T) {
	b := NewBuffer(10, 4, 3)
	for i := 0; i < 10; i++ {
		b.Write(3, 0, Cell{Codepoint: rune('a' + i)})
		b.ScrollUp(Region{Top: 0, Bottom: 3}, 1, Cell{})
		if got := b.ScrollbackLen(); got > 3 {
			t.Fatalf("scrollback len %d exceeds capacity 3 after %d scrolls", got, i+1)
		}
	}
	if got := b.ScrollbackLen(); got != 3 {
		t.Errorf("scrollback len = %d, want 3 (full)", got)
	}
}

func TestBufferAlternateScreenRoundTrip(t *testing.T) {
	b := NewBuffer(5, 3, 10)
	b.Write(0, 0, Cell{Codepoint: 'X'})
	b.Write(1, 2, Cell{Codepoint: 'Y'})
	b.ClearRowDirty(0)
	b.ClearRowDirty(1)
	b.ClearRowDirty(2)

	b.SwitchToAlternate(Cell{})
	b.Write(0, 0, Cell{Codepoint: 'Z'}) // writes land on the alt screen only
	b.SwitchToPrimary()

	if got := b.Read(0, 0); got.Codepoint != 'X' {
		t.Errorf("primary (0,0) = %q after alt round-trip, want 'X'", got.Codepoint)
	}
	if got := b.Read(1, 2); got.Codepoint != 'Y' {
		t.Errorf("primary (1,2) = %q after alt round-trip, want 'Y'", got.Codepoint)
	}
	if b.IsRowDirty(0) || b.IsRowDirty(1) {
		t.Error("unchanged primary rows became dirty across an alternate-screen round trip")
	}
	if b.ScrollbackLen() != 0 {
		t.Errorf("scrollback len = %d, want 0: alternate screen must never contribute history", b.ScrollbackLen())
	}
}

func TestBufferScrollUpPushesFullRegionToHistory(t *testing.T) {
	b := NewBuffer(4, 3, 10)
	b.Write(0, 0, Cell{Codepoint: 'A'})
	b.ScrollUp(Region{Top: 0, Bottom: 2}, 1, Cell{})
	if b.ScrollbackLen() != 1 {
		t.Fatalf("ScrollbackLen() = %d, want 1", b.ScrollbackLen())
	}
}

func TestBufferScrollUpPartialRegionSkipsHistory(t *testing.T) {
	b := NewBuffer(4, 5, 10)
	b.Write(0, 0, Cell{Codepoint: 'A'})
	b.ScrollUp(Region{Top: 0, Bottom: 2}, 1, Cell{}) // region is not the full buffer
	if b.ScrollbackLen() != 0 {
		t.Errorf("ScrollbackLen() = %d, want 0: a partial-height scroll region must not leak into history", b.ScrollbackLen())
	}
}

func TestBufferScrollDownNeverTouchesHistory(t *testing.T) {
	b := NewBuffer(4, 3, 10)
	b.ScrollDown(Region{Top: 0, Bottom: 2}, 1, Cell{})
	if b.ScrollbackLen() != 0 {
		t.Errorf("ScrollbackLen() = %d, want 0 after ScrollDown", b.ScrollbackLen())
	}
}

func TestBufferResizeHistoryRetainsMostRecent(t *testing.T) {
	b := NewBuffer(4, 2, 10)
	for i := 0; i < 5; i++ {
		b.Write(1, 0, Cell{Codepoint: rune('0' + i)})
		b.ScrollUp(Region{Top: 0, Bottom: 1}, 1, Cell{})
	}
	b.ResizeHistory(2)
	if got := b.ScrollbackLen(); got != 2 {
		t.Fatalf("ScrollbackLen() = %d, want 2", got)
	}
}
