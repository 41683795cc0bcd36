package pagemap

import "testing"

func TestMapSetLookup(t *testing.T) {
	var m Map
	m.Set('A', 0x81)
	m.Set('ß', 0x03)
	if v := m.Lookup('A'); v != 0x81 {
		t.Fatalf("Lookup('A') = %#x, want 0x81", v)
	}
	if v := m.Lookup('ß'); v != 0x03 {
		t.Fatalf("Lookup('ß') = %#x, want 0x03", v)
	}
	if v := m.Lookup('B'); v != 0 {
		t.Fatalf("Lookup('B') = %#x, want 0", v)
	}
	if m.NumPages() != 1 {
		t.Fatalf("expected 1 page (A and ß share the first page), got %d", m.NumPages())
	}
}

func TestMapIgnoresNonBMP(t *testing.T) {
	var m Map
	if m.Set('😀', 1) {
		t.Fatalf("expected Set to reject a non-BMP rune")
	}
	if v := m.Lookup('😀'); v != 0 {
		t.Fatalf("non-BMP lookup should yield 0, got %#x", v)
	}
	if v := m.Lookup(-1); v != 0 {
		t.Fatalf("negative rune lookup should yield 0, got %#x", v)
	}
}

func TestMapClearDoesNotAllocate(t *testing.T) {
	var m Map
	m.Set('中', 0)
	if m.NumPages() != 0 {
		t.Fatalf("clearing an absent entry allocated %d pages", m.NumPages())
	}
}

func TestMapOr(t *testing.T) {
	var m Map
	m.SetString("BDG", 0x20)
	m.Or("DG", 0x08)
	m.Or("G", 0x10)
	tests := []struct {
		r    rune
		want uint8
	}{
		{'B', 0x20},
		{'D', 0x28},
		{'G', 0x38},
		{'Z', 0x00},
	}
	for _, tt := range tests {
		if got := m.Lookup(tt.r); got != tt.want {
			t.Fatalf("Lookup(%q) = %#x, want %#x", tt.r, got, tt.want)
		}
	}
}
