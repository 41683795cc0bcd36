package pagemap

// Map maps BMP code units (0..65535) to small feature values (uint8).
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Lookup is O(1) with two array reads and a couple of ops. Code points
// outside the BMP and code units on absent pages map to 0.
//
// Memory:
//   - Top: 256 * 2 = 512 bytes
//   - Each populated page: 256 bytes
//
// A Map is written during construction only. After that it may be read
// concurrently without locking.
type Map struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint8     // flat: NumPages*256
}

// Lookup returns the value stored for r, or 0 if absent.
func (m *Map) Lookup(r rune) uint8 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	bmp := uint16(r)
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.Pages[base+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *Map) NumPages() int { return len(m.Pages) >> 8 }

// EnsurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (m *Map) EnsurePage(hi uint8) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	m.Pages = append(m.Pages, make([]uint8, 256)...)
	pi = uint16(len(m.Pages) >> 8) // number of pages, 1-based index
	m.Top[hi] = pi
	return pi
}

// Set sets mapping r -> v (v may be 0 to clear). Runes outside the BMP
// are ignored and Set reports false for them.
func (m *Map) Set(r rune, v uint8) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	bmp := uint16(r)
	hi := uint8(bmp >> 8)
	pi := m.Top[hi]
	if pi == 0 {
		if v == 0 {
			return true
		}
		pi = m.EnsurePage(hi)
	}
	base := int(pi-1) << 8
	m.Pages[base+int(bmp&0xFF)] = v
	return true
}

// SetString sets mapping r -> v for every rune of s.
func (m *Map) SetString(s string, v uint8) {
	for _, r := range s {
		m.Set(r, v)
	}
}

// Or merges v into the value stored for every rune of s.
func (m *Map) Or(s string, v uint8) {
	for _, r := range s {
		m.Set(r, m.Lookup(r)|v)
	}
}
