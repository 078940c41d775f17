package buf

// Cursor walks a byte slice strictly front to back. Every read either
// consumes exactly the bytes it decodes or fails without moving.
type Cursor struct {
	b   []byte
	off int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Offset reports how many bytes have been consumed.
func (c *Cursor) Offset() int { return c.off }

// Len reports how many bytes remain.
func (c *Cursor) Len() int { return len(c.b) - c.off }

// Take consumes the next n bytes.
func (c *Cursor) Take(n int) ([]byte, bool) {
	s, ok := Slice(c.b, c.off, n)
	if !ok {
		return nil, false
	}
	c.off += n
	return s, true
}

// U32LE consumes a little-endian uint32.
func (c *Cursor) U32LE() (uint32, bool) {
	s, ok := c.Take(4)
	if !ok {
		return 0, false
	}
	return U32LE(s), true
}

// U64LE consumes a little-endian uint64.
func (c *Cursor) U64LE() (uint64, bool) {
	s, ok := c.Take(8)
	if !ok {
		return 0, false
	}
	return U64LE(s), true
}

// Rest consumes and returns everything left.
func (c *Cursor) Rest() []byte {
	s := c.b[c.off:]
	c.off = len(c.b)
	return s
}
