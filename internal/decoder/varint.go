package decoder

// varintStream walks a buffer of variable-length signed integers. The
// encoding packs 6 magnitude bits, a sign flag (bit 6) and a continuation
// flag (bit 7) into the first byte, then 7 magnitude bits plus a
// continuation flag per following byte, least significant chunk first.
type varintStream struct {
	buf []byte
	pos int
}

// reset binds the stream to a new buffer and rewinds the cursor.
func (s *varintStream) reset(buf []byte) {
	s.buf = buf
	s.pos = 0
}

// seek moves the cursor to an absolute byte offset.
func (s *varintStream) seek(off int) {
	s.pos = off
}

// remaining reports the number of unread bytes.
func (s *varintStream) remaining() int {
	return len(s.buf) - s.pos
}

// read decodes the varint at the cursor and advances past it.
func (s *varintStream) read() (int64, error) {
	if s.pos >= len(s.buf) {
		return 0, &ErrTruncatedStream{Offset: s.pos}
	}
	b := s.buf[s.pos]
	s.pos++

	magnitude := int64(b & 0x3f)
	negative := b&0x40 != 0
	shift := uint(6)

	for b&0x80 != 0 {
		if s.pos >= len(s.buf) {
			return 0, &ErrTruncatedStream{Offset: s.pos}
		}
		b = s.buf[s.pos]
		s.pos++
		magnitude |= int64(b&0x7f) << shift
		shift += 7
	}

	if negative {
		return -magnitude, nil
	}
	return magnitude, nil
}
