package decoder

import (
	"fmt"
)

// ErrTruncatedStream indicates a varint's continuation chain ran past the end of the buffer
type ErrTruncatedStream struct {
	Offset int
}

func (e *ErrTruncatedStream) Error() string {
	return fmt.Sprintf("truncated stream: varint continues past end of buffer at offset %d", e.Offset)
}

// ErrInvalidHeader indicates the length varint decoded outside its 1-6 byte width bound
type ErrInvalidHeader struct {
	Width int
}

func (e *ErrInvalidHeader) Error() string {
	return fmt.Sprintf("invalid header: length varint occupies %d bytes (expected 1 to 6)", e.Width)
}

// ErrLengthMismatch indicates the declared payload length disagrees with the buffer size
type ErrLengthMismatch struct {
	Declared int64
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: header declares %d payload bytes, buffer provides %d", e.Declared, e.Actual)
}

// ErrUnsupportedDimension indicates the stream carries Z or M values, which this decoder rejects
type ErrUnsupportedDimension struct {
	Mask byte
}

func (e *ErrUnsupportedDimension) Error() string {
	return fmt.Sprintf("unsupported dimension mask 0x%02x: Z and M coordinates are not supported", e.Mask)
}

// ErrUnsupportedGeometryType indicates a type code with no decode path
type ErrUnsupportedGeometryType struct {
	Type GeometryType
}

func (e *ErrUnsupportedGeometryType) Error() string {
	return fmt.Sprintf("unsupported geometry type code %d", int(e.Type))
}

// ErrMalformedPointStream indicates a coordinate stream with an odd value count or too few values
type ErrMalformedPointStream struct {
	Count int
	Min   int
}

func (e *ErrMalformedPointStream) Error() string {
	if e.Count%2 != 0 {
		return fmt.Sprintf("malformed point stream: odd value count %d", e.Count)
	}
	return fmt.Sprintf("malformed point stream: %d values, need at least %d", e.Count, e.Min)
}

// ErrTrailingBytes indicates unread bytes left after a point's two coordinates
type ErrTrailingBytes struct {
	Remaining int
}

func (e *ErrTrailingBytes) Error() string {
	return fmt.Sprintf("trailing bytes: %d unread after point coordinates", e.Remaining)
}

// ErrUnclosedRing indicates the closure scan exhausted the coordinate stream
// without finding a return to the ring's start
type ErrUnclosedRing struct {
	Start int
}

func (e *ErrUnclosedRing) Error() string {
	return fmt.Sprintf("unclosed ring: no closure found for ring starting at coordinate %d", e.Start)
}

// ErrTrailingRingData indicates leftover coordinates after the final ring,
// too few to begin another ring
type ErrTrailingRingData struct {
	Remaining int
}

func (e *ErrTrailingRingData) Error() string {
	return fmt.Sprintf("trailing ring data: %d leftover values after final ring", e.Remaining)
}
