package sdeshape

import "github.com/beetlebugorg/sdeshape/internal/decoder"

// Error types surfaced by Decode. Each failure mode has its own type with
// the offending values attached, so callers can match with errors.As and
// report precisely:
//
//	var lenErr *sdeshape.ErrLengthMismatch
//	if errors.As(err, &lenErr) {
//	    log.Printf("declared %d, got %d", lenErr.Declared, lenErr.Actual)
//	}
type (
	// ErrInvalidHeader reports a length varint wider than six bytes.
	ErrInvalidHeader = decoder.ErrInvalidHeader

	// ErrLengthMismatch reports a declared payload length that disagrees
	// with the buffer size.
	ErrLengthMismatch = decoder.ErrLengthMismatch

	// ErrUnsupportedDimension reports a stream carrying Z or M values.
	ErrUnsupportedDimension = decoder.ErrUnsupportedDimension

	// ErrUnsupportedGeometryType reports a type code with no decode path.
	ErrUnsupportedGeometryType = decoder.ErrUnsupportedGeometryType

	// ErrTruncatedStream reports a varint cut off by the end of the buffer.
	ErrTruncatedStream = decoder.ErrTruncatedStream

	// ErrMalformedPointStream reports an odd or undersized value count.
	ErrMalformedPointStream = decoder.ErrMalformedPointStream

	// ErrTrailingBytes reports leftover bytes after a point's coordinates.
	ErrTrailingBytes = decoder.ErrTrailingBytes

	// ErrUnclosedRing reports a ring that never returns to its start.
	ErrUnclosedRing = decoder.ErrUnclosedRing

	// ErrTrailingRingData reports leftover coordinates after the final
	// ring, too few to begin another.
	ErrTrailingRingData = decoder.ErrTrailingRingData
)
