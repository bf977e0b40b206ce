// Package decoder implements the compressed binary geometry stream format
// used by SDE shape columns: an 8-byte header carrying a length varint and
// a dimension mask, followed by a delta-encoded coordinate payload. Streams
// never identify their own geometry type; the caller supplies it from the
// layer metadata the row came from.
package decoder

import (
	geom "github.com/twpayne/go-geom"
)

// GeometryType selects the decode path for a stream. The values are the
// format's entity type codes.
type GeometryType int

const (
	GeometryTypePoint      GeometryType = 1
	GeometryTypeLineString GeometryType = 4
	GeometryTypePolygon    GeometryType = 8

	// GeometryTypeMultiPolygon is the polygon code with the multipart
	// flag (256) set.
	GeometryTypeMultiPolygon GeometryType = 264
)

const (
	headerSize     = 8 // payload always begins at this offset
	dimensionByte  = 5 // header index of the Z/M dimension mask
	maxLengthWidth = 6 // widest legal length varint

	dimensionZ = 0x01
	dimensionM = 0x02

	// Linestrings and polygon rings need at least two coordinate pairs.
	minLineValues    = 4
	minPolygonValues = 4
)

// Decoder decodes geometry streams written against a single coordinate
// system.
//
// A Decoder owns reusable scratch state (the varint cursor and the raw
// integer buffer) that is reset at the start of every Decode, so a single
// Decoder must not be shared between goroutines without external
// synchronization. Give each worker its own.
type Decoder struct {
	cs     CoordinateSystem
	stream varintStream
	raw    []int64
}

// New returns a Decoder for streams written against cs.
func New(cs CoordinateSystem) *Decoder {
	return &Decoder{cs: cs}
}

// CoordinateSystem returns the system the decoder rescales into.
func (d *Decoder) CoordinateSystem() CoordinateSystem {
	return d.cs
}

// Decode validates the stream header and decodes the payload as typ.
//
// The header occupies bytes 0-7: a length varint starting at byte 0 and
// declaring the payload size in bytes, the dimension mask at byte 5, and
// padding up to the payload at byte 8. A length varint wider than 6 bytes
// is rejected before the declared length is trusted.
func (d *Decoder) Decode(typ GeometryType, buf []byte) (geom.T, error) {
	d.stream.reset(buf)
	d.raw = d.raw[:0]

	declared, err := d.stream.read()
	if err != nil {
		return nil, err
	}
	if width := d.stream.pos; width > maxLengthWidth {
		return nil, &ErrInvalidHeader{Width: width}
	}
	if declared < 0 || declared != int64(len(buf)-headerSize) {
		return nil, &ErrLengthMismatch{Declared: declared, Actual: len(buf) - headerSize}
	}
	if mask := buf[dimensionByte]; mask&(dimensionZ|dimensionM) != 0 {
		return nil, &ErrUnsupportedDimension{Mask: mask}
	}
	d.stream.seek(headerSize)

	switch typ {
	case GeometryTypePoint:
		return d.decodePoint()
	case GeometryTypeLineString:
		return d.decodeLineString()
	case GeometryTypePolygon:
		return d.decodePolygon()
	case GeometryTypeMultiPolygon:
		return d.decodeMultiPolygon()
	default:
		return nil, &ErrUnsupportedGeometryType{Type: typ}
	}
}

// decodePoint reads the two raw coordinates of a point stream. Points carry
// no delta chain and nothing may follow them.
func (d *Decoder) decodePoint() (*geom.Point, error) {
	rawX, err := d.stream.read()
	if err != nil {
		return nil, err
	}
	rawY, err := d.stream.read()
	if err != nil {
		return nil, err
	}
	if n := d.stream.remaining(); n != 0 {
		return nil, &ErrTrailingBytes{Remaining: n}
	}
	x, y := d.cs.absolute(rawX, rawY)
	return geom.NewPointFlat(geom.XY, []float64{x, y}), nil
}

// decodeLineString drains the delta chain and rescales it into vertices.
func (d *Decoder) decodeLineString() (*geom.LineString, error) {
	raw, err := d.drain()
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 || len(raw) < minLineValues {
		return nil, &ErrMalformedPointStream{Count: len(raw), Min: minLineValues}
	}
	return geom.NewLineStringFlat(geom.XY, d.cs.rescale(raw)), nil
}

// drain reads every varint left in the stream into the reusable raw buffer.
// The buffer is only valid until the next Decode.
func (d *Decoder) drain() ([]int64, error) {
	for d.stream.remaining() > 0 {
		v, err := d.stream.read()
		if err != nil {
			return nil, err
		}
		d.raw = append(d.raw, v)
	}
	return d.raw, nil
}
