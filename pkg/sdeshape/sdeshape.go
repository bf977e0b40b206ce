// Package sdeshape provides a clean public API for decoding SDE compressed
// binary geometry streams.
package sdeshape

import (
	geom "github.com/twpayne/go-geom"

	"github.com/beetlebugorg/sdeshape/internal/decoder"
)

// Decoder decodes SDE compressed binary geometry streams.
//
// Create a decoder with NewDecoder and use Decode or DecodeFeature to turn
// stream bytes into geometries. A decoder is bound to one coordinate system
// and reuses internal scratch buffers between calls, so it must not be
// shared between goroutines without external synchronization. Decoders are
// cheap; give each goroutine its own.
type Decoder interface {
	// Decode decodes one geometry stream.
	//
	// The stream does not identify its own geometry type, so typ must be
	// supplied from the layer metadata the row came from. Returns an error
	// if the header is invalid, the stream is corrupt, or the type is not
	// one of the supported codes.
	Decode(typ GeometryType, data []byte) (geom.T, error)

	// DecodeFeature decodes one geometry stream and pairs it with the row
	// identity it came from.
	DecodeFeature(id int64, typ GeometryType, data []byte) (Feature, error)
}

// NewDecoder creates a decoder for streams written against cs.
//
// Example:
//
//	dec := sdeshape.NewDecoder(sdeshape.CoordinateSystem{
//	    OffsetX:    -400,
//	    OffsetY:    -400,
//	    Resolution: 1e-9,
//	})
//	g, err := dec.Decode(sdeshape.GeometryTypePolygon, row.Shape)
func NewDecoder(cs CoordinateSystem) Decoder {
	return &decoderWrapper{
		internal: decoder.New(decoder.CoordinateSystem{
			OffsetX:    cs.OffsetX,
			OffsetY:    cs.OffsetY,
			OffsetZ:    cs.OffsetZ,
			Resolution: cs.Resolution,
		}),
	}
}

// decoderWrapper wraps the internal decoder and converts types
type decoderWrapper struct {
	internal *decoder.Decoder
}

func (d *decoderWrapper) Decode(typ GeometryType, data []byte) (geom.T, error) {
	return d.internal.Decode(decoder.GeometryType(typ), data)
}

func (d *decoderWrapper) DecodeFeature(id int64, typ GeometryType, data []byte) (Feature, error) {
	g, err := d.internal.Decode(decoder.GeometryType(typ), data)
	if err != nil {
		return Feature{}, err
	}
	return Feature{ID: id, Geometry: g}, nil
}

// CoordinateSystem describes how a layer's raw integer stream units map to
// real-world coordinates. An absolute coordinate is raw*Resolution + offset.
//
// The values come from the spatial reference row the layer was written
// against; see SpatialReference.CoordinateSystem for deriving them from
// catalog entries.
type CoordinateSystem struct {
	// OffsetX and OffsetY are the false origin, the real-world position of
	// raw coordinate (0, 0).
	OffsetX float64
	OffsetY float64

	// OffsetZ is carried for completeness. Streams with Z values are
	// rejected by Decode.
	OffsetZ float64

	// Resolution is the real-world width of one raw integer unit.
	// Geographic layers commonly use 1e-9 degrees.
	Resolution float64
}

// GeometryType identifies the decode path for a stream.
//
// The values are the format's entity type codes as stored in layer
// metadata. Streams never carry their own type.
type GeometryType int

const (
	// GeometryTypePoint is a single coordinate pair.
	GeometryTypePoint GeometryType = 1

	// GeometryTypeLineString is an open chain of two or more vertices.
	GeometryTypeLineString GeometryType = 4

	// GeometryTypePolygon is one shell optionally followed by holes.
	GeometryTypePolygon GeometryType = 8

	// GeometryTypeMultiPolygon is the polygon code with the multipart
	// flag (256) set: several polygons packed into one stream.
	GeometryTypeMultiPolygon GeometryType = 264
)

// String returns the string representation of the geometry type.
func (t GeometryType) String() string {
	switch t {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	case GeometryTypeMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}
