package decoder

import (
	geom "github.com/twpayne/go-geom"
)

// sentinelFor derives the separator pair for the polygon segment beginning
// at raw[s]. The writer places (-first.x - 1, -first.y) between polygons,
// recomputed from each segment's own first pair.
func sentinelFor(raw []int64, s int) (int64, int64) {
	return -raw[s] - 1, -raw[s+1]
}

// findSentinel scans pair-aligned for the segment's separator, starting one
// pair past the segment start. Returns -1 when the segment runs to the end
// of the buffer.
func findSentinel(raw []int64, start int) int {
	sx, sy := sentinelFor(raw, start)
	for i := start + 2; i+1 < len(raw); i += 2 {
		if raw[i] == sx && raw[i+1] == sy {
			return i
		}
	}
	return -1
}

// decodeMultiPolygon drains the payload and splits it at separator pairs
// into per-polygon segments. Separators live in the raw integer domain, so
// the split happens before any rescaling; each segment then restarts its
// delta chain at the system offset and is ring-assembled independently.
func (d *Decoder) decodeMultiPolygon() (*geom.MultiPolygon, error) {
	raw, err := d.drain()
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 || len(raw) < minPolygonValues {
		return nil, &ErrMalformedPointStream{Count: len(raw), Min: minPolygonValues}
	}

	// A single polygon with no separator is the common case: assemble it
	// straight into a one-element multi-polygon.
	sep := findSentinel(raw, 0)
	if sep < 0 {
		abs := d.cs.rescale(raw)
		flat, ends, err := appendRings(make([]float64, 0, len(abs)), abs, d.cs.Resolution)
		if err != nil {
			return nil, err
		}
		return geom.NewMultiPolygonFlat(geom.XY, flat, [][]int{ends}), nil
	}

	var (
		flat  []float64
		endss [][]int
	)
	start := 0
	for sep >= 0 {
		segment := raw[start:sep]
		if len(segment) < minPolygonValues {
			return nil, &ErrMalformedPointStream{Count: len(segment), Min: minPolygonValues}
		}
		var ends []int
		flat, ends, err = appendRings(flat, d.cs.rescale(segment), d.cs.Resolution)
		if err != nil {
			return nil, err
		}
		endss = append(endss, ends)

		start = sep + 2
		if len(raw)-start < minPolygonValues {
			return nil, &ErrMalformedPointStream{Count: len(raw) - start, Min: minPolygonValues}
		}
		sep = findSentinel(raw, start)
	}

	// Tail segment after the last separator.
	var ends []int
	flat, ends, err = appendRings(flat, d.cs.rescale(raw[start:]), d.cs.Resolution)
	if err != nil {
		return nil, err
	}
	endss = append(endss, ends)

	return geom.NewMultiPolygonFlat(geom.XY, flat, endss), nil
}
