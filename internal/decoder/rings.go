package decoder

import (
	"math"

	geom "github.com/twpayne/go-geom"
)

// appendRings splits a flat absolute coordinate buffer into rings, appending
// their coordinates to dst. The stream carries no ring markers: a ring ends
// at the first vertex that returns within tolerance of the ring's start on
// both axes, where tolerance is the coordinate system resolution (delta
// re-accumulation can leave a sub-resolution residue at the closing vertex).
// The closing vertex is snapped onto the start so every emitted ring closes
// bit-for-bit. The first ring is the shell, any following rings are holes.
//
// Returns the extended buffer and the end offset of each ring within it.
func appendRings(dst []float64, abs []float64, tolerance float64) ([]float64, []int, error) {
	var ends []int
	for start := 0; start < len(abs); {
		if len(abs)-start < minPolygonValues {
			return dst, ends, &ErrTrailingRingData{Remaining: len(abs) - start}
		}
		x0, y0 := abs[start], abs[start+1]
		closure := -1
		for i := start + 2; i+1 < len(abs); i += 2 {
			if math.Abs(abs[i]-x0) <= tolerance && math.Abs(abs[i+1]-y0) <= tolerance {
				closure = i
				break
			}
		}
		if closure < 0 {
			return dst, ends, &ErrUnclosedRing{Start: start / 2}
		}
		dst = append(dst, abs[start:closure+2]...)
		dst[len(dst)-2] = x0
		dst[len(dst)-1] = y0
		ends = append(ends, len(dst))
		start = closure + 2
	}
	return dst, ends, nil
}

// decodePolygon drains and rescales the whole payload (shell and holes form
// one continuous delta chain), then splits it into rings.
func (d *Decoder) decodePolygon() (*geom.Polygon, error) {
	raw, err := d.drain()
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 || len(raw) < minPolygonValues {
		return nil, &ErrMalformedPointStream{Count: len(raw), Min: minPolygonValues}
	}
	abs := d.cs.rescale(raw)
	flat, ends, err := appendRings(make([]float64, 0, len(abs)), abs, d.cs.Resolution)
	if err != nil {
		return nil, err
	}
	return geom.NewPolygonFlat(geom.XY, flat, ends), nil
}
