package decoder

import (
	"errors"
	"testing"

	geom "github.com/twpayne/go-geom"
)

// square returns the raw values of a closed square ring: an anchor pair
// followed by four side deltas that sum to zero.
func square(anchorX, anchorY, side int64) []int64 {
	return []int64{
		anchorX, anchorY,
		side, 0,
		0, side,
		-side, 0,
		0, -side,
	}
}

// sentinel returns the separator pair for a segment whose first raw pair is
// (anchorX, anchorY).
func sentinel(anchorX, anchorY int64) []int64 {
	return []int64{-anchorX - 1, -anchorY}
}

// TestDecodeMultiPolygonSingle tests the no-separator fast path
func TestDecodeMultiPolygonSingle(t *testing.T) {
	dec := New(exactSystem)
	g, err := dec.Decode(GeometryTypeMultiPolygon, buildStream(square(0, 0, 16)...))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	mp, ok := g.(*geom.MultiPolygon)
	if !ok {
		t.Fatalf("Decode() returned %T, want *geom.MultiPolygon", g)
	}
	if mp.NumPolygons() != 1 {
		t.Fatalf("NumPolygons() = %d, want 1", mp.NumPolygons())
	}
	poly := mp.Polygon(0)
	if poly.NumLinearRings() != 1 {
		t.Fatalf("NumLinearRings() = %d, want 1", poly.NumLinearRings())
	}
	flat := poly.LinearRing(0).FlatCoords()
	want := []float64{100, 200, 104, 200, 104, 204, 100, 204, 100, 200}
	if len(flat) != len(want) {
		t.Fatalf("ring length = %d, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("coord[%d] = %v, want %v", i, flat[i], want[i])
		}
	}
}

// TestDecodeMultiPolygonTwoParts tests separator detection and the delta
// chain restart on the second segment
func TestDecodeMultiPolygonTwoParts(t *testing.T) {
	dec := New(exactSystem)

	var raws []int64
	raws = append(raws, square(0, 0, 16)...)
	raws = append(raws, sentinel(0, 0)...)
	raws = append(raws, square(400, 400, 8)...)

	g, err := dec.Decode(GeometryTypeMultiPolygon, buildStream(raws...))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	mp := g.(*geom.MultiPolygon)
	if mp.NumPolygons() != 2 {
		t.Fatalf("NumPolygons() = %d, want 2", mp.NumPolygons())
	}

	// Second polygon must be anchored at the system offset again, not at
	// the first polygon's last vertex.
	second := mp.Polygon(1).LinearRing(0).FlatCoords()
	if second[0] != 200 || second[1] != 300 {
		t.Errorf("second polygon anchor = (%v, %v), want (200, 300)", second[0], second[1])
	}
	if second[len(second)-2] != second[0] || second[len(second)-1] != second[1] {
		t.Errorf("second polygon does not close exactly")
	}
}

// TestDecodeMultiPolygonThreeParts tests repeated separator derivation, one
// per segment
func TestDecodeMultiPolygonThreeParts(t *testing.T) {
	dec := New(exactSystem)

	var raws []int64
	raws = append(raws, square(0, 0, 16)...)
	raws = append(raws, sentinel(0, 0)...)
	raws = append(raws, square(400, 400, 8)...)
	raws = append(raws, sentinel(400, 400)...)
	raws = append(raws, square(-200, -200, 4)...)

	g, err := dec.Decode(GeometryTypeMultiPolygon, buildStream(raws...))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	mp := g.(*geom.MultiPolygon)
	if mp.NumPolygons() != 3 {
		t.Fatalf("NumPolygons() = %d, want 3", mp.NumPolygons())
	}

	anchors := [][2]float64{
		{100, 200},
		{200, 300},
		{50, 150},
	}
	for i, want := range anchors {
		flat := mp.Polygon(i).LinearRing(0).FlatCoords()
		if flat[0] != want[0] || flat[1] != want[1] {
			t.Errorf("polygon %d anchor = (%v, %v), want (%v, %v)", i, flat[0], flat[1], want[0], want[1])
		}
	}
}

// TestDecodeMultiPolygonWithHoles tests that ring assembly still splits
// shells from holes inside each segment
func TestDecodeMultiPolygonWithHoles(t *testing.T) {
	dec := New(exactSystem)

	var raws []int64
	raws = append(raws, square(0, 0, 16)...)
	// Hole continues the first segment's delta chain from (100, 200).
	raws = append(raws, 4, 4, 4, 0, 0, 4, -4, 0, 0, -4)
	raws = append(raws, sentinel(0, 0)...)
	raws = append(raws, square(400, 400, 8)...)

	g, err := dec.Decode(GeometryTypeMultiPolygon, buildStream(raws...))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	mp := g.(*geom.MultiPolygon)
	if mp.NumPolygons() != 2 {
		t.Fatalf("NumPolygons() = %d, want 2", mp.NumPolygons())
	}
	if rings := mp.Polygon(0).NumLinearRings(); rings != 2 {
		t.Errorf("first polygon rings = %d, want 2", rings)
	}
	if rings := mp.Polygon(1).NumLinearRings(); rings != 1 {
		t.Errorf("second polygon rings = %d, want 1", rings)
	}
	hole := mp.Polygon(0).LinearRing(1).FlatCoords()
	if hole[0] != 101 || hole[1] != 201 {
		t.Errorf("hole anchor = (%v, %v), want (101, 201)", hole[0], hole[1])
	}
}

// TestDecodeMultiPolygonSegmentErrors tests undersized segments on both
// sides of a separator
func TestDecodeMultiPolygonSegmentErrors(t *testing.T) {
	dec := New(exactSystem)

	t.Run("short tail after separator", func(t *testing.T) {
		raws := []int64{
			0, 0, 0, 0, // degenerate but closed ring
			-1, 0, // separator for anchor (0, 0)
			5, 5, // lone pair, not a polygon
		}
		_, err := dec.Decode(GeometryTypeMultiPolygon, buildStream(raws...))
		var malErr *ErrMalformedPointStream
		if !errors.As(err, &malErr) {
			t.Fatalf("Decode() error = %v, want ErrMalformedPointStream", err)
		}
		if malErr.Count != 2 {
			t.Errorf("count = %d, want 2", malErr.Count)
		}
	})

	t.Run("unclosed segment", func(t *testing.T) {
		raws := []int64{
			0, 0, 16, 0, 0, 16, 40, 40, // wanders off
		}
		_, err := dec.Decode(GeometryTypeMultiPolygon, buildStream(raws...))
		var unclosedErr *ErrUnclosedRing
		if !errors.As(err, &unclosedErr) {
			t.Fatalf("Decode() error = %v, want ErrUnclosedRing", err)
		}
	})

	t.Run("odd value count", func(t *testing.T) {
		_, err := dec.Decode(GeometryTypeMultiPolygon, buildStream(0, 0, 1, 2, 3))
		var malErr *ErrMalformedPointStream
		if !errors.As(err, &malErr) {
			t.Fatalf("Decode() error = %v, want ErrMalformedPointStream", err)
		}
	})
}

// TestSentinelDerivation tests separator values against hand-worked cases
func TestSentinelDerivation(t *testing.T) {
	tests := []struct {
		name   string
		raw    []int64
		wantSX int64
		wantSY int64
	}{
		{name: "origin anchor", raw: []int64{0, 0}, wantSX: -1, wantSY: 0},
		{name: "positive anchor", raw: []int64{7, 9}, wantSX: -8, wantSY: -9},
		{name: "negative anchor", raw: []int64{-7, -9}, wantSX: 6, wantSY: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := sentinelFor(tt.raw, 0)
			if sx != tt.wantSX || sy != tt.wantSY {
				t.Errorf("sentinelFor() = (%d, %d), want (%d, %d)", sx, sy, tt.wantSX, tt.wantSY)
			}
		})
	}
}

// TestFindSentinelPairAlignment tests that the scan only matches on pair
// boundaries
func TestFindSentinelPairAlignment(t *testing.T) {
	// The value pair (-3, -4) appears straddling an odd index and again
	// pair-aligned; only the aligned occurrence separates polygons.
	raw := []int64{2, 4, 9, -3, -4, 9, -3, -4}
	if got := findSentinel(raw, 0); got != 6 {
		t.Errorf("findSentinel() = %d, want 6", got)
	}
}
