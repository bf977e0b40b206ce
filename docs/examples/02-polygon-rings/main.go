package main

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/sdeshape/pkg/sdeshape"
)

// A polygon row with one hole: the stream carries no ring markers, the
// decoder finds ring boundaries by scanning for closure.
const polygonHex = "3c0000000000000080f28bdc921380deeae1df1980dac409000080dac409c0da" +
	"c4090000c0dac4098092f4018092f40180b6dc05000080b6dc05c0b6dc050000c0b6dc05"

func main() {
	data, err := hex.DecodeString(polygonHex)
	if err != nil {
		log.Fatal(err)
	}

	ref, _ := sdeshape.DefaultCatalog().Lookup(4326)
	dec := sdeshape.NewDecoder(ref.CoordinateSystem())

	g, err := dec.Decode(sdeshape.GeometryTypePolygon, data)
	if err != nil {
		log.Fatal(err)
	}

	poly := g.(*geom.Polygon)
	fmt.Printf("Rings: %d (1 shell, %d holes)\n", poly.NumLinearRings(), poly.NumLinearRings()-1)

	for i := 0; i < poly.NumLinearRings(); i++ {
		ring := poly.LinearRing(i)
		kind := "shell"
		if i > 0 {
			kind = "hole"
		}
		fmt.Printf("\n%s (%d vertices):\n", kind, ring.NumCoords())
		for j := 0; j < ring.NumCoords(); j++ {
			c := ring.Coord(j)
			fmt.Printf("  %.6f, %.6f\n", c[0], c[1])
		}

		// Rings always close exactly after decoding.
		first, last := ring.Coord(0), ring.Coord(ring.NumCoords()-1)
		fmt.Printf("  closed: %v\n", first[0] == last[0] && first[1] == last[1])
	}
}
