package main

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/beetlebugorg/sdeshape/pkg/sdeshape"
)

// A point row captured from a geographic layer (SRID 4326).
const pointHex = "0c0000000000000080a695ef921380deeae1df19"

func main() {
	data, err := hex.DecodeString(pointHex)
	if err != nil {
		log.Fatal(err)
	}

	// Look the layer's spatial reference up and build a decoder for it.
	ref, ok := sdeshape.DefaultCatalog().Lookup(4326)
	if !ok {
		log.Fatal("srid 4326 not in catalog")
	}
	dec := sdeshape.NewDecoder(ref.CoordinateSystem())

	// The stream does not name its own type; the layer metadata does.
	g, err := dec.Decode(sdeshape.GeometryTypePoint, data)
	if err != nil {
		log.Fatal(err)
	}

	point := g.(*geom.Point)
	fmt.Printf("Longitude: %.6f\n", point.X())
	fmt.Printf("Latitude:  %.6f\n", point.Y())

	text, err := wkt.Marshal(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("WKT: %s\n", text)
}
