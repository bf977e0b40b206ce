package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/sdeshape/pkg/sdeshape"
)

// A catalog file as exported from a spatial reference table. Projected
// references store the false origin in map units and xyunits as units per
// coordinate.
const catalogYAML = `references:
  - srid: 4326
    name: WGS 84
    falsex: -400
    falsey: -400
    xyunits: 1000000000
  - srid: 26986
    name: NAD83 / Massachusetts Mainland
    falsex: -36951300
    falsey: -32053600
    xyunits: 10000
`

// A point row from a layer written against SRID 26986, in meters.
const pointHex = "0c00000000000000a0fda0d9d21580b990a89713"

func main() {
	// Stand in for a file exported from the database.
	path := filepath.Join(os.TempDir(), "references.yaml")
	if err := os.WriteFile(path, []byte(catalogYAML), 0o644); err != nil {
		log.Fatal(err)
	}
	defer os.Remove(path)

	catalog, err := sdeshape.LoadCatalogFile(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("catalog SRIDs: %v\n", catalog.SRIDs())

	ref, ok := catalog.Lookup(26986)
	if !ok {
		log.Fatal("srid 26986 not in catalog")
	}
	cs := ref.CoordinateSystem()
	fmt.Printf("%s: origin (%.0f, %.0f), resolution %g\n", ref.Name, cs.OffsetX, cs.OffsetY, cs.Resolution)

	data, err := hex.DecodeString(pointHex)
	if err != nil {
		log.Fatal(err)
	}
	g, err := sdeshape.NewDecoder(cs).Decode(sdeshape.GeometryTypePoint, data)
	if err != nil {
		log.Fatal(err)
	}

	point := g.(*geom.Point)
	fmt.Printf("easting:  %.1f m\n", point.X())
	fmt.Printf("northing: %.1f m\n", point.Y())
}
