package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/sdeshape/pkg/sdeshape"
)

// Three point rows as they would come back from a shape column query.
var rows = []struct {
	id  int64
	hex string
}{
	{101, "0c0000000000000080a695ef921380deeae1df19"},
	{102, "0c0000000000000080ccd0e5921380b8afebdf19"},
	{103, "0c0000000000000080c2b1a8931380f6d7bbdf19"},
}

func main() {
	ref, _ := sdeshape.DefaultCatalog().Lookup(4326)

	// Build the undecoded record set.
	records := make([]sdeshape.Record, len(rows))
	for i, row := range rows {
		data, err := hex.DecodeString(row.hex)
		if err != nil {
			log.Fatal(err)
		}
		records[i] = sdeshape.Record{
			ID:   row.id,
			Type: sdeshape.GeometryTypePoint,
			Data: data,
		}
	}

	// Decode everything in parallel; corrupt rows are skipped and
	// reported rather than aborting the batch.
	features, errs := sdeshape.DecodeBatch(records, ref.CoordinateSystem(), sdeshape.BatchOptions{
		Parallel:   true,
		SkipErrors: true,
		ErrorLog:   os.Stderr,
	})
	if len(errs) > 0 {
		fmt.Printf("skipped %d records\n", len(errs))
	}
	fmt.Printf("decoded %d features\n", len(features))

	// Index the layer and run a viewport query.
	layer := sdeshape.NewLayer(features)
	fmt.Printf("layer extent: (%.4f %.4f) to (%.4f %.4f)\n",
		layer.Bounds().Min(0), layer.Bounds().Min(1),
		layer.Bounds().Max(0), layer.Bounds().Max(1))

	viewport := geom.NewBounds(geom.XY).
		SetCoords(geom.Coord{-71.10, 42.30}, geom.Coord{-71.00, 42.40})
	for _, f := range layer.FeaturesInBounds(viewport) {
		p := f.Geometry.(*geom.Point)
		fmt.Printf("feature %d in viewport at %.4f, %.4f\n", f.ID, p.X(), p.Y())
	}
}
