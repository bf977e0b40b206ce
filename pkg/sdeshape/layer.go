package sdeshape

import (
	"github.com/dhconnelly/rtreego"
	geom "github.com/twpayne/go-geom"
)

// Feature pairs one decoded geometry with the row identity it came from.
type Feature struct {
	ID       int64
	Geometry geom.T
}

// Layer is an in-memory collection of decoded features with fast bounding
// box queries.
//
// Build one with NewLayer after decoding a table's rows, typically from the
// output of DecodeBatch. Access features via Features(), FeaturesInBounds(),
// or FeatureCount().
type Layer struct {
	features     []Feature
	spatialIndex *spatialIndex
	bounds       *geom.Bounds
}

// spatialIndex provides O(log n) spatial queries using R-tree.
// Dramatically faster than linear O(n) scan for large layers.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature Feature
	bounds  *geom.Bounds
}

// Bounds implements rtreego.Spatial interface.
func (f *indexedFeature) Bounds() rtreego.Rect {
	point := rtreego.Point{f.bounds.Min(0), f.bounds.Min(1)}

	// R-tree rectangles require non-zero extent, so point features are
	// padded by a small epsilon.
	const epsilon = 0.0001
	xLength := f.bounds.Max(0) - f.bounds.Min(0)
	yLength := f.bounds.Max(1) - f.bounds.Min(1)
	if xLength < epsilon {
		xLength = epsilon
	}
	if yLength < epsilon {
		yLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{xLength, yLength})
	return rect
}

// NewLayer creates a layer over the given features and builds its spatial
// index.
func NewLayer(features []Feature) *Layer {
	layer := &Layer{features: features}
	layer.buildSpatialIndex()
	return layer
}

// Features returns all features in the layer.
func (l *Layer) Features() []Feature {
	return l.features
}

// FeatureCount returns the number of features in the layer.
func (l *Layer) FeatureCount() int {
	return len(l.features)
}

// Bounds returns the minimum bounding box containing every feature, or nil
// for an empty layer.
func (l *Layer) Bounds() *geom.Bounds {
	return l.bounds
}

// FeaturesInBounds returns all features whose bounds overlap the given
// bounding box.
//
// This is the primary method for viewport queries. Example:
//
//	viewport := geom.NewBounds(geom.XY)
//	viewport.SetCoords(geom.Coord{-71.5, 42.0}, geom.Coord{-71.0, 42.5})
//	visible := layer.FeaturesInBounds(viewport)
func (l *Layer) FeaturesInBounds(bounds *geom.Bounds) []Feature {
	if l.spatialIndex == nil || l.spatialIndex.rtree == nil {
		return l.featuresInBoundsLinear(bounds)
	}

	point := rtreego.Point{bounds.Min(0), bounds.Min(1)}
	lengths := []float64{
		bounds.Max(0) - bounds.Min(0),
		bounds.Max(1) - bounds.Min(1),
	}
	queryRect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return l.featuresInBoundsLinear(bounds)
	}

	spatials := l.spatialIndex.rtree.SearchIntersect(queryRect)

	// Index rectangles are padded to non-zero extent, so candidates are
	// re-checked against the real feature bounds.
	result := make([]Feature, 0, len(spatials))
	for _, spatial := range spatials {
		indexed := spatial.(*indexedFeature)
		if indexed.bounds.Overlaps(geom.XY, bounds) {
			result = append(result, indexed.feature)
		}
	}
	return result
}

// featuresInBoundsLinear performs linear search when no spatial index
// exists or the query box has no extent.
func (l *Layer) featuresInBoundsLinear(bounds *geom.Bounds) []Feature {
	result := make([]Feature, 0, len(l.features)/10)
	for _, feature := range l.features {
		if feature.Geometry == nil {
			continue
		}
		if feature.Geometry.Bounds().Overlaps(geom.XY, bounds) {
			result = append(result, feature)
		}
	}
	return result
}

// buildSpatialIndex creates an R-tree spatial index for O(log n) bounding
// box queries.
func (l *Layer) buildSpatialIndex() {
	if len(l.features) == 0 {
		return
	}

	// 2D tree, 25 to 50 children per node.
	rtree := rtreego.NewTree(2, 25, 50)
	layerBounds := geom.NewBounds(geom.XY)

	for _, feature := range l.features {
		if feature.Geometry == nil {
			continue
		}
		fb := feature.Geometry.Bounds()
		rtree.Insert(&indexedFeature{feature: feature, bounds: fb})
		layerBounds.Extend(feature.Geometry)
	}

	l.spatialIndex = &spatialIndex{rtree: rtree}
	l.bounds = layerBounds
}
