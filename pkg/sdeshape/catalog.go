package sdeshape

import (
	"fmt"
	"os"
	"sort"

	"sigs.k8s.io/yaml"
)

// SpatialReference mirrors one row of an SDE spatial reference table.
//
// The stored fields use the table's own vocabulary: a false origin
// (FalseX/FalseY/FalseZ) and a units-per-coordinate scale (XYUnits). The
// decoder works in offset and resolution terms; CoordinateSystem performs
// the conversion.
//
// Catalog files unmarshal into this struct, so the field tags follow the
// table column names:
//
//	references:
//	  - srid: 4326
//	    name: WGS 84
//	    falsex: -400
//	    falsey: -400
//	    xyunits: 1000000000
type SpatialReference struct {
	SRID    int     `json:"srid"`
	Name    string  `json:"name,omitempty"`
	FalseX  float64 `json:"falsex"`
	FalseY  float64 `json:"falsey"`
	FalseZ  float64 `json:"falsez,omitempty"`
	XYUnits float64 `json:"xyunits"`
}

// CoordinateSystem derives the decoder configuration for this reference.
// One raw integer unit spans 1/XYUnits real-world units, anchored at the
// false origin.
func (r SpatialReference) CoordinateSystem() CoordinateSystem {
	return CoordinateSystem{
		OffsetX:    r.FalseX,
		OffsetY:    r.FalseY,
		OffsetZ:    r.FalseZ,
		Resolution: 1 / r.XYUnits,
	}
}

// validate rejects references the decoder cannot use.
func (r SpatialReference) validate() error {
	if r.SRID <= 0 {
		return fmt.Errorf("spatial reference %q: srid must be positive, got %d", r.Name, r.SRID)
	}
	if r.XYUnits <= 0 {
		return fmt.Errorf("spatial reference %d: xyunits must be positive, got %v", r.SRID, r.XYUnits)
	}
	return nil
}

// Catalog maps SRIDs to spatial references.
//
// Lookups by SRID replace the join against the spatial reference table that
// database-resident readers perform. Load one from a file exported from the
// table, or start from DefaultCatalog and register layer-specific entries.
type Catalog struct {
	refs map[int]SpatialReference
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{refs: make(map[int]SpatialReference)}
}

// DefaultCatalog returns a catalog seeded with the stock references most
// deployments create: geographic WGS 84 and Web Mercator, with the false
// origins and unit scales the server assigns by default.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.refs[4326] = SpatialReference{
		SRID:    4326,
		Name:    "WGS 84",
		FalseX:  -400,
		FalseY:  -400,
		XYUnits: 1e9,
	}
	c.refs[3857] = SpatialReference{
		SRID:    3857,
		Name:    "WGS 84 / Pseudo-Mercator",
		FalseX:  -20037700,
		FalseY:  -30241100,
		XYUnits: 10000,
	}
	return c
}

// Register adds or replaces a spatial reference, keyed by its SRID.
func (c *Catalog) Register(ref SpatialReference) error {
	if err := ref.validate(); err != nil {
		return err
	}
	if c.refs == nil {
		c.refs = make(map[int]SpatialReference)
	}
	c.refs[ref.SRID] = ref
	return nil
}

// Lookup returns the reference registered for srid.
func (c *Catalog) Lookup(srid int) (SpatialReference, bool) {
	ref, ok := c.refs[srid]
	return ref, ok
}

// SRIDs returns the registered SRIDs in ascending order.
func (c *Catalog) SRIDs() []int {
	srids := make([]int, 0, len(c.refs))
	for srid := range c.refs {
		srids = append(srids, srid)
	}
	sort.Ints(srids)
	return srids
}

// catalogFile is the on-disk catalog document.
type catalogFile struct {
	References []SpatialReference `json:"references"`
}

// LoadCatalogFile reads a catalog of spatial references from a YAML or JSON
// file.
//
// Example:
//
//	catalog, err := sdeshape.LoadCatalogFile("references.yaml")
//	if err != nil {
//	    return err
//	}
//	ref, ok := catalog.Lookup(4326)
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	catalog := NewCatalog()
	for _, ref := range file.References {
		if err := catalog.Register(ref); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
	}
	return catalog, nil
}
