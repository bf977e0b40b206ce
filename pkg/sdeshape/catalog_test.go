package sdeshape

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultCatalog tests the stock references
func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	ref, ok := catalog.Lookup(4326)
	if !ok {
		t.Fatal("Lookup(4326) not found in default catalog")
	}
	cs := ref.CoordinateSystem()
	if cs.OffsetX != -400 || cs.OffsetY != -400 {
		t.Errorf("4326 offsets = (%v, %v), want (-400, -400)", cs.OffsetX, cs.OffsetY)
	}
	if cs.Resolution != 1e-9 {
		t.Errorf("4326 resolution = %v, want 1e-9", cs.Resolution)
	}

	if _, ok := catalog.Lookup(3857); !ok {
		t.Error("Lookup(3857) not found in default catalog")
	}
	if _, ok := catalog.Lookup(99999); ok {
		t.Error("Lookup(99999) unexpectedly found")
	}
}

// TestCatalogRegister tests registration and validation
func TestCatalogRegister(t *testing.T) {
	tests := []struct {
		name    string
		ref     SpatialReference
		wantErr bool
	}{
		{
			name:    "valid reference",
			ref:     SpatialReference{SRID: 26986, Name: "NAD83 / Massachusetts Mainland", FalseX: -36951300, FalseY: -32053600, XYUnits: 10000},
			wantErr: false,
		},
		{
			name:    "zero srid",
			ref:     SpatialReference{SRID: 0, XYUnits: 1000},
			wantErr: true,
		},
		{
			name:    "negative srid",
			ref:     SpatialReference{SRID: -4326, XYUnits: 1000},
			wantErr: true,
		},
		{
			name:    "zero xyunits",
			ref:     SpatialReference{SRID: 4326, XYUnits: 0},
			wantErr: true,
		},
		{
			name:    "negative xyunits",
			ref:     SpatialReference{SRID: 4326, XYUnits: -1e9},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := NewCatalog()
			err := catalog.Register(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Errorf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if _, ok := catalog.Lookup(tt.ref.SRID); ok == tt.wantErr {
				t.Errorf("Lookup() found = %v after Register error = %v", ok, err)
			}
		})
	}
}

// TestCatalogRegisterReplaces tests that re-registering an SRID overwrites
func TestCatalogRegisterReplaces(t *testing.T) {
	catalog := NewCatalog()
	if err := catalog.Register(SpatialReference{SRID: 4326, FalseX: -400, FalseY: -400, XYUnits: 1e9}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := catalog.Register(SpatialReference{SRID: 4326, FalseX: -180, FalseY: -90, XYUnits: 1e8}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	ref, _ := catalog.Lookup(4326)
	if ref.FalseX != -180 || ref.XYUnits != 1e8 {
		t.Errorf("re-registered reference = %+v, want replacement values", ref)
	}
}

// TestCatalogSRIDs tests ascending SRID listing
func TestCatalogSRIDs(t *testing.T) {
	catalog := NewCatalog()
	for _, srid := range []int{3857, 4326, 26986} {
		if err := catalog.Register(SpatialReference{SRID: srid, XYUnits: 1000}); err != nil {
			t.Fatalf("Register(%d) error = %v", srid, err)
		}
	}
	srids := catalog.SRIDs()
	want := []int{3857, 4326, 26986}
	if len(srids) != len(want) {
		t.Fatalf("SRIDs() length = %d, want %d", len(srids), len(want))
	}
	for i := range want {
		if srids[i] != want[i] {
			t.Errorf("SRIDs()[%d] = %d, want %d", i, srids[i], want[i])
		}
	}
}

// TestLoadCatalogFile tests catalog parsing from YAML and JSON documents
func TestLoadCatalogFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		wantErr  bool
		wantSRID int
	}{
		{
			name:     "yaml document",
			filename: "references.yaml",
			content: `references:
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
`,
			wantErr:  false,
			wantSRID: 26986,
		},
		{
			name:     "json document",
			filename: "references.json",
			content:  `{"references": [{"srid": 3857, "falsex": -20037700, "falsey": -30241100, "xyunits": 10000}]}`,
			wantErr:  false,
			wantSRID: 3857,
		},
		{
			name:     "invalid reference rejected",
			filename: "bad.yaml",
			content: `references:
  - srid: 4326
    xyunits: 0
`,
			wantErr: true,
		},
		{
			name:     "malformed document",
			filename: "garbage.yaml",
			content:  "references: [a: b\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			catalog, err := LoadCatalogFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadCatalogFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if _, ok := catalog.Lookup(tt.wantSRID); !ok {
				t.Errorf("Lookup(%d) not found after load", tt.wantSRID)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadCatalogFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("LoadCatalogFile() expected error for missing file")
		}
	})
}

// TestSpatialReferenceCoordinateSystem tests the units-to-resolution
// conversion
func TestSpatialReferenceCoordinateSystem(t *testing.T) {
	ref := SpatialReference{SRID: 26986, FalseX: -36951300, FalseY: -32053600, FalseZ: -100000, XYUnits: 10000}
	cs := ref.CoordinateSystem()
	if cs.OffsetX != -36951300 || cs.OffsetY != -32053600 || cs.OffsetZ != -100000 {
		t.Errorf("offsets = (%v, %v, %v), want false origin", cs.OffsetX, cs.OffsetY, cs.OffsetZ)
	}
	if cs.Resolution != 0.0001 {
		t.Errorf("resolution = %v, want 0.0001", cs.Resolution)
	}
}
