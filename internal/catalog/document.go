package catalog

import (
	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/grid"
	"github.com/airbusgeo/geoshift/internal/projection"
	"github.com/airbusgeo/geoshift/internal/transfo"
)

// document is the YAML representation of a catalog.
// Entities reference each other by id. Angles are in the unit given next to them.
type document struct {
	Ellipsoids      []ellipsoidDoc      `yaml:"ellipsoids"`
	Meridians       []meridianDoc       `yaml:"meridians"`
	Systems         []systemDoc         `yaml:"systems"`
	Frames          []frameDoc          `yaml:"frames"`
	Conversions     []conversionDoc     `yaml:"conversions"`
	CRS             []crsDoc            `yaml:"crs"`
	Transformations []transformationDoc `yaml:"transformations"`
}

type ellipsoidDoc struct {
	ID   string  `yaml:"id"`
	Name string  `yaml:"name"`
	A    float64 `yaml:"a"`
	B    float64 `yaml:"b"`
	F    float64 `yaml:"f"`
	InvF float64 `yaml:"invf"`
	E2   float64 `yaml:"e2"`
}

type meridianDoc struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Greenwich float64      `yaml:"greenwich"`
	Unit      geodesy.Unit `yaml:"unit"`
}

type systemDoc struct {
	ID   string            `yaml:"id"`
	Name string            `yaml:"name"`
	Kind geodesy.FrameKind `yaml:"kind"`
}

type coverageDoc struct {
	West  float64 `yaml:"west"`
	East  float64 `yaml:"east"`
	South float64 `yaml:"south"`
	North float64 `yaml:"north"`
	WKT   string  `yaml:"wkt"`
}

type frameDoc struct {
	ID                    string            `yaml:"id"`
	Name                  string            `yaml:"name"`
	Kind                  geodesy.FrameKind `yaml:"kind"`
	System                string            `yaml:"system"`
	Ellipsoid             string            `yaml:"ellipsoid"`
	Meridian              string            `yaml:"meridian"`
	Epoch                 float64           `yaml:"epoch"`
	UsesForTransformation string            `yaml:"uses_for_transformation"`
	Coverage              *coverageDoc      `yaml:"coverage"`
}

type conversionDoc struct {
	ID     string            `yaml:"id"`
	Name   string            `yaml:"name"`
	Method projection.Method `yaml:"method"`
	// Unit of the angles (default DEGREE)
	Unit    geodesy.Unit `yaml:"unit"`
	Lambda0 float64      `yaml:"lambda0"`
	Phi0    float64      `yaml:"phi0"`
	Phi1    float64      `yaml:"phi1"`
	Phi2    float64      `yaml:"phi2"`
	K0      float64      `yaml:"k0"`
	X0      float64      `yaml:"x0"`
	Y0      float64      `yaml:"y0"`
	// UTM shorthand: TM of the zone, other parameters ignored
	UTMZone int  `yaml:"utm_zone"`
	South   bool `yaml:"south"`
}

type crsDoc struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Type        geodesy.CRSType `yaml:"type"`
	Frame       string          `yaml:"frame"`
	Conversion  string          `yaml:"conversion"`
	AngularUnit geodesy.Unit    `yaml:"angular_unit"`
	LinearUnit  geodesy.Unit    `yaml:"linear_unit"`
	Coverage    *coverageDoc    `yaml:"coverage"`
}

type gridDoc struct {
	Path          string        `yaml:"path"`
	Format        grid.Format   `yaml:"format"`
	LoadMode      grid.LoadMode `yaml:"load_mode"`
	Authoritative bool          `yaml:"authoritative"`
	UnknownAsZero bool          `yaml:"unknown_as_zero"`
	Approx        []float64     `yaml:"approx"`
}

type transformationDoc struct {
	ID     string            `yaml:"id"`
	Name   string            `yaml:"name"`
	Kind   geodesy.FrameKind `yaml:"kind"`
	Source string            `yaml:"source"`
	Target string            `yaml:"target"`
	// 1 (vertical offset), 3, 7 or 14 values: tx ty tz d rx ry rz, then their yearly rates
	Params          []float64           `yaml:"params"`
	TranslationUnit geodesy.Unit        `yaml:"translation_unit"`
	ScaleUnit       geodesy.Unit        `yaml:"scale_unit"`
	RotationUnit    geodesy.Unit        `yaml:"rotation_unit"`
	RefEpoch        float64             `yaml:"ref_epoch"`
	Application     transfo.Application `yaml:"application"`
	Precision       int                 `yaml:"precision"`
	Coverage        *coverageDoc        `yaml:"coverage"`
	Grid            *gridDoc            `yaml:"grid"`
}
