package geodesy

import (
	"github.com/airbusgeo/geoshift/internal/utils/proj"
)

//go:generate enumer -text -type FrameKind -trimprefix FrameKind
//go:generate enumer -text -type CRSType -trimprefix CRSType
//go:generate enumer -text -type Direction -trimprefix Direction

type FrameKind int

const (
	FrameKindUNDEFINED FrameKind = iota
	FrameKindGEODETIC
	FrameKindVERTICAL
)

type CRSType int

const (
	CRSTypeUNDEFINED CRSType = iota
	CRSTypeGEOCENTRIC
	CRSTypeGEOGRAPHIC
	CRSTypePROJECTED
	CRSTypeVERTICAL
)

// Direction of a projection or a transformation
type Direction int

const (
	DirectionFORWARD Direction = iota
	DirectionREVERSE
)

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if d == DirectionFORWARD {
		return DirectionREVERSE
	}
	return DirectionFORWARD
}

// NoIndex is the value of an unresolved or absent cross-reference
const NoIndex = -1

// ReferenceSystem groups the frames realizing the same datum
type ReferenceSystem struct {
	ID   string
	Name string
	Kind FrameKind
}

// ReferenceFrame is a realization of a geodetic or vertical reference system.
// Cross-references are indices in the catalog, resolved once by the link pass.
type ReferenceFrame struct {
	ID     string
	Name   string
	Kind   FrameKind
	System int
	// Geodetic frames only
	Ellipsoid int
	Meridian  int
	Epoch     float64
	// Frames sharing this key are the same datum differently parameterized (eg. another prime meridian):
	// transformations are looked up by this key
	UsesForTransformation string
	Coverage              proj.Coverage
}

// TransformationKey returns the key under which transformations to or from this frame are registered
func (f *ReferenceFrame) TransformationKey() string {
	if f.UsesForTransformation != "" {
		return f.UsesForTransformation
	}
	return f.ID
}

// CRS is a coordinate reference system over a reference frame
type CRS struct {
	ID         string
	Name       string
	Type       CRSType
	Frame      int
	Conversion int // projected CRS only
	// AngularUnit of geographic coordinates, LinearUnit of projected or vertical coordinates
	AngularUnit Unit
	LinearUnit  Unit
	Coverage    proj.Coverage
}

// IsVertical returns true for a vertical (altitude) CRS
func (c *CRS) IsVertical() bool {
	return c.Type == CRSTypeVERTICAL
}
