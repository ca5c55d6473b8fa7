package geodesy

import "fmt"

const (
	// PrecisionUnknown is the precision code of a point no transformation has been applied to
	PrecisionUnknown = 0
	// CalcDeflection, set as vertical precision code before a conversion, requests the vertical deflection
	CalcDeflection = -1
)

// Pt4d is a point in flight through a conversion. It belongs to the caller.
type Pt4d struct {
	// Geocentric (m)
	X, Y, Z float64
	// Geographic (radians, m)
	L, P, H float64
	// Projected (m)
	E, N float64
	// Vertical altitude (m)
	W float64
	// Epoch (decimal year), 0 if none
	Epoch float64

	Convergence float64
	ScaleFactor float64
	// Vertical deflection (radians)
	Xi, Eta float64

	GeodeticPrecision int
	VerticalPrecision int
	// Index of the selected geodetic and vertical transformations, NoIndex if none
	TransfoIndex         int
	VerticalTransfoIndex int
}

// NewPt4d creates a point with no transformation selected
func NewPt4d() Pt4d {
	return Pt4d{TransfoIndex: NoIndex, VerticalTransfoIndex: NoIndex}
}

// NewGeographicPt4d creates a point from geographic coordinates (radians, m)
func NewGeographicPt4d(l, p, h float64) Pt4d {
	pt := NewPt4d()
	pt.L, pt.P, pt.H = l, p, h
	return pt
}

// WantsDeflection returns true if the caller requested the vertical deflection
func (pt *Pt4d) WantsDeflection() bool {
	return pt.VerticalPrecision == CalcDeflection
}

// String implements Stringer
func (pt Pt4d) String() string {
	return fmt.Sprintf("l=%.11f p=%.11f h=%.4f x=%.4f y=%.4f z=%.4f e=%.4f n=%.4f w=%.4f",
		pt.L, pt.P, pt.H, pt.X, pt.Y, pt.Z, pt.E, pt.N, pt.W)
}
