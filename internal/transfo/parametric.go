package transfo

import (
	"github.com/airbusgeo/geoshift/internal/geodesy"
)

//go:generate enumer -text -type Application -trimprefix Application

// Application tells in which sense the parameters of a transformation are stored
type Application int

const (
	ApplicationUNDEFINED Application = iota
	// DIRECT: the parameters transform the source frame into the target frame
	ApplicationDIRECT
	// REVERSESAMEMETHOD: the parameters transform the target frame into the source frame.
	// Source to target applies the same formula with the parameters negated (first-order approximation).
	ApplicationREVERSESAMEMETHOD
	// REVERSESAMEPARAMETERS: the parameters transform the target frame into the source frame.
	// Source to target applies the exact inverse of the similarity.
	ApplicationREVERSESAMEPARAMETERS
)

// Params7 of a similarity: translations tx, ty, tz (m), scale d (unitless), rotations rx, ry, rz (radians)
type Params7 [7]float64

// Params14 are the 7 parameters followed by their yearly rates
type Params14 [14]float64

// Params7FromTranslation returns the similarity of a 3 parameters translation
func Params7FromTranslation(t [3]float64) Params7 {
	return Params7{t[0], t[1], t[2]}
}

// formula returns how the stored parameters are applied for the direction:
// forward formula with the parameters negated or not, or exact inverse
func formula(app Application, dir geodesy.Direction) (negate, inverse bool, err error) {
	forward := dir == geodesy.DirectionFORWARD
	switch app {
	case ApplicationDIRECT:
		return false, !forward, nil
	case ApplicationREVERSESAMEMETHOD:
		return forward, false, nil
	case ApplicationREVERSESAMEPARAMETERS:
		return false, forward, nil
	}
	return false, false, geodesy.NewInvalidArgument("invalid operation application %s", app)
}

// matrix returns the linearized similarity matrix M so that X' = T + M.X
func (p Params7) matrix() [3][3]float64 {
	s := 1 + p[3]
	rx, ry, rz := p[4], p[5], p[6]
	return [3][3]float64{
		{s, -rz, ry},
		{rz, s, -rx},
		{-ry, rx, s},
	}
}

func (p Params7) negate() Params7 {
	for i := range p {
		p[i] = -p[i]
	}
	return p
}

// forward applies X' = T + M.X
func (p Params7) forward(x, y, z float64) (float64, float64, float64) {
	m := p.matrix()
	return p[0] + m[0][0]*x + m[0][1]*y + m[0][2]*z,
		p[1] + m[1][0]*x + m[1][1]*y + m[1][2]*z,
		p[2] + m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// inverse applies X = M^-1.(X' - T), with the inverse of M from its adjugate
func (p Params7) inverse(x, y, z float64) (float64, float64, float64, error) {
	m := p.matrix()
	a := [3][3]float64{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
	det := m[0][0]*a[0][0] + m[0][1]*a[1][0] + m[0][2]*a[2][0]
	if det == 0 {
		return 0, 0, 0, geodesy.NewSingularity("similarity %v cannot be inverted", p)
	}
	dx, dy, dz := x-p[0], y-p[1], z-p[2]
	return (a[0][0]*dx + a[0][1]*dy + a[0][2]*dz) / det,
		(a[1][0]*dx + a[1][1]*dy + a[1][2]*dz) / det,
		(a[2][0]*dx + a[2][1]*dy + a[2][2]*dz) / det, nil
}

// Transform7 applies the similarity to a geocentric point in the direction, according to the application of the parameters
func Transform7(x, y, z float64, p Params7, app Application, dir geodesy.Direction) (float64, float64, float64, error) {
	negate, inverse, err := formula(app, dir)
	if err != nil {
		return 0, 0, 0, err
	}
	if negate {
		p = p.negate()
	}
	if inverse {
		return p.inverse(x, y, z)
	}
	x, y, z = p.forward(x, y, z)
	return x, y, z, nil
}

// Transform3 applies the translation to a geocentric point in the direction, according to the application of the parameters
func Transform3(x, y, z float64, t [3]float64, app Application, dir geodesy.Direction) (float64, float64, float64, error) {
	negate, inverse, err := formula(app, dir)
	if err != nil {
		return 0, 0, 0, err
	}
	if negate != inverse {
		return x - t[0], y - t[1], z - t[2], nil
	}
	return x + t[0], y + t[1], z + t[2], nil
}
