package geodesy

import (
	"math"

	"go.uber.org/multierr"
)

// Ellipsoid is defined by its semi-major axis and one of f, 1/f, b or e2.
// Complete derives the others.
type Ellipsoid struct {
	ID   string
	Name string
	A    float64
	B    float64
	F    float64
	InvF float64
	E2   float64
}

// Complete derives b, e2 and f from the defining parameter
func (e *Ellipsoid) Complete() error {
	if !(e.A > 0) {
		return NewFieldError("a", "semi-major axis of ellipsoid %s must be positive (got %g)", e.ID, e.A)
	}
	switch {
	case e.InvF != 0:
		e.F = 1 / e.InvF
		e.E2 = e.F * (2 - e.F)
	case e.F != 0:
		e.E2 = e.F * (2 - e.F)
	case e.B != 0:
		e.F = (e.A - e.B) / e.A
		e.E2 = e.F * (2 - e.F)
	case e.E2 != 0:
		e.F = 1 - math.Sqrt(1-e.E2)
	default:
		// sphere
	}
	e.B = e.A * (1 - e.F)
	if e.F != 0 {
		e.InvF = 1 / e.F
	}
	return e.Validate()
}

// Validate checks that the derived parameters are consistent
func (e *Ellipsoid) Validate() error {
	var err error
	if e.E2 < 0 || e.E2 >= 1 || math.IsNaN(e.E2) {
		err = multierr.Append(err, NewFieldError("e2", "ellipsoid %s: squared eccentricity %g out of [0, 1)", e.ID, e.E2))
	}
	if e.F < 0 || e.F >= 1 {
		err = multierr.Append(err, NewFieldError("f", "ellipsoid %s: flattening %g out of [0, 1)", e.ID, e.F))
	}
	if e.B <= 0 || e.B > e.A {
		err = multierr.Append(err, NewFieldError("b", "ellipsoid %s: semi-minor axis %g out of (0, a]", e.ID, e.B))
	}
	return err
}

// Meridian is a prime meridian given by its longitude from Greenwich (radians, positive eastward)
type Meridian struct {
	ID        string
	Name      string
	Greenwich float64
}
