package geodesy

import "math"

// LatIsoTolerance is the convergence threshold (radians) of the latitude iterations: ~0.01mm on the ground
const LatIsoTolerance = 1e-12

// maximum number of iterations of the fixed-point loops
var maxIterations = 100

func checkEccentricity(e2 float64) error {
	if e2 < 0 || e2 >= 1 || math.IsNaN(e2) {
		return NewInvalidArgument("squared eccentricity %g out of [0, 1)", e2)
	}
	return nil
}

// LatIso returns the isometric latitude of phi on the ellipsoid of squared eccentricity e2
func LatIso(phi, e2 float64) (float64, error) {
	if err := checkEccentricity(e2); err != nil {
		return 0, err
	}
	switch d := math.Pi/2 - math.Abs(phi); {
	case d < 0:
		return 0, NewInvalidArgument("latitude %g out of [-pi/2, pi/2]", phi)
	case d < 1e-14:
		return 0, NewSingularity("isometric latitude is infinite at the pole")
	}
	return latIso(phi, math.Sqrt(e2)), nil
}

func latIso(phi, e float64) float64 {
	es := e * math.Sin(phi)
	return math.Log(math.Tan(math.Pi/4+phi/2)) - e/2*math.Log((1+es)/(1-es))
}

// LatIsoInv returns the latitude of the isometric latitude l, iterating to LatIsoTolerance
func LatIsoInv(l, e2 float64) (float64, error) {
	if err := checkEccentricity(e2); err != nil {
		return 0, err
	}
	if math.IsNaN(l) {
		return 0, NewInvalidArgument("isometric latitude is NaN")
	}
	e := math.Sqrt(e2)
	el := math.Exp(l)
	phi := 2*math.Atan(el) - math.Pi/2
	if e == 0 {
		return phi, nil
	}
	for i := 0; i < maxIterations; i++ {
		es := e * math.Sin(phi)
		next := 2*math.Atan(math.Pow((1+es)/(1-es), e/2)*el) - math.Pi/2
		if math.Abs(next-phi) < LatIsoTolerance {
			return next, nil
		}
		phi = next
	}
	return 0, NewNonConvergence("inverse isometric latitude of %g (e2=%g) after %d iterations", l, e2, maxIterations)
}
