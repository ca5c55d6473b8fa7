package geodesy

import "math"

// GeoToCart converts geographic coordinates (radians, meters) to geocentric cartesian coordinates
func GeoToCart(l, p, h, a, e2 float64) (x, y, z float64) {
	n := GrandeNormale(p, a, e2)
	cp := math.Cos(p)
	x = (n + h) * cp * math.Cos(l)
	y = (n + h) * cp * math.Sin(l)
	z = (n*(1-e2) + h) * math.Sin(p)
	return
}

// CartToGeo converts geocentric cartesian coordinates to geographic coordinates, iterating on the latitude
func CartToGeo(x, y, z, a, e2 float64) (l, p, h float64, err error) {
	if err = checkEccentricity(e2); err != nil {
		return
	}
	r := math.Hypot(x, y)
	if r < 1e-9 {
		// on the polar axis
		b := a * math.Sqrt(1-e2)
		p = math.Copysign(math.Pi/2, z)
		return 0, p, math.Abs(z) - b, nil
	}
	l = math.Atan2(y, x)
	norm := math.Sqrt(x*x + y*y + z*z)
	p = math.Atan(z / (r * (1 - a*e2/norm)))
	for i := 0; ; i++ {
		if i == maxIterations {
			return 0, 0, 0, NewNonConvergence("geocentric to geographic (%g, %g, %g) after %d iterations", x, y, z, maxIterations)
		}
		s := math.Sin(p)
		next := math.Atan(z / r / (1 - a*e2*math.Cos(p)/(r*math.Sqrt(1-e2*s*s))))
		if math.Abs(next-p) < LatIsoTolerance {
			p = next
			break
		}
		p = next
	}
	s := math.Sin(p)
	h = r*math.Cos(p) + z*s - a*math.Sqrt(1-e2*s*s)
	return l, p, h, nil
}
