package geodesy

import "math"

// GrandeNormale returns the radius of curvature in the prime vertical
func GrandeNormale(phi, a, e2 float64) float64 {
	s := math.Sin(phi)
	return a / math.Sqrt(1-e2*s*s)
}

// RMer returns the radius of curvature in the meridian
func RMer(phi, a, e2 float64) float64 {
	s := math.Sin(phi)
	w := 1 - e2*s*s
	return a * (1 - e2) / (w * math.Sqrt(w))
}

// LMer returns the length of the meridian arc from the equator to phi (series to e^8)
func LMer(phi, a, e2 float64) float64 {
	c := meridianCoefs(e2)
	return a * (1 - e2) * (c[0]*phi -
		c[1]/2*math.Sin(2*phi) +
		c[2]/4*math.Sin(4*phi) -
		c[3]/6*math.Sin(6*phi) +
		c[4]/8*math.Sin(8*phi))
}

func meridianCoefs(e2 float64) [5]float64 {
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e6 * e2
	return [5]float64{
		Polynomial([]float64{1, 3. / 4, 45. / 64, 175. / 256, 11025. / 16384}, e2),
		3./4*e2 + 15./16*e4 + 525./512*e6 + 2205./2048*e8,
		15./64*e4 + 105./256*e6 + 2205./4096*e8,
		35./512*e6 + 315./2048*e8,
		315. / 16384 * e8,
	}
}

// LPar returns the radius of the parallel of latitude phi
func LPar(phi, a, e2 float64) float64 {
	return GrandeNormale(phi, a, e2) * math.Cos(phi)
}

// ArcLengths returns the lengths of one radian along the meridian and along the parallel at phi.
// The parallel degenerates at the poles, which is reported as a Singularity.
func ArcLengths(phi, a, e2 float64) (mer, par float64, err error) {
	par = LPar(phi, a, e2)
	if math.Abs(par) < 1e-9*a {
		return 0, 0, NewSingularity("parallel radius vanishes at latitude %g", phi)
	}
	return RMer(phi, a, e2), par, nil
}

// Polynomial evaluates sum(coefs[i]*x^i)
func Polynomial(coefs []float64, x float64) float64 {
	v := 0.
	for i := len(coefs) - 1; i >= 0; i-- {
		v = v*x + coefs[i]
	}
	return v
}
