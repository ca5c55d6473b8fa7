package projection

import (
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
)

type aspect int

const (
	aspectOblique aspect = iota
	aspectNorthPole
	aspectSouthPole
)

const poleTolerance = 1e-12

func aspectOf(phi0 float64) aspect {
	switch {
	case phi0 > math.Pi/2-poleTolerance:
		return aspectNorthPole
	case phi0 < -math.Pi/2+poleTolerance:
		return aspectSouthPole
	}
	return aspectOblique
}

type laeaCoefs struct {
	a, e, e2           float64
	lambda0, phi0      float64
	x0, y0             float64
	aspect             aspect
	qp, rq, d          float64
	sinBeta0, cosBeta0 float64
}

// authalic returns q(phi)
func authalic(phi, e float64) float64 {
	s := math.Sin(phi)
	if e == 0 {
		return 2 * s
	}
	es := e * s
	return (1 - e*e) * (s/(1-es*es) - 1/(2*e)*math.Log((1-es)/(1+es)))
}

func clamp1(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func initLAEA(p Parameters) (laeaCoefs, error) {
	e := math.Sqrt(p.E2)
	k := laeaCoefs{
		a: p.A, e: e, e2: p.E2,
		lambda0: p.Lambda0, phi0: p.Phi0,
		x0: p.X0, y0: p.Y0,
		aspect: aspectOf(p.Phi0),
		qp:     authalic(math.Pi/2, e),
	}
	k.rq = p.A * math.Sqrt(k.qp/2)
	if k.aspect == aspectOblique {
		beta0 := math.Asin(clamp1(authalic(p.Phi0, e) / k.qp))
		k.sinBeta0, k.cosBeta0 = math.Sin(beta0), math.Cos(beta0)
		s := math.Sin(p.Phi0)
		k.d = p.A * (math.Cos(p.Phi0) / math.Sqrt(1-p.E2*s*s)) / (k.rq * k.cosBeta0)
	}
	return k, nil
}

func (k *laeaCoefs) apply(lon, lat float64) (float64, float64, error) {
	q := authalic(lat, k.e)
	dl := wrapLon(lon - k.lambda0)
	switch k.aspect {
	case aspectNorthPole:
		rho := k.a * math.Sqrt(math.Max(k.qp-q, 0))
		return k.x0 + rho*math.Sin(dl), k.y0 - rho*math.Cos(dl), nil
	case aspectSouthPole:
		rho := k.a * math.Sqrt(math.Max(k.qp+q, 0))
		return k.x0 + rho*math.Sin(dl), k.y0 + rho*math.Cos(dl), nil
	}
	beta := math.Asin(clamp1(q / k.qp))
	sb, cb := math.Sin(beta), math.Cos(beta)
	den := 1 + k.sinBeta0*sb + k.cosBeta0*cb*math.Cos(dl)
	if den <= 1e-15 {
		return 0, 0, geodesy.NewSingularity("LAEA: antipode of the origin cannot be projected")
	}
	b := k.rq * math.Sqrt(2/den)
	return k.x0 + b*k.d*cb*math.Sin(dl),
		k.y0 + b/k.d*(k.cosBeta0*sb-k.sinBeta0*cb*math.Cos(dl)), nil
}

func (k *laeaCoefs) applyInv(x, y float64) (float64, float64, error) {
	dx, dy := x-k.x0, y-k.y0
	var lon, q float64
	switch k.aspect {
	case aspectNorthPole:
		rho := math.Hypot(dx, dy)
		lon, q = k.lambda0+math.Atan2(dx, -dy), k.qp-rho*rho/(k.a*k.a)
	case aspectSouthPole:
		rho := math.Hypot(dx, dy)
		lon, q = k.lambda0+math.Atan2(dx, dy), rho*rho/(k.a*k.a)-k.qp
	default:
		rho := math.Hypot(dx/k.d, k.d*dy)
		if rho == 0 {
			return k.lambda0, k.phi0, nil
		}
		if rho > 2*k.rq*(1+1e-12) {
			return 0, 0, geodesy.NewInvalidArgument("LAEA: (%g, %g) is outside the projected disk", x, y)
		}
		c := 2 * math.Asin(clamp1(rho/(2*k.rq)))
		sc, cc := math.Sin(c), math.Cos(c)
		beta := math.Asin(clamp1(cc*k.sinBeta0 + k.d*dy*sc*k.cosBeta0/rho))
		lon = k.lambda0 + math.Atan2(dx*sc, k.d*rho*k.cosBeta0*cc-k.d*k.d*dy*k.sinBeta0*sc)
		q = k.qp * math.Sin(beta)
	}
	lat, err := k.latitude(q)
	return lon, lat, err
}

// latitude inverts q(phi) by fixed-point iteration
func (k *laeaCoefs) latitude(q float64) (float64, error) {
	if math.Abs(q) >= k.qp*(1-1e-15) {
		return math.Copysign(math.Pi/2, q), nil
	}
	if k.e == 0 {
		return math.Asin(clamp1(q / 2)), nil
	}
	phi := math.Asin(clamp1(q / 2))
	for i := 0; i < maxIterations; i++ {
		s, c := math.Sin(phi), math.Cos(phi)
		es := k.e * s
		w := 1 - es*es
		next := phi + w*w/(2*c)*(q/(1-k.e2)-s/w+1/(2*k.e)*math.Log((1-es)/(1+es)))
		if math.Abs(next-phi) < geodesy.LatIsoTolerance {
			return next, nil
		}
		phi = next
	}
	return 0, geodesy.NewNonConvergence("LAEA: latitude of q=%g after %d iterations", q, maxIterations)
}

// maximum number of iterations of the latitude loops
const maxIterations = 100
