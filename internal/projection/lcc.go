package projection

import (
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
)

// lccCoefs: the cone constant n, the radius constant c and the projected pole (xs, ys)
type lccCoefs struct {
	a, e2   float64
	lambda0 float64
	n, c    float64
	xs, ys  float64
}

func initLCC1SP(p Parameters) (lccCoefs, error) {
	if p.Phi0 == 0 || math.Abs(p.Phi0) >= math.Pi/2 {
		return lccCoefs{}, geodesy.NewInvalidArgument("tangent LCC: latitude of origin %g must not be the equator or a pole", p.Phi0)
	}
	l0, err := geodesy.LatIso(p.Phi0, p.E2)
	if err != nil {
		return lccCoefs{}, err
	}
	n := math.Sin(p.Phi0)
	r0 := p.K0 * geodesy.GrandeNormale(p.Phi0, p.A, p.E2) / math.Tan(p.Phi0)
	return lccCoefs{
		a: p.A, e2: p.E2, lambda0: p.Lambda0,
		n:  n,
		c:  r0 * math.Exp(n*l0),
		xs: p.X0,
		ys: p.Y0 + r0,
	}, nil
}

func initLCC2SP(p Parameters) (lccCoefs, error) {
	if p.Phi1 == p.Phi2 {
		return lccCoefs{}, geodesy.NewInvalidArgument("secant LCC: standard parallels must differ (use the tangent LCC)")
	}
	if p.Phi1 == -p.Phi2 {
		return lccCoefs{}, geodesy.NewInvalidArgument("secant LCC: standard parallels must not be symmetric")
	}
	l1, err := geodesy.LatIso(p.Phi1, p.E2)
	if err != nil {
		return lccCoefs{}, err
	}
	l2, err := geodesy.LatIso(p.Phi2, p.E2)
	if err != nil {
		return lccCoefs{}, err
	}
	par1 := geodesy.LPar(p.Phi1, p.A, p.E2)
	par2 := geodesy.LPar(p.Phi2, p.A, p.E2)
	n := math.Log(par2/par1) / (l1 - l2)
	k := lccCoefs{
		a: p.A, e2: p.E2, lambda0: p.Lambda0,
		n:  n,
		c:  par1 / n * math.Exp(n*l1),
		xs: p.X0,
		ys: p.Y0,
	}
	l0, err := latIso(p.Phi0, p.E2)
	if err != nil {
		return lccCoefs{}, err
	}
	if !math.IsInf(l0, 0) {
		k.ys += k.c * math.Exp(-n*l0)
	}
	return k, nil
}

func (k *lccCoefs) radius(lat float64) (float64, error) {
	l, err := latIso(lat, k.e2)
	if err != nil {
		return 0, err
	}
	r := k.c * math.Exp(-k.n*l)
	if !finite(r) {
		return 0, geodesy.NewSingularity("LCC: latitude %g projects to infinity", lat)
	}
	return r, nil
}

func (k *lccCoefs) apply(lon, lat float64) (float64, float64, error) {
	r, err := k.radius(lat)
	if err != nil {
		return 0, 0, err
	}
	g := k.n * wrapLon(lon-k.lambda0)
	return k.xs + r*math.Sin(g), k.ys - r*math.Cos(g), nil
}

func (k *lccCoefs) applyInv(x, y float64) (float64, float64, error) {
	dx, dy := x-k.xs, k.ys-y
	if k.n < 0 {
		dx, dy = -dx, -dy
	}
	r := math.Hypot(dx, dy)
	if r == 0 {
		return k.lambda0, math.Copysign(math.Pi/2, k.n), nil
	}
	lat, err := geodesy.LatIsoInv(-math.Log(r/math.Abs(k.c))/k.n, k.e2)
	if err != nil {
		return 0, 0, err
	}
	return k.lambda0 + math.Atan2(dx, dy)/k.n, lat, nil
}

func (k *lccCoefs) factors(lon, lat float64) (float64, float64, error) {
	par, err := parallelRadius(lat, k.a, k.e2)
	if err != nil {
		return 0, 0, err
	}
	r, err := k.radius(lat)
	if err != nil {
		return 0, 0, err
	}
	return k.n * wrapLon(lon-k.lambda0), k.n * r / par, nil
}
