package projection

import (
	"math"
	"math/cmplx"

	"github.com/airbusgeo/geoshift/internal/geodesy"
)

// tmCoefs hold the complex series of the Transverse Mercator, of order 4 in e2.
// Gauss-Laborde uses the same kernel on the conformal sphere with a trivial series.
type tmCoefs struct {
	a, e2   float64
	lambda0 float64
	n       float64 // scale of the series
	xs, ys  float64
	dir     [5]float64
	inv     [5]float64
	// Gauss-Laborde: ls = c + n1*L, dl = n1*(lon-lambda0)
	sphere bool
	n1, c  float64
}

var trivialSeries = [5]float64{1, 0, 0, 0, 0}

// tmDirectCoefs returns the coefficients of the direct series
func tmDirectCoefs(e2 float64) [5]float64 {
	return [5]float64{
		geodesy.Polynomial([]float64{1, -1. / 4, -3. / 64, -5. / 256, -175. / 16384}, e2),
		geodesy.Polynomial([]float64{0, 1. / 8, -1. / 96, -9. / 1024, -901. / 184320}, e2),
		geodesy.Polynomial([]float64{0, 0, 13. / 768, 17. / 5120, -311. / 737280}, e2),
		geodesy.Polynomial([]float64{0, 0, 0, 61. / 15360, 899. / 430080}, e2),
		geodesy.Polynomial([]float64{0, 0, 0, 0, 49561. / 41287680}, e2),
	}
}

// tmInverseCoefs returns the coefficients of the inverse series
func tmInverseCoefs(e2 float64) [5]float64 {
	return [5]float64{
		geodesy.Polynomial([]float64{1, -1. / 4, -3. / 64, -5. / 256, -175. / 16384}, e2),
		geodesy.Polynomial([]float64{0, 1. / 8, 1. / 48, 7. / 2048, 1. / 61440}, e2),
		geodesy.Polynomial([]float64{0, 0, 1. / 768, 3. / 1280, 559. / 368640}, e2),
		geodesy.Polynomial([]float64{0, 0, 0, 17. / 30720, 283. / 430080}, e2),
		geodesy.Polynomial([]float64{0, 0, 0, 0, 4397. / 41287680}, e2),
	}
}

// gauss maps the isometric coordinates on the sphere to the complex transverse latitude gd(ls + i.dl)
func gauss(ls, dl float64) complex128 {
	return complex(math.Atan2(math.Sinh(ls), math.Cos(dl)), math.Atanh(math.Sin(dl)/math.Cosh(ls)))
}

func gaussInv(z complex128) (ls, dl float64) {
	return math.Atanh(math.Sin(real(z)) / math.Cosh(imag(z))), math.Atan2(math.Sinh(imag(z)), math.Cos(real(z)))
}

func series(c *[5]float64, z complex128) complex128 {
	s := complex(c[0], 0) * z
	for k := 1; k < len(c); k++ {
		s += complex(c[k], 0) * cmplx.Sin(complex(float64(2*k), 0)*z)
	}
	return s
}

func seriesInv(c *[5]float64, z complex128) complex128 {
	s := z
	for k := 1; k < len(c); k++ {
		s -= complex(c[k], 0) * cmplx.Sin(complex(float64(2*k), 0)*z)
	}
	return s
}

// seriesDerivative returns the derivative of series with respect to z
func seriesDerivative(c *[5]float64, z complex128) complex128 {
	s := complex(c[0], 0)
	for k := 1; k < len(c); k++ {
		s += complex(float64(2*k)*c[k], 0) * cmplx.Cos(complex(float64(2*k), 0)*z)
	}
	return s
}

func initTM(p Parameters) (tmCoefs, error) {
	k := tmCoefs{
		a: p.A, e2: p.E2, lambda0: p.Lambda0,
		n:   p.K0 * p.A,
		xs:  p.X0,
		dir: tmDirectCoefs(p.E2),
		inv: tmInverseCoefs(p.E2),
	}
	l0, err := latIso(p.Phi0, p.E2)
	if err != nil {
		return tmCoefs{}, err
	}
	k.ys = p.Y0 - real(complex(k.n, 0)*series(&k.dir, gauss(l0, 0)))
	return k, nil
}

func initGaussLaborde(p Parameters) (tmCoefs, error) {
	if math.Abs(p.Phi0) >= math.Pi/2 {
		return tmCoefs{}, geodesy.NewInvalidArgument("Gauss-Laborde: latitude of origin %g must not be a pole", p.Phi0)
	}
	cp := math.Cos(p.Phi0)
	sp := math.Sin(p.Phi0)
	n1 := math.Sqrt(1 + p.E2/(1-p.E2)*cp*cp*cp*cp)
	phic := math.Asin(sp / n1)
	lc, err := geodesy.LatIso(phic, 0)
	if err != nil {
		return tmCoefs{}, err
	}
	l0, err := geodesy.LatIso(p.Phi0, p.E2)
	if err != nil {
		return tmCoefs{}, err
	}
	n2 := p.K0 * p.A * math.Sqrt(1-p.E2) / (1 - p.E2*sp*sp)
	return tmCoefs{
		a: p.A, e2: p.E2, lambda0: p.Lambda0,
		n:      n2,
		xs:     p.X0,
		ys:     p.Y0 - n2*phic,
		dir:    trivialSeries,
		inv:    trivialSeries,
		sphere: true,
		n1:     n1,
		c:      lc - n1*l0,
	}, nil
}

func (k *tmCoefs) transverseLatitude(lon, lat float64) (complex128, error) {
	ls, err := latIso(lat, k.e2)
	if err != nil {
		return 0, err
	}
	dl := wrapLon(lon - k.lambda0)
	if k.sphere {
		ls, dl = k.c+k.n1*ls, k.n1*dl
	}
	z := gauss(ls, dl)
	if !finite(real(z), imag(z)) {
		return 0, geodesy.NewSingularity("transverse projection is singular at (%g, %g)", lon, lat)
	}
	return z, nil
}

func (k *tmCoefs) apply(lon, lat float64) (float64, float64, error) {
	z, err := k.transverseLatitude(lon, lat)
	if err != nil {
		return 0, 0, err
	}
	Z := complex(k.n, 0) * series(&k.dir, z)
	return k.xs + imag(Z), k.ys + real(Z), nil
}

func (k *tmCoefs) applyInv(x, y float64) (float64, float64, error) {
	z := seriesInv(&k.inv, complex(y-k.ys, x-k.xs)/complex(k.n*k.inv[0], 0))
	ls, dl := gaussInv(z)
	if k.sphere {
		ls, dl = (ls-k.c)/k.n1, dl/k.n1
	}
	lat, err := geodesy.LatIsoInv(ls, k.e2)
	if err != nil {
		return 0, 0, err
	}
	return k.lambda0 + dl, lat, nil
}

// factors derive from dZ/dw, w being the isometric coordinates on the ellipsoid.
// gd'(w) = cos(gd(w)).
func (k *tmCoefs) factors(lon, lat float64) (float64, float64, error) {
	par, err := parallelRadius(lat, k.a, k.e2)
	if err != nil {
		return 0, 0, err
	}
	z, err := k.transverseLatitude(lon, lat)
	if err != nil {
		return 0, 0, err
	}
	d := complex(k.n, 0) * seriesDerivative(&k.dir, z) * cmplx.Cos(z)
	if k.sphere {
		d *= complex(k.n1, 0)
	}
	return -cmplx.Phase(d), cmplx.Abs(d) / par, nil
}
