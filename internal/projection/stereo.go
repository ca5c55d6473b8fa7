package projection

import (
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
)

// stereoCoefs of the oblique stereographic, through the conformal sphere of Gauss, and of the polar stereographic
type stereoCoefs struct {
	a, e, e2 float64
	lambda0  float64
	k0       float64
	x0, y0   float64

	// oblique
	r, n, c          float64
	lnC              float64
	chi0             float64
	sinChi0, cosChi0 float64

	// polar
	south bool
	cst   float64 // sqrt((1+e)^(1+e) * (1-e)^(1-e))
}

func initStereoOblique(p Parameters) (stereoCoefs, error) {
	if aspectOf(p.Phi0) != aspectOblique {
		return stereoCoefs{}, geodesy.NewInvalidArgument("oblique stereographic: latitude of origin %g is a pole (use the polar stereographic)", p.Phi0)
	}
	e := math.Sqrt(p.E2)
	sp := math.Sin(p.Phi0)
	cp := math.Cos(p.Phi0)
	w := 1 - p.E2*sp*sp
	k := stereoCoefs{
		a: p.A, e: e, e2: p.E2,
		lambda0: p.Lambda0,
		k0:      p.K0,
		x0:      p.X0, y0: p.Y0,
		r: p.A * math.Sqrt(1-p.E2) / w,
		n: math.Sqrt(1 + p.E2*cp*cp*cp*cp/(1-p.E2)),
	}
	l0, err := geodesy.LatIso(p.Phi0, p.E2)
	if err != nil {
		return stereoCoefs{}, err
	}
	w1 := math.Exp(2 * k.n * l0)
	sinChi := (w1 - 1) / (w1 + 1)
	k.c = (k.n + sp) * (1 - sinChi) / ((k.n - sp) * (1 + sinChi))
	k.lnC = math.Log(k.c)
	w2 := k.c * w1
	k.chi0 = math.Asin((w2 - 1) / (w2 + 1))
	k.sinChi0, k.cosChi0 = math.Sin(k.chi0), math.Cos(k.chi0)
	return k, nil
}

// sphere returns the conformal latitude and the longitude from the origin on the Gauss sphere
func (k *stereoCoefs) sphere(lon, lat float64) (float64, float64, error) {
	l, err := latIso(lat, k.e2)
	if err != nil {
		return 0, 0, err
	}
	return math.Atan(math.Sinh(k.n*l + k.lnC/2)), k.n * wrapLon(lon-k.lambda0), nil
}

func (k *stereoCoefs) applyOblique(lon, lat float64) (float64, float64, error) {
	chi, dl, err := k.sphere(lon, lat)
	if err != nil {
		return 0, 0, err
	}
	sc, cc := math.Sin(chi), math.Cos(chi)
	b := 1 + sc*k.sinChi0 + cc*k.cosChi0*math.Cos(dl)
	if b <= 1e-15 {
		return 0, 0, geodesy.NewSingularity("oblique stereographic: antipode of the origin cannot be projected")
	}
	f := 2 * k.r * k.k0 / b
	return k.x0 + f*cc*math.Sin(dl), k.y0 + f*(sc*k.cosChi0-cc*k.sinChi0*math.Cos(dl)), nil
}

func (k *stereoCoefs) applyInvOblique(x, y float64) (float64, float64, error) {
	f := 2 * k.r * k.k0
	dx, dy := x-k.x0, y-k.y0
	g := f * math.Tan(math.Pi/4-k.chi0/2)
	h := 2*f*math.Tan(k.chi0) + g
	i := math.Atan2(dx, h+dy)
	j := math.Atan2(dx, g-dy) - i
	chi := k.chi0 + 2*math.Atan((dy-dx*math.Tan(j/2))/f)
	dl := j + 2*i
	ls, err := latIso(chi, 0)
	if err != nil {
		return 0, 0, err
	}
	lat, err := geodesy.LatIsoInv((ls-k.lnC/2)/k.n, k.e2)
	if err != nil {
		return 0, 0, err
	}
	return k.lambda0 + dl/k.n, lat, nil
}

// initStereoPolar: variant A uses K0, variant B (K0 zero) derives it from the standard parallel Phi1
func initStereoPolar(p Parameters, south bool) (stereoCoefs, error) {
	e := math.Sqrt(p.E2)
	k := stereoCoefs{
		a: p.A, e: e, e2: p.E2,
		lambda0: p.Lambda0,
		k0:      p.K0,
		x0:      p.X0, y0: p.Y0,
		south: south,
		cst:   math.Sqrt(math.Pow(1+e, 1+e) * math.Pow(1-e, 1-e)),
	}
	if p.K0 == 0 {
		phi1 := math.Abs(p.Phi1)
		if (p.Phi1 < 0) != south {
			return stereoCoefs{}, geodesy.NewInvalidArgument("polar stereographic: standard parallel %g is in the wrong hemisphere", p.Phi1)
		}
		if phi1 > math.Pi/2-poleTolerance {
			k.k0 = 1
		} else {
			s := math.Sin(phi1)
			mf := math.Cos(phi1) / math.Sqrt(1-p.E2*s*s)
			k.k0 = mf * k.cst / (2 * k.polarT(phi1))
		}
	}
	return k, nil
}

// polarT returns exp(-L) on the side of the projection pole (lat taken positive towards it)
func (k *stereoCoefs) polarT(lat float64) float64 {
	es := k.e * math.Sin(lat)
	return math.Tan(math.Pi/4-lat/2) / math.Pow((1-es)/(1+es), k.e/2)
}

func (k *stereoCoefs) rho(lat float64) (float64, error) {
	if k.south {
		lat = -lat
	}
	if lat < -math.Pi/2+poleTolerance {
		return 0, geodesy.NewSingularity("polar stereographic: the opposite pole cannot be projected")
	}
	return 2 * k.a * k.k0 * k.polarT(lat) / k.cst, nil
}

func (k *stereoCoefs) applyPolar(lon, lat float64) (float64, float64, error) {
	rho, err := k.rho(lat)
	if err != nil {
		return 0, 0, err
	}
	dl := lon - k.lambda0
	if k.south {
		return k.x0 + rho*math.Sin(dl), k.y0 + rho*math.Cos(dl), nil
	}
	return k.x0 + rho*math.Sin(dl), k.y0 - rho*math.Cos(dl), nil
}

func (k *stereoCoefs) applyInvPolar(x, y float64) (float64, float64, error) {
	dx, dy := x-k.x0, y-k.y0
	rho := math.Hypot(dx, dy)
	if rho == 0 {
		if k.south {
			return k.lambda0, -math.Pi / 2, nil
		}
		return k.lambda0, math.Pi / 2, nil
	}
	t := rho * k.cst / (2 * k.a * k.k0)
	lat, err := geodesy.LatIsoInv(-math.Log(t), k.e2)
	if err != nil {
		return 0, 0, err
	}
	if k.south {
		return k.lambda0 + math.Atan2(dx, dy), -lat, nil
	}
	return k.lambda0 + math.Atan2(dx, -dy), lat, nil
}

func (k *stereoCoefs) factorsPolar(lon, lat float64) (float64, float64, error) {
	dl := wrapLon(lon - k.lambda0)
	conv := dl
	if k.south {
		conv = -dl
	}
	if math.Abs(lat) > math.Pi/2-poleTolerance {
		return conv, k.k0, nil
	}
	rho, err := k.rho(lat)
	if err != nil {
		return 0, 0, err
	}
	s := math.Sin(lat)
	m := math.Cos(lat) / math.Sqrt(1-k.e2*s*s)
	return conv, rho / (k.a * m), nil
}
