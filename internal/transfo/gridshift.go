package transfo

import (
	"context"
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/grid"
)

const (
	// MaxIterations of the iterative application of a grid
	MaxIterations = 50
	// convergence of the translations (m) and of the shifts (radians)
	translationTolerance = 1e-7
	shiftTolerance       = 1e-12
)

// iterative returns true when the point is not given in the frame of the nodes:
// the values must be read at the position reached, found by fixed point iteration.
// Authoritative nodes are in the target frame, the others in the source frame.
func iterative(g *grid.Grid, dir geodesy.Direction) bool {
	return g.Authoritative == (dir == geodesy.DirectionFORWARD)
}

func sign(dir geodesy.Direction) float64 {
	if dir == geodesy.DirectionFORWARD {
		return 1
	}
	return -1
}

// values returns the values of the grid at (l, p) in radians, converted to the unit
func values(g *grid.Grid, l, p float64, unit geodesy.Unit) (grid.Values, error) {
	v, err := g.Interpolate(geodesy.RadToDeg(l), geodesy.RadToDeg(p))
	if err != nil {
		return v, err
	}
	for k := 0; k < v.N; k++ {
		if v.V[k], err = geodesy.UnitConvert(v.V[k], g.ValueUnit, unit); err != nil {
			return v, err
		}
	}
	return v, nil
}

func (t *Transformation) precision(g *grid.Grid, v grid.Values) int {
	if g.PrecisionCode {
		return v.Precision
	}
	return t.Precision
}

func (t *Transformation) applyGeodeticGrid(ctx context.Context, pt *geodesy.Pt4d, dir geodesy.Direction, env Env) error {
	g, err := t.LoadGrid(ctx, env.Grids)
	if err != nil {
		return err
	}
	defer g.Release()
	switch g.ValuesPerNode {
	case 3:
		err = t.applyTranslationGrid(g, pt, dir, env)
	case 2:
		err = t.applyShiftGrid(g, pt, dir, env)
	default:
		return geodesy.NewInvalidArgument("transformation %s: grid %s has %d values per node, 2 or 3 expected",
			t.ID, g.Path, g.ValuesPerNode)
	}
	return err
}

// applyTranslationGrid applies a grid of geocentric translations (source to target): X' = X + T
func (t *Transformation) applyTranslationGrid(g *grid.Grid, pt *geodesy.Pt4d, dir geodesy.Direction, env Env) error {
	from, to := env.from(dir)
	s := sign(dir)
	x, y, z := geodesy.GeoToCart(pt.L, pt.P, pt.H, from.A, from.E2)
	var v grid.Values
	var err error
	if !iterative(g, dir) || t.Grid.Approx == [3]float64{} {
		// also seeds the iteration
		if v, err = values(g, pt.L, pt.P, geodesy.UnitMETER); err != nil {
			return err
		}
	} else {
		v.V = t.Grid.Approx
	}
	tr := v.V
	if iterative(g, dir) {
		for i := 0; ; i++ {
			if i == MaxIterations {
				return geodesy.NewNonConvergence("transformation %s: grid %s did not converge after %d iterations", t.ID, g.Path, i)
			}
			l, p, _, err := geodesy.CartToGeo(x+s*tr[0], y+s*tr[1], z+s*tr[2], to.A, to.E2)
			if err != nil {
				return err
			}
			if v, err = values(g, l, p, geodesy.UnitMETER); err != nil {
				return err
			}
			d := math.Max(math.Abs(v.V[0]-tr[0]), math.Max(math.Abs(v.V[1]-tr[1]), math.Abs(v.V[2]-tr[2])))
			tr = v.V
			if d < translationTolerance {
				break
			}
		}
	}
	if err := t.setCart(pt, x+s*tr[0], y+s*tr[1], z+s*tr[2], to); err != nil {
		return err
	}
	pt.GeodeticPrecision = t.precision(g, v)
	return nil
}

// applyShiftGrid applies a grid of longitude and latitude shifts (source to target), heights unchanged
func (t *Transformation) applyShiftGrid(g *grid.Grid, pt *geodesy.Pt4d, dir geodesy.Direction, env Env) error {
	s := sign(dir)
	v, err := values(g, pt.L, pt.P, geodesy.UnitRADIAN)
	if err != nil {
		return err
	}
	l, p := pt.L+s*v.V[0], pt.P+s*v.V[1]
	if iterative(g, dir) {
		for i := 0; ; i++ {
			if i == MaxIterations {
				return geodesy.NewNonConvergence("transformation %s: grid %s did not converge after %d iterations", t.ID, g.Path, i)
			}
			prev := v
			if v, err = values(g, l, p, geodesy.UnitRADIAN); err != nil {
				return err
			}
			l, p = pt.L+s*v.V[0], pt.P+s*v.V[1]
			if math.Abs(v.V[0]-prev.V[0]) < shiftTolerance && math.Abs(v.V[1]-prev.V[1]) < shiftTolerance {
				break
			}
		}
	}
	_, to := env.from(dir)
	pt.L, pt.P = l, p
	pt.X, pt.Y, pt.Z = geodesy.GeoToCart(l, p, pt.H, to.A, to.E2)
	pt.GeodeticPrecision = t.precision(g, v)
	return nil
}

// applyVertical converts altitudes into ellipsoidal heights (forward) or back, h = W + N.
// The deflection is computed on request, on the ellipsoid of the geodetic frame (Env.Target).
func (t *Transformation) applyVertical(ctx context.Context, pt *geodesy.Pt4d, dir geodesy.Direction, env Env) error {
	var n float64
	prec := t.Precision
	deflection := pt.WantsDeflection()
	if t.IsGrid() {
		g, err := t.LoadGrid(ctx, env.Grids)
		if err != nil {
			return err
		}
		defer g.Release()
		if g.ValuesPerNode != 1 {
			return geodesy.NewInvalidArgument("transformation %s: grid %s has %d values per node, 1 expected",
				t.ID, g.Path, g.ValuesPerNode)
		}
		v, err := values(g, pt.L, pt.P, geodesy.UnitMETER)
		if err != nil {
			return err
		}
		n, prec = v.V[0], t.precision(g, v)
		if deflection {
			if pt.Xi, pt.Eta, err = g.Deflection(geodesy.RadToDeg(pt.L), geodesy.RadToDeg(pt.P), env.Target.A, env.Target.E2); err != nil {
				return err
			}
		}
	} else {
		if len(t.Params) != 1 {
			return geodesy.NewInvalidArgument("transformation %s: vertical offset needs 1 parameter", t.ID)
		}
		n = t.Params[0]
		if deflection {
			pt.Xi, pt.Eta = 0, 0
		}
	}
	if dir == geodesy.DirectionFORWARD {
		pt.H = pt.W + n
	} else {
		pt.W = pt.H - n
	}
	pt.VerticalPrecision = prec
	return nil
}
