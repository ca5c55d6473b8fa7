package svc

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/log"
	"github.com/airbusgeo/geoshift/internal/transfo"
	"go.uber.org/zap"
)

// compound is a geodetic CRS, optionally followed by a vertical CRS: "RGF93G+IGN69H"
type compound struct {
	geodetic *geodesy.CRS
	vertical *geodesy.CRS
}

func (svc *Service) compound(id string) (compound, error) {
	var c compound
	h, v, hasVertical := strings.Cut(id, "+")
	var err error
	if c.geodetic, err = svc.catalog.CRS(h); err != nil {
		return c, err
	}
	if c.geodetic.IsVertical() {
		return c, geodesy.NewInvalidArgument("crs %s: a vertical crs must follow a geodetic crs (eg. RGF93G+%s)", id, h)
	}
	if hasVertical {
		if c.vertical, err = svc.catalog.CRS(v); err != nil {
			return c, err
		}
		if !c.vertical.IsVertical() {
			return c, geodesy.NewInvalidArgument("crs %s: %s is not vertical", id, v)
		}
	}
	return c, nil
}

// verticalKey returns the transformation key of the vertical frame of the crs
func (svc *Service) verticalKey(c compound) string {
	return svc.catalog.Frame(c.vertical.Frame).TransformationKey()
}

// ConvertPoint implements GeoshiftService.
//
// The coordinates read from the point depend on the type of the source CRS: X, Y, Z for a geocentric CRS,
// L, P (angular unit of the CRS, from the prime meridian of the frame) and H for a geographic CRS,
// E, N and H for a projected CRS. With a vertical CRS, W is the altitude and H is ignored.
// The point receives the coordinates of every representation of the target CRS:
// X, Y, Z, then L, P in the angular unit of the target CRS, E, N when projected, W when vertical.
func (svc *Service) ConvertPoint(ctx context.Context, pt *geodesy.Pt4d, sourceCRS, targetCRS string) error {
	ctx = log.WithCRS(ctx, sourceCRS, targetCRS)
	src, err := svc.compound(sourceCRS)
	if err != nil {
		return err
	}
	tgt, err := svc.compound(targetCRS)
	if err != nil {
		return err
	}
	pt.TransfoIndex, pt.VerticalTransfoIndex = geodesy.NoIndex, geodesy.NoIndex
	pt.Convergence, pt.ScaleFactor = 0, 0
	if err := svc.normalize(pt, src.geodetic); err != nil {
		return fmt.Errorf("ConvertPoint: %w", err)
	}
	srcKey := svc.catalog.Frame(src.geodetic.Frame).TransformationKey()
	tgtKey := svc.catalog.Frame(tgt.geodetic.Frame).TransformationKey()
	lon, lat := geodesy.RadToDeg(pt.L), geodesy.RadToDeg(pt.P)

	v, err := svc.planVertical(ctx, src, tgt, srcKey, tgtKey, lon, lat)
	if err != nil {
		return err
	}
	if err := v.atSource(ctx, pt); err != nil {
		return err
	}
	if err := svc.datumShift(ctx, pt, srcKey, tgtKey, lon, lat); err != nil {
		return err
	}
	if err := v.atTarget(ctx, pt); err != nil {
		return err
	}
	if err := svc.denormalize(pt, tgt.geodetic); err != nil {
		return fmt.Errorf("ConvertPoint: %w", err)
	}
	if tgt.vertical != nil {
		if pt.W, err = geodesy.UnitConvert(pt.W, geodesy.UnitMETER, tgt.vertical.LinearUnit); err != nil {
			return err
		}
	}
	return nil
}

// normalize computes the geographic coordinates of the point (radians from Greenwich, m) and its geocentric coordinates
func (svc *Service) normalize(pt *geodesy.Pt4d, crs *geodesy.CRS) error {
	e := svc.catalog.Ellipsoid(crs.Frame)
	toMeters := func(v float64) (float64, error) {
		return geodesy.UnitConvert(v, crs.LinearUnit, geodesy.UnitMETER)
	}
	var err error
	switch crs.Type {
	case geodesy.CRSTypeGEOCENTRIC:
		if pt.X, err = toMeters(pt.X); err != nil {
			return err
		}
		if pt.Y, err = toMeters(pt.Y); err != nil {
			return err
		}
		if pt.Z, err = toMeters(pt.Z); err != nil {
			return err
		}
		pt.L, pt.P, pt.H, err = geodesy.CartToGeo(pt.X, pt.Y, pt.Z, e.A, e.E2)
		return err
	case geodesy.CRSTypeGEOGRAPHIC:
		if pt.L, err = geodesy.UnitConvert(pt.L, crs.AngularUnit, geodesy.UnitRADIAN); err != nil {
			return err
		}
		if pt.P, err = geodesy.UnitConvert(pt.P, crs.AngularUnit, geodesy.UnitRADIAN); err != nil {
			return err
		}
	case geodesy.CRSTypePROJECTED:
		east, err := toMeters(pt.E)
		if err != nil {
			return err
		}
		north, err := toMeters(pt.N)
		if err != nil {
			return err
		}
		if pt.L, pt.P, pt.Convergence, pt.ScaleFactor, err = svc.conversions[crs.Conversion].ApplyInv(east, north); err != nil {
			return err
		}
	default:
		return geodesy.NewInvalidArgument("crs %s: unexpected type %s", crs.ID, crs.Type)
	}
	pt.L += svc.catalog.Greenwich(crs.Frame)
	pt.X, pt.Y, pt.Z = geodesy.GeoToCart(pt.L, pt.P, pt.H, e.A, e.E2)
	return nil
}

// denormalize expresses the point in the target crs
func (svc *Service) denormalize(pt *geodesy.Pt4d, crs *geodesy.CRS) error {
	e := svc.catalog.Ellipsoid(crs.Frame)
	fromMeters := func(v float64) (float64, error) {
		return geodesy.UnitConvert(v, geodesy.UnitMETER, crs.LinearUnit)
	}
	x, y, z := geodesy.GeoToCart(pt.L, pt.P, pt.H, e.A, e.E2)
	if crs.Type != geodesy.CRSTypeGEOCENTRIC {
		pt.X, pt.Y, pt.Z = x, y, z
	} else {
		var err error
		if pt.X, err = fromMeters(x); err != nil {
			return err
		}
		if pt.Y, err = fromMeters(y); err != nil {
			return err
		}
		if pt.Z, err = fromMeters(z); err != nil {
			return err
		}
	}
	l := math.Remainder(pt.L-svc.catalog.Greenwich(crs.Frame), 2*math.Pi)
	p := pt.P
	if crs.Type == geodesy.CRSTypePROJECTED {
		east, north, convergence, scale, err := svc.conversions[crs.Conversion].Apply(l, p)
		if err != nil {
			return err
		}
		if pt.E, err = fromMeters(east); err != nil {
			return err
		}
		if pt.N, err = fromMeters(north); err != nil {
			return err
		}
		pt.Convergence, pt.ScaleFactor = convergence, scale
	} else {
		// the factors of a projected source do not apply to the target
		pt.Convergence, pt.ScaleFactor = 0, 0
	}
	var err error
	if pt.L, err = geodesy.UnitConvert(l, geodesy.UnitRADIAN, crs.AngularUnit); err != nil {
		return err
	}
	pt.P, err = geodesy.UnitConvert(p, geodesy.UnitRADIAN, crs.AngularUnit)
	return err
}

// step of a route: a transformation of the catalog and the direction it is applied in
type step struct {
	index int
	dir   geodesy.Direction
}

// selectStep selects the transformation from srcKey to tgtKey covering (lon, lat) in degrees,
// among the transformations registered in either direction
func (svc *Service) selectStep(srcKey, tgtKey string, lon, lat float64) (step, error) {
	var steps []step
	var candidates []*transfo.Transformation
	for _, i := range svc.catalog.Between(srcKey, tgtKey) {
		steps = append(steps, step{i, geodesy.DirectionFORWARD})
		candidates = append(candidates, svc.catalog.Transformation(i))
	}
	for _, i := range svc.catalog.Between(tgtKey, srcKey) {
		steps = append(steps, step{i, geodesy.DirectionREVERSE})
		candidates = append(candidates, svc.catalog.Transformation(i))
	}
	i, err := transfo.SelectTransfo(lon, lat, candidates)
	if err != nil {
		return step{}, err
	}
	return steps[i], nil
}

// route returns the transformations from srcKey to tgtKey: a direct one, or two through a pivot frame
func (svc *Service) route(ctx context.Context, srcKey, tgtKey string, lon, lat float64) ([]step, error) {
	s, err := svc.selectStep(srcKey, tgtKey, lon, lat)
	if err == nil {
		return []step{s}, nil
	}
	if !geodesy.IsError(err, geodesy.TransfoNotFound) {
		return nil, err
	}
	for _, pivot := range svc.catalog.Neighbors(srcKey, geodesy.FrameKindGEODETIC) {
		if pivot == tgtKey {
			continue
		}
		s1, err1 := svc.selectStep(srcKey, pivot, lon, lat)
		if err1 != nil {
			continue
		}
		s2, err2 := svc.selectStep(pivot, tgtKey, lon, lat)
		if err2 != nil {
			continue
		}
		log.Logger(ctx).Debug("conversion through a pivot frame", zap.String("pivot", pivot))
		return []step{s1, s2}, nil
	}
	return nil, err
}

// datumShift applies the transformations from the frame srcKey to the frame tgtKey
func (svc *Service) datumShift(ctx context.Context, pt *geodesy.Pt4d, srcKey, tgtKey string, lon, lat float64) error {
	if srcKey == tgtKey {
		return nil
	}
	route, err := svc.route(ctx, srcKey, tgtKey, lon, lat)
	if err != nil {
		return err
	}
	for _, s := range route {
		t := svc.catalog.Transformation(s.index)
		log.Logger(ctx).Debug("transformation selected", zap.String("transformation", t.ID), zap.Stringer("direction", s.dir))
		if err := t.Apply(ctx, pt, s.dir, svc.env(t)); err != nil {
			return fmt.Errorf("ConvertPoint[%s]: %w", t.ID, err)
		}
	}
	pt.TransfoIndex = route[0].index
	return nil
}
