package svc

import (
	"context"
	"fmt"

	"github.com/airbusgeo/geoshift/internal/catalog"
	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/grid"
	"github.com/airbusgeo/geoshift/internal/log"
	"github.com/airbusgeo/geoshift/internal/projection"
	"github.com/airbusgeo/geoshift/internal/transfo"
	"go.uber.org/zap"
)

// GeoshiftService is the conversion API
type GeoshiftService interface {
	ConvertPoint(ctx context.Context, pt *geodesy.Pt4d, sourceCRS, targetCRS string) error
	ApplyProjection(conversionCRS string, u, v float64, dir geodesy.Direction) (x, y, convergence, scale float64, err error)
	ApplyDatumShift(ctx context.Context, transformationID string, pt *geodesy.Pt4d, dir geodesy.Direction, epoch float64) error
	LoadTransformationGrid(ctx context.Context, path string, mode grid.LoadMode) (*grid.Grid, error)
}

// Options of the service
type Options struct {
	// GridCacheSize is the maximum number of grids held loaded (default 16)
	GridCacheSize int
	// Convergence requests the meridian convergence and the scale factor of the projections
	Convergence bool
	// GridOptions are passed to every grid loading
	GridOptions []grid.Option
}

// Service implements GeoshiftService
type Service struct {
	catalog     *catalog.Catalog
	grids       *grid.Cache
	convergence bool
	// conversions of the catalog, requesting the convergence or not
	conversions []*projection.Conversion
}

var _ GeoshiftService = (*Service)(nil)

// New returns a new conversion service over the catalog
func New(ctx context.Context, cat *catalog.Catalog, opts Options) (*Service, error) {
	if cat == nil {
		return nil, geodesy.NewInvalidArgument("invalid arguments: a catalog must be provided")
	}
	if opts.GridCacheSize <= 0 {
		opts.GridCacheSize = 16
	}
	grids, err := grid.NewCache(opts.GridCacheSize, opts.GridOptions...)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	svc := &Service{catalog: cat, grids: grids, convergence: opts.Convergence}
	svc.conversions = make([]*projection.Conversion, len(cat.Conversions))
	for i, c := range cat.Conversions {
		conv := *c
		conv.WithConvergence = opts.Convergence
		svc.conversions[i] = &conv
	}
	log.Logger(ctx).Debug("service ready", zap.Int("grid_cache_size", opts.GridCacheSize), zap.Bool("convergence", opts.Convergence))
	return svc, nil
}

// Close releases the loaded grids
func (svc *Service) Close() {
	svc.grids.Purge()
}

// Catalog returns the catalog of the service
func (svc *Service) Catalog() *catalog.Catalog {
	return svc.catalog
}

// LoadTransformationGrid implements GeoshiftService. The grid is shared: Release it when done.
func (svc *Service) LoadTransformationGrid(ctx context.Context, path string, mode grid.LoadMode) (*grid.Grid, error) {
	ctx = log.WithGrid(ctx, path)
	g, err := svc.grids.Get(ctx, path, mode)
	if err != nil {
		return nil, fmt.Errorf("LoadTransformationGrid: %w", err)
	}
	cols, rows := g.Dims()
	log.Logger(ctx).Debug("grid loaded", zap.Stringer("format", g.Format), zap.Stringer("mode", g.Mode()),
		zap.Int("cols", cols), zap.Int("rows", rows))
	return g, nil
}

// ApplyProjection implements GeoshiftService.
// Forward, (u, v) are the longitude and latitude (radians, from the prime meridian of the frame) projected with
// the conversion of the projected CRS. Reverse, (u, v) are the easting and northing (m) and the geographic coordinates are returned.
func (svc *Service) ApplyProjection(conversionCRS string, u, v float64, dir geodesy.Direction) (x, y, convergence, scale float64, err error) {
	crs, err := svc.catalog.CRS(conversionCRS)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if crs.Type != geodesy.CRSTypePROJECTED {
		return 0, 0, 0, 0, geodesy.NewInvalidArgument("crs %s is not projected", crs.ID)
	}
	conv := svc.conversions[crs.Conversion]
	if dir == geodesy.DirectionFORWARD {
		return conv.Apply(u, v)
	}
	return conv.ApplyInv(u, v)
}

// ApplyDatumShift implements GeoshiftService.
// The geocentric point (X, Y, Z in meters) is transformed, an epoch of 0 keeping the epoch of the point.
func (svc *Service) ApplyDatumShift(ctx context.Context, transformationID string, pt *geodesy.Pt4d, dir geodesy.Direction, epoch float64) error {
	idx := geodesy.NoIndex
	for i, t := range svc.catalog.Transformations {
		if t.ID == transformationID {
			idx = i
			break
		}
	}
	if idx == geodesy.NoIndex {
		return geodesy.NewInvalidArgument("unknown transformation %q", transformationID)
	}
	t := svc.catalog.Transformation(idx)
	if t.Kind != geodesy.FrameKindGEODETIC {
		return geodesy.NewInvalidArgument("transformation %s is not geodetic", t.ID)
	}
	if epoch != 0 {
		pt.Epoch = epoch
	}
	env := svc.env(t)
	from := env.Source
	if dir == geodesy.DirectionREVERSE {
		from = env.Target
	}
	var err error
	if pt.L, pt.P, pt.H, err = geodesy.CartToGeo(pt.X, pt.Y, pt.Z, from.A, from.E2); err != nil {
		return err
	}
	if err := t.Apply(ctx, pt, dir, env); err != nil {
		return fmt.Errorf("ApplyDatumShift[%s]: %w", t.ID, err)
	}
	pt.TransfoIndex = idx
	return nil
}

// env returns the ellipsoids of the frames of the transformation
func (svc *Service) env(t *transfo.Transformation) transfo.Env {
	env := transfo.Env{Grids: svc.grids}
	if f := svc.catalog.Frame(t.Source); f.Ellipsoid != geodesy.NoIndex {
		env.Source = svc.catalog.Ellipsoid(t.Source)
	}
	if f := svc.catalog.Frame(t.Target); f.Ellipsoid != geodesy.NoIndex {
		env.Target = svc.catalog.Ellipsoid(t.Target)
	}
	return env
}
