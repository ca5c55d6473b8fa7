package transfo

import (
	"context"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/grid"
	"github.com/airbusgeo/geoshift/internal/utils/proj"
)

// Transformation between two reference frames of the same kind.
//
// Geodetic transformations are parametric (3, 7 or 14 parameters) or grid-based.
// Vertical transformations go from a vertical frame (altitudes) to a geodetic frame (ellipsoidal heights):
// h = W + N, with N a constant offset (Params[0]) or interpolated in a height grid.
type Transformation struct {
	ID   string
	Name string
	Kind geodesy.FrameKind
	// Frames indices in the catalog
	Source, Target int
	// Transformation keys of the frames
	SourceKey, TargetKey string

	// Params: translations (m), scale (unitless), rotations (radians), then yearly rates for 14 parameters
	Params      []float64
	RefEpoch    float64
	Application Application
	Precision   int
	Coverage    proj.Coverage

	Grid *GridRef
}

// GridRef is the grid of a grid-based transformation
type GridRef struct {
	Path     string
	Format   grid.Format // detected if UNDEFINED
	LoadMode grid.LoadMode
	// Authoritative forces the nodes to be read as located in the target frame
	Authoritative bool
	UnknownAsZero bool
	// Approx translation seeding the iterative application of geocentric grids
	Approx [3]float64
}

// GridProvider gives the loaded grid of a file
type GridProvider interface {
	Get(ctx context.Context, path string, mode grid.LoadMode, opts ...grid.Option) (*grid.Grid, error)
}

// Env of an application: the ellipsoids of the source and target frames, and the grids
type Env struct {
	Source, Target geodesy.Ellipsoid
	Grids          GridProvider
}

// from returns the ellipsoids of the frames the point goes from and to
func (e Env) from(dir geodesy.Direction) (geodesy.Ellipsoid, geodesy.Ellipsoid) {
	if dir == geodesy.DirectionFORWARD {
		return e.Source, e.Target
	}
	return e.Target, e.Source
}

// IsGrid returns true for grid-based transformations
func (t *Transformation) IsGrid() bool {
	return t.Grid != nil && t.Grid.Path != ""
}

// Validate checks the number of parameters against the kind of transformation
func (t *Transformation) Validate() error {
	if t.Kind == geodesy.FrameKindUNDEFINED {
		return geodesy.NewFieldError("kind", "transformation %s: undefined kind", t.ID)
	}
	if t.IsGrid() {
		return nil
	}
	switch n := len(t.Params); {
	case t.Kind == geodesy.FrameKindVERTICAL && n != 1:
		return geodesy.NewFieldError("params", "transformation %s: vertical offset needs 1 parameter (got %d)", t.ID, n)
	case t.Kind == geodesy.FrameKindGEODETIC && n != 3 && n != 7 && n != 14:
		return geodesy.NewFieldError("params", "transformation %s: 3, 7 or 14 parameters expected (got %d)", t.ID, n)
	}
	if t.Kind == geodesy.FrameKindGEODETIC && t.Application == ApplicationUNDEFINED {
		return geodesy.NewFieldError("application", "transformation %s: undefined application", t.ID)
	}
	return nil
}

// LoadGrid returns the grid of the transformation, loaded by the provider with the overrides of the reference
func (t *Transformation) LoadGrid(ctx context.Context, grids GridProvider) (*grid.Grid, error) {
	if !t.IsGrid() {
		return nil, geodesy.NewInvalidArgument("transformation %s has no grid", t.ID)
	}
	ref := t.Grid
	mode := ref.LoadMode
	if mode == grid.LoadModeUNDEFINED {
		mode = grid.LoadModeARRAY
	}
	opts := []grid.Option{grid.WithOverrides(ref.Authoritative, ref.UnknownAsZero)}
	if ref.Format != grid.FormatUNDEFINED {
		opts = append(opts, grid.WithFormat(ref.Format))
	}
	return grids.Get(ctx, ref.Path, mode, opts...)
}

// Apply applies the transformation to the point in the direction.
// Geodetic transformations read (L, P, H) and write (L, P, H) and (X, Y, Z) in the frame reached.
// Vertical transformations read H (forward: W) at (L, P) and write W (forward: H).
func (t *Transformation) Apply(ctx context.Context, pt *geodesy.Pt4d, dir geodesy.Direction, env Env) error {
	switch t.Kind {
	case geodesy.FrameKindGEODETIC:
		if t.IsGrid() {
			return t.applyGeodeticGrid(ctx, pt, dir, env)
		}
		return t.applyParametric(pt, dir, env)
	case geodesy.FrameKindVERTICAL:
		return t.applyVertical(ctx, pt, dir, env)
	}
	return geodesy.NewInvalidArgument("transformation %s: undefined kind", t.ID)
}

// Similarity returns the 7 parameters of a parametric transformation at the epoch
func (t *Transformation) Similarity(epoch float64) (Params7, error) {
	switch len(t.Params) {
	case 3:
		return Params7FromTranslation([3]float64{t.Params[0], t.Params[1], t.Params[2]}), nil
	case 7:
		var p Params7
		copy(p[:], t.Params)
		return p, nil
	case 14:
		var p Params14
		copy(p[:], t.Params)
		return Extrapolate(p, t.RefEpoch, epoch), nil
	}
	return Params7{}, geodesy.NewInvalidArgument("transformation %s: %d parameters", t.ID, len(t.Params))
}

func (t *Transformation) applyParametric(pt *geodesy.Pt4d, dir geodesy.Direction, env Env) error {
	p, err := t.Similarity(pt.Epoch)
	if err != nil {
		return err
	}
	from, to := env.from(dir)
	x, y, z := geodesy.GeoToCart(pt.L, pt.P, pt.H, from.A, from.E2)
	if len(t.Params) == 3 {
		x, y, z, err = Transform3(x, y, z, [3]float64{p[0], p[1], p[2]}, t.Application, dir)
	} else {
		x, y, z, err = Transform7(x, y, z, p, t.Application, dir)
	}
	if err != nil {
		return err
	}
	return t.setCart(pt, x, y, z, to)
}

func (t *Transformation) setCart(pt *geodesy.Pt4d, x, y, z float64, to geodesy.Ellipsoid) error {
	l, p, h, err := geodesy.CartToGeo(x, y, z, to.A, to.E2)
	if err != nil {
		return err
	}
	pt.X, pt.Y, pt.Z = x, y, z
	pt.L, pt.P, pt.H = l, p, h
	pt.GeodeticPrecision = t.Precision
	return nil
}
