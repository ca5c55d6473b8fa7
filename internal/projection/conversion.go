package projection

import (
	"fmt"
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"go.uber.org/multierr"
)

//go:generate enumer -text -type Method -trimprefix Method

// Method selects the projection family of a conversion
type Method int

const (
	MethodUNDEFINED Method = iota
	MethodLCC1SP           // Lambert Conformal Conic, tangent
	MethodLCC2SP           // Lambert Conformal Conic, secant
	MethodTM               // Transverse Mercator
	MethodGAUSSLABORDE
	MethodLAEA // Lambert Azimuthal Equal-Area, oblique or polar
	MethodSTEREOOBLIQUE
	MethodSTEREOPOLARNORTH
	MethodSTEREOPOLARSOUTH
)

// Parameters of a conversion. Angles in radians, lengths in meters.
type Parameters struct {
	A       float64 // semi-major axis of the ellipsoid
	E2      float64 // squared eccentricity of the ellipsoid
	Lambda0 float64
	Phi0    float64
	// Standard parallels: Phi1 and Phi2 for the secant LCC, Phi1 for the polar stereographic variant B
	Phi1 float64
	Phi2 float64
	K0   float64
	X0   float64
	Y0   float64
}

// Conversion is a map projection. InitParam must be called once, before Apply and ApplyInv.
type Conversion struct {
	ID     string
	Name   string
	Method Method
	Parameters
	// WithConvergence requests the meridian convergence and the scale factor. They are zero otherwise.
	WithConvergence bool

	initialized bool
	lcc         lccCoefs
	tm          tmCoefs
	laea        laeaCoefs
	stereo      stereoCoefs
}

// New creates a conversion. InitParam must be called before use.
func New(id string, method Method, p Parameters) *Conversion {
	return &Conversion{ID: id, Method: method, Parameters: p}
}

// Initialized returns true once InitParam has succeeded
func (c *Conversion) Initialized() bool {
	return c.initialized
}

// InitParam computes the coefficients of the projection. It fails if it has already been called.
func (c *Conversion) InitParam() error {
	if c.initialized {
		return geodesy.NewInvalidArgument("conversion %s is already initialized", c.ID)
	}
	if err := c.validate(); err != nil {
		return fmt.Errorf("InitParam(%s): %w", c.ID, err)
	}
	var err error
	switch c.Method {
	case MethodLCC1SP:
		c.lcc, err = initLCC1SP(c.Parameters)
	case MethodLCC2SP:
		c.lcc, err = initLCC2SP(c.Parameters)
	case MethodTM:
		c.tm, err = initTM(c.Parameters)
	case MethodGAUSSLABORDE:
		c.tm, err = initGaussLaborde(c.Parameters)
	case MethodLAEA:
		c.laea, err = initLAEA(c.Parameters)
	case MethodSTEREOOBLIQUE:
		c.stereo, err = initStereoOblique(c.Parameters)
	case MethodSTEREOPOLARNORTH:
		c.stereo, err = initStereoPolar(c.Parameters, false)
	case MethodSTEREOPOLARSOUTH:
		c.stereo, err = initStereoPolar(c.Parameters, true)
	default:
		err = geodesy.NewInvalidArgument("unknown projection method %s", c.Method)
	}
	if err != nil {
		return fmt.Errorf("InitParam(%s): %w", c.ID, err)
	}
	c.initialized = true
	return nil
}

func (c *Conversion) validate() error {
	var err error
	if !(c.A > 0) {
		err = multierr.Append(err, geodesy.NewFieldError("a", "semi-major axis must be positive (got %g)", c.A))
	}
	if c.E2 < 0 || c.E2 >= 1 || math.IsNaN(c.E2) {
		err = multierr.Append(err, geodesy.NewFieldError("e2", "squared eccentricity out of [0, 1) (got %g)", c.E2))
	}
	if math.Abs(c.Phi0) > math.Pi/2 {
		err = multierr.Append(err, geodesy.NewFieldError("phi0", "latitude of origin out of [-pi/2, pi/2] (got %g)", c.Phi0))
	}
	needsK0 := true
	switch c.Method {
	case MethodLCC2SP, MethodLAEA:
		needsK0 = false
	case MethodSTEREOPOLARNORTH, MethodSTEREOPOLARSOUTH:
		needsK0 = c.Phi1 == 0
	}
	if needsK0 && !(c.K0 > 0) {
		err = multierr.Append(err, geodesy.NewFieldError("k0", "scale factor must be positive (got %g)", c.K0))
	}
	return err
}

// Apply projects (lon, lat) and, if WithConvergence, returns the meridian convergence and the scale factor
func (c *Conversion) Apply(lon, lat float64) (x, y, convergence, scale float64, err error) {
	if !c.initialized {
		return 0, 0, 0, 0, geodesy.NewInvalidArgument("conversion %s is not initialized", c.ID)
	}
	switch c.Method {
	case MethodLCC1SP, MethodLCC2SP:
		x, y, err = c.lcc.apply(lon, lat)
	case MethodTM, MethodGAUSSLABORDE:
		x, y, err = c.tm.apply(lon, lat)
	case MethodLAEA:
		x, y, err = c.laea.apply(lon, lat)
	case MethodSTEREOOBLIQUE:
		x, y, err = c.stereo.applyOblique(lon, lat)
	case MethodSTEREOPOLARNORTH, MethodSTEREOPOLARSOUTH:
		x, y, err = c.stereo.applyPolar(lon, lat)
	}
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("%s.Apply: %w", c.ID, err)
	}
	if c.WithConvergence {
		if convergence, scale, err = c.factors(lon, lat); err != nil {
			return 0, 0, 0, 0, fmt.Errorf("%s.Apply: %w", c.ID, err)
		}
	}
	return x, y, convergence, scale, nil
}

// ApplyInv returns the geographic coordinates of (x, y) and, if WithConvergence, the meridian convergence and the scale factor
func (c *Conversion) ApplyInv(x, y float64) (lon, lat, convergence, scale float64, err error) {
	if !c.initialized {
		return 0, 0, 0, 0, geodesy.NewInvalidArgument("conversion %s is not initialized", c.ID)
	}
	switch c.Method {
	case MethodLCC1SP, MethodLCC2SP:
		lon, lat, err = c.lcc.applyInv(x, y)
	case MethodTM, MethodGAUSSLABORDE:
		lon, lat, err = c.tm.applyInv(x, y)
	case MethodLAEA:
		lon, lat, err = c.laea.applyInv(x, y)
	case MethodSTEREOOBLIQUE:
		lon, lat, err = c.stereo.applyInvOblique(x, y)
	case MethodSTEREOPOLARNORTH, MethodSTEREOPOLARSOUTH:
		lon, lat, err = c.stereo.applyInvPolar(x, y)
	}
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("%s.ApplyInv: %w", c.ID, err)
	}
	if c.WithConvergence {
		if convergence, scale, err = c.factors(lon, lat); err != nil {
			return 0, 0, 0, 0, fmt.Errorf("%s.ApplyInv: %w", c.ID, err)
		}
	}
	return lon, lat, convergence, scale, nil
}

func (c *Conversion) factors(lon, lat float64) (float64, float64, error) {
	switch c.Method {
	case MethodLCC1SP, MethodLCC2SP:
		return c.lcc.factors(lon, lat)
	case MethodTM, MethodGAUSSLABORDE:
		return c.tm.factors(lon, lat)
	case MethodLAEA:
		return numericFactors(c.laea.apply, lon, lat, c.A, c.E2)
	case MethodSTEREOOBLIQUE:
		return numericFactors(c.stereo.applyOblique, lon, lat, c.A, c.E2)
	case MethodSTEREOPOLARNORTH, MethodSTEREOPOLARSOUTH:
		return c.stereo.factorsPolar(lon, lat)
	}
	return 0, 0, geodesy.NewInvalidArgument("unknown projection method %s", c.Method)
}

// ToLonLat returns the inverse projection in degrees, as expected by proj.NewCoverageFromExtent
func (c *Conversion) ToLonLat(x, y float64) (float64, float64, error) {
	lon, lat, _, _, err := c.ApplyInv(x, y)
	return geodesy.RadToDeg(lon), geodesy.RadToDeg(lat), err
}
