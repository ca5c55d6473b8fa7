package projection

import (
	"fmt"
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
)

// NewUTM creates and initializes the Transverse Mercator conversion of a UTM zone
func NewUTM(zone int, south bool, a, e2 float64) (*Conversion, error) {
	if zone < 1 || zone > 60 {
		return nil, geodesy.NewInvalidArgument("UTM zone %d out of [1, 60]", zone)
	}
	hemisphere, y0 := "N", 0.
	if south {
		hemisphere, y0 = "S", 10000000.
	}
	c := New(fmt.Sprintf("UTM%02d%s", zone, hemisphere), MethodTM, Parameters{
		A:       a,
		E2:      e2,
		Lambda0: geodesy.DegToRad(float64(6*zone - 183)),
		K0:      0.9996,
		X0:      500000,
		Y0:      y0,
	})
	if err := c.InitParam(); err != nil {
		return nil, err
	}
	return c, nil
}

// UTMZone returns the UTM zone of a longitude (radians)
func UTMZone(lon float64) int {
	zone := int(math.Floor((geodesy.RadToDeg(wrapLon(lon))+180)/6)) + 1
	if zone > 60 {
		zone = 60
	}
	return zone
}
