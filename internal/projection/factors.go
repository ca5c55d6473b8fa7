package projection

import (
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
)

// latIso returns the isometric latitude, infinite at the poles
func latIso(lat, e2 float64) (float64, error) {
	l, err := geodesy.LatIso(lat, e2)
	if geodesy.IsError(err, geodesy.Singularity) {
		return math.Copysign(math.Inf(1), lat), nil
	}
	return l, err
}

// wrapLon brings a longitude difference into [-pi, pi]
func wrapLon(dl float64) float64 {
	if dl >= -math.Pi && dl <= math.Pi {
		return dl
	}
	return dl - 2*math.Pi*math.Floor((dl+math.Pi)/(2*math.Pi))
}

func finite(v ...float64) bool {
	for _, f := range v {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

// parallelRadius returns N.cos(lat), reporting the poles as a Singularity
func parallelRadius(lat, a, e2 float64) (float64, error) {
	_, par, err := geodesy.ArcLengths(lat, a, e2)
	return par, err
}

const factorStep = 1e-7

// numericFactors estimates the meridian convergence and the scale factor along the parallel by central differences
func numericFactors(apply func(lon, lat float64) (float64, float64, error), lon, lat, a, e2 float64) (float64, float64, error) {
	par, err := parallelRadius(lat, a, e2)
	if err != nil {
		return 0, 0, err
	}
	xe, ye, err := apply(lon+factorStep, lat)
	if err != nil {
		return 0, 0, err
	}
	xw, yw, err := apply(lon-factorStep, lat)
	if err != nil {
		return 0, 0, err
	}
	latN, latS := lat+factorStep, lat-factorStep
	if latN > math.Pi/2 {
		latN = lat
	}
	if latS < -math.Pi/2 {
		latS = lat
	}
	xn, yn, err := apply(lon, latN)
	if err != nil {
		return 0, 0, err
	}
	xs, ys, err := apply(lon, latS)
	if err != nil {
		return 0, 0, err
	}
	scale := math.Hypot(xe-xw, ye-yw) / (2 * factorStep * par)
	// angle from true north to grid north, clockwise
	convergence := math.Atan2(-(xn - xs), yn-ys)
	return convergence, scale, nil
}
