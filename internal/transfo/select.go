package transfo

import (
	"github.com/airbusgeo/geoshift/internal/geodesy"
)

// SelectTransfo returns the index of the candidate of smallest coverage containing (lon, lat) in degrees.
// A candidate without coverage applies everywhere. Ties keep the first candidate.
func SelectTransfo(lon, lat float64, candidates []*Transformation) (int, error) {
	best, bestArea := geodesy.NoIndex, 0.
	for i, t := range candidates {
		area := worldArea
		if !t.Coverage.IsEmpty() {
			if !t.Coverage.Contains(lon, lat) {
				continue
			}
			area = t.Coverage.Area()
		}
		if best == geodesy.NoIndex || area < bestArea {
			best, bestArea = i, area
		}
	}
	if best == geodesy.NoIndex {
		return best, geodesy.NewTransfoNotFound(lon, lat)
	}
	return best, nil
}

const worldArea = 360. * 180.
