package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/airbusgeo/geoshift/internal/catalog"
	"github.com/airbusgeo/geoshift/internal/geodesy"
)

// layout of the coordinates of a crs on a line: two or three coordinates, then the altitude with a vertical crs
type layout struct {
	crsType  geodesy.CRSType
	vertical bool
}

func newLayout(cat *catalog.Catalog, id string) (layout, error) {
	h, _, vertical := strings.Cut(id, "+")
	crs, err := cat.CRS(h)
	if err != nil {
		return layout{}, err
	}
	return layout{crsType: crs.Type, vertical: vertical}, nil
}

// parse reads "x y [z] [w]"
func (l layout) parse(line string) (geodesy.Pt4d, error) {
	fields := strings.Fields(line)
	lo, hi := 2, 3
	if l.crsType == geodesy.CRSTypeGEOCENTRIC {
		lo = 3
	}
	if l.vertical {
		lo, hi = 3, 4
		if l.crsType == geodesy.CRSTypeGEOCENTRIC {
			lo = 4
		}
	}
	if len(fields) < lo || len(fields) > hi {
		return geodesy.Pt4d{}, fmt.Errorf("%d to %d coordinates expected, got %q", lo, hi, line)
	}
	v := make([]float64, 4)
	for i, f := range fields {
		var err error
		if v[i], err = strconv.ParseFloat(f, 64); err != nil {
			return geodesy.Pt4d{}, fmt.Errorf("invalid coordinate %q", f)
		}
	}
	pt := geodesy.NewPt4d()
	if l.vertical {
		// the altitude comes last, after an optional ellipsoidal height
		pt.W = v[len(fields)-1]
		v[len(fields)-1] = 0
	}
	switch l.crsType {
	case geodesy.CRSTypeGEOCENTRIC:
		pt.X, pt.Y, pt.Z = v[0], v[1], v[2]
	case geodesy.CRSTypePROJECTED:
		pt.E, pt.N, pt.H = v[0], v[1], v[2]
	default:
		pt.L, pt.P, pt.H = v[0], v[1], v[2]
	}
	return pt, nil
}

func (l layout) format(pt geodesy.Pt4d, convergence, deflection bool) string {
	var v []float64
	switch l.crsType {
	case geodesy.CRSTypeGEOCENTRIC:
		v = []float64{pt.X, pt.Y, pt.Z}
	case geodesy.CRSTypePROJECTED:
		v = []float64{pt.E, pt.N, pt.H}
	default:
		v = []float64{pt.L, pt.P, pt.H}
	}
	if l.vertical {
		v = append(v, pt.W)
	}
	if convergence {
		v = append(v, pt.Convergence, pt.ScaleFactor)
	}
	if deflection {
		v = append(v, pt.Xi, pt.Eta)
	}
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	if pt.TransfoIndex != geodesy.NoIndex || pt.VerticalTransfoIndex != geodesy.NoIndex {
		s = append(s, fmt.Sprintf("(%d/%d)", pt.GeodeticPrecision, pt.VerticalPrecision))
	}
	return strings.Join(s, " ")
}
