package proj

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
	"github.com/twpayne/go-geom/xy"
)

const (
	RadToDeg = 180 / math.Pi
	DegToRad = math.Pi / 180
)

// Coverage is the geographic validity area (degrees) of a CRS, a frame or a transformation:
// a lon/lat rectangle, refined by an optional polygon
type Coverage struct {
	West, East, South, North float64
	Polygon                  *geom.Polygon
}

// NewCoverage creates a rectangular coverage
func NewCoverage(west, east, south, north float64) (Coverage, error) {
	if !(west < east) || !(south < north) {
		return Coverage{}, fmt.Errorf("NewCoverage: empty coverage [%v, %v]x[%v, %v]", west, east, south, north)
	}
	return Coverage{West: west, East: east, South: south, North: north}, nil
}

// NewCoverageFromWKT creates a coverage from a POLYGON wkt. The rectangle is the bounds of the polygon.
func NewCoverageFromWKT(s string) (Coverage, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Coverage{}, fmt.Errorf("NewCoverageFromWKT: %w", err)
	}
	p, ok := g.(*geom.Polygon)
	if !ok {
		return Coverage{}, fmt.Errorf("NewCoverageFromWKT: expecting a POLYGON, got %T", g)
	}
	if p.NumLinearRings() == 0 {
		return Coverage{}, fmt.Errorf("NewCoverageFromWKT: empty polygon")
	}
	return coverageFromPolygon(p), nil
}

func coverageFromPolygon(p *geom.Polygon) Coverage {
	b := p.Bounds()
	return Coverage{West: b.Min(0), East: b.Max(0), South: b.Min(1), North: b.Max(1), Polygon: p}
}

// IsEmpty returns true if the coverage has never been defined
func (c Coverage) IsEmpty() bool {
	return c.Polygon == nil && c.West == 0 && c.East == 0 && c.South == 0 && c.North == 0
}

// Contains returns true if the point (degrees) is inside the coverage or on its border
func (c Coverage) Contains(lon, lat float64) bool {
	if lon < c.West || lon > c.East || lat < c.South || lat > c.North {
		return false
	}
	if c.Polygon == nil {
		return true
	}
	p := geom.Coord{lon, lat}
	if !xy.IsPointInRing(c.Polygon.Layout(), p, c.Polygon.LinearRing(0).FlatCoords()) {
		return false
	}
	for i := 1; i < c.Polygon.NumLinearRings(); i++ {
		if xy.IsPointInRing(c.Polygon.Layout(), p, c.Polygon.LinearRing(i).FlatCoords()) {
			return false
		}
	}
	return true
}

// Area returns the area of the coverage in square degrees (polygon area if any, rectangle otherwise)
func (c Coverage) Area() float64 {
	if c.Polygon != nil {
		// the holes are subtracted whatever the winding of the rings
		area := 0.
		for i := 0; i < c.Polygon.NumLinearRings(); i++ {
			a := math.Abs(xy.SignedArea(c.Polygon.Layout(), c.Polygon.LinearRing(i).FlatCoords()))
			if i == 0 {
				area += a
			} else {
				area -= a
			}
		}
		return area
	}
	return (c.East - c.West) * (c.North - c.South)
}

// Intersects returns true if the rectangles of the coverages overlap
func (c Coverage) Intersects(o Coverage) bool {
	return c.West <= o.East && o.West <= c.East && c.South <= o.North && o.South <= c.North
}

// Extend returns the smallest rectangle containing both coverages.
// The polygons are dropped: the union of two validity areas is only used as a bounding box.
func (c Coverage) Extend(o Coverage) Coverage {
	if c.IsEmpty() {
		return Coverage{West: o.West, East: o.East, South: o.South, North: o.North}
	}
	if o.IsEmpty() {
		return Coverage{West: c.West, East: c.East, South: c.South, North: c.North}
	}
	b := geom.NewBounds(geom.XY).
		SetCoords([]float64{c.West, c.South}, []float64{c.East, c.North}).
		Extend(geom.NewPointFlat(geom.XY, []float64{o.West, o.South})).
		Extend(geom.NewPointFlat(geom.XY, []float64{o.East, o.North}))
	return Coverage{West: b.Min(0), East: b.Max(0), South: b.Min(1), North: b.Max(1)}
}

// WKT returns the coverage as a POLYGON wkt
func (c Coverage) WKT() (string, error) {
	p := c.Polygon
	if p == nil {
		p = geom.NewBounds(geom.XY).SetCoords([]float64{c.West, c.South}, []float64{c.East, c.North}).Polygon()
	}
	return wkt.Marshal(p)
}

// String implements Stringer
func (c Coverage) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", c.West, c.East, c.South, c.North)
}

/*******************************************************************/
/*                     PROJECTED EXTENTS                           */
/*******************************************************************/

// Projection maps planar coordinates of a projected CRS to lon/lat (degrees)
type Projection func(x, y float64) (lon, lat float64, err error)

const (
	accuracyPc          = 0.01
	densifyMaxRecursion = 5
)

// NewCoverageFromExtent creates the coverage (lon/lat) of a rectangular extent of a projected CRS.
// The edges are densified until the geographic polygon follows the projected edges to 1% of their length.
func NewCoverageFromExtent(toLonLat Projection, xMin, yMin, xMax, yMax float64) (Coverage, error) {
	x := []float64{xMin, xMin, xMax, xMax, xMin}
	y := []float64{yMin, yMax, yMax, yMin, yMin}
	lon, lat := make([]float64, len(x)), make([]float64, len(x))
	var err error
	for i := range x {
		if lon[i], lat[i], err = toLonLat(x[i], y[i]); err != nil {
			return Coverage{}, fmt.Errorf("NewCoverageFromExtent: %w", err)
		}
	}

	pts := make([]float64, 0, 2*len(x))
	for i := 0; i < len(x)-1; i++ {
		accuracy := lonLatDistance(lon[i], lat[i], lon[i+1], lat[i+1]) * accuracyPc
		pts = append(pts, lon[i], lat[i])
		dense, err := densifyEdge(toLonLat, x[i], y[i], x[i+1], y[i+1], lon[i], lat[i], lon[i+1], lat[i+1], accuracy, densifyMaxRecursion)
		if err != nil {
			return Coverage{}, fmt.Errorf("NewCoverageFromExtent: %w", err)
		}
		pts = append(pts, dense...)
	}
	pts = append(pts, lon[0], lat[0])

	p := geom.NewPolygonFlat(geom.XY, pts, []int{len(pts)})
	return coverageFromPolygon(p), nil
}

// FlatCoordToXY splits flat into two arrays x, y
func FlatCoordToXY(flat []float64) (x []float64, y []float64) {
	n := len(flat) / 2
	x = make([]float64, n)
	y = make([]float64, n)
	for i, j := 0, 0; i < n; i, j = i+1, j+2 {
		x[i], y[i] = flat[j], flat[j+1]
	}
	return x, y
}

// lonLatDistance returns the approximate distances in meter between two lon/lat points
func lonLatDistance(lon1, lat1, lon2, lat2 float64) float64 {
	earthRadius := 6371000.
	lon1, lat1, lon2, lat2 = DegToRad*lon1, DegToRad*lat1, DegToRad*lon2, DegToRad*lat2
	t := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)
	if t > 1 {
		return 0
	}
	return earthRadius * math.Acos(t)
}

// densifyEdge returns an array of flat lon/lat points so that the difference between
// the segment ([x1, y1], [x2, y2]) and the polyline (lon1, lat1], []returnedValue, lon2, lat2]) is lower than accuracy
func densifyEdge(toLonLat Projection, x1, y1, x2, y2, lon1, lat1, lon2, lat2, accuracy float64, recursion int) ([]float64, error) {
	xm, ym := (x1+x2)/2, (y1+y2)/2
	lonm, latm, err := toLonLat(xm, ym)
	if err != nil {
		return nil, err
	}
	if lonLatDistance(lonm, latm, (lon1+lon2)/2, (lat1+lat2)/2) <= accuracy {
		return nil, nil
	}
	if recursion == 0 {
		return []float64{lonm, latm}, nil
	}
	left, err := densifyEdge(toLonLat, x1, y1, xm, ym, lon1, lat1, lonm, latm, accuracy, recursion-1)
	if err != nil {
		return nil, err
	}
	right, err := densifyEdge(toLonLat, xm, ym, x2, y2, lonm, latm, lon2, lat2, accuracy, recursion-1)
	if err != nil {
		return nil, err
	}
	return append(append(left, lonm, latm), right...), nil
}
