package grid

import (
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
)

// Values interpolated at a point: N values east and north positive, in the value unit of the grid
type Values struct {
	V         [3]float64
	N         int
	Precision int
}

// tolerance beyond the bounds, in increments
const tolerance = 1 + 1e-9

// cell of the bilinear interpolation: the four corners (c0, r0), (c1, r0), (c0, r1), (c1, r1)
// and the weights of the eastern column and of the northern row
type cell struct {
	c0, c1, r0, r1 int
	u, v           float64
}

// locate returns the fractional node indices of the point, or OutOfGrid beyond one increment outside the bounds
func (g *Grid) locate(lon, lat float64) (float64, float64, error) {
	x, y := g.nodes.Locate(lon, lat)
	if !g.global && (x < -tolerance || x > float64(g.cols-1)+tolerance) {
		// the longitudes of the grid may be expressed in another turn
		for _, turn := range []float64{-360, 360} {
			if xt, _ := g.nodes.Locate(lon+turn, lat); xt >= -tolerance && xt <= float64(g.cols-1)+tolerance {
				x = xt
				break
			}
		}
	}
	if g.global {
		x = math.Mod(x, float64(g.period))
		if x < 0 {
			x += float64(g.period)
		}
	}
	if x < -tolerance || x > float64(g.cols-1)+tolerance || y < -tolerance || y > float64(g.rows-1)+tolerance {
		return 0, 0, geodesy.NewOutOfGrid(g.Path, lon, lat)
	}
	return x, y, nil
}

// cellOf classifies the point against the bounds. Inside, the enclosing cell is returned.
// Outside (within one increment), the nearest edge or corner nodes are replicated.
func (g *Grid) cellOf(x, y float64) cell {
	lastCol, lastRow := g.cols-1, g.rows-1
	if g.global {
		// x is in [0, period): the column after the last node of the turn is the first one
		c0 := int(math.Floor(x))
		c := cell{c0: c0, c1: g.wrapCol(c0 + 1), u: x - float64(c0)}
		switch {
		case y < 0:
			c.r0, c.r1 = 0, 0
			return c
		case y > float64(lastRow):
			c.r0, c.r1 = lastRow, lastRow
			return c
		}
		return g.rowsOf(c, y)
	}
	west, east := x < 0, x > float64(lastCol)
	south, north := y < 0, y > float64(lastRow)
	switch {
	case west && south:
		return cell{c0: 0, c1: 0, r0: 0, r1: 0}
	case west && north:
		return cell{c0: 0, c1: 0, r0: lastRow, r1: lastRow}
	case east && south:
		return cell{c0: lastCol, c1: lastCol, r0: 0, r1: 0}
	case east && north:
		return cell{c0: lastCol, c1: lastCol, r0: lastRow, r1: lastRow}
	case west:
		return g.rowsOf(cell{c0: 0, c1: 0}, y)
	case east:
		return g.rowsOf(cell{c0: lastCol, c1: lastCol}, y)
	case south:
		return g.colsOf(cell{r0: 0, r1: 0}, x)
	case north:
		return g.colsOf(cell{r0: lastRow, r1: lastRow}, x)
	}
	return g.rowsOf(g.colsOf(cell{}, x), y)
}

// wrapCol returns the column of a global grid holding the nodes of longitude index col, modulo the turn
func (g *Grid) wrapCol(col int) int {
	col %= g.period
	if col < 0 {
		col += g.period
	}
	return col
}

func (g *Grid) colsOf(c cell, x float64) cell {
	c.c0 = int(math.Floor(x))
	if c.c0 > g.cols-2 {
		c.c0 = g.cols - 2
	}
	c.c1 = c.c0 + 1
	c.u = x - float64(c.c0)
	return c
}

func (g *Grid) rowsOf(c cell, y float64) cell {
	c.r0 = int(math.Floor(y))
	if c.r0 > g.rows-2 {
		c.r0 = g.rows - 2
	}
	c.r1 = c.r0 + 1
	c.v = y - float64(c.r0)
	return c
}

// Interpolate returns the values of the grid at (lon, lat) in degrees, with the interpolation of the grid.
// The precision code is the one of the nearest node.
func (g *Grid) Interpolate(lon, lat float64) (Values, error) {
	if g.state != StateREADY {
		return Values{}, geodesy.NewInvalidArgument("grid %s is not ready (state %s)", g.Path, g.state)
	}
	x, y, err := g.locate(lon, lat)
	if err != nil {
		return Values{}, err
	}
	if g.Interpolation == InterpolationSPLINE {
		return g.spline(x, y)
	}
	return g.bilinear(g.cellOf(x, y))
}

func (g *Grid) bilinear(c cell) (Values, error) {
	var corners [4]Node
	for i, cr := range [4][2]int{{c.c0, c.r0}, {c.c1, c.r0}, {c.c0, c.r1}, {c.c1, c.r1}} {
		var err error
		if corners[i], err = g.knownNode(cr[0], cr[1]); err != nil {
			return Values{}, err
		}
	}
	w := [4]float64{(1 - c.u) * (1 - c.v), c.u * (1 - c.v), (1 - c.u) * c.v, c.u * c.v}
	res := Values{N: g.ValuesPerNode}
	for k := 0; k < g.ValuesPerNode; k++ {
		for i := range corners {
			res.V[k] += w[i] * corners[i].Values[k]
		}
	}
	nearest := 0
	if c.u >= 0.5 {
		nearest++
	}
	if c.v >= 0.5 {
		nearest += 2
	}
	res.Precision = corners[nearest].Precision
	return res, nil
}

// Deflection returns the vertical deflection (xi, eta) in radians of a height grid at (lon, lat) in degrees,
// from the central differences of the heights over half an increment, on the ellipsoid (a, e2)
func (g *Grid) Deflection(lon, lat, a, e2 float64) (xi, eta float64, err error) {
	dLon, dLat := g.StepLon/2, g.StepLat/2
	height := func(lon, lat float64) (float64, error) {
		v, err := g.Interpolate(lon, lat)
		if err != nil {
			return 0, err
		}
		return geodesy.UnitConvert(v.V[0], g.ValueUnit, geodesy.UnitMETER)
	}
	var z [4]float64
	for i, p := range [4][2]float64{{lon, lat + dLat}, {lon, lat - dLat}, {lon + dLon, lat}, {lon - dLon, lat}} {
		if z[i], err = height(p[0], p[1]); err != nil {
			return 0, 0, err
		}
	}
	mer, par, err := geodesy.ArcLengths(geodesy.DegToRad(lat), a, e2)
	if err != nil {
		return 0, 0, err
	}
	xi = -(z[0] - z[1]) / (mer * geodesy.DegToRad(2*dLat))
	eta = -(z[2] - z[3]) / (par * geodesy.DegToRad(2*dLon))
	return xi, eta, nil
}
