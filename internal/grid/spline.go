package grid

import (
	"math"
)

// window returns the first index of a window of w nodes around t, kept inside [0, n)
func window(t float64, w, n int) int {
	first := int(math.Floor(t)) - w/2 + 1
	if first > n-w {
		first = n - w
	}
	if first < 0 {
		first = 0
	}
	return first
}

// spline interpolates with a natural cubic spline over a window of nodes along the longitude,
// then along the latitude. Points outside the bounds take the value at the nearest edge.
// The window of a global grid goes round the seam.
func (g *Grid) spline(x, y float64) (Values, error) {
	y = math.Max(0, math.Min(y, float64(g.rows-1)))
	w := g.SplineWindow
	r0 := window(y, w, g.rows)
	var c0 int
	col := func(i int) int { return c0 + i }
	if g.global {
		c0 = int(math.Floor(x)) - w/2 + 1
		col = func(i int) int { return g.wrapCol(c0 + i) }
	} else {
		x = math.Max(0, math.Min(x, float64(g.cols-1)))
		c0 = window(x, w, g.cols)
	}

	res := Values{N: g.ValuesPerNode}
	columns := make([][]float64, g.ValuesPerNode)
	for k := range columns {
		columns[k] = make([]float64, w)
	}
	row := make([]float64, w)
	m := make([]float64, w)
	for j := 0; j < w; j++ {
		nodes := make([]Node, w)
		for i := range nodes {
			var err error
			if nodes[i], err = g.knownNode(col(i), r0+j); err != nil {
				return Values{}, err
			}
		}
		for k := 0; k < g.ValuesPerNode; k++ {
			for i := range nodes {
				row[i] = nodes[i].Values[k]
			}
			columns[k][j] = evalSpline(row, naturalSpline(row, m), x-float64(c0))
		}
	}
	for k := 0; k < g.ValuesPerNode; k++ {
		res.V[k] = evalSpline(columns[k], naturalSpline(columns[k], m), y-float64(r0))
	}
	nearestCol := int(math.Round(x))
	if g.global {
		nearestCol = g.wrapCol(nearestCol)
	}
	nearest, err := g.Node(nearestCol, int(math.Round(y)))
	if err != nil {
		return Values{}, err
	}
	res.Precision = nearest.Precision
	return res, nil
}

// naturalSpline computes into m the second derivatives of the natural cubic spline through
// the values y at unit spacing, solving the tridiagonal system with the Thomas algorithm
func naturalSpline(y, m []float64) []float64 {
	n := len(y)
	m = m[:n]
	m[0], m[n-1] = 0, 0
	if n < 3 {
		return m
	}
	// interior equations: m[i-1] + 4 m[i] + m[i+1] = 6 (y[i+1] - 2 y[i] + y[i-1])
	c := make([]float64, n)
	d := make([]float64, n)
	for i := 1; i < n-1; i++ {
		rhs := 6 * (y[i+1] - 2*y[i] + y[i-1])
		den := 4 - c[i-1]
		c[i] = 1 / den
		d[i] = (rhs - d[i-1]) / den
	}
	for i := n - 2; i >= 1; i-- {
		m[i] = d[i] - c[i]*m[i+1]
	}
	return m
}

// evalSpline evaluates at t in [0, n-1] the spline of values y and second derivatives m
func evalSpline(y, m []float64, t float64) float64 {
	k := int(math.Floor(t))
	if k > len(y)-2 {
		k = len(y) - 2
	}
	if k < 0 {
		k = 0
	}
	u := t - float64(k)
	v := 1 - u
	return v*y[k] + u*y[k+1] + ((v*v*v-v)*m[k]+(u*u*u-u)*m[k+1])/6
}
