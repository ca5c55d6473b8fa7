package grid

import (
	"context"
	"io"
	"math"
	"sort"

	"github.com/airbusgeo/geoshift/internal/geodesy"
)

// DIS files list the nodes as "lon lat value..." lines in any order.
// The lattice is inferred from the coordinates and the missing nodes are unknown.

func disHeader(ctx context.Context, r *lineReader, m *Metadata) error {
	return nil
}

type disNode struct {
	lon, lat float64
	values   []float64
}

func disNodes(r *lineReader, m *Metadata) ([]float64, []int32, error) {
	var nodes []disNode
	for {
		line, err := r.nextLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		v, err := r.floats(line, 3, true)
		if err != nil {
			return nil, nil, err
		}
		if len(nodes) == 0 {
			m.ValuesPerNode = len(v) - 2
			if m.ValuesPerNode > 3 {
				return nil, nil, geodesy.NewLoadError(r.path, "%s: line %d: at most 3 values per node", r.path, r.line)
			}
		} else if len(v)-2 != m.ValuesPerNode {
			return nil, nil, geodesy.NewLoadError(r.path, "%s: line %d: %d values expected", r.path, r.line, m.ValuesPerNode)
		}
		nodes = append(nodes, disNode{lon: v[0], lat: v[1], values: v[2:]})
	}
	if len(nodes) == 0 {
		return nil, nil, geodesy.NewLoadError(r.path, "%s: no node", r.path)
	}

	lons, lats := make([]float64, len(nodes)), make([]float64, len(nodes))
	for i, n := range nodes {
		lons[i], lats[i] = n.lon, n.lat
	}
	var err error
	if m.West, m.East, m.StepLon, err = lattice(lons); err != nil {
		return nil, nil, geodesy.Wrap(geodesy.LoadError, err, "%s: longitudes", r.path)
	}
	if m.South, m.North, m.StepLat, err = lattice(lats); err != nil {
		return nil, nil, geodesy.Wrap(geodesy.LoadError, err, "%s: latitudes", r.path)
	}
	cols, rows, err := m.Size()
	if err != nil {
		return nil, nil, geodesy.Wrap(geodesy.LoadError, err, "%s", r.path)
	}
	m.Cols, m.Rows = cols, rows
	m.Layout = NodeLayoutSWEASTNORTH
	m.StoredValues = 0

	vpn := m.ValuesPerNode
	values := make([]float64, cols*rows*vpn)
	for i := range values {
		values[i] = m.UnknownValue
	}
	seen := make([]bool, cols*rows)
	for _, n := range nodes {
		col := int(math.Round((n.lon - m.West) / m.StepLon))
		row := int(math.Round((n.lat - m.South) / m.StepLat))
		i := m.Layout.NodePosition(cols, rows, col, row)
		if seen[i] {
			return nil, nil, geodesy.NewLoadError(r.path, "%s: node (%g, %g) is defined twice", r.path, n.lon, n.lat)
		}
		seen[i] = true
		copy(values[i*vpn:], n.values)
	}
	if len(nodes) < cols*rows {
		m.HasUnknownValue = true
	}
	return values, nil, nil
}

// lattice returns the bounds and the increment of regularly spaced coordinates
func lattice(v []float64) (min, max, step float64, err error) {
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	min, max = s[0], s[len(s)-1]
	const eps = 1e-9
	for i := 1; i < len(s); i++ {
		if d := s[i] - s[i-1]; d > eps && (step == 0 || d < step) {
			step = d
		}
	}
	if step == 0 {
		return 0, 0, 0, geodesy.NewLoadError("", "a single coordinate %g", min)
	}
	for _, x := range s {
		n := (x - min) / step
		if math.Abs(n-math.Round(n)) > 1e-6 {
			return 0, 0, 0, geodesy.NewLoadError("", "coordinate %g is not on the lattice of increment %g from %g", x, step, min)
		}
	}
	return min, max, step, nil
}
