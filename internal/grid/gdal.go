package grid

import (
	"fmt"
	"strings"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/utils/affine"
	"github.com/airbusgeo/godal"
)

// ErrLogger turns GDAL errors into Go errors, dropping the warnings
var ErrLogger = godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
	if ec <= godal.CE_Warning {
		return nil
	}
	return fmt.Errorf("GDAL %d: %s", code, msg)
})

// openGDAL reads the header of any north-up raster GDAL can open, one value per band (at most 3)
func (g *Grid) openGDAL() error {
	ds, err := godal.Open(strings.TrimPrefix(g.Path, "file://"), ErrLogger)
	if err != nil {
		return geodesy.Wrap(geodesy.LoadError, err, "cannot open %s", g.Path)
	}
	g.ds = ds
	st := ds.Structure()
	gt, err := ds.GeoTransform()
	if err != nil {
		return geodesy.Wrap(geodesy.LoadError, err, "%s: no geotransform", g.Path)
	}
	nodes, err := affine.FromGeoTransform(gt, st.SizeY)
	if err != nil {
		return geodesy.Wrap(geodesy.HeaderError, err, "%s", g.Path)
	}
	g.West, g.South = nodes.Origin()
	g.StepLon, g.StepLat = nodes.Steps()
	g.Cols, g.Rows = st.SizeX, st.SizeY
	g.East = g.West + float64(st.SizeX-1)*g.StepLon
	g.North = g.South + float64(st.SizeY-1)*g.StepLat
	g.ValuesPerNode = st.NBands
	if g.ValuesPerNode > 3 {
		g.ValuesPerNode = 3
	}
	if bands := ds.Bands(); len(bands) > 0 {
		if nodata, ok := bands[0].NoData(); ok {
			g.HasUnknownValue, g.UnknownValue = true, nodata
		}
	}
	return nil
}

// loadGDAL reads the bands and interleaves them in node records, rows from north to south
func (g *Grid) loadGDAL() error {
	defer func() {
		g.ds.Close()
		g.ds = nil
	}()
	rv := g.recordValues()
	n := g.cols * g.rows
	g.values = make([]float64, n*rv)
	buf := make([]float64, n)
	bands := g.ds.Bands()
	for b := 0; b < g.ValuesPerNode && b < len(bands); b++ {
		if err := bands[b].Read(0, 0, buf, g.cols, g.rows); err != nil {
			return geodesy.Wrap(geodesy.LoadError, err, "%s: band %d", g.Path, b+1)
		}
		for i, v := range buf {
			g.values[i*rv+b] = v
		}
		if g.opts.progress != nil {
			g.opts.progress((b+1)*n/g.ValuesPerNode, n)
		}
	}
	return nil
}
