package grid

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"go.uber.org/multierr"
)

func firstLine(r *lineReader) (string, error) {
	line, err := r.nextLine()
	if err == io.EOF {
		return "", geodesy.NewLoadError(r.path, "%s: empty file", r.path)
	}
	return line, err
}

// gravsoftHeader parses the GRAVSOFT and EGM header: lat1 lat2 lon1 lon2 dlat dlon (degrees).
// Rows follow from north to south, each from west to east.
func gravsoftHeader(ctx context.Context, r *lineReader, m *Metadata) error {
	line, err := firstLine(r)
	if err != nil {
		return err
	}
	h, err := r.floats(line, 6, false)
	if err != nil {
		return err
	}
	m.South, m.North, m.West, m.East, m.StepLat, m.StepLon = h[0], h[1], h[2], h[3], h[4], h[5]
	if m.East > 180 && m.West >= 180 {
		m.West, m.East = m.West-360, m.East-360
	}
	return nil
}

// esriHeader parses the ESRI ASCII grid header keywords, up to the first line of values
func esriHeader(ctx context.Context, r *lineReader, m *Metadata) error {
	var (
		errs             error
		cols, rows       int
		x, y             float64
		xCorner, yCorner bool
		hasX, hasY       bool
		cellSize, dx, dy float64
	)
	for {
		line, err := r.nextLine()
		if err == io.EOF {
			return geodesy.NewLoadError(r.path, "%s: no values", r.path)
		}
		if err != nil {
			return err
		}
		key, value := keyValue(line)
		if isNumber(key) {
			r.unread(line)
			break
		}
		key = strings.ToLower(key)
		v, perr := strconv.ParseFloat(value, 64)
		if perr != nil {
			errs = multierr.Append(errs, geodesy.NewHeaderError(r.path, key, "%s: invalid value %q for %s", r.path, value, key))
			continue
		}
		switch key {
		case "ncols":
			cols = int(v)
		case "nrows":
			rows = int(v)
		case "xllcorner", "xllcenter":
			x, xCorner, hasX = v, key == "xllcorner", true
		case "yllcorner", "yllcenter":
			y, yCorner, hasY = v, key == "yllcorner", true
		case "cellsize":
			cellSize = v
		case "dx":
			dx = v
		case "dy":
			dy = v
		case "nodata_value":
			m.HasUnknownValue, m.UnknownValue = true, v
		default:
			errs = multierr.Append(errs, geodesy.NewHeaderError(r.path, key, ""))
		}
	}
	if dx == 0 {
		dx = cellSize
	}
	if dy == 0 {
		dy = cellSize
	}
	for key, ok := range map[string]bool{"ncols": cols > 0, "nrows": rows > 0, "xllcorner": hasX, "yllcorner": hasY, "cellsize": dx > 0 && dy > 0} {
		if !ok {
			errs = multierr.Append(errs, geodesy.NewHeaderError(r.path, key, "%s: missing or invalid %s", r.path, key))
		}
	}
	if errs != nil {
		return errs
	}
	if xCorner {
		x += dx / 2
	}
	if yCorner {
		y += dy / 2
	}
	m.Cols, m.Rows = cols, rows
	m.StepLon, m.StepLat = dx, dy
	m.West, m.South = x, y
	m.East, m.North = x+float64(cols-1)*dx, y+float64(rows-1)*dy
	return nil
}

// surferHeader parses the header of a Surfer ASCII grid: DSAA, nx ny, xlo xhi, ylo yhi, zlo zhi.
// Rows follow from south to north.
func surferHeader(ctx context.Context, r *lineReader, m *Metadata) error {
	line, err := firstLine(r)
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) != "DSAA" {
		return geodesy.NewLoadError(r.path, "%s: not a Surfer ASCII grid", r.path)
	}
	var h [4][]float64
	for i := range h {
		line, err := r.nextLine()
		if err == io.EOF {
			return geodesy.NewLoadError(r.path, "%s: truncated Surfer header", r.path)
		}
		if err != nil {
			return err
		}
		if h[i], err = r.floats(line, 2, false); err != nil {
			return err
		}
	}
	m.Cols, m.Rows = int(h[0][0]), int(h[0][1])
	if m.Cols < 2 || m.Rows < 2 {
		return geodesy.NewHeaderError(r.path, "nx ny", "%s: invalid size %dx%d", r.path, m.Cols, m.Rows)
	}
	m.West, m.East = h[1][0], h[1][1]
	m.South, m.North = h[2][0], h[2][1]
	m.StepLon = (m.East - m.West) / float64(m.Cols-1)
	m.StepLat = (m.North - m.South) / float64(m.Rows-1)
	return nil
}

// gtxASCIIHeader parses the first line of an ASCII GTX grid: lat0 lon0 dlat dlon rows cols
func gtxASCIIHeader(ctx context.Context, r *lineReader, m *Metadata) error {
	line, err := firstLine(r)
	if err != nil {
		return err
	}
	h, err := r.floats(line, 6, false)
	if err != nil {
		return err
	}
	return gtxMetadata(m, h[0], h[1], h[2], h[3], int(h[4]), int(h[5]))
}
