package grid

import (
	"context"
	"encoding/binary"
	"io"
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
)

// gtxHeaderSize: lat0, lon0, dlat, dlon as float64 then rows, cols as int32, big endian
const gtxHeaderSize = 40

func gtxMetadata(m *Metadata, lat0, lon0, dlat, dlon float64, rows, cols int) error {
	if rows < 1 || cols < 1 {
		return geodesy.NewHeaderError(m.Path, "rows cols", "%s: invalid size %dx%d", m.Path, cols, rows)
	}
	if lon0 >= 180 {
		lon0 -= 360
	}
	m.South, m.West = lat0, lon0
	m.StepLat, m.StepLon = dlat, dlon
	m.Rows, m.Cols = rows, cols
	m.North = lat0 + float64(rows-1)*dlat
	m.East = lon0 + float64(cols-1)*dlon
	return nil
}

func gtxBinaryHeader(ctx context.Context, r io.ReaderAt, m *Metadata) (int64, error) {
	var h [gtxHeaderSize]byte
	if _, err := r.ReadAt(h[:], 0); err != nil {
		return 0, geodesy.NewLoadError(m.Path, "%s: truncated GTX header", m.Path)
	}
	be := binary.BigEndian
	f := func(i int) float64 { return math.Float64frombits(be.Uint64(h[8*i:])) }
	rows, cols := int(int32(be.Uint32(h[32:]))), int(int32(be.Uint32(h[36:])))
	if err := gtxMetadata(m, f(0), f(1), f(2), f(3), rows, cols); err != nil {
		return 0, err
	}
	return gtxHeaderSize, nil
}
