package grid_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/grid"
	"github.com/joomcode/errorx"
)

// testGrid describes the nodes of a test file. Node values are affine in the node indices,
// so that the bilinear interpolation is exact.
type testGrid struct {
	west, south, step float64
	cols, rows        int
	values            int
	layout            grid.NodeLayout
}

func newTestGrid() testGrid {
	return testGrid{west: -2, south: 44, step: 0.5, cols: 5, rows: 4, values: 3, layout: grid.NodeLayoutSWNORTHEAST}
}

func (t testGrid) east() float64  { return t.west + float64(t.cols-1)*t.step }
func (t testGrid) north() float64 { return t.south + float64(t.rows-1)*t.step }

// value of the k-th component at fractional node indices
func (t testGrid) value(k int, col, row float64) float64 {
	return float64(k+1)*10 + 0.25*col - 0.5*row + float64(k)*0.125*col*row
}

func (t testGrid) at(k int, lon, lat float64) float64 {
	return t.value(k, (lon-t.west)/t.step, (lat-t.south)/t.step)
}

func (t testGrid) precision(col, row int) int {
	return col + 10*row
}

// nodes calls f with the nodes in the order of the layout
func (t testGrid) nodes(f func(col, row int)) {
	for i := 0; i < t.cols*t.rows; i++ {
		f(t.layout.NodeCoord(t.cols, t.rows, i))
	}
}

func (t testGrid) tac(extra ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# test grid\nNAME test\nDESCRIPTION a test grid\nWEST %g\nEAST %g\nSOUTH %g\nNORTH %g\nSTEP_LON %g\nSTEP_LAT %g\n",
		t.west, t.east(), t.south, t.north(), t.step, t.step)
	fmt.Fprintf(&b, "NODE_LAYOUT %s\nVALUES_PER_NODE %d\n", t.layout, t.values)
	for _, e := range extra {
		b.WriteString(e + "\n")
	}
	b.WriteString("END_OF_HEADER\n")
	t.nodes(func(col, row int) {
		for k := 0; k < t.values; k++ {
			fmt.Fprintf(&b, "%.6f ", t.value(k, float64(col), float64(row)))
		}
		fmt.Fprintf(&b, "%d\n", t.precision(col, row))
	})
	return b.String()
}

// ntv2 writes a single sub-file NTv2 binary grid: shifts in seconds, longitudes positive westward
func (t testGrid) ntv2(order binary.ByteOrder) []byte {
	var b bytes.Buffer
	key := func(k string) { b.WriteString(fmt.Sprintf("%-8s", k)) }
	i32 := func(k string, v int32) { key(k); binary.Write(&b, order, v); b.Write(make([]byte, 4)) }
	f64 := func(k string, v float64) { key(k); binary.Write(&b, order, v) }
	str := func(k, v string) { key(k); b.WriteString(fmt.Sprintf("%-8s", v)) }
	s := func(deg float64) float64 { return deg * 3600 }

	i32("NUM_OREC", 11)
	i32("NUM_SREC", 11)
	i32("NUM_FILE", 1)
	str("GS_TYPE", "SECONDS")
	str("VERSION", "NTv2.0")
	str("SYSTEM_F", "NAD27")
	str("SYSTEM_T", "NAD83")
	f64("MAJOR_F", 6378206.4)
	f64("MINOR_F", 6356583.8)
	f64("MAJOR_T", 6378137)
	f64("MINOR_T", 6356752.314)
	str("SUB_NAME", "SUB1")
	str("PARENT", "NONE")
	str("CREATED", "20260101")
	str("UPDATED", "20260101")
	f64("S_LAT", s(t.south))
	f64("N_LAT", s(t.north()))
	f64("E_LONG", -s(t.east()))
	f64("W_LONG", -s(t.west))
	f64("LAT_INC", s(t.step))
	f64("LONG_INC", s(t.step))
	i32("GS_COUNT", int32(t.cols*t.rows))
	for row := 0; row < t.rows; row++ {
		for col := t.cols - 1; col >= 0; col-- {
			lonShift, latShift := t.ntv2Shifts(col, row)
			binary.Write(&b, order, []float32{float32(latShift), float32(-lonShift), 0.01, 0.02})
		}
	}
	return b.Bytes()
}

// ntv2Shifts returns the longitude (east positive) and latitude shifts in seconds, exact in float32
func (t testGrid) ntv2Shifts(col, row int) (float64, float64) {
	return float64(col) - 0.5*float64(row), 2 + 0.25*float64(col)
}

func (t testGrid) gtx() []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.BigEndian, []float64{t.south, t.west + 360, t.step, t.step})
	binary.Write(&b, binary.BigEndian, []int32{int32(t.rows), int32(t.cols)})
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			binary.Write(&b, binary.BigEndian, float32(t.value(0, float64(col), float64(row))))
		}
	}
	return b.Bytes()
}

func writeFile(dir, name string, data []byte) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		panic(err)
	}
	return path
}

// property returns the error property, or "" if absent
func property(err error, p errorx.Property) string {
	v, _ := geodesy.ErrorProperty(err, p)
	return v
}
