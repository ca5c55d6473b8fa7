// Package affine handles the 2D affine transforms between grid node indices and geographic coordinates,
// following the GDAL affine convention
package affine

import (
	"fmt"
	"math/big"
)

// Affine follows the GDAL transform convention:
// x = a[0] + a[1]*col + a[2]*row
// y = a[3] + a[4]*col + a[5]*row
type Affine [6]float64

func NewAffine(a, b, c, d, e, f float64) *Affine {
	res := Affine([6]float64{a, b, c, d, e, f})
	return &res
}

// Translation creates a translation transform from (offx, offy)
func Translation(offx, offy float64) *Affine {
	return NewAffine(offx, 1.0, 0, offy, 0, 1.0)
}

// Scale creates a scale transform from (scalex, scaley)
func Scale(scalex, scaley float64) *Affine {
	return NewAffine(0, scalex, 0, 0, 0, scaley)
}

// NodeAffine maps node indices (col westward to eastward, row southward to northward) to (lon, lat).
// Node (0, 0) is the south-west node.
func NodeAffine(west, south, stepLon, stepLat float64) *Affine {
	return Translation(west, south).Multiply(Scale(stepLon, stepLat))
}

// FromGeoTransform converts a north-up GDAL geotransform (pixel corners, rows southward)
// of a raster of the given height into a node affine (pixel centers, rows northward)
func FromGeoTransform(gt [6]float64, height int) (*Affine, error) {
	if gt[2] != 0 || gt[4] != 0 {
		return nil, fmt.Errorf("FromGeoTransform: rotated geotransforms are not supported")
	}
	if gt[1] <= 0 || gt[5] >= 0 {
		return nil, fmt.Errorf("FromGeoTransform: geotransform must be north-up (got resolution %v, %v)", gt[1], gt[5])
	}
	pix := Affine(gt)
	west, south := pix.Transform(0.5, float64(height)-0.5)
	return NodeAffine(west, south, gt[1], -gt[5]), nil
}

// Steps returns the node increments along the two axes
func (a *Affine) Steps() (float64, float64) {
	return a[1], a[5]
}

// Origin returns the coordinates of node (0, 0)
func (a *Affine) Origin() (float64, float64) {
	return a[0], a[3]
}

// Locate returns the fractional node indices of (x, y) on an axis-aligned node affine.
// It divides by the increments, so that a point lying on a node is located exactly on it.
func (a *Affine) Locate(x, y float64) (float64, float64) {
	return (x - a[0]) / a[1], (y - a[3]) / a[5]
}

const (
	prec = 128
)

// highPrecisionTransform, such as highPrecisionTransform(xs, x+1, sy, y+1, o) = highPrecisionTransform(xs, x, sy, y, o) + highPrecisionTransform(xs, 1, sy, 1, 0)
func highPrecisionTransform(sx, x, sy, y, o float64) float64 {
	sX := big.NewFloat(sx).SetPrec(prec)
	sY := big.NewFloat(sy).SetPrec(prec)
	X := big.NewFloat(x).SetPrec(prec)
	Y := big.NewFloat(y).SetPrec(prec)
	O := big.NewFloat(o).SetPrec(prec)
	r, _ := O.Add(O, sX.Mul(sX, X)).Add(O, sY.Mul(sY, Y)).Float64() // o + sx*x + sy*y
	return r
}

// Multiply merges the two affines transforms into one.
func (a *Affine) Multiply(b *Affine) *Affine {
	return NewAffine(
		highPrecisionTransform(a[1], b[0], a[2], b[3], a[0]),
		highPrecisionTransform(a[1], b[1], a[2], b[4], 0),
		highPrecisionTransform(a[1], b[2], a[2], b[5], 0),
		highPrecisionTransform(a[4], b[0], a[5], b[3], a[3]),
		highPrecisionTransform(a[4], b[1], a[5], b[4], 0),
		highPrecisionTransform(a[4], b[2], a[5], b[5], 0),
	)
}

// Transform applies the affine transform to the point (x, y)
func (a *Affine) Transform(x float64, y float64) (float64, float64) {
	return highPrecisionTransform(a[1], x, a[2], y, a[0]), highPrecisionTransform(a[4], x, a[5], y, a[3])
}
