package transfo_test

import (
	"context"
	"fmt"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/grid"
	"github.com/airbusgeo/geoshift/internal/transfo"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// test grids cover [-5, 10]x[41, 52] with 1 degree increments
const (
	gridWest, gridEast   = -5., 10.
	gridSouth, gridNorth = 41., 52.
)

func colRow(lon, lat float64) (float64, float64) {
	return lon - gridWest, lat - gridSouth
}

// values of the test grids, bilinear in the node indices so that the interpolation is exact
func translation(col, row float64) []float64 {
	return []float64{-168 + 0.5*col, -60 - 0.3*row, 320 + 0.02*col*row}
}

func shift(col, row float64) []float64 {
	return []float64{2 + 0.3*col + 0.1*row, -1 + 0.2*row}
}

func height(col, row float64) []float64 {
	return []float64{45 + 0.5*col - 0.2*row}
}

func nodePrecision(col, row int) int {
	return 1 + col + 10*row
}

func writeTAC(dir, name, unit string, values func(col, row float64) []float64) string {
	var b strings.Builder
	n := len(values(0, 0))
	fmt.Fprintf(&b, "NAME %s\nWEST %g\nEAST %g\nSOUTH %g\nNORTH %g\nSTEP_LON 1\nSTEP_LAT 1\n", name, gridWest, gridEast, gridSouth, gridNorth)
	fmt.Fprintf(&b, "NODE_LAYOUT SWEASTNORTH\nVALUES_PER_NODE %d\nVALUE_UNIT %s\nEND_OF_HEADER\n", n, unit)
	for row := 0; row <= int(gridNorth-gridSouth); row++ {
		for col := 0; col <= int(gridEast-gridWest); col++ {
			for _, v := range values(float64(col), float64(row)) {
				fmt.Fprintf(&b, "%.6f ", v)
			}
			fmt.Fprintf(&b, "%d\n", nodePrecision(col, row))
		}
	}
	path := filepath.Join(dir, name)
	Expect(ioutil.WriteFile(path, []byte(b.String()), 0644)).To(Succeed())
	return path
}

func ellipsoid(e geodesy.Ellipsoid) geodesy.Ellipsoid {
	if err := e.Complete(); err != nil {
		panic(err)
	}
	return e
}

var (
	clarke = ellipsoid(geodesy.Ellipsoid{ID: "CLARKE_1880_IGN", A: 6378249.2, B: 6356515})
	grs80  = ellipsoid(geodesy.Ellipsoid{ID: "GRS80", A: 6378137, InvF: 298.257222101})
)

var _ = Describe("Apply", func() {
	var (
		ctx   = context.Background()
		dir   string
		cache *grid.Cache
		env   transfo.Env
		pt    geodesy.Pt4d
		lon   = 2.35
		lat   = 48.85
	)

	BeforeEach(func() {
		var err error
		dir, err = ioutil.TempDir("", "transfo")
		Expect(err).To(BeNil())
		cache, err = grid.NewCache(4)
		Expect(err).To(BeNil())
		env = transfo.Env{Source: clarke, Target: grs80, Grids: cache}
		pt = geodesy.NewGeographicPt4d(geodesy.DegToRad(lon), geodesy.DegToRad(lat), 100)
	})

	AfterEach(func() {
		cache.Purge()
		os.RemoveAll(dir)
	})

	apply := func(t *transfo.Transformation, dir geodesy.Direction) {
		Expect(t.Apply(ctx, &pt, dir, env)).To(Succeed())
	}

	itShouldRecover := func(l, p, h float64) {
		Expect(pt.L).To(BeNumerically("~", l, 1e-11))
		Expect(pt.P).To(BeNumerically("~", p, 1e-11))
		Expect(pt.H).To(BeNumerically("~", h, 1e-6))
	}

	Describe("parametric transformation", func() {
		It("it should go back and forth", func() {
			for _, app := range []transfo.Application{transfo.ApplicationDIRECT, transfo.ApplicationREVERSESAMEMETHOD, transfo.ApplicationREVERSESAMEPARAMETERS} {
				pt = geodesy.NewGeographicPt4d(geodesy.DegToRad(lon), geodesy.DegToRad(lat), 100)
				l, p, h := pt.L, pt.P, pt.H
				t := &transfo.Transformation{ID: "NTF_RGF93", Kind: geodesy.FrameKindGEODETIC, Params: []float64{-168, -60, 320}, Application: app, Precision: 2}
				apply(t, geodesy.DirectionFORWARD)
				Expect(pt.GeodeticPrecision).To(Equal(2))
				Expect(pt.L).NotTo(BeNumerically("~", l, 1e-7))
				x, y, z := geodesy.GeoToCart(pt.L, pt.P, pt.H, grs80.A, grs80.E2)
				Expect([]float64{pt.X, pt.Y, pt.Z}).To(matchCoords([]float64{x, y, z}, 1e-4))
				apply(t, geodesy.DirectionREVERSE)
				itShouldRecover(l, p, h)
			}
		})

		It("it should extrapolate 14 parameters at the epoch of the point", func() {
			params := []float64{0.1, 0.2, 0.3, 0, 0, 0, 0, 0.01, 0, 0, 0, 0, 0, 0}
			t := &transfo.Transformation{ID: "ITRF", Kind: geodesy.FrameKindGEODETIC, Params: params, RefEpoch: 2000, Application: transfo.ApplicationDIRECT}
			env.Source = grs80
			x0, y0, z0 := geodesy.GeoToCart(pt.L, pt.P, pt.H, grs80.A, grs80.E2)
			pt.Epoch = 2010
			apply(t, geodesy.DirectionFORWARD)
			Expect([]float64{pt.X, pt.Y, pt.Z}).To(matchCoords([]float64{x0 + 0.2, y0 + 0.2, z0 + 0.3}, 1e-6))
		})

		It("it should fail on invalid parameters", func() {
			t := &transfo.Transformation{ID: "bad", Kind: geodesy.FrameKindGEODETIC, Params: []float64{1, 2}, Application: transfo.ApplicationDIRECT}
			Expect(t.Validate()).NotTo(Succeed())
			err := t.Apply(ctx, &pt, geodesy.DirectionFORWARD, env)
			Expect(geodesy.IsError(err, geodesy.InvalidArgument)).To(BeTrue())
		})
	})

	Describe("geocentric translation grid", func() {
		var t *transfo.Transformation

		BeforeEach(func() {
			t = &transfo.Transformation{ID: "NTF_RGF93_GRID", Kind: geodesy.FrameKindGEODETIC, Precision: 99,
				Grid: &transfo.GridRef{Path: writeTAC(dir, "gr3d.tac", "METER", translation)}}
		})

		It("it should apply the translation read at the source position", func() {
			l, p, h := pt.L, pt.P, pt.H
			x, y, z := geodesy.GeoToCart(l, p, h, clarke.A, clarke.E2)
			tr := translation(colRow(lon, lat))
			apply(t, geodesy.DirectionFORWARD)
			Expect([]float64{pt.X, pt.Y, pt.Z}).To(matchCoords([]float64{x + tr[0], y + tr[1], z + tr[2]}, 1e-6))
			Expect(pt.GeodeticPrecision).To(Equal(nodePrecision(7, 8)))

			apply(t, geodesy.DirectionREVERSE)
			itShouldRecover(l, p, h)
		})

		It("it should iterate with an authoritative grid", func() {
			t.Grid.Authoritative = true
			l, p, h := pt.L, pt.P, pt.H
			x, y, z := geodesy.GeoToCart(l, p, h, clarke.A, clarke.E2)
			apply(t, geodesy.DirectionFORWARD)
			// the translation is the one read at the target position
			tr := translation(colRow(geodesy.RadToDeg(pt.L), geodesy.RadToDeg(pt.P)))
			Expect([]float64{pt.X, pt.Y, pt.Z}).To(matchCoords([]float64{x + tr[0], y + tr[1], z + tr[2]}, 1e-6))

			apply(t, geodesy.DirectionREVERSE)
			itShouldRecover(l, p, h)
		})

		It("it should seed the iteration with the approximate translation", func() {
			t.Grid.Authoritative = true
			t.Grid.Approx = [3]float64{-168, -60, 320}
			l, p, h := pt.L, pt.P, pt.H
			apply(t, geodesy.DirectionFORWARD)
			apply(t, geodesy.DirectionREVERSE)
			itShouldRecover(l, p, h)
		})

		It("it should return a recoverable error out of the grid", func() {
			pt.L = geodesy.DegToRad(20)
			err := t.Apply(ctx, &pt, geodesy.DirectionFORWARD, env)
			Expect(geodesy.IsError(err, geodesy.OutOfGrid)).To(BeTrue())
			Expect(geodesy.IsRecoverable(err)).To(BeTrue())
		})

		It("it should share the grid between transformations", func() {
			t2 := *t
			apply(t, geodesy.DirectionFORWARD)
			apply(&t2, geodesy.DirectionREVERSE)
			Expect(cache.Len()).To(Equal(1))
		})
	})

	Describe("longitude and latitude shift grid", func() {
		var t *transfo.Transformation

		BeforeEach(func() {
			t = &transfo.Transformation{ID: "NTV2", Kind: geodesy.FrameKindGEODETIC,
				Grid: &transfo.GridRef{Path: writeTAC(dir, "shifts.tac", "SECOND", shift), LoadMode: grid.LoadModeARRAY}}
		})

		It("it should shift the point and keep its height", func() {
			l, p, h := pt.L, pt.P, pt.H
			s := shift(colRow(lon, lat))
			apply(t, geodesy.DirectionFORWARD)
			Expect(pt.L).To(BeNumerically("~", l+sec(s[0]), 1e-12))
			Expect(pt.P).To(BeNumerically("~", p+sec(s[1]), 1e-12))
			Expect(pt.H).To(Equal(h))

			apply(t, geodesy.DirectionREVERSE)
			itShouldRecover(l, p, h)
		})

		It("it should iterate forward with an authoritative grid", func() {
			t.Grid.Authoritative = true
			l, p, h := pt.L, pt.P, pt.H
			apply(t, geodesy.DirectionFORWARD)
			s := shift(colRow(geodesy.RadToDeg(pt.L), geodesy.RadToDeg(pt.P)))
			Expect(pt.L).To(BeNumerically("~", l+sec(s[0]), 1e-11))
			Expect(pt.P).To(BeNumerically("~", p+sec(s[1]), 1e-11))
			apply(t, geodesy.DirectionREVERSE)
			itShouldRecover(l, p, h)
		})
	})

	Describe("vertical transformation", func() {
		var t *transfo.Transformation

		BeforeEach(func() {
			t = &transfo.Transformation{ID: "RAF09", Kind: geodesy.FrameKindVERTICAL,
				Grid: &transfo.GridRef{Path: writeTAC(dir, "heights.tac", "METER", height)}}
			env = transfo.Env{Target: grs80, Grids: cache}
			pt.W = 35
		})

		It("it should convert altitudes into ellipsoidal heights and back", func() {
			n := height(colRow(lon, lat))[0]
			apply(t, geodesy.DirectionFORWARD)
			Expect(pt.H).To(BeNumerically("~", 35+n, 1e-9))
			Expect(pt.VerticalPrecision).To(Equal(nodePrecision(7, 8)))
			pt.W = 0
			apply(t, geodesy.DirectionREVERSE)
			Expect(pt.W).To(BeNumerically("~", 35, 1e-9))
		})

		It("it should compute the deflection on request", func() {
			pt.VerticalPrecision = geodesy.CalcDeflection
			apply(t, geodesy.DirectionFORWARD)
			mer, par, err := geodesy.ArcLengths(pt.P, grs80.A, grs80.E2)
			Expect(err).To(BeNil())
			Expect(pt.Xi).To(BeNumerically("~", 0.2/(mer*math.Pi/180), 1e-12))
			Expect(pt.Eta).To(BeNumerically("~", -0.5/(par*math.Pi/180), 1e-12))
			Expect(pt.VerticalPrecision).NotTo(Equal(geodesy.CalcDeflection))
		})

		It("it should apply a constant offset", func() {
			t = &transfo.Transformation{ID: "OFFSET", Kind: geodesy.FrameKindVERTICAL, Params: []float64{43.5}, Precision: 3}
			Expect(t.Validate()).To(Succeed())
			apply(t, geodesy.DirectionFORWARD)
			Expect(pt.H).To(Equal(78.5))
			Expect(pt.VerticalPrecision).To(Equal(3))
		})

		It("it should refuse a geodetic grid", func() {
			t.Grid.Path = writeTAC(dir, "gr3d.tac", "METER", translation)
			err := t.Apply(ctx, &pt, geodesy.DirectionFORWARD, env)
			Expect(geodesy.IsError(err, geodesy.InvalidArgument)).To(BeTrue())
		})
	})
})
