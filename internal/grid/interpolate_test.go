package grid_test

import (
	"context"
	"fmt"
	"io/ioutil"
	"math"
	"os"
	"strings"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/grid"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Interpolate", func() {
	var (
		ctx = context.Background()
		dir string
		tg  testGrid
		g   *grid.Grid
	)

	load := func(extra ...string) *grid.Grid {
		g, err := grid.Load(ctx, writeFile(dir, "test.tac", []byte(tg.tac(extra...))), grid.LoadModeARRAY)
		Expect(err).To(BeNil())
		return g
	}

	BeforeEach(func() {
		var err error
		dir, err = ioutil.TempDir("", "interpolate")
		Expect(err).To(BeNil())
		tg = newTestGrid()
		g = load()
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	// lon and lat of fractional node indices
	lonLat := func(col, row float64) (float64, float64) {
		return tg.west + col*tg.step, tg.south + row*tg.step
	}

	var itShouldInterpolate = func(col, row, expectedCol, expectedRow float64) {
		lon, lat := lonLat(col, row)
		v, err := g.Interpolate(lon, lat)
		Expect(err).To(BeNil(), "at %g %g", col, row)
		Expect(v.N).To(Equal(3))
		for k := 0; k < 3; k++ {
			Expect(v.V[k]).To(BeNumerically("~", tg.value(k, expectedCol, expectedRow), 1e-9), "component %d at %g %g", k, col, row)
		}
	}

	It("it should return the node values at the nodes", func() {
		for col := 0; col < tg.cols; col++ {
			for row := 0; row < tg.rows; row++ {
				itShouldInterpolate(float64(col), float64(row), float64(col), float64(row))
			}
		}
	})

	It("it should interpolate inside the cells", func() {
		for _, p := range [][2]float64{{0.5, 0.5}, {1.25, 2.75}, {3.9, 0.1}, {3.5, 2.5}, {0.01, 2.99}} {
			itShouldInterpolate(p[0], p[1], p[0], p[1])
		}
	})

	It("it should replicate the west column one increment outside", func() {
		itShouldInterpolate(-1, 1, 0, 1)
		itShouldInterpolate(-1, 1.5, 0, 1.5)
	})

	It("it should replicate the nearest edge or corner", func() {
		last, top := float64(tg.cols-1), float64(tg.rows-1)
		itShouldInterpolate(-0.5, 1.2, 0, 1.2)              // west
		itShouldInterpolate(last+0.5, 1.2, last, 1.2)       // east
		itShouldInterpolate(2.3, -0.5, 2.3, 0)              // south
		itShouldInterpolate(2.3, top+1, 2.3, top)           // north
		itShouldInterpolate(-0.5, -0.5, 0, 0)               // south-west
		itShouldInterpolate(-1, top+0.5, 0, top)            // north-west
		itShouldInterpolate(last+0.5, -1, last, 0)          // south-east
		itShouldInterpolate(last+0.999, top+0.5, last, top) // north-east
	})

	It("it should fail beyond one increment", func() {
		for _, p := range [][2]float64{{-1.01, 1}, {float64(tg.cols) + 0.01, 1}, {1, -1.01}, {1, float64(tg.rows) + 0.01}} {
			lon, lat := lonLat(p[0], p[1])
			_, err := g.Interpolate(lon, lat)
			Expect(geodesy.IsError(err, geodesy.OutOfGrid)).To(BeTrue())
			Expect(geodesy.IsRecoverable(err)).To(BeTrue())
		}
	})

	It("it should accept longitudes of another turn", func() {
		lon, lat := lonLat(1.5, 1.5)
		Expect(g.Interpolate(lon+360, lat)).To(Equal(must(g.Interpolate(lon, lat))))
	})

	It("it should return the precision code of the nearest node", func() {
		for _, p := range [][3]float64{{1.4, 2.6, 31}, {1.6, 2.4, 22}, {0.2, 0.2, 0}, {3.7, 0.9, 14}, {-0.8, 1.9, 20}} {
			lon, lat := lonLat(p[0], p[1])
			v, err := g.Interpolate(lon, lat)
			Expect(err).To(BeNil())
			Expect(v.Precision).To(Equal(int(p[2])))
		}
	})

	Context("with unknown nodes", func() {
		// value(0, 2, 2) == 9.5: nodes (0, 1), (2, 2) and (4, 3) are unknown
		It("it should fail on a cell with an unknown corner", func() {
			g = load("UNKNOWN_VALUE 9.5")
			lon, lat := lonLat(2.5, 2.5)
			_, err := g.Interpolate(lon, lat)
			Expect(geodesy.IsError(err, geodesy.UnknownValue)).To(BeTrue())
			Expect(geodesy.IsRecoverable(err)).To(BeTrue())

			lon, lat = lonLat(2.5, 0.5)
			_, err = g.Interpolate(lon, lat)
			Expect(err).To(BeNil())
		})
		It("it should replace the unknown values by zero on request", func() {
			g = load("UNKNOWN_VALUE 9.5", "UNKNOWN_AS_ZERO true")
			lon, lat := lonLat(2, 2)
			v, err := g.Interpolate(lon, lat)
			Expect(err).To(BeNil())
			Expect(v.V).To(Equal([3]float64{}))
		})
	})

	Context("with a global grid", func() {
		BeforeEach(func() {
			tg = testGrid{west: 0, south: -45, step: 90, cols: 4, rows: 2, values: 3, layout: grid.NodeLayoutSWEASTNORTH}
			g = load()
		})
		It("it should interpolate between the last and the first columns", func() {
			for _, lon := range []float64{315, -45} {
				v, err := g.Interpolate(lon, -45)
				Expect(err).To(BeNil())
				for k := 0; k < 3; k++ {
					Expect(v.V[k]).To(BeNumerically("~", (tg.value(k, 3, 0)+tg.value(k, 0, 0))/2, 1e-9))
				}
			}
		})
	})

	Context("with a global grid of half a degree", func() {
		sine := func(lon float64) float64 { return 100 * math.Sin(lon*math.Pi/180) }
		// sineGrid writes a grid from 0 to east, 100 sin(lon) at every node
		sineGrid := func(east float64, extra ...string) *grid.Grid {
			cols, rows := int(math.Round(east/0.5))+1, 4
			var b strings.Builder
			fmt.Fprintf(&b, "NAME sine\nWEST 0\nEAST %g\nSOUTH -1\nNORTH 0.5\nSTEP_LON 0.5\nSTEP_LAT 0.5\n", east)
			b.WriteString("NODE_LAYOUT SWEASTNORTH\nVALUES_PER_NODE 1\n")
			for _, e := range extra {
				b.WriteString(e + "\n")
			}
			b.WriteString("END_OF_HEADER\n")
			for i := 0; i < cols*rows; i++ {
				col, _ := grid.NodeLayoutSWEASTNORTH.NodeCoord(cols, rows, i)
				fmt.Fprintf(&b, "%.6f 1\n", sine(float64(col)*0.5))
			}
			g, err := grid.Load(ctx, writeFile(dir, "sine.tac", []byte(b.String())), grid.LoadModeARRAY)
			Expect(err).To(BeNil())
			return g
		}
		itShouldMatchTheSine := func(lons ...float64) {
			for _, lon := range lons {
				v, err := g.Interpolate(lon, -0.25)
				Expect(err).To(BeNil(), "at %g", lon)
				Expect(v.V[0]).To(BeNumerically("~", sine(lon), 1e-3), "at %g", lon)
			}
		}

		It("it should wrap negative longitudes when the last column repeats the first", func() {
			g = sineGrid(360)
			itShouldMatchTheSine(-0.5, -5, 355, 359.5, 0, 12.5, -359.5)
			v, err := g.Interpolate(-0.25, -0.25)
			Expect(err).To(BeNil())
			Expect(v.V[0]).To(BeNumerically("~", sine(-0.5)/2, 1e-5))
		})
		It("it should wrap negative longitudes without a repeated column", func() {
			g = sineGrid(359.5)
			itShouldMatchTheSine(-0.5, -5, 355, 359.5, 0)
			v, err := g.Interpolate(359.75, -0.25)
			Expect(err).To(BeNil())
			Expect(v.V[0]).To(BeNumerically("~", sine(359.5)/2, 1e-5))
		})
		It("it should take the spline window across the seam", func() {
			for _, east := range []float64{360, 359.5} {
				g = sineGrid(east, "INTERPOLATION SPLINE", "SPLINE_WINDOW 4")
				itShouldMatchTheSine(-0.5, -0.25, -5, 359.75, 0.25, 180.1)
				w, err := g.Interpolate(-0.25, -0.25)
				Expect(err).To(BeNil())
				e, err := g.Interpolate(359.75, -0.25)
				Expect(err).To(BeNil())
				Expect(w.V[0]).To(BeNumerically("~", e.V[0], 1e-12))
			}
		})
	})

	Context("with the spline interpolation", func() {
		BeforeEach(func() {
			tg.cols, tg.rows = 7, 6
			g = load("INTERPOLATION SPLINE", "SPLINE_WINDOW 4")
		})
		It("it should reproduce the bilinear fields", func() {
			for _, p := range [][2]float64{{0.5, 0.5}, {3.3, 2.8}, {5.9, 4.1}, {6, 5}, {2, 3}, {-0.5, 2.5}} {
				lon, lat := lonLat(p[0], p[1])
				v, err := g.Interpolate(lon, lat)
				Expect(err).To(BeNil())
				for k := 0; k < 3; k++ {
					Expect(v.V[k]).To(BeNumerically("~", tg.value(k, math.Max(p[0], 0), p[1]), 1e-9), "at %v", p)
				}
			}
		})
	})

	Describe("Deflection", func() {
		It("it should derive the slopes of the heights", func() {
			tg.values = 1
			g = load()
			a, e2 := 6378137.0, 0.006694380022900787
			lon, lat := lonLat(1.5, 1.5)
			xi, eta, err := g.Deflection(lon, lat, a, e2)
			Expect(err).To(BeNil())
			mer, par, _ := geodesy.ArcLengths(geodesy.DegToRad(lat), a, e2)
			// 0.25 m per column, -0.5 m per row, of 0.5 degree
			Expect(xi).To(BeNumerically("~", 1/(mer*math.Pi/180), 1e-15))
			Expect(eta).To(BeNumerically("~", -0.5/(par*math.Pi/180), 1e-15))
		})
	})
})
