package svc_test

import (
	"context"
	"math"

	"github.com/airbusgeo/geoshift/internal/catalog"
	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/grid"
	"github.com/airbusgeo/geoshift/internal/svc"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

const (
	// index of the transformations in testdata/france.yaml
	ntfRGF93     = 0
	ntfRGF93Grid = 1
	ign69RGF93   = 4
	ign78RGF93   = 5
	// Paris meridian, in degrees
	paris = 2.33722917
	// cone constant of Lambert 93
	lamb93N = 0.7256077650532670
)

var rad = geodesy.DegToRad

var _ = Describe("Service", func() {
	var (
		ctx     = context.Background()
		cat     *catalog.Catalog
		service *svc.Service
		pt      geodesy.Pt4d
		err     error
	)

	ellipsoid := func(frame string) geodesy.Ellipsoid {
		i, ok := cat.FrameByID(frame)
		Expect(ok).To(BeTrue())
		return cat.Ellipsoid(i)
	}

	geographic := func(lon, lat, h float64) geodesy.Pt4d {
		pt := geodesy.NewPt4d()
		pt.L, pt.P, pt.H = lon, lat, h
		return pt
	}

	BeforeEach(func() {
		cat, err = catalog.LoadFile(ctx, "testdata/france.yaml", nil)
		Expect(err).To(BeNil())
		service, err = svc.New(ctx, cat, svc.Options{})
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		service.Close()
	})

	It("it should refuse a nil catalog", func() {
		_, err := svc.New(ctx, nil, svc.Options{})
		Expect(geodesy.IsError(err, geodesy.InvalidArgument)).To(BeTrue())
	})

	Describe("ConvertPoint", func() {
		Context("without datum shift", func() {
			It("it should project Lambert I", func() {
				pt = geographic(2, 51, 0)
				err = service.ConvertPoint(ctx, &pt, "ED50G", "ED50LAMBI")
				Expect(err).To(BeNil())
				Expect(pt.E).To(BeNumerically("~", 576325.577910, 1e-5))
				Expect(pt.N).To(BeNumerically("~", 2088800.997071, 1e-5))
				Expect(pt.TransfoIndex).To(Equal(geodesy.NoIndex))
				Expect(pt.L).To(BeNumerically("~", 2, 1e-12))
				Expect(pt.P).To(BeNumerically("~", 51, 1e-12))
			})

			It("it should project from the prime meridian of the frame", func() {
				pt = geographic(paris, 49.5, 0)
				err = service.ConvertPoint(ctx, &pt, "NTFG", "NTFLAMB1")
				Expect(err).To(BeNil())
				Expect(pt.E).To(BeNumerically("~", 600000, 1e-6))
				Expect(pt.N).To(BeNumerically("~", 200000, 1e-6))
				// geographic part in the degrees of NTFLAMB1, from the Paris meridian
				Expect(pt.L).To(BeNumerically("~", 0, 1e-12))
				Expect(pt.P).To(BeNumerically("~", 49.5, 1e-9))
			})

			It("it should express the coordinates in the units of the crs", func() {
				pt = geographic(paris, 49.5, 0)
				err = service.ConvertPoint(ctx, &pt, "NTFG", "NTFPARIS")
				Expect(err).To(BeNil())
				Expect(pt.L).To(BeNumerically("~", 0, 1e-9))
				Expect(pt.P).To(BeNumerically("~", 55, 1e-9))

				pt = geographic(3, 46.5, 0)
				err = service.ConvertPoint(ctx, &pt, "RGF93G", "RGF93LAMB93KM")
				Expect(err).To(BeNil())
				Expect(pt.E).To(BeNumerically("~", 700, 1e-9))
				Expect(pt.N).To(BeNumerically("~", 6600, 1e-9))
			})

			It("it should unproject", func() {
				pt = geodesy.NewPt4d()
				pt.E, pt.N = 600000, 200000
				err = service.ConvertPoint(ctx, &pt, "NTFLAMB1", "NTFG")
				Expect(err).To(BeNil())
				Expect(pt.L).To(BeNumerically("~", paris, 1e-9))
				Expect(pt.P).To(BeNumerically("~", 49.5, 1e-9))
			})

			It("it should read and write geocentric coordinates", func() {
				grs80 := ellipsoid("RGF93")
				pt = geodesy.NewPt4d()
				pt.X, pt.Y, pt.Z = geodesy.GeoToCart(rad(3), rad(46), 200, grs80.A, grs80.E2)
				err = service.ConvertPoint(ctx, &pt, "RGF93GEOC", "RGF93G")
				Expect(err).To(BeNil())
				Expect(pt.L).To(BeNumerically("~", 3, 1e-10))
				Expect(pt.P).To(BeNumerically("~", 46, 1e-10))
				Expect(pt.H).To(BeNumerically("~", 200, 1e-6))
			})
		})

		Context("with a datum shift", func() {
			It("it should select the parametric transformation outside the grid", func() {
				pt = geographic(9, 42, 100)
				err = service.ConvertPoint(ctx, &pt, "NTFG", "RGF93GEOC")
				Expect(err).To(BeNil())
				Expect(pt.TransfoIndex).To(Equal(ntfRGF93))
				Expect(pt.GeodeticPrecision).To(Equal(3))
				clarke := ellipsoid("NTF")
				x, y, z := geodesy.GeoToCart(rad(9), rad(42), 100, clarke.A, clarke.E2)
				Expect(pt.X).To(BeNumerically("~", x-168, 1e-6))
				Expect(pt.Y).To(BeNumerically("~", y-60, 1e-6))
				Expect(pt.Z).To(BeNumerically("~", z+320, 1e-6))
			})

			It("it should select the grid where it is defined", func() {
				pt = geographic(2, 46, 0)
				err = service.ConvertPoint(ctx, &pt, "NTFG", "RGF93G")
				Expect(err).To(BeNil())
				Expect(pt.TransfoIndex).To(Equal(ntfRGF93Grid))
				Expect(pt.GeodeticPrecision).To(Equal(1))
				// node (7, 5) of the grid
				clarke := ellipsoid("NTF")
				x, y, z := geodesy.GeoToCart(rad(2), rad(46), 0, clarke.A, clarke.E2)
				Expect(pt.X).To(BeNumerically("~", x-164.5, 1e-2))
				Expect(pt.Y).To(BeNumerically("~", y-61.5, 1e-2))
				Expect(pt.Z).To(BeNumerically("~", z+320.7, 1e-2))

				By("going back")
				err = service.ConvertPoint(ctx, &pt, "RGF93G", "NTFG")
				Expect(err).To(BeNil())
				Expect(pt.TransfoIndex).To(Equal(ntfRGF93Grid))
				Expect(pt.L).To(BeNumerically("~", 2, 1e-9))
				Expect(pt.P).To(BeNumerically("~", 46, 1e-9))
				Expect(pt.H).To(BeNumerically("~", 0, 1e-5))
			})

			It("it should convert between frames that share a transformation key", func() {
				pt = geographic(0, 55, 0)
				err = service.ConvertPoint(ctx, &pt, "NTFPARIS", "RGF93G")
				Expect(err).To(BeNil())
				Expect(pt.TransfoIndex).To(Equal(ntfRGF93Grid))
				Expect(pt.L).To(BeNumerically("~", paris, 1e-2))
				Expect(pt.P).To(BeNumerically("~", 49.5, 1e-2))
			})

			It("it should go through a pivot frame", func() {
				ref := geographic(9, 42, 0)
				Expect(service.ConvertPoint(ctx, &ref, "NTFG", "RGF93G")).To(Succeed())
				pt = geographic(9, 42, 0)
				err = service.ConvertPoint(ctx, &pt, "NTFG", "WGS84G")
				Expect(err).To(BeNil())
				Expect(pt.TransfoIndex).To(Equal(ntfRGF93))
				Expect(pt.L).To(BeNumerically("~", ref.L, 1e-8))
				Expect(pt.P).To(BeNumerically("~", ref.P, 1e-8))
			})

			It("it should fail outside every transformation", func() {
				pt = geographic(-60, 42, 0)
				err = service.ConvertPoint(ctx, &pt, "NTFG", "RGF93G")
				Expect(geodesy.IsError(err, geodesy.TransfoNotFound)).To(BeTrue())
				Expect(geodesy.IsRecoverable(err)).To(BeTrue())
			})
		})

		Context("with altitudes", func() {
			It("it should compute the ellipsoidal height in the target frame", func() {
				pt = geographic(2, 46, 0)
				pt.W = 100
				err = service.ConvertPoint(ctx, &pt, "NTFG+IGN69H", "RGF93G")
				Expect(err).To(BeNil())
				Expect(pt.VerticalTransfoIndex).To(Equal(ign69RGF93))
				Expect(pt.VerticalPrecision).To(Equal(1))
				Expect(pt.H).To(BeNumerically("~", 147.5, 1e-2))
			})

			It("it should compute the altitude", func() {
				pt = geographic(2, 46, 147.5)
				err = service.ConvertPoint(ctx, &pt, "RGF93G", "RGF93G+IGN69H")
				Expect(err).To(BeNil())
				Expect(pt.W).To(BeNumerically("~", 100, 1e-9))
				Expect(pt.H).To(BeNumerically("~", 147.5, 1e-9))

				pt = geographic(2, 46, 147.5)
				err = service.ConvertPoint(ctx, &pt, "RGF93G", "RGF93G+IGN69HMM")
				Expect(err).To(BeNil())
				Expect(pt.W).To(BeNumerically("~", 100000, 1e-6))
			})

			It("it should convert between vertical frames", func() {
				pt = geographic(9, 42, 0)
				pt.W = 10
				err = service.ConvertPoint(ctx, &pt, "RGF93G+IGN78H", "RGF93G+IGN69H")
				Expect(err).To(BeNil())
				Expect(pt.H).To(BeNumerically("~", 54.5, 1e-9))
				Expect(pt.W).To(BeNumerically("~", 2.7, 1e-9))
				Expect(pt.VerticalTransfoIndex).To(Equal(ign69RGF93))
			})

			It("it should keep the altitude in the same vertical frame", func() {
				pt = geographic(2, 46, 0)
				pt.W = 100
				err = service.ConvertPoint(ctx, &pt, "NTFG+IGN69H", "RGF93G+IGN69H")
				Expect(err).To(BeNil())
				Expect(pt.W).To(Equal(100.))
				Expect(pt.VerticalTransfoIndex).To(Equal(geodesy.NoIndex))
			})

			It("it should fail outside the vertical transformations", func() {
				pt = geographic(2, 46, 0)
				err = service.ConvertPoint(ctx, &pt, "RGF93G+IGN78H", "RGF93G")
				Expect(geodesy.IsError(err, geodesy.TransfoNotFound)).To(BeTrue())
			})

			It("it should compute the vertical deflection on request", func() {
				pt = geographic(2, 46, 0)
				pt.W = 100
				pt.VerticalPrecision = geodesy.CalcDeflection
				err = service.ConvertPoint(ctx, &pt, "NTFG+IGN69H", "RGF93G")
				Expect(err).To(BeNil())
				grs80 := ellipsoid("RGF93")
				mer, par, err := geodesy.ArcLengths(rad(pt.P), grs80.A, grs80.E2)
				Expect(err).To(BeNil())
				Expect(pt.Xi).To(BeNumerically("~", 0.2/(mer*rad(1)), 1e-9))
				Expect(pt.Eta).To(BeNumerically("~", -0.5/(par*rad(1)), 1e-9))

				pt = geographic(2, 46, 0)
				pt.VerticalPrecision = geodesy.CalcDeflection
				err = service.ConvertPoint(ctx, &pt, "NTFG", "RGF93G")
				Expect(err).To(BeNil())
				Expect(pt.VerticalPrecision).To(Equal(geodesy.PrecisionUnknown))
			})
		})

		It("it should compute the convergence on request", func() {
			pt = geographic(5, 49, 0)
			Expect(service.ConvertPoint(ctx, &pt, "RGF93G", "RGF93LAMB93")).To(Succeed())
			Expect(pt.Convergence).To(Equal(0.))
			Expect(pt.ScaleFactor).To(Equal(0.))

			withConvergence, err := svc.New(ctx, cat, svc.Options{Convergence: true})
			Expect(err).To(BeNil())
			defer withConvergence.Close()
			pt = geographic(5, 49, 0)
			Expect(withConvergence.ConvertPoint(ctx, &pt, "RGF93G", "RGF93LAMB93")).To(Succeed())
			Expect(pt.Convergence).To(BeNumerically("~", lamb93N*rad(2), 1e-9))
			Expect(pt.ScaleFactor).To(BeNumerically("~", 1, 1e-9))

			// unprojected, the point has no convergence
			Expect(withConvergence.ConvertPoint(ctx, &pt, "RGF93LAMB93", "RGF93G")).To(Succeed())
			Expect(pt.L).To(BeNumerically("~", 5, 1e-9))
			Expect(pt.Convergence).To(Equal(0.))
			Expect(pt.ScaleFactor).To(Equal(0.))
		})

		DescribeTable("invalid crs",
			func(source, target string) {
				pt = geographic(2, 46, 0)
				err := service.ConvertPoint(ctx, &pt, source, target)
				Expect(geodesy.IsError(err, geodesy.InvalidArgument)).To(BeTrue())
			},
			Entry("unknown crs", "NTFG", "UNKNOWN"),
			Entry("vertical crs alone", "IGN69H", "RGF93G"),
			Entry("geodetic crs as vertical part", "RGF93G", "RGF93G+NTFG"),
			Entry("unknown vertical crs", "RGF93G+UNKNOWN", "RGF93G"),
		)
	})

	Describe("ApplyProjection", func() {
		It("it should project and unproject", func() {
			x, y, _, _, err := service.ApplyProjection("RGF93LAMB93", rad(3), rad(46.5), geodesy.DirectionFORWARD)
			Expect(err).To(BeNil())
			Expect(x).To(BeNumerically("~", 700000, 1e-6))
			Expect(y).To(BeNumerically("~", 6600000, 1e-6))
			l, p, _, _, err := service.ApplyProjection("RGF93LAMB93", 750000, 6700000, geodesy.DirectionREVERSE)
			Expect(err).To(BeNil())
			x, y, _, _, err = service.ApplyProjection("RGF93LAMB93", l, p, geodesy.DirectionFORWARD)
			Expect(err).To(BeNil())
			Expect(x).To(BeNumerically("~", 750000, 1e-6))
			Expect(y).To(BeNumerically("~", 6700000, 1e-6))
		})

		It("it should refuse a crs that is not projected", func() {
			_, _, _, _, err := service.ApplyProjection("RGF93G", 0, 0, geodesy.DirectionFORWARD)
			Expect(geodesy.IsError(err, geodesy.InvalidArgument)).To(BeTrue())
		})
	})

	Describe("ApplyDatumShift", func() {
		var x, y, z float64

		BeforeEach(func() {
			clarke := ellipsoid("NTF")
			x, y, z = geodesy.GeoToCart(rad(9), rad(42), 0, clarke.A, clarke.E2)
			pt = geodesy.NewPt4d()
			pt.X, pt.Y, pt.Z = x, y, z
		})

		It("it should apply a parametric transformation both ways", func() {
			Expect(service.ApplyDatumShift(ctx, "NTF_RGF93", &pt, geodesy.DirectionFORWARD, 0)).To(Succeed())
			Expect(pt.TransfoIndex).To(Equal(ntfRGF93))
			Expect(pt.X).To(BeNumerically("~", x-168, 1e-6))
			Expect(pt.Y).To(BeNumerically("~", y-60, 1e-6))
			Expect(pt.Z).To(BeNumerically("~", z+320, 1e-6))
			Expect(service.ApplyDatumShift(ctx, "NTF_RGF93", &pt, geodesy.DirectionREVERSE, 2020)).To(Succeed())
			Expect(pt.Epoch).To(Equal(2020.))
			Expect(pt.X).To(BeNumerically("~", x, 1e-6))
			Expect(pt.Y).To(BeNumerically("~", y, 1e-6))
			Expect(pt.Z).To(BeNumerically("~", z, 1e-6))
		})

		It("it should apply a grid both ways", func() {
			clarke := ellipsoid("NTF")
			x, y, z = geodesy.GeoToCart(rad(2), rad(46), 0, clarke.A, clarke.E2)
			pt.X, pt.Y, pt.Z = x, y, z
			Expect(service.ApplyDatumShift(ctx, "NTF_RGF93_GRID", &pt, geodesy.DirectionFORWARD, 0)).To(Succeed())
			Expect(pt.TransfoIndex).To(Equal(ntfRGF93Grid))
			Expect(math.Abs(pt.X - x)).To(BeNumerically(">", 100))
			Expect(service.ApplyDatumShift(ctx, "NTF_RGF93_GRID", &pt, geodesy.DirectionREVERSE, 0)).To(Succeed())
			Expect(pt.X).To(BeNumerically("~", x, 1e-5))
			Expect(pt.Y).To(BeNumerically("~", y, 1e-5))
			Expect(pt.Z).To(BeNumerically("~", z, 1e-5))
		})

		It("it should refuse unknown and vertical transformations", func() {
			err := service.ApplyDatumShift(ctx, "UNKNOWN", &pt, geodesy.DirectionFORWARD, 0)
			Expect(geodesy.IsError(err, geodesy.InvalidArgument)).To(BeTrue())
			err = service.ApplyDatumShift(ctx, "IGN78_RGF93", &pt, geodesy.DirectionFORWARD, 0)
			Expect(geodesy.IsError(err, geodesy.InvalidArgument)).To(BeTrue())
			Expect(pt.X).To(Equal(x))
		})
	})

	Describe("LoadTransformationGrid", func() {
		It("it should load the header only", func() {
			g, err := service.LoadTransformationGrid(ctx, "testdata/gr3d.tac", grid.LoadModeHEADERONLY)
			Expect(err).To(BeNil())
			Expect(g.Mode()).To(Equal(grid.LoadModeHEADERONLY))
			cols, rows := g.Dims()
			Expect(cols).To(Equal(16))
			Expect(rows).To(Equal(12))
			Expect(g.ValuesPerNode).To(Equal(3))
			g.Release()
		})

		It("it should share the loaded grids", func() {
			g1, err := service.LoadTransformationGrid(ctx, "testdata/heights.tac", grid.LoadModeARRAY)
			Expect(err).To(BeNil())
			g2, err := service.LoadTransformationGrid(ctx, "testdata/heights.tac", grid.LoadModeARRAY)
			Expect(err).To(BeNil())
			Expect(g2).To(BeIdenticalTo(g1))
			v, err := g1.Interpolate(2, 46)
			Expect(err).To(BeNil())
			Expect(v.V[0]).To(BeNumerically("~", 47.5, 1e-9))
			g1.Release()
			g2.Release()
			Expect(g1.State()).To(Equal(grid.StateREADY))
		})

		It("it should fail on a missing grid", func() {
			_, err := service.LoadTransformationGrid(ctx, "testdata/missing.tac", grid.LoadModeARRAY)
			Expect(geodesy.IsError(err, geodesy.LoadError)).To(BeTrue())
		})
	})
})
