package catalog_test

import (
	"context"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/airbusgeo/geoshift/internal/catalog"
	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/projection"
	"github.com/airbusgeo/geoshift/internal/transfo"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/multierr"
)

const grad = math.Pi / 200

var _ = Describe("Catalog", func() {
	var (
		ctx = context.Background()
		c   *catalog.Catalog
		err error
	)

	Describe("LoadFile", func() {
		BeforeEach(func() {
			c, err = catalog.LoadFile(ctx, "testdata/france.yaml", nil)
		})

		It("it should load every entity", func() {
			Expect(err).To(BeNil())
			Expect(c.Ellipsoids).To(HaveLen(2))
			Expect(c.Meridians).To(HaveLen(2))
			Expect(c.Systems).To(HaveLen(3))
			Expect(c.Frames).To(HaveLen(4))
			Expect(c.CRSs).To(HaveLen(9))
			Expect(c.Transformations).To(HaveLen(3))
		})

		It("it should derive the ellipsoids", func() {
			Expect(err).To(BeNil())
			e := c.Ellipsoids[1]
			Expect(e.ID).To(Equal("GRS80"))
			Expect(e.E2).To(BeNumerically("~", 0.00669438002290, 1e-14))
			Expect(c.Ellipsoids[0].F).To(BeNumerically("~", (6378249.2-6356515)/6378249.2, 1e-15))
		})

		It("it should convert the meridians to radians", func() {
			Expect(err).To(BeNil())
			paris, ok := c.FrameByID("NTF_PARIS")
			Expect(ok).To(BeTrue())
			Expect(c.Greenwich(paris)).To(BeNumerically("~", 2.5969213*grad, 1e-15))
			ntf, _ := c.FrameByID("NTF")
			Expect(c.Greenwich(ntf)).To(Equal(0.))
		})

		It("it should link the CRSs", func() {
			Expect(err).To(BeNil())
			crs, err := c.CRS("NTFLAMB1")
			Expect(err).To(BeNil())
			Expect(crs.Type).To(Equal(geodesy.CRSTypePROJECTED))
			Expect(c.Frame(crs.Frame).ID).To(Equal("NTF_PARIS"))
			Expect(crs.AngularUnit).To(Equal(geodesy.UnitDEGREE))
			Expect(crs.LinearUnit).To(Equal(geodesy.UnitMETER))
			conv := c.Conversion(crs.Conversion)
			Expect(conv.Initialized()).To(BeTrue())
			Expect(conv.Method).To(Equal(projection.MethodLCC1SP))
			Expect(conv.Phi0).To(BeNumerically("~", 55*grad, 1e-15))
			Expect(conv.A).To(Equal(6378249.2))

			crs, err = c.CRS("NTFPARIS")
			Expect(err).To(BeNil())
			Expect(crs.AngularUnit).To(Equal(geodesy.UnitGRAD))
			Expect(crs.Conversion).To(Equal(geodesy.NoIndex))
		})

		It("it should initialize a conversion once per ellipsoid", func() {
			Expect(err).To(BeNil())
			Expect(c.Conversions).To(HaveLen(3))
			l93, _ := c.CRS("RGF93LAMB93")
			l93km, _ := c.CRS("RGF93LAMB93KM")
			Expect(l93.Conversion).To(Equal(l93km.Conversion))
			utm, _ := c.CRS("RGF93UTM31")
			Expect(c.Conversion(utm.Conversion).Lambda0).To(BeNumerically("~", 3*math.Pi/180, 1e-15))
		})

		It("it should index the transformations by transformation key", func() {
			Expect(err).To(BeNil())
			paris, _ := c.FrameByID("NTF_PARIS")
			Expect(c.Frame(paris).TransformationKey()).To(Equal("NTF"))
			idx := c.Between("NTF", "RGF93")
			Expect(idx).To(HaveLen(2))
			Expect(c.Transformation(idx[0]).ID).To(Equal("NTF_RGF93"))
			Expect(c.Transformation(idx[0]).Application).To(Equal(transfo.ApplicationDIRECT))
			Expect(c.Between("RGF93", "NTF")).To(BeEmpty())
			Expect(c.Neighbors("NTF", geodesy.FrameKindGEODETIC)).To(Equal([]string{"RGF93"}))
			Expect(c.Neighbors("RGF93", geodesy.FrameKindVERTICAL)).To(Equal([]string{"IGN69"}))
			i, ok := c.FrameByKey("NTF")
			Expect(ok).To(BeTrue())
			Expect(c.Frame(i).ID).To(Equal("NTF"))
		})

		It("it should resolve the grids against the directory of the catalog", func() {
			Expect(err).To(BeNil())
			g := c.Transformation(1).Grid
			Expect(g.Path).To(Equal(filepath.Join("testdata", "gr3d.tac")))
			Expect(g.Authoritative).To(BeTrue())
			Expect(g.Approx).To(Equal([3]float64{-168, -60, 320}))
		})

		It("it should compute the coverage of the frames", func() {
			Expect(err).To(BeNil())
			rgf, _ := c.FrameByID("RGF93")
			cov := c.Frame(rgf).Coverage
			Expect([]float64{cov.West, cov.East, cov.South, cov.North}).To(Equal([]float64{-9.86, 10.38, 41, 52}))
			ntf, _ := c.FrameByID("NTF")
			cov = c.Frame(ntf).Coverage
			Expect([]float64{cov.West, cov.East, cov.South, cov.North}).To(Equal([]float64{-5.5, 10, 41, 52}))
		})

		It("it should fail on an unknown crs", func() {
			Expect(err).To(BeNil())
			_, err = c.CRS("FOO")
			Expect(geodesy.IsError(err, geodesy.InvalidArgument)).To(BeTrue())
		})
	})

	Describe("Load", func() {
		load := func(doc string) error {
			c, err = catalog.Load(ctx, []byte(doc))
			return err
		}

		It("it should convert the parameters", func() {
			Expect(load(`
ellipsoids: [{id: GRS80, a: 6378137, invf: 298.257222101}]
frames:
  - {id: ITRF2014, kind: GEODETIC, ellipsoid: GRS80}
  - {id: ETRF2000, kind: GEODETIC, ellipsoid: GRS80}
transformations:
  - id: ITRF2014_ETRF2000
    source: ITRF2014
    target: ETRF2000
    params: [53.7, 51.2, -55.1, 1.02, 0.891, 5.39, -8.712, 0.1, 0.1, -1.9, 0.11, 0.081, 0.49, -0.792]
    translation_unit: MILLIMETER
    scale_unit: PPM
    rotation_unit: MICRORADIAN
    ref_epoch: 2010
    application: REVERSESAMEPARAMETERS
`)).To(Succeed())
			t := c.Transformation(0)
			Expect(t.Kind).To(Equal(geodesy.FrameKindGEODETIC))
			Expect(t.Application).To(Equal(transfo.ApplicationREVERSESAMEPARAMETERS))
			expected := []float64{0.0537, 0.0512, -0.0551, 1.02e-6, 0.891e-6, 5.39e-6, -8.712e-6, 0.0001, 0.0001, -0.0019, 0.11e-6, 0.081e-6, 0.49e-6, -0.792e-6}
			Expect(t.Params).To(HaveLen(14))
			for i := range expected {
				Expect(t.Params[i]).To(BeNumerically("~", expected[i], 1e-15), "param %d", i)
			}
		})

		It("it should report every duplicate id and unknown reference", func() {
			err := load(`
ellipsoids: [{id: GRS80, a: 6378137, invf: 298.257222101}]
frames:
  - {id: RGF93, kind: GEODETIC, ellipsoid: GRS80}
  - {id: ED50, kind: GEODETIC, ellipsoid: INTERNATIONAL}
crs:
  - {id: RGF93G, type: GEOGRAPHIC, frame: RGF93}
  - {id: RGF93G, type: GEOGRAPHIC, frame: RGF93}
  - {id: LAMB93, type: PROJECTED, frame: RGF93, conversion: LAMB93}
  - {id: FOO, type: GEOGRAPHIC, frame: BAR}
transformations:
  - {id: T, source: RGF93, target: WGS84, params: [1, 2, 3]}
`)
			Expect(err).NotTo(BeNil())
			errs := multierr.Errors(err)
			Expect(errs).To(HaveLen(5))
			Expect(geodesy.IsError(errs[0], geodesy.UnknownReference)).To(BeTrue())
			Expect(errs[0].Error()).To(ContainSubstring(`frame ED50: ellipsoid references unknown "INTERNATIONAL"`))
			Expect(geodesy.IsError(errs[1], geodesy.DuplicateID)).To(BeTrue())
			Expect(errs[1].Error()).To(ContainSubstring("crs with id: RGF93G is defined twice"))
			Expect(errs[2].Error()).To(ContainSubstring(`conversion references unknown "LAMB93"`))
			Expect(errs[3].Error()).To(ContainSubstring(`frame references unknown "BAR"`))
			Expect(errs[4].Error()).To(ContainSubstring(`target references unknown "WGS84"`))
		})

		It("it should check the kind of the frames", func() {
			err := load(`
ellipsoids: [{id: GRS80, a: 6378137, invf: 298.257222101}]
frames:
  - {id: RGF93, kind: GEODETIC, ellipsoid: GRS80}
  - {id: IGN69, kind: VERTICAL}
crs:
  - {id: IGN69H, type: VERTICAL, frame: RGF93}
transformations:
  - {id: T, kind: VERTICAL, source: RGF93, target: IGN69, params: [45]}
`)
			errs := multierr.Errors(err)
			Expect(errs).To(HaveLen(2))
			Expect(geodesy.IsError(errs[0], geodesy.ValidationError)).To(BeTrue())
			Expect(errs[0].Error()).To(ContainSubstring("IGN69H of type VERTICAL cannot use the GEODETIC frame RGF93"))
			Expect(errs[1].Error()).To(ContainSubstring("VERTICAL transformation from the GEODETIC frame RGF93"))
		})

		It("it should check the parameters", func() {
			err := load(`
ellipsoids: [{id: GRS80, a: 6378137, invf: 298.257222101}, {id: BAD, a: -1}]
frames:
  - {id: A, kind: GEODETIC, ellipsoid: GRS80}
  - {id: B, kind: GEODETIC, ellipsoid: GRS80}
transformations:
  - {id: T, source: A, target: B, params: [1, 2, 3, 4]}
  - {id: U, source: A, target: B, params: [1, 2, 3], grid: {path: x.tac, approx: [1, 2]}}
`)
			errs := multierr.Errors(err)
			Expect(errs).To(HaveLen(3))
			Expect(errs[0].Error()).To(ContainSubstring("semi-major axis"))
			Expect(errs[1].Error()).To(ContainSubstring("3, 7 or 14 parameters expected (got 4)"))
			prop, _ := geodesy.ErrorProperty(errs[2], geodesy.PropertyField)
			Expect(prop).To(Equal("approx"))
		})

		It("it should reject unknown fields", func() {
			err := load("ellipsoids: [{id: GRS80, a: 6378137, inverse_flattening: 298.257222101}]")
			Expect(geodesy.IsError(err, geodesy.LoadError)).To(BeTrue())
		})

		It("it should reject unknown enumeration values", func() {
			err := load("systems: [{id: NTF, kind: SPHERICAL}]")
			Expect(geodesy.IsError(err, geodesy.LoadError)).To(BeTrue())
		})
	})

	Describe("LoadFile errors", func() {
		It("it should fail on a missing file", func() {
			_, err := catalog.LoadFile(ctx, "testdata/missing.yaml", nil)
			Expect(geodesy.IsError(err, geodesy.LoadError)).To(BeTrue())
		})

		It("it should prefix the errors with the file", func() {
			dir, err := ioutil.TempDir("", "catalog")
			Expect(err).To(BeNil())
			defer os.RemoveAll(dir)
			path := filepath.Join(dir, "bad.yaml")
			Expect(ioutil.WriteFile(path, []byte("crs: [{id: A, type: GEOGRAPHIC, frame: B}]"), 0644)).To(Succeed())
			_, err = catalog.LoadFile(ctx, path, nil)
			Expect(err).NotTo(BeNil())
			Expect(strings.HasPrefix(err.Error(), "LoadFile["+path+"]")).To(BeTrue())
			Expect(geodesy.IsError(err, geodesy.UnknownReference)).To(BeTrue())
		})
	})
})
