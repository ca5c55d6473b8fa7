package geodesy_test

import (
	"math"

	"github.com/airbusgeo/geoshift/internal/geodesy"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("LatIso", func() {
	var err error
	var phi, e2, l float64

	var (
		itShouldNotReturnError = func() {
			It("it should not return error", func() {
				Expect(err).To(BeNil())
			})
		}
		itShouldReturnError = func(code geodesy.ErrorCode) {
			It("it should return error", func() {
				Expect(geodesy.IsError(err, code)).To(BeTrue(), "%v", err)
			})
		}
		itShouldReturn = func(expected *float64, res *float64, tolerance float64) {
			It("it should return the expected value", func() {
				Expect(*res).To(BeNumerically("~", *expected, tolerance))
			})
		}
	)

	Describe("LatIso", func() {
		var expected float64
		JustBeforeEach(func() {
			l, err = geodesy.LatIso(phi, e2)
		})

		// IGN ALG0001 test vectors
		Context("ALG0001 #1", func() {
			BeforeEach(func() {
				phi, e2, expected = 0.872664626, 0.08199188998*0.08199188998, 1.00552653649
			})
			itShouldNotReturnError()
			itShouldReturn(&expected, &l, 1e-11)
		})
		Context("ALG0001 #2", func() {
			BeforeEach(func() {
				phi, e2, expected = -0.3, 0.08199188998*0.08199188998, -0.30261690063
			})
			itShouldNotReturnError()
			itShouldReturn(&expected, &l, 1e-11)
		})
		Context("ALG0001 #3", func() {
			BeforeEach(func() {
				phi, e2, expected = 0.19998903370, 0.08199188998*0.08199188998, 0.2
			})
			itShouldNotReturnError()
			itShouldReturn(&expected, &l, 1e-11)
		})
		Context("north pole", func() {
			BeforeEach(func() {
				phi, e2 = math.Pi/2, 0.006694380022
			})
			itShouldReturnError(geodesy.Singularity)
		})
		Context("out of range", func() {
			BeforeEach(func() {
				phi, e2 = 2, 0.006694380022
			})
			itShouldReturnError(geodesy.InvalidArgument)
		})
		Context("bad eccentricity", func() {
			BeforeEach(func() {
				phi, e2 = 0.5, 1
			})
			itShouldReturnError(geodesy.InvalidArgument)
		})
	})

	Describe("LatIsoInv", func() {
		var expected float64
		JustBeforeEach(func() {
			phi, err = geodesy.LatIsoInv(l, e2)
		})

		// IGN ALG0002 test vector
		Context("ALG0002", func() {
			BeforeEach(func() {
				l, e2, expected = 1.00552653648, 0.08199188998*0.08199188998, 0.872664626
			})
			itShouldNotReturnError()
			itShouldReturn(&expected, &phi, 1e-11)
		})
		Context("sphere", func() {
			BeforeEach(func() {
				l, e2, expected = math.Log(math.Tan(math.Pi/4+0.25)), 0, 0.5
			})
			itShouldNotReturnError()
			itShouldReturn(&expected, &phi, 1e-14)
		})
		Context("negative eccentricity", func() {
			BeforeEach(func() {
				l, e2 = 1, -0.1
			})
			itShouldReturnError(geodesy.InvalidArgument)
		})
		Context("NaN", func() {
			BeforeEach(func() {
				l, e2 = math.NaN(), 0.006
			})
			itShouldReturnError(geodesy.InvalidArgument)
		})
	})

	Describe("round trip", func() {
		It("it should recover the latitude", func() {
			for _, e2 := range []float64{0, 0.0025, 0.006694380022, 0.00672267, 0.0099} {
				for phi := -1.57; phi < 1.57; phi += 0.01 {
					l, err := geodesy.LatIso(phi, e2)
					Expect(err).To(BeNil())
					p, err := geodesy.LatIsoInv(l, e2)
					Expect(err).To(BeNil())
					Expect(p).To(BeNumerically("~", phi, 1e-10))
				}
			}
		})
	})
})
