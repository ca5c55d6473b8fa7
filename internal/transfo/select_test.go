package transfo_test

import (
	"github.com/airbusgeo/geoshift/internal/geodesy"
	"github.com/airbusgeo/geoshift/internal/transfo"
	"github.com/airbusgeo/geoshift/internal/utils/proj"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func coverage(west, east, south, north float64) proj.Coverage {
	c, err := proj.NewCoverage(west, east, south, north)
	Expect(err).To(BeNil())
	return c
}

var _ = Describe("SelectTransfo", func() {
	var candidates []*transfo.Transformation

	BeforeEach(func() {
		candidates = []*transfo.Transformation{
			{ID: "europe", Coverage: coverage(-10, 30, 35, 70)},
			{ID: "france", Coverage: coverage(-5.5, 10, 41, 51.5)},
			{ID: "corsica", Coverage: coverage(8.5, 9.6, 41.3, 43.1)},
			{ID: "reunion", Coverage: coverage(55.2, 55.9, -21.4, -20.8)},
		}
	})

	var itShouldSelect = func(lon, lat float64, expected string) {
		i, err := transfo.SelectTransfo(lon, lat, candidates)
		Expect(err).To(BeNil())
		Expect(candidates[i].ID).To(Equal(expected))
	}

	Context("point covered by nested coverages", func() {
		It("it should select the smallest coverage", func() {
			itShouldSelect(2.35, 48.85, "france")
			itShouldSelect(9.1, 42.2, "corsica")
			itShouldSelect(20, 60, "europe")
			itShouldSelect(55.5, -21, "reunion")
		})
		It("it should not depend on the order of the candidates", func() {
			candidates[0], candidates[2] = candidates[2], candidates[0]
			itShouldSelect(9.1, 42.2, "corsica")
		})
	})

	Context("point on a border", func() {
		It("it should select the coverage", func() {
			itShouldSelect(10, 51.5, "france")
		})
	})

	Context("point covered by no candidate", func() {
		It("it should return a recoverable TransfoNotFound", func() {
			i, err := transfo.SelectTransfo(-60, 10, candidates)
			Expect(i).To(Equal(geodesy.NoIndex))
			Expect(geodesy.IsError(err, geodesy.TransfoNotFound)).To(BeTrue())
			Expect(geodesy.IsRecoverable(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(geodesy.TransfoNotFoundMsg))
		})
		It("it should fallback on a candidate without coverage", func() {
			candidates = append(candidates, &transfo.Transformation{ID: "world"})
			itShouldSelect(-60, 10, "world")
			itShouldSelect(9.1, 42.2, "corsica")
		})
	})

	Context("equal coverages", func() {
		It("it should keep the first one", func() {
			candidates = append(candidates, &transfo.Transformation{ID: "france2", Coverage: coverage(-5.5, 10, 41, 51.5)})
			itShouldSelect(2.35, 48.85, "france")
		})
	})

	Context("no candidate", func() {
		It("it should return TransfoNotFound", func() {
			_, err := transfo.SelectTransfo(0, 0, nil)
			Expect(geodesy.IsError(err, geodesy.TransfoNotFound)).To(BeTrue())
		})
	})
})
