package transfo_test

import (
	"fmt"
	"math"

	"github.com/onsi/gomega/types"
)

type coordsMatcher struct {
	expected  []float64
	tolerance float64
}

// matchCoords succeeds if every coordinate is within tolerance of the expected one
func matchCoords(expected []float64, tolerance float64) types.GomegaMatcher {
	return &coordsMatcher{expected: expected, tolerance: tolerance}
}

func (m *coordsMatcher) Match(actual interface{}) (bool, error) {
	coords, ok := actual.([]float64)
	if !ok {
		return false, fmt.Errorf("matchCoords expects a []float64, got %T", actual)
	}
	if len(coords) != len(m.expected) {
		return false, nil
	}
	for i := range coords {
		if math.Abs(coords[i]-m.expected[i]) > m.tolerance {
			return false, nil
		}
	}
	return true, nil
}

func (m *coordsMatcher) FailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n\t%v\nto match\n\t%v\nwithin %g", actual, m.expected, m.tolerance)
}

func (m *coordsMatcher) NegatedFailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n\t%v\nnot to match\n\t%v\nwithin %g", actual, m.expected, m.tolerance)
}
