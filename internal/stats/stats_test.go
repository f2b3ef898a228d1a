package stats

import (
	"math"
	"testing"
)

func TestMeanOfEmptyStatisticIsNaN(t *testing.T) {
	s := New()
	if !math.IsNaN(s.Mean()) {
		t.Errorf("Mean() = %v, expected NaN for an empty statistic", s.Mean())
	}
	if s.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", s.Count())
	}
}

func TestMean(t *testing.T) {
	s := New()
	for _, value := range []int{2, 4, 9} {
		s.Add(value)
	}

	if s.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", s.Count())
	}
	if s.Mean() != 5.0 {
		t.Errorf("Mean() = %v, expected 5.0", s.Mean())
	}
}

func TestValuesReturnsACopy(t *testing.T) {
	s := New()
	s.Add(7)

	values := s.Values()
	values[0] = 99
	if s.Values()[0] != 7 {
		t.Errorf("Values() exposed internal storage, got %v", s.Values())
	}
}
