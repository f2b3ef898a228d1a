package stats

import "math"

// Statistic accumulates integer samples and reports their mean.
type Statistic struct {
	values []int
}

func New() *Statistic {
	return &Statistic{}
}

func (s *Statistic) Add(value int) {
	s.values = append(s.values, value)
}

func (s *Statistic) Count() int {
	return len(s.values)
}

// Mean returns NaN when no samples have been added.
func (s *Statistic) Mean() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}

	sum := 0
	for _, value := range s.values {
		sum += value
	}
	return float64(sum) / float64(len(s.values))
}

// Values returns a copy of the sample list.
func (s *Statistic) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)
	return out
}
