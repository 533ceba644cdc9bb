package stats

import (
	"fmt"
	"math"
)

// StandardDeviation is a Variance that additionally reports the standard
// deviation of the observations. Variance and standard deviation are
// recomputed together, so reading both between mutations costs a single
// recomputation.
//
// Like Variance, a StandardDeviation is not safe for concurrent use.
type StandardDeviation[TInput, TCalc Value] struct {
	sum     TCalc
	sumsq   TCalc
	n       uint32
	variant Variant

	variance float64
	stddev   float64
	recalc   bool
}

// NewStdDev returns an empty accumulator with the given variant.
func NewStdDev[TInput, TCalc Value](variant Variant) *StandardDeviation[TInput, TCalc] {
	s := &StandardDeviation[TInput, TCalc]{variant: variant}
	s.Clear()
	return s
}

// NewStdDevFrom returns an accumulator primed with values, consumed eagerly
// in order.
func NewStdDevFrom[TInput, TCalc Value](variant Variant, values []TInput) *StandardDeviation[TInput, TCalc] {
	s := NewStdDev[TInput, TCalc](variant)
	s.AddValues(values...)
	return s
}

// Add accumulates a single observation.
func (s *StandardDeviation[TInput, TCalc]) Add(value TInput) {
	c := TCalc(value)
	s.sumsq += c * c
	s.sum += c
	s.n++
	s.recalc = true
}

// AddValues accumulates each observation in order, equivalent to repeated Add.
func (s *StandardDeviation[TInput, TCalc]) AddValues(values ...TInput) {
	for _, value := range values {
		s.Add(value)
	}
}

// Variance returns the variance of all observations added so far, 0 if there
// are none. Same contract as Variance.Variance, including the unguarded
// non-finite result for a single observation under the Sample variant.
func (s *StandardDeviation[TInput, TCalc]) Variance() float64 {
	s.calculate()
	return s.variance
}

// StdDev returns the non-negative square root of the variance. When the
// computed variance is not greater than zero, whether from zero spread,
// floating-point cancellation, or a degenerate sample, it returns 0 rather
// than a NaN from the square root.
func (s *StandardDeviation[TInput, TCalc]) StdDev() float64 {
	s.calculate()
	return s.stddev
}

// Count returns the number of observations added since construction or the
// last Clear.
func (s *StandardDeviation[TInput, TCalc]) Count() uint64 {
	return uint64(s.n)
}

// Clear resets the accumulator to empty.
func (s *StandardDeviation[TInput, TCalc]) Clear() {
	s.sum = TCalc(0)
	s.sumsq = TCalc(0)
	s.n = 0
	s.variance = 0.0
	s.stddev = 0.0
	s.recalc = true
}

func (s *StandardDeviation[TInput, TCalc]) calculate() {
	if !s.recalc {
		return
	}

	s.variance = 0.0
	s.stddev = 0.0

	if s.n != 0 {
		n := float64(s.n)
		adjustment := 1.0 / (n * (n - s.variant.adjustment()))

		sum := float64(s.sum)
		s.variance = (n*float64(s.sumsq) - sum*sum) * adjustment

		// A NaN variance fails this comparison too, leaving stddev at 0.
		if s.variance > 0 {
			s.stddev = math.Sqrt(s.variance)
		}
	}

	s.recalc = false
}

func (s *StandardDeviation[TInput, TCalc]) String() string {
	return fmt.Sprintf("%s stddev: %v (count: %d)", s.variant, s.StdDev(), s.n)
}
