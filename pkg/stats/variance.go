package stats

import "fmt"

// Variance incrementally accumulates observations of type TInput and reports
// the variance of everything added so far. Running totals are kept in TCalc,
// which may be wider than TInput to avoid overflow or precision loss; values
// are converted to TCalc before squaring. There is no overflow checking: the
// caller chooses a TCalc wide enough for the expected value range and count.
//
// A Variance is not safe for concurrent use; callers accumulating from
// multiple goroutines must serialize access themselves.
type Variance[TInput, TCalc Value] struct {
	sum     TCalc
	sumsq   TCalc
	n       uint32
	variant Variant

	value  float64
	recalc bool
}

// NewVariance returns an empty accumulator with the given variant.
func NewVariance[TInput, TCalc Value](variant Variant) *Variance[TInput, TCalc] {
	v := &Variance[TInput, TCalc]{variant: variant}
	v.Clear()
	return v
}

// NewVarianceFrom returns an accumulator primed with values, consumed eagerly
// in order.
func NewVarianceFrom[TInput, TCalc Value](variant Variant, values []TInput) *Variance[TInput, TCalc] {
	v := NewVariance[TInput, TCalc](variant)
	v.AddValues(values...)
	return v
}

// Add accumulates a single observation.
func (v *Variance[TInput, TCalc]) Add(value TInput) {
	c := TCalc(value)
	v.sumsq += c * c
	v.sum += c
	v.n++
	v.recalc = true
}

// AddValues accumulates each observation in order, equivalent to repeated Add.
func (v *Variance[TInput, TCalc]) AddValues(values ...TInput) {
	for _, value := range values {
		v.Add(value)
	}
}

// Variance returns the variance of all observations added so far, 0 if there
// are none. The result is cached until the next mutation.
//
// With the Sample variant and exactly one observation the denominator is
// zero and the result is not finite; it is reported as-is, not guarded.
// Callers that care should check Count first.
func (v *Variance[TInput, TCalc]) Variance() float64 {
	if v.recalc {
		v.value = 0.0

		if v.n != 0 {
			n := float64(v.n)
			adjustment := 1.0 / (n * (n - v.variant.adjustment()))

			sum := float64(v.sum)
			v.value = (n*float64(v.sumsq) - sum*sum) * adjustment
		}

		v.recalc = false
	}

	return v.value
}

// Count returns the number of observations added since construction or the
// last Clear.
func (v *Variance[TInput, TCalc]) Count() uint64 {
	return uint64(v.n)
}

// Clear resets the accumulator to empty.
func (v *Variance[TInput, TCalc]) Clear() {
	v.sum = TCalc(0)
	v.sumsq = TCalc(0)
	v.n = 0
	v.value = 0.0
	v.recalc = true
}

func (v *Variance[TInput, TCalc]) String() string {
	return fmt.Sprintf("%s variance: %v (count: %d)", v.variant, v.Variance(), v.n)
}
